package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (brand, model, category, available)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, car.Brand, car.Model, car.Category, car.Available).Scan(&car.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	car := &domain.Car{}
	query := `SELECT id, brand, model, category, available FROM cars WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&car.ID, &car.Brand, &car.Model, &car.Category, &car.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Car", id)
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET brand=$1, model=$2, category=$3, available=$4 WHERE id=$5`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, car.Brand, car.Model, car.Category, car.Available, car.ID)
	return err
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, brand, model, category, available FROM cars ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(&car.ID, &car.Brand, &car.Model, &car.Category, &car.Available); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT count(*) FROM cars`).Scan(&count)
	return count, err
}
