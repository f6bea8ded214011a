package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (name, points) VALUES ($1, $2) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, customer.Name, customer.Points).Scan(&customer.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer := &domain.Customer{}
	query := `SELECT id, name, points FROM customers WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Points)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Customer", id)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `UPDATE customers SET name=$1, points=$2 WHERE id=$3`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, customer.Name, customer.Points, customer.ID)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, points FROM customers ORDER BY id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Points); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&count)
	return count, err
}
