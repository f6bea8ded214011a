package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, car_id, category, start_date, days_booked, prepaid_amount, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	var id int64
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		rt.CustomerID, rt.CarID, rt.Category, rt.StartDate, rt.DaysBooked, rt.PrepaidAmount, rt.Status, time.Now(), time.Now()).Scan(&id)
	if err != nil {
		return err
	}
	rt.AssignID(id)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := `SELECT id, customer_id, car_id, category, start_date, days_booked, prepaid_amount, status FROM rentals WHERE id = $1`
	rt, err := scanRental(conn(ctx, r.db).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("Rental", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, rt.Status, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) List(ctx context.Context, filter repository.RentalFilter) ([]domain.Rental, error) {
	query := `SELECT id, customer_id, car_id, category, start_date, days_booked, prepaid_amount, status FROM rentals`

	var args []any
	var where []string
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		where = append(where, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id"

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRental rehydrates a rental row through the domain constructor so
// a reloaded rental always carries its persisted id and status.
func scanRental(row rowScanner) (*domain.Rental, error) {
	var (
		id, customerID, carID int64
		category, status      string
		startDate             time.Time
		daysBooked            int
		prepaid               float64
	)
	if err := row.Scan(&id, &customerID, &carID, &category, &startDate, &daysBooked, &prepaid, &status); err != nil {
		return nil, err
	}

	cat, ok := domain.ParseCarCategory(category)
	if !ok {
		return nil, fmt.Errorf("rental %d has unknown category %q", id, category)
	}
	st, ok := domain.ParseRentalStatus(status)
	if !ok {
		return nil, fmt.Errorf("rental %d has unknown status %q", id, status)
	}

	return domain.ReconstituteRental(id, customerID, carID, cat, startDate, daysBooked, prepaid, st), nil
}
