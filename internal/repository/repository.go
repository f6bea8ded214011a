package repository

import (
	"context"

	"rentalcar-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	List(ctx context.Context) ([]domain.Car, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}

// RentalFilter narrows rental listings. Nil fields mean "any".
type RentalFilter struct {
	CustomerID *int64
	Status     *domain.RentalStatus
}

type RentalRepository interface {
	// Create persists a new rental and assigns its identity.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, filter RentalFilter) ([]domain.Rental, error)
}

// UnitOfWork runs fn inside a single database transaction. Every
// repository call made with the context passed to fn joins that
// transaction; either all of them commit or none do.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
