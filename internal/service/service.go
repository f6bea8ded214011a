package service

import (
	"context"
	"time"

	"rentalcar-backend/internal/domain"
)

// OpenRentalResult is returned to the caller after a successful booking.
type OpenRentalResult struct {
	RentalID             int64   `json:"rentalId"`
	PrepaidAmount        float64 `json:"prepaidAmount"`
	LoyaltyPointsAwarded int     `json:"loyaltyPointsAwarded"`
}

// CloseRentalResult is returned after a car return.
type CloseRentalResult struct {
	RentalID  int64   `json:"rentalId"`
	Surcharge float64 `json:"surcharge"`
}

// RentalView is the read projection used by rental listings.
type RentalView struct {
	ID                int64     `json:"id"`
	CustomerID        int64     `json:"customerId"`
	CarID             int64     `json:"carId"`
	Category          string    `json:"category"`
	StartDate         time.Time `json:"startDate"`
	DaysBooked        int       `json:"daysBooked"`
	PlannedReturnDate time.Time `json:"plannedReturnDate"`
	PrepaidAmount     float64   `json:"prepaidAmount"`
	Status            string    `json:"status"`
}

// ListRentalsFilter narrows rental listings. Both fields are optional;
// an unknown status string is ignored rather than rejected.
type ListRentalsFilter struct {
	CustomerID *int64
	Status     *string
}

type RentalService interface {
	OpenRental(ctx context.Context, customerID, carID int64, days int) (*OpenRentalResult, error)
	CloseRental(ctx context.Context, rentalID int64, actualReturnDate time.Time) (*CloseRentalResult, error)
	ListRentals(ctx context.Context, filter ListRentalsFilter) ([]RentalView, error)
}

type InventoryService interface {
	ListCars(ctx context.Context) ([]domain.Car, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
