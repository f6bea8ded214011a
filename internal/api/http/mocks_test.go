package http

import (
	"context"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockRentalService struct {
	mock.Mock
}

func (m *mockRentalService) OpenRental(ctx context.Context, customerID, carID int64, days int) (*service.OpenRentalResult, error) {
	args := m.Called(ctx, customerID, carID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OpenRentalResult), args.Error(1)
}

func (m *mockRentalService) CloseRental(ctx context.Context, rentalID int64, actualReturnDate time.Time) (*service.CloseRentalResult, error) {
	args := m.Called(ctx, rentalID, actualReturnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CloseRentalResult), args.Error(1)
}

func (m *mockRentalService) ListRentals(ctx context.Context, filter service.ListRentalsFilter) ([]service.RentalView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RentalView), args.Error(1)
}

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) ListCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
