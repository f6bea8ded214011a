package service

import (
	"context"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/observability/metrics"
	"rentalcar-backend/internal/repository"
	"rentalcar-backend/internal/rules"
)

type rentalService struct {
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	uow          repository.UnitOfWork
	pricing      *rules.PricingPolicy
	loyalty      *rules.LoyaltyPolicy
	now          func() time.Time
}

func NewRentalService(
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
	uow repository.UnitOfWork,
	pricing *rules.PricingPolicy,
	loyalty *rules.LoyaltyPolicy,
) RentalService {
	return &rentalService{
		carRepo:      carRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		uow:          uow,
		pricing:      pricing,
		loyalty:      loyalty,
		now:          time.Now,
	}
}

// OpenRental books an available car for a customer. The rental insert,
// the car availability flip and the customer points update all happen
// inside one unit of work: either every record commits or none does.
func (s *rentalService) OpenRental(ctx context.Context, customerID, carID int64, days int) (*OpenRentalResult, error) {
	if days <= 0 {
		return nil, domain.NewValidationError("days must be > 0")
	}

	var result *OpenRentalResult
	var category domain.CarCategory
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		car, err := s.carRepo.GetByID(ctx, carID)
		if err != nil {
			return err
		}
		customer, err := s.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if !car.Available {
			return domain.NewConflictError("car is not available")
		}

		category = car.Category
		prepaid := s.pricing.BasePrice(car.Category, days)
		points := s.loyalty.PointsFor(car.Category)

		rental := domain.OpenRental(customer.ID, car.ID, car.Category, dateOnly(s.now()), days, prepaid)
		if err := s.rentalRepo.Create(ctx, rental); err != nil {
			return err
		}

		car.Available = false
		if err := s.carRepo.Update(ctx, car); err != nil {
			return err
		}

		customer.AddPoints(points)
		if err := s.customerRepo.Update(ctx, customer); err != nil {
			return err
		}

		result = &OpenRentalResult{
			RentalID:             rental.ID,
			PrepaidAmount:        prepaid,
			LoyaltyPointsAwarded: points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rental opened", "rental_id", result.RentalID, "car_id", carID, "customer_id", customerID, "days", days, "prepaid", result.PrepaidAmount)
	metrics.ObserveRentalOpened(string(category), result.PrepaidAmount)
	return result, nil
}

// CloseRental returns a rented car and computes the late surcharge.
//
// Unlike OpenRental this is not one atomic unit: the rental's RETURNED
// transition is committed on its own before the car is touched, so a
// failing car lookup leaves the rental durably returned while the car
// record is never updated. That asymmetry is intentional and the tests
// depend on it.
func (s *rentalService) CloseRental(ctx context.Context, rentalID int64, actualReturnDate time.Time) (*CloseRentalResult, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	// Repeated returns are a no-op.
	if rental.IsReturned() {
		return &CloseRentalResult{RentalID: rental.ID, Surcharge: 0}, nil
	}

	extraDays := wholeDaysBetween(rental.PlannedReturnDate(), dateOnly(actualReturnDate))
	surcharge := float64(extraDays) * s.pricing.LatePerDay(rental.Category)

	rental.MarkReturned()
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}
	car.Available = true
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	logger.Info("rental closed", "rental_id", rental.ID, "car_id", car.ID, "extra_days", extraDays, "surcharge", surcharge)
	metrics.ObserveRentalClosed(string(rental.Category), extraDays > 0)
	return &CloseRentalResult{RentalID: rental.ID, Surcharge: surcharge}, nil
}

func (s *rentalService) ListRentals(ctx context.Context, filter ListRentalsFilter) ([]RentalView, error) {
	repoFilter := repository.RentalFilter{CustomerID: filter.CustomerID}
	if filter.Status != nil {
		// Unknown status values fall through to an unfiltered listing,
		// matching the query contract.
		if st, ok := domain.ParseRentalStatus(*filter.Status); ok {
			repoFilter.Status = &st
		}
	}

	rentals, err := s.rentalRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	views := make([]RentalView, 0, len(rentals))
	for _, rt := range rentals {
		views = append(views, RentalView{
			ID:                rt.ID,
			CustomerID:        rt.CustomerID,
			CarID:             rt.CarID,
			Category:          string(rt.Category),
			StartDate:         rt.StartDate,
			DaysBooked:        rt.DaysBooked,
			PlannedReturnDate: rt.PlannedReturnDate(),
			PrepaidAmount:     rt.PrepaidAmount,
			Status:            string(rt.Status),
		})
	}
	return views, nil
}

// dateOnly truncates a timestamp to its calendar date in UTC. Rental
// date arithmetic works in whole days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// wholeDaysBetween returns how many whole days b lies after a, never
// negative.
func wholeDaysBetween(a, b time.Time) int {
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
