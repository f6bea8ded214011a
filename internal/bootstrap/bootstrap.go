package bootstrap

import (
	"context"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/repository"
)

// Seed inserts a small demo fleet and two customers, but only when the
// tables are still empty. Meant for local development databases.
func Seed(ctx context.Context, cars repository.CarRepository, customers repository.CustomerRepository) error {
	customerCount, err := customers.Count(ctx)
	if err != nil {
		return err
	}
	if customerCount == 0 {
		for _, name := range []string{"Alice", "Bob"} {
			if err := customers.Create(ctx, &domain.Customer{Name: name, Points: 0}); err != nil {
				return err
			}
		}
		logger.Info("Seeded customers", "count", 2)
	}

	carCount, err := cars.Count(ctx)
	if err != nil {
		return err
	}
	if carCount == 0 {
		fleet := []domain.Car{
			{Brand: "BMW", Model: "7", Category: domain.CarCategoryPremium, Available: true},
			{Brand: "Kia", Model: "Sorento", Category: domain.CarCategorySUV, Available: true},
			{Brand: "Nissan", Model: "Juke", Category: domain.CarCategorySUV, Available: true},
			{Brand: "Seat", Model: "Ibiza", Category: domain.CarCategorySmall, Available: true},
		}
		for i := range fleet {
			if err := cars.Create(ctx, &fleet[i]); err != nil {
				return err
			}
		}
		logger.Info("Seeded cars", "count", len(fleet))
	}

	return nil
}
