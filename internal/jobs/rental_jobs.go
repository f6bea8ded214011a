package jobs

import (
	"context"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/observability/metrics"
	"rentalcar-backend/internal/repository"
)

// ReportOverdueRentals logs every OPEN rental past its planned return
// date and publishes the count as a gauge. It is a read-only report:
// rentals stay OPEN until the car actually comes back, there is no
// overdue status.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		open := domain.RentalStatusOpen
		rentals, err := jr.store.RentalRepository.List(ctx, repository.RentalFilter{Status: &open})
		if err != nil {
			logger.Error("Failed to list open rentals", "error", err)
			return
		}

		today := time.Now().UTC()
		count := 0
		for _, rt := range rentals {
			planned := rt.PlannedReturnDate()
			if planned.Before(today) {
				count++
				logger.Warn("Rental overdue",
					"rental_id", rt.ID,
					"customer_id", rt.CustomerID,
					"car_id", rt.CarID,
					"planned_return_date", planned.Format("2006-01-02"))
			}
		}

		metrics.SetOverdueOpenRentals(count)
		logger.Info("Overdue rental report finished", "open_rentals", len(rentals), "overdue", count)
	})
}
