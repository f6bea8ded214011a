package domain

import "time"

type RentalStatus string

const (
	RentalStatusOpen     RentalStatus = "OPEN"
	RentalStatusReturned RentalStatus = "RETURNED"
)

// ParseRentalStatus validates a status string from API filters or
// database rows.
func ParseRentalStatus(s string) (RentalStatus, bool) {
	switch RentalStatus(s) {
	case RentalStatusOpen, RentalStatusReturned:
		return RentalStatus(s), true
	}
	return "", false
}

// Rental is the aggregate owned by the rental context. Category and
// PrepaidAmount are snapshots taken at booking time; they are never
// re-derived from the car or the pricing policy afterwards.
type Rental struct {
	ID            int64        `json:"id"`
	CustomerID    int64        `json:"customer_id"`
	CarID         int64        `json:"car_id"`
	Category      CarCategory  `json:"category"`
	StartDate     time.Time    `json:"start_date"`
	DaysBooked    int          `json:"days_booked"`
	PrepaidAmount float64      `json:"prepaid_amount"`
	Status        RentalStatus `json:"status"`
}

// OpenRental creates a new booking in OPEN state. The ID stays zero
// until storage assigns one via AssignID.
func OpenRental(customerID, carID int64, category CarCategory, startDate time.Time, days int, prepaid float64) *Rental {
	return &Rental{
		CustomerID:    customerID,
		CarID:         carID,
		Category:      category,
		StartDate:     startDate,
		DaysBooked:    days,
		PrepaidAmount: prepaid,
		Status:        RentalStatusOpen,
	}
}

// ReconstituteRental rehydrates a rental from storage with its
// identity and status already known.
func ReconstituteRental(id, customerID, carID int64, category CarCategory, startDate time.Time, days int, prepaid float64, status RentalStatus) *Rental {
	return &Rental{
		ID:            id,
		CustomerID:    customerID,
		CarID:         carID,
		Category:      category,
		StartDate:     startDate,
		DaysBooked:    days,
		PrepaidAmount: prepaid,
		Status:        status,
	}
}

// AssignID is called exactly once, when storage assigns an identity.
func (r *Rental) AssignID(id int64) {
	r.ID = id
}

// MarkReturned transitions the rental to its terminal state. There is
// no way back to OPEN.
func (r *Rental) MarkReturned() {
	r.Status = RentalStatusReturned
}

func (r *Rental) IsReturned() bool {
	return r.Status == RentalStatusReturned
}

// PlannedReturnDate is derived, never stored.
func (r *Rental) PlannedReturnDate() time.Time {
	return r.StartDate.AddDate(0, 0, r.DaysBooked)
}
