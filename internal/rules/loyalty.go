package rules

import "rentalcar-backend/internal/domain"

// LoyaltyPolicy awards loyalty points per completed booking. The
// mapping is fixed and deterministic.
type LoyaltyPolicy struct{}

func NewLoyaltyPolicy() *LoyaltyPolicy {
	return &LoyaltyPolicy{}
}

func (l *LoyaltyPolicy) PointsFor(category domain.CarCategory) int {
	switch category {
	case domain.CarCategoryPremium:
		return 5
	case domain.CarCategorySUV:
		return 3
	case domain.CarCategorySmall:
		return 1
	}
	return 0
}
