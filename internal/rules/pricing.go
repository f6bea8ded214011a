package rules

import "rentalcar-backend/internal/domain"

// PricingPolicy computes prepaid rental prices and late fees from the
// three configured base day rates. It carries no other state and does
// no validation: callers guarantee days > 0.
type PricingPolicy struct {
	premium float64
	suv     float64
	small   float64
}

func NewPricingPolicy(premium, suv, small float64) *PricingPolicy {
	return &PricingPolicy{premium: premium, suv: suv, small: small}
}

// BasePrice returns the prepaid amount for renting a car of the given
// category for the given number of days.
//
// PREMIUM is a flat day rate. SUV is tiered by cumulative day count:
// days 1-7 at the full rate, days 8-30 at 80%, anything beyond at 50%,
// summed day by day. SMALL charges the first 7 days at the full rate
// and every further day at 60%.
func (p *PricingPolicy) BasePrice(category domain.CarCategory, days int) float64 {
	switch category {
	case domain.CarCategoryPremium:
		return p.premium * float64(days)
	case domain.CarCategorySUV:
		total := 0.0
		for d := 1; d <= days; d++ {
			switch {
			case d <= 7:
				total += p.suv
			case d <= 30:
				total += p.suv * 0.80
			default:
				total += p.suv * 0.50
			}
		}
		return total
	case domain.CarCategorySmall:
		if days <= 7 {
			return p.small * float64(days)
		}
		return p.small*7 + p.small*0.60*float64(days-7)
	}
	return 0
}

// LatePerDay returns the surcharge per day for returning a car of the
// given category after its planned return date.
func (p *PricingPolicy) LatePerDay(category domain.CarCategory) float64 {
	switch category {
	case domain.CarCategoryPremium:
		return p.premium * 1.20
	case domain.CarCategorySUV:
		return p.suv + 0.60*p.small
	case domain.CarCategorySmall:
		return p.small * 1.30
	}
	return 0
}
