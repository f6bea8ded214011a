package domain

type CarCategory string

const (
	CarCategoryPremium CarCategory = "PREMIUM"
	CarCategorySUV     CarCategory = "SUV"
	CarCategorySmall   CarCategory = "SMALL"
)

// ParseCarCategory validates a category string coming from outside
// (API payloads, database rows, seed data).
func ParseCarCategory(s string) (CarCategory, bool) {
	switch CarCategory(s) {
	case CarCategoryPremium, CarCategorySUV, CarCategorySmall:
		return CarCategory(s), true
	}
	return "", false
}

// Car belongs to the inventory context. The rental workflows only flip
// the availability flag; everything else is read-only to them.
type Car struct {
	ID        int64       `json:"id"`
	Brand     string      `json:"brand"`
	Model     string      `json:"model"`
	Category  CarCategory `json:"category"`
	Available bool        `json:"available"`
}
