package domain

// Customer belongs to the customer context. Rentals only ever add
// loyalty points, so the balance never decreases.
type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func (c *Customer) AddPoints(p int) {
	c.Points += p
}
