package domain

import "time"

// Service is a bookable catalog offering.
// DurationMinutes is informational: it suggests how long the service takes
// but is not enforced against an appointment's entry/exit times.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
