package domain

import "time"

// Timestamps holds the creation and update instants of a stored record.
// UpdatedAt is written once at creation; no operation modifies records afterwards.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
