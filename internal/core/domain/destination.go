package domain

import "errors"

var (
	ErrDuplicateDestination = errors.New("destination id already exists")
	ErrDestinationNotFound  = errors.New("destination not found")
)

// Destination is a catalog entry. ID is the unique key and is only exposed
// to Admin callers; all writes are gated on the Admin role.
type Destination struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}
