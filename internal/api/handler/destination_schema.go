package handler

// --- Request / Response types ---

type destinationRequest struct {
	ID            string  `json:"id"              validate:"required"`
	Name          string  `json:"name"            validate:"required"`
	Description   string  `json:"description"     validate:"required"`
	Location      string  `json:"location"        validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
}

// destinationResponse is the Admin view of a catalog entry.
type destinationResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

// publicDestinationResponse omits the id. Which view a caller gets is a
// response-shaping decision made per role, not a catalog concern.
type publicDestinationResponse struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

type destinationCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type destinationDeletedResponse struct {
	Message string `json:"message"`
}
