package listing

type SubmitListingRequest struct {
	OwnerName   string  `json:"owner_name" validate:"required"`
	Contact     string  `json:"contact" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=Flat PG House"`
	City        string  `json:"city" validate:"required"`
	Area        string  `json:"area" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type SubmitListingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type SaveListingRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Area      string `json:"area"`
	City      string `json:"city"`
	Image     string `json:"image"`
	Type      string `json:"type"`
}
