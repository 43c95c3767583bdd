package guide

// RentEstimate is the deterministic per-city estimate shown in the city-info
// bundle: average with a ±10% band.
type RentEstimate struct {
	AverageRent int    `json:"average_rent"`
	RangeLow    int    `json:"range_low"`
	RangeHigh   int    `json:"range_high"`
	Currency    string `json:"currency"`
}

// MarketStats is the richer market view: growth and yield with a wider band.
type MarketStats struct {
	AverageRent  int    `json:"average_rent"`
	MarketGrowth string `json:"market_growth"`
	RentalYield  string `json:"rental_yield"`
	RangeLow     int    `json:"range_low"`
	RangeHigh    int    `json:"range_high"`
	Currency     string `json:"currency"`
}

// QualityOfLife scores a city and tags a few everyday concerns.
type QualityOfLife struct {
	Score     float64 `json:"score"`
	Safety    string  `json:"safety"`
	Transport string  `json:"transport"`
	Nightlife string  `json:"nightlife"`
}

// Area is one neighborhood entry.
type Area struct {
	Name  string `json:"name"`
	Rent  string `json:"rent"`
	Vibe  string `json:"vibe"`
	Image string `json:"image"`
}

// Listing is one property entry in the city-info bundle. These are catalog
// rows, not the persisted owner submissions.
type Listing struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Area      string   `json:"area"`
	Price     string   `json:"price"`
	Image     string   `json:"image"`
	Specs     string   `json:"specs"`
	Amenities []string `json:"amenities"`
}

// CityInfo is the aggregated bundle for one city. All seven fields are always
// populated, whatever the input.
type CityInfo struct {
	CityName      string        `json:"city_name"`
	Description   string        `json:"description"`
	Images        []string      `json:"images"`
	RentEstimate  RentEstimate  `json:"rent_estimate"`
	QualityOfLife QualityOfLife `json:"quality_of_life"`
	Areas         []Area        `json:"areas"`
	Listings      []Listing     `json:"listings"`
}

type EstimateRequest struct {
	City      string `json:"city" validate:"required"`
	Bedrooms  int    `json:"bedrooms" validate:"gte=0"`
	Bathrooms int    `json:"bathrooms" validate:"gte=0"`
}

type EstimateResponse struct {
	EstimatedRent int    `json:"estimated_rent"`
	RangeLow      int    `json:"range_low"`
	RangeHigh     int    `json:"range_high"`
	Currency      string `json:"currency"`
}
