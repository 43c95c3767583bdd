package guide

import (
	"context"
	"strings"
)

const (
	bedroomAdjustment  = 400
	bathroomAdjustment = 200
)

// Service aggregates static city data and the fetched description into the
// city-info bundle.
type Service struct {
	describer *Describer
}

func NewService(describer *Describer) *Service {
	return &Service{describer: describer}
}

// CityInfo builds the full bundle for a raw city name. Unknown cities get the
// generic fallback data in every section; the operation cannot fail.
func (s *Service) CityInfo(ctx context.Context, city string) CityInfo {
	return CityInfo{
		CityName:      titleCase(city),
		Description:   s.describer.Describe(ctx, city),
		Images:        Images(city),
		RentEstimate:  EstimateRent(city),
		QualityOfLife: QualityOfLifeFor(city),
		Areas:         Areas(city),
		Listings:      Listings(city),
	}
}

// Estimate computes a deterministic per-layout rent estimate: the city base
// average plus a fixed bump per bedroom and bathroom beyond the first, with a
// ±10% band around the adjusted figure.
func (s *Service) Estimate(req EstimateRequest) (EstimateResponse, error) {
	if strings.TrimSpace(req.City) == "" {
		return EstimateResponse{}, ErrInvalidRequest
	}

	base := AverageRent(req.City)
	adjustment := (req.Bedrooms-1)*bedroomAdjustment + (req.Bathrooms-1)*bathroomAdjustment
	final := base + adjustment

	return EstimateResponse{
		EstimatedRent: final,
		RangeLow:      int(float64(final) * 0.9),
		RangeHigh:     int(float64(final) * 1.1),
		Currency:      currency,
	}, nil
}

// MarketStats returns the richer market view for a city.
func (s *Service) MarketStats(city string) MarketStats {
	return MarketStatsFor(city)
}

// SearchProperties filters the static catalog by free text.
func (s *Service) SearchProperties(query, city string) []Listing {
	return SearchListings(query, city)
}
