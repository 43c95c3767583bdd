package guide

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func setupTestServiceWithWiki(t *testing.T, extract string) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"10":{"extract":"` + extract + `"}}}}`))
	}))
	t.Cleanup(srv.Close)
	return NewService(NewDescriber(srv.URL, 2*time.Second))
}

func TestCityInfoPopulatesAllFields(t *testing.T) {
	svc := setupTestServiceWithWiki(t, "A city.")

	for _, city := range []string{"Bengaluru", "zzzz-nonsense-input", "x"} {
		info := svc.CityInfo(context.Background(), city)

		if info.CityName == "" {
			t.Fatalf("%q: city_name empty", city)
		}
		if info.Description == "" {
			t.Fatalf("%q: description empty", city)
		}
		if len(info.Images) == 0 {
			t.Fatalf("%q: images empty", city)
		}
		if info.RentEstimate.AverageRent == 0 || info.RentEstimate.Currency == "" {
			t.Fatalf("%q: rent estimate not populated: %+v", city, info.RentEstimate)
		}
		if info.QualityOfLife.Score == 0 {
			t.Fatalf("%q: quality of life not populated", city)
		}
		if len(info.Areas) == 0 {
			t.Fatalf("%q: areas empty", city)
		}
		if len(info.Listings) == 0 {
			t.Fatalf("%q: listings empty", city)
		}
	}
}

func TestCityInfoTitleCasesName(t *testing.T) {
	svc := setupTestServiceWithWiki(t, "A city.")

	info := svc.CityInfo(context.Background(), "new york")
	if info.CityName != "New York" {
		t.Fatalf("expected title-cased name, got %q", info.CityName)
	}
}

func TestCityInfoSurvivesFetcherOutage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	svc := NewService(NewDescriber(srv.URL, time.Second))

	info := svc.CityInfo(context.Background(), "Bengaluru")
	if info.Description != fetchFailedDescription {
		t.Fatalf("expected fallback description, got %q", info.Description)
	}
	if len(info.Images) != 3 {
		t.Fatal("static sections should be unaffected by the fetch failure")
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	svc := setupTestServiceWithWiki(t, "A city.")

	// Generic city base is 15000: (2-1)*400 + (1-1)*200 = 400 -> 15400.
	req := EstimateRequest{City: "X", Bedrooms: 2, Bathrooms: 1}

	first, err := svc.Estimate(req)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	second, err := svc.Estimate(req)
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected deterministic estimate, got %+v then %+v", first, second)
	}

	if first.EstimatedRent != 15400 {
		t.Fatalf("expected estimate 15400, got %d", first.EstimatedRent)
	}
	if first.RangeLow != 13860 || first.RangeHigh != 16940 {
		t.Fatalf("expected range [13860, 16940], got [%d, %d]", first.RangeLow, first.RangeHigh)
	}
}

func TestEstimateKnownCityWithAdjustments(t *testing.T) {
	svc := setupTestServiceWithWiki(t, "A city.")

	// Delhi base 22000 + 2*400 + 1*200 = 23000.
	est, err := svc.Estimate(EstimateRequest{City: "Delhi", Bedrooms: 3, Bathrooms: 2})
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if est.EstimatedRent != 23000 {
		t.Fatalf("expected estimate 23000, got %d", est.EstimatedRent)
	}
	if est.RangeLow != 20700 || est.RangeHigh != 25300 {
		t.Fatalf("expected range [20700, 25300], got [%d, %d]", est.RangeLow, est.RangeHigh)
	}
}

func TestEstimateRejectsBlankCity(t *testing.T) {
	svc := setupTestServiceWithWiki(t, "A city.")

	_, err := svc.Estimate(EstimateRequest{City: "   "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
