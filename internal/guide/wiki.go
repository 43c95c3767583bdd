package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	userAgent         = "RentChecker/1.0 (contact@rentchecker.com)"
	maxDescriptionLen = 2500

	// Returned whenever the encyclopedia call fails for any reason. The
	// failure is logged but never propagated.
	fetchFailedDescription = "Could not fetch city insights at this moment."
)

// Describer fetches a short city description from the Wikipedia query API.
type Describer struct {
	client  *http.Client
	baseURL string
}

func NewDescriber(baseURL string, timeout time.Duration) *Describer {
	return &Describer{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type wikiResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Describe returns the intro extract for the page titled like the city,
// following redirects. Unknown pages get a templated sentence; transport and
// parse failures degrade to a fixed fallback string. This method never fails.
func (d *Describer) Describe(ctx context.Context, city string) string {
	desc, err := d.fetch(ctx, city)
	if err != nil {
		log.Warn().
			Err(err).
			Str("city", city).
			Str("component", "wiki_describer").
			Msg("city description fetch failed, serving fallback")
		return fetchFailedDescription
	}
	return desc
}

func (d *Describer) fetch(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("explaintext", "true")
	params.Set("titles", city)
	params.Set("redirects", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	var body wikiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	// Page id "-1" marks a missing page.
	for pageID, page := range body.Query.Pages {
		if pageID == "-1" {
			continue
		}
		extract := page.Extract
		if extract == "" {
			extract = "No description available."
		}
		return truncate(extract, maxDescriptionLen), nil
	}

	return fmt.Sprintf("%s is a major city known for its vibrant culture and growing economy.", titleCase(city)), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
