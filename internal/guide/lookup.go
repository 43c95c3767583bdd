package guide

import (
	"math"
	"strings"
	"unicode"
)

// Currency symbol for all rent figures.
const currency = "₹"

// cityAliases maps alternate spellings onto the canonical table key. Lookups
// use exact normalized names, not substring matching, so a made-up
// "New Bengaluru City" falls through to the generic data.
var cityAliases = map[string]string{
	"bangalore": "bengaluru",
}

// normalizeCity lowercases, trims and resolves aliases.
func normalizeCity(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := cityAliases[key]; ok {
		return canonical
	}
	return key
}

// titleCase capitalizes the first letter of each word, like the display name
// in the bundle ("new york" -> "New York").
func titleCase(name string) string {
	out := []rune(strings.ToLower(strings.TrimSpace(name)))
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) && !prevLetter {
			out[i] = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return string(out)
}

type marketEntry struct {
	avg    int
	growth string
	yield  string
}

// 2024 market baselines for Indian tier-1/tier-2 cities.
var marketData = map[string]marketEntry{
	"bengaluru": {avg: 24500, growth: "+12%", yield: "3.5%"},
	"hyderabad": {avg: 19000, growth: "+15%", yield: "4.2%"},
	"chennai":   {avg: 17500, growth: "+8%", yield: "3.8%"},
	"mumbai":    {avg: 42000, growth: "+10%", yield: "2.5%"},
	"pune":      {avg: 18500, growth: "+9%", yield: "3.2%"},
	"delhi":     {avg: 22000, growth: "+7%", yield: "3.0%"},
}

var genericMarket = marketEntry{avg: 15000, growth: "Stable", yield: "3.4%"}

func marketFor(city string) marketEntry {
	if entry, ok := marketData[normalizeCity(city)]; ok {
		return entry
	}
	return genericMarket
}

// AverageRent returns the base monthly rent for a city, generic fallback for
// unknown names.
func AverageRent(city string) int {
	return marketFor(city).avg
}

// EstimateRent returns the deterministic estimate: average with a ±10% band.
func EstimateRent(city string) RentEstimate {
	avg := AverageRent(city)
	return RentEstimate{
		AverageRent: avg,
		RangeLow:    int(math.Round(float64(avg) * 0.9)),
		RangeHigh:   int(math.Round(float64(avg) * 1.1)),
		Currency:    currency,
	}
}

// MarketStatsFor returns the richer market view with a wider 0.8x..1.3x band.
func MarketStatsFor(city string) MarketStats {
	entry := marketFor(city)
	return MarketStats{
		AverageRent:  entry.avg,
		MarketGrowth: entry.growth,
		RentalYield:  entry.yield,
		RangeLow:     int(float64(entry.avg) * 0.8),
		RangeHigh:    int(float64(entry.avg) * 1.3),
		Currency:     currency,
	}
}

var cityImages = map[string][]string{
	"bengaluru": {
		"https://images.unsplash.com/photo-1596422846543-75c6fc197f07?w=1200",
		"https://images.unsplash.com/photo-1551135041-09855364893a?w=1200",
		"https://images.unsplash.com/photo-1626245229239-b9d9c288f6b8?w=1200",
	},
	"hyderabad": {
		"https://images.unsplash.com/photo-1572455027382-706593b4fe7e?w=1200",
		"https://images.unsplash.com/photo-1624716181745-f0ea9f478a63?w=1200",
		"https://images.unsplash.com/photo-1605537964076-3cb0ea2e356d?w=1200",
	},
	"chennai": {
		"https://images.unsplash.com/photo-1582510003544-bea4db981a33?w=1200",
		"https://images.unsplash.com/photo-1625292415516-56f874983226?w=1200",
		"https://images.unsplash.com/photo-1517549641777-62624a047d7a?w=1200",
	},
}

var genericImages = []string{
	"https://images.unsplash.com/photo-1449824913929-4bd6d5a88adc?w=1200&q=80",
	"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=1200&q=80",
}

// Images returns city photos, three for known cities and two generic
// cityscapes otherwise.
func Images(city string) []string {
	if imgs, ok := cityImages[normalizeCity(city)]; ok {
		return imgs
	}
	return genericImages
}

var cityAreas = map[string][]Area{
	"bengaluru": {
		{Name: "Koramangala", Rent: "₹28,000", Vibe: "Posh & Active", Image: "https://images.unsplash.com/photo-1596422846543-75c6fc197f07?w=400"},
		{Name: "Indiranagar", Rent: "₹32,000", Vibe: "Elite & Green", Image: "https://images.unsplash.com/photo-1626245229239-b9d9c288f6b8?w=400"},
		{Name: "HSR Layout", Rent: "₹24,000", Vibe: "Startup Hub", Image: "https://images.unsplash.com/photo-1551135041-09855364893a?w=400"},
	},
	"hyderabad": {
		{Name: "Gachibowli", Rent: "₹26,000", Vibe: "Tech Focused", Image: "https://images.unsplash.com/photo-1624716181745-f0ea9f478a63?w=400"},
		{Name: "Banjara Hills", Rent: "₹45,000", Vibe: "Premium Living", Image: "https://images.unsplash.com/photo-1572455027382-706593b4fe7e?w=400"},
	},
}

var genericAreas = []Area{
	{Name: "City Center", Rent: "₹20,000", Vibe: "Central", Image: "https://images.unsplash.com/photo-1449824913929-4bd6d5a88adc?w=400"},
}

// Areas returns neighborhood entries for a city.
func Areas(city string) []Area {
	if areas, ok := cityAreas[normalizeCity(city)]; ok {
		return areas
	}
	return genericAreas
}

var (
	pgImages = []string{
		"https://images.unsplash.com/photo-1522771753062-5887739e663e?w=600",
		"https://images.unsplash.com/photo-1595526114035-0d45ed16cfbf?w=600",
		"https://images.unsplash.com/photo-1628932630248-0d4ddee66412?w=600",
	}
	flatImages = []string{
		"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=600",
		"https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?w=600",
		"https://images.unsplash.com/photo-1484154218962-a1c002085d2f?w=600",
	}
)

var cityListings = map[string][]Listing{
	"bengaluru": {
		{ID: 101, Type: "PG", Name: "Zolo Tech Park", Area: "Koramangala", Price: "₹14,000/mo", Image: pgImages[0], Specs: "Twin Sharing • Meals", Amenities: []string{"WiFi", "AC", "Power Backup"}},
		{ID: 102, Type: "Flat", Name: "Modern 1BHK", Area: "Indiranagar", Price: "₹28,000/mo", Image: flatImages[0], Specs: "1 Bedroom • 650 sqft", Amenities: []string{"Balcony", "Security", "Parking"}},
		{ID: 103, Type: "PG", Name: "Stanza Living Elite", Area: "HSR Layout", Price: "₹16,500/mo", Image: pgImages[1], Specs: "Single • Luxury", Amenities: []string{"Gym", "Laundry", "Mess"}},
	},
}

var genericListings = []Listing{
	{ID: 901, Type: "Flat", Name: "Central Residency", Area: "Downtown", Price: "₹22,000/mo", Image: flatImages[1], Specs: "1BHK Studio", Amenities: []string{"WiFi", "Elevator"}},
}

// Listings returns catalog properties for a city.
func Listings(city string) []Listing {
	if ls, ok := cityListings[normalizeCity(city)]; ok {
		return ls
	}
	return genericListings
}

// SearchListings filters a city's catalog by a free-text query matched
// case-insensitively against every listing field. A blank city searches the
// Bengaluru catalog; a blank query returns the whole set.
func SearchListings(query, city string) []Listing {
	if strings.TrimSpace(city) == "" {
		city = "Bengaluru"
	}
	all := Listings(city)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}

	out := make([]Listing, 0, len(all))
	for _, l := range all {
		if listingMatches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func listingMatches(l Listing, q string) bool {
	fields := []string{l.Type, l.Name, l.Area, l.Price, l.Specs}
	fields = append(fields, l.Amenities...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

var cityQoL = map[string]QualityOfLife{
	"bengaluru": {Score: 8.5, Safety: "High", Transport: "Moderate", Nightlife: "Excellent"},
	"hyderabad": {Score: 9.2, Safety: "High", Transport: "Excellent", Nightlife: "Great"},
	"chennai":   {Score: 8.8, Safety: "High", Transport: "Good", Nightlife: "Moderate"},
}

var genericQoL = QualityOfLife{Score: 7.5, Safety: "Moderate", Transport: "Good", Nightlife: "Moderate"}

// QualityOfLifeFor returns the quality-of-life metrics for a city.
func QualityOfLifeFor(city string) QualityOfLife {
	if qol, ok := cityQoL[normalizeCity(city)]; ok {
		return qol
	}
	return genericQoL
}
