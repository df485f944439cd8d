package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/waweru234/houselook-rr/models"
)

// FilterCriteria narrows the listing collection. A zero-valued field means
// "no filtering on that dimension"; criteria compose conjunctively.
type FilterCriteria struct {
	Location  string
	MinPrice  int
	MaxPrice  int
	HasPrice  bool
	RoomType  string
	Bedrooms  string
	Amenities []string
}

const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// ParseFilterCriteria reads criteria off URL query parameters. The price
// parameter is a "min-max" range, amenities a comma-separated list.
func ParseFilterCriteria(params map[string]string) FilterCriteria {
	criteria := FilterCriteria{
		Location: params["location"],
		RoomType: params["type"],
		Bedrooms: params["bedrooms"],
	}

	if price := params["price"]; price != "" {
		parts := strings.SplitN(price, "-", 2)
		if len(parts) == 2 {
			min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
			max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errMin == nil && errMax == nil {
				criteria.MinPrice = min
				criteria.MaxPrice = max
				criteria.HasPrice = true
			}
		}
	}

	if amenities := params["amenities"]; amenities != "" {
		for _, a := range strings.Split(amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.Amenities = append(criteria.Amenities, a)
			}
		}
	}

	return criteria
}

// ApplyFilters returns the subset of houses matching every present criterion.
// The input slice is not modified and arrival order is preserved.
func ApplyFilters(houses []models.Listing, criteria FilterCriteria) []models.Listing {
	filtered := houses

	if criteria.Location != "" {
		loc := strings.ToLower(criteria.Location)
		filtered = filterListings(filtered, func(h models.Listing) bool {
			return strings.Contains(strings.ToLower(h.Town), loc)
		})
	}

	if criteria.HasPrice {
		filtered = filterListings(filtered, func(h models.Listing) bool {
			return h.Rent >= criteria.MinPrice && h.Rent <= criteria.MaxPrice
		})
	}

	if criteria.RoomType != "" {
		roomType := strings.ToLower(criteria.RoomType)
		filtered = filterListings(filtered, func(h models.Listing) bool {
			return strings.Contains(strings.ToLower(h.Bedroom), roomType)
		})
	}

	if criteria.Bedrooms != "" {
		filtered = filterListings(filtered, func(h models.Listing) bool {
			return matchBedrooms(h.Bedroom, criteria.Bedrooms)
		})
	}

	if len(criteria.Amenities) > 0 {
		filtered = filterListings(filtered, func(h models.Listing) bool {
			for _, want := range criteria.Amenities {
				if !containsString(h.Amenities, want) {
					return false
				}
			}
			return true
		})
	}

	return filtered
}

// matchBedrooms buckets the free-text bedroom field: "studio" matches any
// text containing studio, "4+" matches a parsed count of at least 4, and any
// other bucket matches on the digits alone ("2" matches "2 Bedroom"). Text
// with no digits never matches a numeric bucket.
func matchBedrooms(bedroom, bucket string) bool {
	switch bucket {
	case "studio":
		return strings.Contains(strings.ToLower(bedroom), "studio")
	case "4+":
		digits := digitsOnly(bedroom)
		if digits == "" {
			return false
		}
		n, err := strconv.Atoi(digits)
		return err == nil && n >= 4
	default:
		want := digitsOnly(bucket)
		have := digitsOnly(bedroom)
		return have != "" && have == want
	}
}

// SortListings orders houses by the given key. Sorting is stable, so equal
// rents keep their arrival order; "newest" leaves the already time-ordered
// input untouched.
func SortListings(houses []models.Listing, sortBy string) []models.Listing {
	out := make([]models.Listing, len(houses))
	copy(out, houses)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rent < out[j].Rent })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rent > out[j].Rent })
	}

	return out
}

func filterListings(houses []models.Listing, keep func(models.Listing) bool) []models.Listing {
	out := make([]models.Listing, 0, len(houses))
	for _, h := range houses {
		if keep(h) {
			out = append(out, h)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
