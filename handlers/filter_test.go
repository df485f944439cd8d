package handlers

import (
	"reflect"
	"testing"

	"github.com/waweru234/houselook-rr/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{ID: "a", Town: "Kahawa Wendani", Rent: 5000, Bedroom: "Bedsitter", Amenities: []string{"Wi-Fi", "Water Included"}},
		{ID: "b", Town: "Kahawa Sukari", Rent: 20000, Bedroom: "2 Bedroom", Amenities: []string{"Parking", "Wi-Fi"}},
		{ID: "c", Town: "Kenyatta Market", Rent: 12000, Bedroom: "1 Bedroom", Amenities: []string{"Security"}},
		{ID: "d", Town: "Juja", Rent: 30000, Bedroom: "5 Bedroom", Amenities: []string{"Parking", "Garden"}},
		{ID: "e", Town: "Ruiru", Rent: 8000, Bedroom: "Studio Apartment", Amenities: []string{"Wi-Fi"}},
	}
}

func ids(houses []models.Listing) []string {
	out := make([]string, 0, len(houses))
	for _, h := range houses {
		out = append(out, h.ID)
	}
	return out
}

func TestApplyFiltersEmptyCriteriaIsIdentity(t *testing.T) {
	houses := sampleListings()
	got := ApplyFilters(houses, FilterCriteria{})
	if !reflect.DeepEqual(ids(got), ids(houses)) {
		t.Errorf("empty criteria changed the collection: got %v", ids(got))
	}
}

// Each empty criterion must behave exactly as if its predicate were omitted.
func TestApplyFiltersPerCriterionIdentity(t *testing.T) {
	houses := sampleListings()
	base := ApplyFilters(houses, FilterCriteria{Location: "kahawa"})

	withEmpties := ApplyFilters(houses, FilterCriteria{
		Location:  "kahawa",
		RoomType:  "",
		Bedrooms:  "",
		Amenities: nil,
	})
	if !reflect.DeepEqual(ids(base), ids(withEmpties)) {
		t.Errorf("empty criteria altered the result: %v vs %v", ids(base), ids(withEmpties))
	}
}

func TestApplyFiltersLocationCaseInsensitive(t *testing.T) {
	got := ApplyFilters(sampleListings(), FilterCriteria{Location: "KAHAWA"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("location filter: got %v, want %v", ids(got), want)
	}
}

func TestApplyFiltersPriceRangeInclusive(t *testing.T) {
	got := ApplyFilters(sampleListings(), FilterCriteria{MinPrice: 8000, MaxPrice: 12000, HasPrice: true})
	want := []string{"c", "e"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("price filter: got %v, want %v", ids(got), want)
	}
}

func TestBedroomBuckets(t *testing.T) {
	tests := []struct {
		bedroom string
		bucket  string
		want    bool
	}{
		{"5 Bedroom", "4+", true},
		{"4 Bedroom", "4+", true},
		{"2 Bedroom", "4+", false},
		{"Bedsitter", "4+", false},
		{"Studio Apartment", "studio", true},
		{"2 Bedroom", "studio", false},
		{"2 Bedroom", "2", true},
		{"2 Bedroom", "2 Bedroom", true},
		{"1 Bedroom", "2", false},
		{"Bedsitter", "1", false},
	}

	for _, tc := range tests {
		if got := matchBedrooms(tc.bedroom, tc.bucket); got != tc.want {
			t.Errorf("matchBedrooms(%q, %q) = %v, want %v", tc.bedroom, tc.bucket, got, tc.want)
		}
	}
}

func TestApplyFiltersAmenitiesAllRequired(t *testing.T) {
	got := ApplyFilters(sampleListings(), FilterCriteria{Amenities: []string{"Wi-Fi", "Parking"}})
	want := []string{"b"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("amenity filter: got %v, want %v", ids(got), want)
	}
}

func TestSortListingsAscendingIsStable(t *testing.T) {
	houses := []models.Listing{
		{ID: "x", Rent: 10000},
		{ID: "y", Rent: 5000},
		{ID: "z", Rent: 10000},
	}
	got := SortListings(houses, SortPriceLow)
	want := []string{"y", "x", "z"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("ascending sort: got %v, want %v", ids(got), want)
	}
}

func TestSortListingsNewestKeepsArrivalOrder(t *testing.T) {
	houses := sampleListings()
	got := SortListings(houses, SortNewest)
	if !reflect.DeepEqual(ids(got), ids(houses)) {
		t.Errorf("newest sort reordered input: got %v", ids(got))
	}
}

func TestSortListingsDoesNotModifyInput(t *testing.T) {
	houses := sampleListings()
	first := houses[0].ID
	SortListings(houses, SortPriceHigh)
	if houses[0].ID != first {
		t.Errorf("input slice was reordered")
	}
}

// Scenario check: a bounded price range followed by an ascending price sort.
func TestFilterThenSortScenario(t *testing.T) {
	houses := []models.Listing{
		{ID: "1", Rent: 5000, Bedroom: "Bedsitter"},
		{ID: "2", Rent: 20000, Bedroom: "2 Bedroom"},
		{ID: "3", Rent: 12000, Bedroom: "1 Bedroom"},
	}

	filtered := ApplyFilters(houses, FilterCriteria{MinPrice: 0, MaxPrice: 15000, HasPrice: true})
	sorted := SortListings(filtered, SortPriceLow)

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d", len(sorted))
	}
	if sorted[0].Rent != 5000 || sorted[0].Bedroom != "Bedsitter" {
		t.Errorf("first result = %d %s, want 5000 Bedsitter", sorted[0].Rent, sorted[0].Bedroom)
	}
	if sorted[1].Rent != 12000 || sorted[1].Bedroom != "1 Bedroom" {
		t.Errorf("second result = %d %s, want 12000 1 Bedroom", sorted[1].Rent, sorted[1].Bedroom)
	}
}

func TestParseFilterCriteria(t *testing.T) {
	criteria := ParseFilterCriteria(map[string]string{
		"location":  "Ruiru",
		"price":     "5000-15000",
		"type":      "bedsitter",
		"bedrooms":  "2",
		"amenities": "Wi-Fi, Parking",
	})

	if criteria.Location != "Ruiru" {
		t.Errorf("Location = %q", criteria.Location)
	}
	if !criteria.HasPrice || criteria.MinPrice != 5000 || criteria.MaxPrice != 15000 {
		t.Errorf("price range = %d-%d (has=%v)", criteria.MinPrice, criteria.MaxPrice, criteria.HasPrice)
	}
	if criteria.RoomType != "bedsitter" || criteria.Bedrooms != "2" {
		t.Errorf("room criteria = %q/%q", criteria.RoomType, criteria.Bedrooms)
	}
	if !reflect.DeepEqual(criteria.Amenities, []string{"Wi-Fi", "Parking"}) {
		t.Errorf("Amenities = %v", criteria.Amenities)
	}
}

func TestParseFilterCriteriaIgnoresMalformedPrice(t *testing.T) {
	criteria := ParseFilterCriteria(map[string]string{"price": "cheap"})
	if criteria.HasPrice {
		t.Errorf("malformed price was accepted: %d-%d", criteria.MinPrice, criteria.MaxPrice)
	}
}
