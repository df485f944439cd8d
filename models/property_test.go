package models

import (
	"reflect"
	"testing"
)

func TestIsTruthyVacancies(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"absent", nil, false},
		{"empty string", "", false},
		{"zero number", 0, false},
		{"zero float", float64(0), false},
		{"false", false, false},
		{"nonzero number", 2, true},
		{"text", "yes", true},
		{"string zero is still text", "0", true},
		{"true", true, true},
	}

	for _, tc := range tests {
		if got := IsTruthy(tc.v); got != tc.want {
			t.Errorf("%s: IsTruthy(%v) = %v, want %v", tc.name, tc.v, got, tc.want)
		}
	}
}

func TestParseRent(t *testing.T) {
	tests := []struct {
		v    interface{}
		want int
	}{
		{12000, 12000},
		{int64(9500), 9500},
		{float64(7500), 7500},
		{"12000", 12000},
		{"  8500 ", 8500},
		{"KSh 9000", 9000},
		{"12,500", 12}, // parse stops at the first non-digit, as shipped
		{"no rent", 0},
		{"", 0},
		{nil, 0},
		{[]string{"odd"}, 0},
	}

	for _, tc := range tests {
		if got := ParseRent(tc.v); got != tc.want {
			t.Errorf("ParseRent(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	listing := PropertyDoc{ID: "p1"}.Normalize()

	if listing.Name != "Untitled Property" {
		t.Errorf("Name = %q", listing.Name)
	}
	if listing.Town != "Unknown" {
		t.Errorf("Town = %q", listing.Town)
	}
	if listing.Bedroom != "Unknown" {
		t.Errorf("Bedroom = %q", listing.Bedroom)
	}
	if listing.Rent != 0 {
		t.Errorf("Rent = %d", listing.Rent)
	}
	if listing.Available {
		t.Error("missing vacancies must mean occupied")
	}
	if len(listing.Images) != 0 {
		t.Errorf("Images = %v", listing.Images)
	}
	if listing.Lat != 0 || listing.Lng != 0 {
		t.Errorf("coordinates = %v/%v", listing.Lat, listing.Lng)
	}
}

func TestNormalizeMergesFurnishedIntoAmenities(t *testing.T) {
	doc := PropertyDoc{
		ID:        "p2",
		Name:      "Sunrise Court",
		Town:      "Ruiru",
		Rent:      "15000",
		Vacancies: "2",
		Furnished: "Semi-Furnished",
		Amenities: []string{"Wi-Fi", "", "Parking"},
		Image1URL: "https://img/1.jpg",
		Image3URL: "https://img/3.jpg",
		Lat:       "-1.1456",
		Lng:       "36.9621",
	}

	listing := doc.Normalize()

	if !listing.Available {
		t.Error("vacancies \"2\" must mean available")
	}
	if listing.Rent != 15000 {
		t.Errorf("Rent = %d", listing.Rent)
	}
	wantAmenities := []string{"Semi-Furnished", "Wi-Fi", "Parking"}
	if !reflect.DeepEqual(listing.Amenities, wantAmenities) {
		t.Errorf("Amenities = %v, want %v", listing.Amenities, wantAmenities)
	}
	wantImages := []string{"https://img/1.jpg", "https://img/3.jpg"}
	if !reflect.DeepEqual(listing.Images, wantImages) {
		t.Errorf("Images = %v, want %v", listing.Images, wantImages)
	}
	if listing.Lat >= 0 || listing.Lng < 36 {
		t.Errorf("coordinates = %v/%v", listing.Lat, listing.Lng)
	}
}
