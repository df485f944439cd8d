package models

import (
	"strconv"
	"strings"
	"time"
)

// PropertyDoc is the raw store document. Field types are deliberately loose:
// records come from the intake process and older ones carry stringly-typed
// rent and coordinate fields. Normalize is the only place that deals with
// that; everything downstream works with Listing.
type PropertyDoc struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Name        string      `bson:"name" json:"name"`
	City        string      `bson:"city" json:"city"`
	Town        string      `bson:"town" json:"town"`
	Rent        interface{} `bson:"rent" json:"rent"`
	Bedroom     string      `bson:"bedroom" json:"bedroom"`
	Type        string      `bson:"type" json:"type"`
	Image1URL   string      `bson:"image1Url" json:"image1Url"`
	Image2URL   string      `bson:"image2Url" json:"image2Url"`
	Image3URL   string      `bson:"image3Url" json:"image3Url"`
	Image4URL   string      `bson:"image4Url" json:"image4Url"`
	Amenities   []string    `bson:"amenities" json:"amenities"`
	Furnished   string      `bson:"furnished" json:"furnished"`
	Vacancies   interface{} `bson:"vacancies" json:"vacancies"`
	Lat         interface{} `bson:"lat" json:"lat"`
	Lng         interface{} `bson:"lng" json:"lng"`
	Description string      `bson:"description" json:"description"`
	AgentName   string      `bson:"names" json:"names"`
	AgentPhone  string      `bson:"phone" json:"phone"`
	UserID      string      `bson:"userId" json:"userId"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Listing is the normalized view served to clients and fed to the filter
// pipeline. Every field is typed and defaulted exactly once, in Normalize.
type Listing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Town        string   `json:"town"`
	Rent        int      `json:"rent"`
	Bedroom     string   `json:"bedroom"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Furnished   string   `json:"furnished"`
	Available   bool     `json:"available"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Description string   `json:"description"`
	AgentName   string   `json:"agentName"`
	AgentPhone  string   `json:"agentPhone"`
	OwnerID     string   `json:"ownerId"`
}

func (p PropertyDoc) Normalize() Listing {
	name := p.Name
	if name == "" {
		name = "Untitled Property"
	}
	town := p.Town
	if town == "" {
		town = "Unknown"
	}
	bedroom := p.Bedroom
	if bedroom == "" {
		bedroom = "Unknown"
	}

	images := make([]string, 0, 4)
	for _, u := range []string{p.Image1URL, p.Image2URL, p.Image3URL, p.Image4URL} {
		if u != "" {
			images = append(images, u)
		}
	}

	// Furnished state is surfaced as a leading amenity as well.
	amenities := make([]string, 0, len(p.Amenities)+1)
	if p.Furnished != "" {
		amenities = append(amenities, p.Furnished)
	}
	for _, a := range p.Amenities {
		if a != "" {
			amenities = append(amenities, a)
		}
	}

	return Listing{
		ID:          p.ID,
		Name:        name,
		Town:        town,
		Rent:        ParseRent(p.Rent),
		Bedroom:     bedroom,
		Images:      images,
		Amenities:   amenities,
		Furnished:   p.Furnished,
		Available:   IsTruthy(p.Vacancies),
		Lat:         parseCoord(p.Lat),
		Lng:         parseCoord(p.Lng),
		Description: p.Description,
		AgentName:   p.AgentName,
		AgentPhone:  p.AgentPhone,
		OwnerID:     p.UserID,
	}
}

// ParseRent accepts the mixed numeric/string rent values found in the store.
// A string is parsed from its first digit run, so "12,500 KSh" reads as 12.
// Anything unparseable is 0.
func ParseRent(v interface{}) int {
	switch r := v.(type) {
	case int:
		return r
	case int32:
		return int(r)
	case int64:
		return int(r)
	case float64:
		return int(r)
	case string:
		s := strings.TrimSpace(r)
		start := -1
		end := len(s)
		for i, c := range s {
			if c >= '0' && c <= '9' {
				if start < 0 {
					start = i
				}
			} else if start >= 0 {
				end = i
				break
			}
		}
		if start < 0 {
			return 0
		}
		n, err := strconv.Atoi(s[start:end])
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// IsTruthy applies the store's loose truthiness to a field: absent values,
// empty strings and zero numbers mean "no", everything else means "yes".
// A record with no vacancies value is treated as occupied.
func IsTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

func parseCoord(v interface{}) float64 {
	switch c := v.(type) {
	case float64:
		return c
	case int:
		return float64(c)
	case int32:
		return float64(c)
	case int64:
		return float64(c)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
