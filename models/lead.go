package models

import (
	"time"
)

// Lead is a property-owner's request to have a listing put up. Intake is
// manual: the team follows up by phone, so only name and phone are required.
type Lead struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	HouseType string    `bson:"houseType,omitempty" json:"houseType,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type LeadRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	HouseType string `json:"houseType"`
	Notes     string `json:"notes"`
}
