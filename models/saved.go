package models

import (
	"time"
)

// SavedExpiry is how long a bookmark stays live before the read path evicts it.
const SavedExpiry = 48 * time.Hour

// SavedEntry bookmarks a property for a user. Entries are not swept by any
// background job; reads evict anything past SavedExpiry.
type SavedEntry struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	PropertyID string    `bson:"propertyId" json:"propertyId"`
	SavedAt    time.Time `bson:"savedAt" json:"savedAt"`
}

// Live reports whether the entry is still valid at the given instant.
func (s SavedEntry) Live(now time.Time) bool {
	return now.Sub(s.SavedAt) < SavedExpiry
}

// PartitionSaved splits entries into still-valid property ids and expired
// ones due for eviction, preserving order.
func PartitionSaved(entries []SavedEntry, now time.Time) (valid, expired []string) {
	for _, e := range entries {
		if e.Live(now) {
			valid = append(valid, e.PropertyID)
		} else {
			expired = append(expired, e.PropertyID)
		}
	}
	return valid, expired
}

// View records that a user has paid to open a property's detail page.
// A repeat view of the same property is free.
type View struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	PropertyID string    `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
