package models

import (
	"testing"
	"time"
)

func TestSavedEntryLive(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		savedAt time.Time
		want    bool
	}{
		{"just saved", now, true},
		{"one hour old", now.Add(-time.Hour), true},
		{"just inside the window", now.Add(-SavedExpiry + time.Minute), true},
		{"exactly at the window", now.Add(-SavedExpiry), false},
		{"past the window", now.Add(-49 * time.Hour), false},
	}

	for _, tc := range tests {
		entry := SavedEntry{UserID: "u1", PropertyID: "p1", SavedAt: tc.savedAt}
		if got := entry.Live(now); got != tc.want {
			t.Errorf("%s: Live = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPartitionSaved(t *testing.T) {
	now := time.Now()
	entries := []SavedEntry{
		{PropertyID: "fresh", SavedAt: now.Add(-time.Hour)},
		{PropertyID: "stale", SavedAt: now.Add(-50 * time.Hour)},
		{PropertyID: "edge", SavedAt: now.Add(-SavedExpiry + time.Second)},
	}

	valid, expired := PartitionSaved(entries, now)

	if len(valid) != 2 || valid[0] != "fresh" || valid[1] != "edge" {
		t.Errorf("valid = %v, want [fresh edge]", valid)
	}
	if len(expired) != 1 || expired[0] != "stale" {
		t.Errorf("expired = %v, want [stale]", expired)
	}
}

// A save followed by an immediate read must show the id; the same entries
// read after the window has passed must show it expired instead.
func TestSaveThenListAcrossExpiry(t *testing.T) {
	savedAt := time.Now()
	entries := []SavedEntry{{PropertyID: "p9", SavedAt: savedAt}}

	valid, expired := PartitionSaved(entries, savedAt)
	if len(valid) != 1 || valid[0] != "p9" || len(expired) != 0 {
		t.Fatalf("immediately after save: valid=%v expired=%v", valid, expired)
	}

	later := savedAt.Add(SavedExpiry + time.Minute)
	valid, expired = PartitionSaved(entries, later)
	if len(valid) != 0 {
		t.Errorf("id still listed after expiry: %v", valid)
	}
	if len(expired) != 1 || expired[0] != "p9" {
		t.Errorf("expired id not scheduled for eviction: %v", expired)
	}
}
