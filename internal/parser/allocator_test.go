package parser

import (
	"testing"

	"japan-travel-timeline/internal/models"
)

// TestRegionForDay verifies the cumulative walk over the ordered allocation
func TestRegionForDay(t *testing.T) {
	regionA := models.Region{ID: "a", Name: "Region A"}
	regionB := models.Region{ID: "b", Name: "Region B"}
	allocation := []models.RegionDays{
		{Region: regionA, Days: 2},
		{Region: regionB, Days: 3},
	}

	cases := []struct {
		dayNumber int
		wantID    string
	}{
		{1, "a"},
		{2, "a"},
		{3, "b"},
		{4, "b"},
		{5, "b"},
	}

	for _, tc := range cases {
		if got := RegionForDay(tc.dayNumber, allocation); got.ID != tc.wantID {
			t.Errorf("RegionForDay(%d) = %s, want %s", tc.dayNumber, got.ID, tc.wantID)
		}
	}
}

// TestRegionForDayPastAllocation verifies the first-region fallback when a
// day number exceeds the sum of all allocations.
func TestRegionForDayPastAllocation(t *testing.T) {
	allocation := []models.RegionDays{
		{Region: models.Region{ID: "a"}, Days: 2},
		{Region: models.Region{ID: "b"}, Days: 1},
	}

	if got := RegionForDay(99, allocation); got.ID != "a" {
		t.Errorf("RegionForDay(99) = %s, want fallback to first region a", got.ID)
	}
}

// TestRegionForDayEmptyAllocation verifies the zero-value guard
func TestRegionForDayEmptyAllocation(t *testing.T) {
	if got := RegionForDay(1, nil); got.ID != "" {
		t.Errorf("RegionForDay with empty allocation = %s, want zero region", got.ID)
	}
}
