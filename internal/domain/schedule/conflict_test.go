package schedule

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, 1, 5, h, m, 0, 0, time.UTC)
}

func TestFilterAvailable_ExactStartMatchOnly(t *testing.T) {
	candidates := []time.Time{at(9, 30), at(10, 0), at(10, 30), at(11, 0)}

	// Booking 10:00-10:45 spans past the 10:30 candidate, but only the
	// exact-start match at 10:00 is hidden.
	booked := []BookedInterval{{Start: at(10, 0), End: at(10, 45)}}

	got := FilterAvailable(candidates, booked)

	want := []time.Time{at(9, 30), at(10, 30), at(11, 0)}
	if len(got) != len(want) {
		t.Fatalf("available = %d slots, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("slot %d = %s, want %s", i, got[i].Format("15:04"), want[i].Format("15:04"))
		}
	}
}

func TestFilterAvailable_MidSlotBookingDoesNotHide(t *testing.T) {
	candidates := []time.Time{at(10, 0), at(10, 30)}

	// Booking starting mid-slot at 10:15 matches no candidate start.
	booked := []BookedInterval{{Start: at(10, 15), End: at(11, 0)}}

	got := FilterAvailable(candidates, booked)
	if len(got) != 2 {
		t.Fatalf("available = %d slots, want 2", len(got))
	}
}

func TestFilterAvailable_InstantEqualityAcrossZones(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	candidates := []time.Time{at(10, 0)}
	booked := []BookedInterval{{Start: at(10, 0).In(loc), End: at(10, 30).In(loc)}}

	if got := FilterAvailable(candidates, booked); len(got) != 0 {
		t.Fatalf("same instant in another zone must still block the slot, got %v", got)
	}
}

func TestFilterAvailable_NoBookings(t *testing.T) {
	candidates := []time.Time{at(9, 0), at(9, 30)}

	got := FilterAvailable(candidates, nil)
	if len(got) != len(candidates) {
		t.Fatalf("available = %d slots, want %d", len(got), len(candidates))
	}
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	candidates := []time.Time{at(9, 0), at(9, 30), at(10, 0), at(10, 30)}
	booked := []BookedInterval{{Start: at(9, 30), End: at(10, 0)}}

	got := FilterAvailable(candidates, booked)
	for i := 1; i < len(got); i++ {
		if !got[i].After(got[i-1]) {
			t.Fatalf("output not ascending at index %d", i)
		}
	}
}
