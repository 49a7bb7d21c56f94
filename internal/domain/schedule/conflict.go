package schedule

import "time"

// BookedInterval is an occupied stretch of a staff member's day, read
// from the store (pending/confirmed only).
type BookedInterval struct {
	Start time.Time
	End   time.Time
}

// FilterAvailable drops every candidate whose start instant exactly
// equals an existing booking's start. This is deliberately narrow: a
// booking that starts mid-slot, or runs past later candidate starts,
// does not hide those candidates. Output order matches input order.
func FilterAvailable(candidates []time.Time, booked []BookedInterval) []time.Time {
	available := make([]time.Time, 0, len(candidates))

	for _, slot := range candidates {
		taken := false
		for _, b := range booked {
			if slot.Equal(b.Start) {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, slot)
		}
	}

	return available
}
