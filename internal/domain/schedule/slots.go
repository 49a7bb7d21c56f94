package schedule

import (
	"time"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
)

// SlotInterval is the fixed step between candidate slot starts. It is
// independent of the service duration: slots are anchored to interval
// multiples from the opening time, never compacted.
const SlotInterval = 30 * time.Minute

// GenerateCandidateSlots scans the working window of date's weekday and
// returns the candidate start instants, ascending. The scan stops as
// soon as a candidate's end would reach or pass the closing time, so a
// slot may not run exactly up to close. A weekday with no window is a
// normal empty result, not an error.
func GenerateCandidateSlots(
	tpl WeekTemplate,
	date time.Time,
	durationMinutes int,
) ([]time.Time, error) {

	if durationMinutes <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidServiceDuration)
	}

	win, ok := tpl[ISOWeekday(date)]
	if !ok {
		return []time.Time{}, nil
	}

	open, err := atClock(date, win.Start)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidScheduleFormat)
	}
	closing, err := atClock(date, win.End)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidScheduleFormat)
	}

	duration := time.Duration(durationMinutes) * time.Minute

	slots := []time.Time{}
	for cur := open; cur.Before(closing); cur = cur.Add(SlotInterval) {
		if !cur.Add(duration).Before(closing) {
			break
		}
		slots = append(slots, cur)
	}

	return slots, nil
}
