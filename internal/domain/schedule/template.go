package schedule

import (
	"encoding/json"
	"time"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
)

// DayWindow is one weekday's opening window, clock times as "HH:MM".
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekTemplate maps ISO weekdays (1=Monday .. 7=Sunday) to opening
// windows. A missing weekday means the staff member does not work
// that day.
type WeekTemplate map[int]DayWindow

// ParseWeekTemplate decodes the JSON column stored on the staff row.
func ParseWeekTemplate(raw []byte) (WeekTemplate, error) {
	if len(raw) == 0 {
		return WeekTemplate{}, nil
	}

	var tpl WeekTemplate
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidScheduleFormat)
	}
	return tpl, nil
}

// ISOWeekday converts Go's Sunday-based weekday to ISO numbering.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// atClock anchors a "HH:MM" clock time onto the given calendar date,
// in the date's location.
func atClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
