package schedule

import (
	"testing"
	"time"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
)

// 2026-01-05 is a Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func mondayTemplate(start, end string) WeekTemplate {
	return WeekTemplate{1: {Start: start, End: end}}
}

func TestGenerateCandidateSlots_FullDayScenario(t *testing.T) {
	// 09:00-17:00, 45-minute service: slots every 30 minutes, last one
	// at 16:00 (16:30+45 would pass closing time).
	slots, err := GenerateCandidateSlots(mondayTemplate("09:00", "17:00"), monday, 45)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}

	if len(slots) != 15 {
		t.Fatalf("slot count = %d, want 15", len(slots))
	}
	if got := slots[0].Format("15:04"); got != "09:00" {
		t.Fatalf("first slot = %s, want 09:00", got)
	}
	if got := slots[len(slots)-1].Format("15:04"); got != "16:00" {
		t.Fatalf("last slot = %s, want 16:00", got)
	}
}

func TestGenerateCandidateSlots_SlotMayNotEndExactlyAtClose(t *testing.T) {
	// 30-minute service, closing 10:00: the 09:30 slot would end
	// exactly at close and must not be emitted.
	slots, err := GenerateCandidateSlots(mondayTemplate("09:00", "10:00"), monday, 30)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("slot count = %d, want 1", len(slots))
	}
	if got := slots[0].Format("15:04"); got != "09:00" {
		t.Fatalf("slot = %s, want 09:00", got)
	}
}

func TestGenerateCandidateSlots_SlotsAnchoredToInterval(t *testing.T) {
	slots, err := GenerateCandidateSlots(mondayTemplate("09:00", "17:00"), monday, 45)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}

	start := slots[0]
	for i, s := range slots {
		if s.Sub(start)%SlotInterval != 0 {
			t.Fatalf("slot %d (%s) not anchored to the %s interval", i, s.Format("15:04"), SlotInterval)
		}
		if i > 0 && !s.After(slots[i-1]) {
			t.Fatalf("slots not strictly ascending at index %d", i)
		}
	}
}

func TestGenerateCandidateSlots_DayOffIsEmptyNotError(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	slots, err := GenerateCandidateSlots(mondayTemplate("09:00", "17:00"), tuesday, 30)
	if err != nil {
		t.Fatalf("expected no error for a day off, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slot count = %d, want 0", len(slots))
	}
}

func TestGenerateCandidateSlots_UnparsableWindow(t *testing.T) {
	cases := []WeekTemplate{
		mondayTemplate("nine", "17:00"),
		mondayTemplate("09:00", ""),
		mondayTemplate("", "17:00"),
	}

	for _, tpl := range cases {
		_, err := GenerateCandidateSlots(tpl, monday, 30)
		if !httperr.IsBusiness(err, httperr.CodeInvalidScheduleFormat) {
			t.Fatalf("template %v: error = %v, want %s", tpl, err, httperr.CodeInvalidScheduleFormat)
		}
	}
}

func TestGenerateCandidateSlots_NonPositiveDuration(t *testing.T) {
	for _, dur := range []int{0, -15} {
		_, err := GenerateCandidateSlots(mondayTemplate("09:00", "17:00"), monday, dur)
		if !httperr.IsBusiness(err, httperr.CodeInvalidServiceDuration) {
			t.Fatalf("duration %d: error = %v, want %s", dur, err, httperr.CodeInvalidServiceDuration)
		}
	}
}

func TestGenerateCandidateSlots_InvertedWindowIsEmpty(t *testing.T) {
	slots, err := GenerateCandidateSlots(mondayTemplate("17:00", "09:00"), monday, 30)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slot count = %d, want 0", len(slots))
	}

	slots, err = GenerateCandidateSlots(mondayTemplate("09:00", "09:00"), monday, 30)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slot count = %d, want 0 for zero-width window", len(slots))
	}
}

func TestGenerateCandidateSlots_DurationLongerThanDay(t *testing.T) {
	slots, err := GenerateCandidateSlots(mondayTemplate("09:00", "10:00"), monday, 90)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slot count = %d, want 0", len(slots))
	}
}

func TestGenerateCandidateSlots_FreshSlicePerCall(t *testing.T) {
	tpl := mondayTemplate("09:00", "11:00")

	first, err := GenerateCandidateSlots(tpl, monday, 30)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}
	second, err := GenerateCandidateSlots(tpl, monday, 30)
	if err != nil {
		t.Fatalf("GenerateCandidateSlots error: %v", err)
	}

	first[0] = first[0].Add(time.Hour)
	if second[0].Equal(first[0]) {
		t.Fatalf("calls share backing storage")
	}
}

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(monday); got != 1 {
		t.Fatalf("ISOWeekday(Monday) = %d, want 1", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := ISOWeekday(sunday); got != 7 {
		t.Fatalf("ISOWeekday(Sunday) = %d, want 7", got)
	}
}

func TestParseWeekTemplate(t *testing.T) {
	tpl, err := ParseWeekTemplate([]byte(`{"1":{"start":"09:00","end":"17:00"},"6":{"start":"10:00","end":"14:00"}}`))
	if err != nil {
		t.Fatalf("ParseWeekTemplate error: %v", err)
	}
	if len(tpl) != 2 {
		t.Fatalf("template size = %d, want 2", len(tpl))
	}
	if tpl[1].Start != "09:00" || tpl[6].End != "14:00" {
		t.Fatalf("unexpected template contents: %v", tpl)
	}

	if _, err := ParseWeekTemplate([]byte(`{broken`)); !httperr.IsBusiness(err, httperr.CodeInvalidScheduleFormat) {
		t.Fatalf("error = %v, want %s", err, httperr.CodeInvalidScheduleFormat)
	}

	empty, err := ParseWeekTemplate(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty column: tpl=%v err=%v, want empty template and nil error", empty, err)
	}
}
