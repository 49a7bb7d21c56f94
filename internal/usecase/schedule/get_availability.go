package schedule

import (
	"context"
	"time"

	domain "github.com/kuaforsistemi/salon-scheduler/internal/domain/schedule"
	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
)

type AvailabilityInput struct {
	StaffID   uint
	ServiceID uint
	Date      string // YYYY-MM-DD
	Location  *time.Location
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the bookable slot starts for one staff member on
// one calendar day, as ordered "HH:MM" strings. An empty list is a
// valid result, never an error.
//
// The three store reads are not a snapshot; a booking landing between
// them is caught by the commit-time uniqueness guard, not here.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	// Date must be a real calendar date before any store access.
	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateFormat)
	}

	tpl, err := uc.repo.GetWorkingHours(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	duration, err := uc.repo.GetServiceDuration(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookingsForDay(
		ctx,
		in.StaffID,
		date,
		date.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	candidates, err := domain.GenerateCandidateSlots(tpl, date, duration)
	if err != nil {
		return nil, err
	}

	available := domain.FilterAvailable(candidates, booked)

	slots := make([]string, 0, len(available))
	for _, s := range available {
		slots = append(slots, s.Format("15:04"))
	}

	return slots, nil
}
