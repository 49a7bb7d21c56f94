package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuaforsistemi/salon-scheduler/internal/audit"
	domain "github.com/kuaforsistemi/salon-scheduler/internal/domain/schedule"
	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookingInput struct {
	UserID    uint
	SalonID   uint
	StaffID   uint
	ServiceID uint

	StartTime time.Time
	EndTime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Sink,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute converts a validated request into a confirmed appointment in
// a single write. Concurrent attempts for the same (staff, start) pair
// are serialized by the store's unique slot index; the loser surfaces
// slot_already_taken and must pick another slot.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in BookingInput,
) (*models.Appointment, error) {

	if in.UserID == 0 || in.SalonID == 0 || in.StaffID == 0 || in.ServiceID == 0 ||
		in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	if !in.StartTime.Before(in.EndTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInterval)
	}

	ap := &models.Appointment{
		Reference: uuid.NewString(),
		UserID:    in.UserID,
		SalonID:   in.SalonID,
		StaffID:   in.StaffID,
		ServiceID: in.ServiceID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
