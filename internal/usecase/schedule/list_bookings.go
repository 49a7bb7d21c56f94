package schedule

import (
	"context"

	domain "github.com/kuaforsistemi/salon-scheduler/internal/domain/schedule"
	"github.com/kuaforsistemi/salon-scheduler/internal/dto"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, toListDTO(ap))
	}
	return out, nil
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:          ap.ID,
		Reference:   ap.Reference,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Status:      ap.Status,
		StaffName:   ap.Staff.Name,
		ServiceName: ap.Service.Name,
	}
}
