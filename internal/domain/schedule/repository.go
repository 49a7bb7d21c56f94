package schedule

import (
	"context"
	"time"

	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Availability reads --------
	GetWorkingHours(
		ctx context.Context,
		staffID uint,
	) (WeekTemplate, error)

	ListBookingsForDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]BookedInterval, error)

	GetServiceDuration(
		ctx context.Context,
		serviceID uint,
	) (int, error)

	// -------- Booking commit --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
