package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/kuaforsistemi/salon-scheduler/internal/domain/schedule"
	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	staffID uint,
) (domain.WeekTemplate, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
		}
		return nil, err
	}

	return domain.ParseWeekTemplate([]byte(staff.WorkingHours))
}

func (r *ScheduleGormRepository) ListBookingsForDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.BookedInterval, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"staff_id = ? AND status IN ('pending','confirmed') AND start_time >= ? AND start_time < ?",
			staffID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	booked := make([]domain.BookedInterval, 0, len(aps))
	for _, ap := range aps {
		booked = append(booked, domain.BookedInterval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}

	return booked, nil
}

func (r *ScheduleGormRepository) GetServiceDuration(
	ctx context.Context,
	serviceID uint,
) (int, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return 0, err
	}

	return svc.DurationMinutes, nil
}

// --------------------------------------------------
// Booking commit
// --------------------------------------------------

// InsertAppointment performs the single-phase commit. The partial
// unique index on (staff_id, start_time) is the exclusivity guard:
// of two concurrent inserts for the same slot exactly one lands, the
// other gets a uniqueness violation translated here.
func (r *ScheduleGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyTaken)
		}
		return err
	}
	return nil
}

// gorm's postgres driver runs on pgx, so uniqueness violations unwrap
// to *pgconn.PgError with SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Service").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
