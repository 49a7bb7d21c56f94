package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
	"github.com/kuaforsistemi/salon-scheduler/internal/httpresp"
	"github.com/kuaforsistemi/salon-scheduler/internal/middleware"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
	"github.com/kuaforsistemi/salon-scheduler/internal/timezone"
	ucSchedule "github.com/kuaforsistemi/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	availability *ucSchedule.GetAvailability
	createUC     *ucSchedule.CreateBooking
	listUC       *ucSchedule.ListUserBookings
}

func NewAppointmentHandler(
	db *gorm.DB,
	availability *ucSchedule.GetAvailability,
	createUC *ucSchedule.CreateBooking,
	listUC *ucSchedule.ListUserBookings,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		availability: availability,
		createUC:     createUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SalonID   uint      `json:"salon_id" binding:"required"`
	StaffID   uint      `json:"staff_id" binding:"required"`
	ServiceID uint      `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffIDStr := c.Query("staffId")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("serviceId")

	if staffIDStr == "" || dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "staffId, date and serviceId are required.")
		return
	}

	staffID, err := strconv.ParseUint(staffIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff id.")
		return
	}
	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	// Slots are anchored in the salon's timezone; the staff row tells
	// us which salon that is. An unknown staff id falls through to the
	// use case, which reports staff_not_found.
	loc := timezone.Location("")
	var staff models.Staff
	if err := h.db.Preload("Salon").First(&staff, uint(staffID)).Error; err == nil {
		loc = timezone.Location(staff.Salon.Timezone)
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		ucSchedule.AvailabilityInput{
			StaffID:   uint(staffID),
			ServiceID: uint(serviceID),
			Date:      dateStr,
			Location:  loc,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "All booking fields are required.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucSchedule.BookingInput{
			UserID:    userID,
			SalonID:   req.SalonID,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         ap.ID,
		"reference":  ap.Reference,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

// ======================================================
// LIST (caller's own bookings)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	items, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, items)
}
