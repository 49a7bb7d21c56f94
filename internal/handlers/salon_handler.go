package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

// SalonHandler serves the public lookups the booking page needs.
type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

func (h *SalonHandler) ListStaff(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Invalid salon id.")
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("salon_id = ?", uint(salonID)).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not list staff.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *SalonHandler) ListServices(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Invalid salon id.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = true", uint(salonID)).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}
