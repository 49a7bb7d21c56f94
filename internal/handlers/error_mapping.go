package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kuaforsistemi/salon-scheduler/internal/httperr"
)

// writeBusinessError maps business error codes onto HTTP statuses:
// not-found lookups → 404, the booking race → 409, every other
// validation code → 400, anything non-business → 500.
func writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "":
		httperr.Internal(c, "internal_error", "Unexpected error.")
	case httperr.CodeStaffNotFound:
		httperr.NotFound(c, code, "Staff member not found.")
	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, code, "Service not found.")
	case httperr.CodeSlotAlreadyTaken:
		httperr.Conflict(c, code, "That slot was just booked, pick another one.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}
