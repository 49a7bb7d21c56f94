package httperr

import "errors"

// Fixed business error codes. All are terminal for the triggering
// call; only CodeSlotAlreadyTaken is expected under normal concurrent
// load and signals the caller to re-fetch availability and retry.
const (
	CodeInvalidDateFormat      = "invalid_date_format"
	CodeInvalidScheduleFormat  = "invalid_schedule_format"
	CodeInvalidServiceDuration = "invalid_service_duration"
	CodeStaffNotFound          = "staff_not_found"
	CodeServiceNotFound        = "service_not_found"
	CodeMissingField           = "missing_field"
	CodeInvalidInterval        = "invalid_interval"
	CodeSlotAlreadyTaken       = "slot_already_taken"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" when err is not a business
// error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
