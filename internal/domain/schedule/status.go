package schedule

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Occupies reports whether an appointment in this status blocks its
// time slot. Cancelled rows free the slot.
func Occupies(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// InitialStatus is what the committer writes. Booking is single-phase:
// no pending hold is ever produced here, the value exists for
// store-level compatibility.
func InitialStatus() Status {
	return StatusConfirmed
}
