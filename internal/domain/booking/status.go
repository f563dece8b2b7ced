package booking

import "github.com/autoservehq/autoserve-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanDecide reports whether a provider may still accept or reject.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete reports whether a booking can be marked completed.
func CanComplete(current Status) error {
	if current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// Blocking reports whether a booking in this status holds its slot.
// Rejected bookings free the slot again.
func Blocking(current Status) bool {
	return current != StatusRejected
}
