package appointment

import "github.com/Allain-afk/GlamQueue-sub001/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status of every newly created appointment.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition guards
// ===============================

// CanConfirm allows pending → confirmed only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete allows confirmed → completed only.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel allows cancellation from pending or confirmed.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDelete allows the hard delete only once an appointment has reached
// a terminal status. Deletion is not a status transition.
func CanDelete(current Status) error {
	if current != StatusCompleted && current != StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
