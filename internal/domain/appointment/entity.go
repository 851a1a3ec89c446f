package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm moves a pending appointment to confirmed. When no staff member
// owns the appointment yet, the acting staff member becomes the owner;
// an existing assignment is never overwritten.
func Confirm(ap *models.Appointment, staffID uuid.UUID) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	if ap.StaffID == nil {
		ap.StaffID = &staffID
	}
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
