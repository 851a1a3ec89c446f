package dto

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentListItem is the calendar row the staff dashboard renders.
type AppointmentListItem struct {
	ID          uuid.UUID `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StaffName   string    `json:"staff_name,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// ClientAppointmentItem is one row of a client's booking history.
type ClientAppointmentItem struct {
	ID          uuid.UUID `json:"id"`
	SalonName   string    `json:"salon_name"`
	ServiceName string    `json:"service_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}
