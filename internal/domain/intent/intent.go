package intent

import (
	"context"
	"time"
)

// TTL bounds how long a captured booking intent may wait for the visitor
// to finish signing up or logging in.
const TTL = time.Hour

// PendingBooking is the slot selection an unauthenticated visitor made on
// the landing page. Names are human-readable and resolved to ids only at
// reconcile time.
type PendingBooking struct {
	ServiceName    string    `json:"service_name"`
	SalonName      string    `json:"salon_name"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	ClientName     string    `json:"client_name"`
	ClientPhone    string    `json:"client_phone"`
	AdvanceBooking bool      `json:"advance_booking"`
	CreatedAt      time.Time `json:"created_at"`
}

// Expired reports whether the intent is older than the TTL.
func (p PendingBooking) Expired(now time.Time) bool {
	return now.Sub(p.CreatedAt) > TTL
}

// Store keeps at most one pending booking per visitor key.
type Store interface {
	// Get returns (nil, nil) when no intent is stored under the key.
	Get(ctx context.Context, visitorKey string) (*PendingBooking, error)

	Set(ctx context.Context, visitorKey string, p *PendingBooking) error

	Remove(ctx context.Context, visitorKey string) error
}
