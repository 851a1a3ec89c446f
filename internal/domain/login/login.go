package login

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Credentials are checked once at login and never stored; the ticket is
// the only thing that crosses into OTP verification.
const (
	TicketTTL  = 5 * time.Minute
	ConfirmTTL = 24 * time.Hour
)

// Ticket is a single-use handle issued after a successful password check.
// The code travels out of band (logged in development); the id goes back
// to the caller.
type Ticket struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTicket(userID uuid.UUID, now time.Time) Ticket {
	return Ticket{
		ID:        uuid.New().String(),
		UserID:    userID,
		Code:      GenerateCode(6),
		CreatedAt: now,
	}
}

// ConfirmToken is a single-use email-confirmation handle.
type ConfirmToken struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewConfirmToken(userID uuid.UUID, now time.Time) ConfirmToken {
	return ConfirmToken{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
	}
}

// GenerateCode builds a numeric one-time code.
func GenerateCode(length int) string {
	if length <= 0 {
		length = 6
	}

	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// TicketStore holds tickets and confirmation tokens for their TTL.
// Consume removes the record; a second consume returns (nil, nil).
type TicketStore interface {
	SaveTicket(ctx context.Context, t Ticket) error
	ConsumeTicket(ctx context.Context, id string) (*Ticket, error)

	SaveConfirmToken(ctx context.Context, t ConfirmToken) error
	ConsumeConfirmToken(ctx context.Context, token string) (*ConfirmToken, error)
}
