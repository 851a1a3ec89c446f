package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/login"
)

const (
	ticketKeyPrefix  = "login_ticket:"
	confirmKeyPrefix = "confirm_token:"
)

// TicketRedisStore holds OTP tickets and email-confirmation tokens. Both
// are consumed with GETDEL, so a replayed request finds nothing.
type TicketRedisStore struct {
	client *redis.Client
}

func NewTicketRedisStore(client *redis.Client) *TicketRedisStore {
	return &TicketRedisStore{client: client}
}

// --------------------------------------------------
// OTP tickets
// --------------------------------------------------

func (s *TicketRedisStore) SaveTicket(ctx context.Context, t login.Ticket) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, ticketKeyPrefix+t.ID, raw, login.TicketTTL).Err()
}

func (s *TicketRedisStore) ConsumeTicket(
	ctx context.Context,
	id string,
) (*login.Ticket, error) {

	raw, err := s.client.GetDel(ctx, ticketKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var t login.Ticket
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// --------------------------------------------------
// Email-confirmation tokens
// --------------------------------------------------

func (s *TicketRedisStore) SaveConfirmToken(ctx context.Context, t login.ConfirmToken) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, confirmKeyPrefix+t.Token, raw, login.ConfirmTTL).Err()
}

func (s *TicketRedisStore) ConsumeConfirmToken(
	ctx context.Context,
	token string,
) (*login.ConfirmToken, error) {

	raw, err := s.client.GetDel(ctx, confirmKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var t login.ConfirmToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Compile-time check
var _ login.TicketStore = (*TicketRedisStore)(nil)
