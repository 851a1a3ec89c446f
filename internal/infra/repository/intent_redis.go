package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/intent"
)

const intentKeyPrefix = "booking_intent:"

// IntentRedisStore keeps pending bookings under booking_intent:<key>,
// bounded by the domain TTL so Redis drops whatever no replay ever reads.
type IntentRedisStore struct {
	client *redis.Client
}

func NewIntentRedisStore(client *redis.Client) *IntentRedisStore {
	return &IntentRedisStore{client: client}
}

func (s *IntentRedisStore) Get(
	ctx context.Context,
	visitorKey string,
) (*intent.PendingBooking, error) {

	raw, err := s.client.Get(ctx, intentKeyPrefix+visitorKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pending intent.PendingBooking
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (s *IntentRedisStore) Set(
	ctx context.Context,
	visitorKey string,
	pending *intent.PendingBooking,
) error {

	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, intentKeyPrefix+visitorKey, raw, intent.TTL).Err()
}

func (s *IntentRedisStore) Remove(
	ctx context.Context,
	visitorKey string,
) error {
	return s.client.Del(ctx, intentKeyPrefix+visitorKey).Err()
}

// Compile-time check
var _ intent.Store = (*IntentRedisStore)(nil)
