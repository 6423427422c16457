package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

const subscriberKey = "newsletter:subscribers"

// SubscriberRepository persists the newsletter subscriber list as a single
// JSON record. Concurrent writers follow last-write-wins; the storefront
// accepts that trade the same way carts do.
type SubscriberRepository struct {
	client *redis.Client
}

// NewSubscriberRepository constructs a Redis-backed subscriber repository.
func NewSubscriberRepository(client *redis.Client) (*SubscriberRepository, error) {
	if client == nil {
		return nil, errors.New("subscriber repository requires redis client")
	}
	return &SubscriberRepository{client: client}, nil
}

// List returns the deduplicated subscriber list; a missing or malformed
// record yields an empty list.
func (r *SubscriberRepository) List(ctx context.Context) ([]string, error) {
	raw, err := r.client.Get(ctx, subscriberKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, repositories.NewUnavailable("subscriber repository: list", err)
	}
	return repositories.DecodeSubscribers(raw), nil
}

// Add inserts the email unless an equal entry (case-insensitive) exists.
func (r *SubscriberRepository) Add(ctx context.Context, email string) (bool, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false, nil
	}

	subs, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for _, existing := range subs {
		if strings.EqualFold(existing, trimmed) {
			return false, nil
		}
	}

	raw, err := repositories.EncodeSubscribers(append(subs, trimmed))
	if err != nil {
		return false, repositories.NewUnavailable("subscriber repository: add", err)
	}
	if err := r.client.Set(ctx, subscriberKey, raw, 0).Err(); err != nil {
		return false, repositories.NewUnavailable("subscriber repository: add", err)
	}
	return true, nil
}

var _ repositories.SubscriberRepository = (*SubscriberRepository)(nil)
