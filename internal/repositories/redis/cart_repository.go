package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

const cartKeyPrefix = "cart:"

// defaultCartTTL matches the session cookie lifetime so abandoned carts age
// out with their session.
const defaultCartTTL = 30 * 24 * time.Hour

// CartRepository persists one JSON cart record per session key in Redis.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository constructs a Redis-backed cart repository.
func NewCartRepository(client *redis.Client) (*CartRepository, error) {
	if client == nil {
		return nil, errors.New("cart repository requires redis client")
	}
	return &CartRepository{client: client, ttl: defaultCartTTL}, nil
}

// Get loads the cart record for the given id. A missing or malformed record
// decodes to an empty cart; only backend failures surface as errors.
func (r *CartRepository) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return domain.Cart{Lines: []domain.CartLine{}}, repositories.NewNotFound("cart repository: get", errors.New("cart id is required"))
	}

	raw, err := r.client.Get(ctx, cartKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{ID: id, Lines: []domain.CartLine{}}, nil
	}
	if err != nil {
		return domain.Cart{}, repositories.NewUnavailable("cart repository: get", err)
	}

	return repositories.DecodeCartRecord(id, raw), nil
}

// Save writes the serialized cart record, refreshing its TTL.
func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	id := strings.TrimSpace(cart.ID)
	if id == "" {
		return repositories.NewNotFound("cart repository: save", errors.New("cart id is required"))
	}

	raw, err := repositories.EncodeCartRecord(cart)
	if err != nil {
		return repositories.NewUnavailable("cart repository: save", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+id, raw, r.ttl).Err(); err != nil {
		return repositories.NewUnavailable("cart repository: save", err)
	}
	return nil
}

// Delete erases the cart record. Deleting an absent record is a no-op.
func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return nil
	}
	if err := r.client.Del(ctx, cartKeyPrefix+id).Err(); err != nil {
		return repositories.NewUnavailable("cart repository: delete", err)
	}
	return nil
}

var _ repositories.CartRepository = (*CartRepository)(nil)
