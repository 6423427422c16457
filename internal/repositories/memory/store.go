// Package memory provides in-process store adapters used when no Redis is
// configured and as deterministic test doubles. Records are kept in their
// serialized form so the tolerant decode path matches the Redis adapters.
package memory

import (
	"context"
	"strings"
	"sync"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

// Store backs both repositories with a mutex-guarded byte map.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Seed injects a raw record value, primarily for tests exercising the
// tolerant decode contract.
func (s *Store) Seed(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), raw...)
}

func (s *Store) get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.records[key]
	return raw, ok
}

func (s *Store) set(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = raw
}

func (s *Store) delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

const (
	cartKeyPrefix = "cart:"
	subscriberKey = "newsletter:subscribers"
)

// CartRepository adapts the store to repositories.CartRepository.
type CartRepository struct {
	store *Store
}

// NewCartRepository constructs a cart repository over the shared store.
func NewCartRepository(store *Store) *CartRepository {
	if store == nil {
		store = NewStore()
	}
	return &CartRepository{store: store}
}

// Get loads the cart; missing or malformed records decode to an empty cart.
func (r *CartRepository) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	id := strings.TrimSpace(cartID)
	raw, ok := r.store.get(cartKeyPrefix + id)
	if !ok {
		return domain.Cart{ID: id, Lines: []domain.CartLine{}}, nil
	}
	return repositories.DecodeCartRecord(id, raw), nil
}

// Save serializes and stores the cart record.
func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := repositories.EncodeCartRecord(cart)
	if err != nil {
		return repositories.NewUnavailable("memory cart repository: save", err)
	}
	r.store.set(cartKeyPrefix+strings.TrimSpace(cart.ID), raw)
	return nil
}

// Delete erases the cart record.
func (r *CartRepository) Delete(ctx context.Context, cartID string) error {
	r.store.delete(cartKeyPrefix + strings.TrimSpace(cartID))
	return nil
}

// SubscriberRepository adapts the store to repositories.SubscriberRepository.
type SubscriberRepository struct {
	store *Store
}

// NewSubscriberRepository constructs a subscriber repository over the store.
func NewSubscriberRepository(store *Store) *SubscriberRepository {
	if store == nil {
		store = NewStore()
	}
	return &SubscriberRepository{store: store}
}

// List returns the deduplicated subscriber list.
func (r *SubscriberRepository) List(ctx context.Context) ([]string, error) {
	raw, ok := r.store.get(subscriberKey)
	if !ok {
		return []string{}, nil
	}
	return repositories.DecodeSubscribers(raw), nil
}

// Add inserts the email unless an equal entry already exists.
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
		return false, repositories.NewUnavailable("memory subscriber repository: add", err)
	}
	r.store.set(subscriberKey, raw)
	return true, nil
}

var (
	_ repositories.CartRepository       = (*CartRepository)(nil)
	_ repositories.SubscriberRepository = (*SubscriberRepository)(nil)
)
