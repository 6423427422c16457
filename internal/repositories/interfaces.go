package repositories

import (
	"context"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

// CartRepository owns the durable bytes of one cart record per session.
// Implementations must fail soft on reads: a missing or malformed record
// yields an empty cart, never an error.
type CartRepository interface {
	Get(ctx context.Context, cartID string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}

// SubscriberRepository owns the newsletter subscriber record. Add reports
// whether the email was newly inserted; duplicates are absorbed inside the
// adapter so the persisted list never carries two equal entries.
type SubscriberRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, email string) (bool, error)
}

// RepositoryError wraps low-level persistence failures with the categorisation
// used by services when translating to their sentinel errors.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsUnavailable() bool
}
