package services

import (
	"context"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

// CartService exposes the cart state machine: every operation loads the
// persisted cart, mutates it, and writes it back before returning.
type CartService interface {
	// GetCart materializes the cart for the session; absent or malformed
	// persisted state yields an empty cart.
	GetCart(ctx context.Context, cartID string) (domain.Cart, error)
	// AddItem accumulates quantity on an existing line or appends a new one.
	AddItem(ctx context.Context, cmd AddItemCommand) (domain.Cart, error)
	// RemoveItem drops every line matching the product id; unknown ids are a
	// no-op.
	RemoveItem(ctx context.Context, cartID, productID string) (domain.Cart, error)
	// ClearCart erases the cart record when confirmed; otherwise it leaves
	// state untouched and reports false.
	ClearCart(ctx context.Context, cartID string, confirmed bool) (bool, error)
}

// AddItemCommand carries the payload of an add-to-cart interaction. Quantity
// below one defaults to 1 and a negative unit price is coerced to 0; only a
// missing product id or name rejects the command.
type AddItemCommand struct {
	CartID    string
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int
}

// SubscriberService handles newsletter signups.
type SubscriberService interface {
	// Subscribe validates the email and inserts it into the deduplicated
	// subscriber set, reporting whether it was newly added.
	Subscribe(ctx context.Context, email string) (bool, error)
	// Subscribers lists the current subscriber set.
	Subscribers(ctx context.Context) ([]string, error)
}

// CatalogService resolves read-only products for rendering. A miss is a
// displayable state, not an error.
type CatalogService interface {
	Products() []CatalogProduct
	Product(id string) (CatalogProduct, bool)
}

// CatalogProduct pairs the raw product with its sanitized HTML description.
type CatalogProduct struct {
	domain.Product
	DescriptionHTML string
}
