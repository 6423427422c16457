package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
	"github.com/GarwanshiJain/ecommerce.repo/internal/repositories"
)

var (
	errCartRepositoryRequired = errors.New("cart service: repository is required")
	errCartClockRequired      = errors.New("cart service: clock is required")
)

// ErrCartInvalidInput indicates the caller supplied invalid input.
var ErrCartInvalidInput = errors.New("cart service: invalid input")

// ErrCartUnavailable indicates the backing store cannot fulfil the request.
var ErrCartUnavailable = errors.New("cart service: unavailable")

// CartServiceDeps wires the repository and ambient dependencies for cart
// operations.
type CartServiceDeps struct {
	Repository repositories.CartRepository
	Clock      func() time.Time
	Logger     func(context.Context, string, map[string]any)
}

type cartService struct {
	repo   repositories.CartRepository
	now    func() time.Time
	logger func(context.Context, string, map[string]any)
}

// NewCartService constructs a CartService enforcing dependency validation.
func NewCartService(deps CartServiceDeps) (CartService, error) {
	if deps.Repository == nil {
		return nil, errCartRepositoryRequired
	}
	if deps.Clock == nil {
		return nil, errCartClockRequired
	}

	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	return &cartService{
		repo:   deps.Repository,
		now:    func() time.Time { return deps.Clock().UTC() },
		logger: logger,
	}, nil
}

// GetCart materializes the latest persisted cart. The cart is never cached
// across operations so each call observes the most recent write.
func (s *cartService) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}

	cart, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Cart{}, s.translateRepoError(ctx, "cart.load_failed", id, err)
	}
	return domain.NormalizeCart(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, cmd AddItemCommand) (domain.Cart, error) {
	id := strings.TrimSpace(cmd.CartID)
	if id == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}

	productID := strings.TrimSpace(cmd.ProductID)
	if productID == "" {
		return domain.Cart{}, fmt.Errorf("%w: product id is required", ErrCartInvalidInput)
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return domain.Cart{}, fmt.Errorf("%w: product name is required", ErrCartInvalidInput)
	}

	// Price and quantity are coerced, never rejected.
	price := cmd.UnitPrice
	if price < 0 {
		price = 0
	}
	qty := cmd.Quantity
	if qty < 1 {
		qty = 1
	}

	cart, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Cart{}, s.translateRepoError(ctx, "cart.load_failed", id, err)
	}
	cart = domain.NormalizeCart(cart)

	lines := domain.CloneLines(cart.Lines)
	matched := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			matched = true
			break
		}
	}
	if !matched {
		lines = append(lines, domain.CartLine{
			ProductID: productID,
			Name:      name,
			UnitPrice: price,
			Quantity:  qty,
		})
	}
	cart.Lines = lines

	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, s.translateRepoError(ctx, "cart.save_failed", id, err)
	}

	s.logger(ctx, "cart.item_added", map[string]any{
		"cartID":    id,
		"productID": productID,
		"quantity":  qty,
		"at":        s.now(),
	})
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, productID string) (domain.Cart, error) {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}
	target := strings.TrimSpace(productID)
	if target == "" {
		return domain.Cart{}, ErrCartInvalidInput
	}

	cart, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Cart{}, s.translateRepoError(ctx, "cart.load_failed", id, err)
	}
	cart = domain.NormalizeCart(cart)

	// Filter every match so a duplicated line in a hand-edited record is
	// cleaned up in one remove.
	lines := make([]domain.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		if line.ProductID == target {
			continue
		}
		lines = append(lines, line)
	}
	cart.Lines = lines

	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, s.translateRepoError(ctx, "cart.save_failed", id, err)
	}

	s.logger(ctx, "cart.item_removed", map[string]any{
		"cartID":    id,
		"productID": target,
	})
	return cart, nil
}

// ClearCart erases the cart record. The confirmation decision is made by the
// caller; a declined clear changes nothing and reports false.
func (s *cartService) ClearCart(ctx context.Context, cartID string, confirmed bool) (bool, error) {
	id := strings.TrimSpace(cartID)
	if id == "" {
		return false, ErrCartInvalidInput
	}
	if !confirmed {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, s.translateRepoError(ctx, "cart.clear_failed", id, err)
	}

	s.logger(ctx, "cart.cleared", map[string]any{"cartID": id, "at": s.now()})
	return true, nil
}

func (s *cartService) translateRepoError(ctx context.Context, event, cartID string, err error) error {
	if err == nil {
		return nil
	}
	s.logger(ctx, event, map[string]any{
		"cartID": cartID,
		"error":  err.Error(),
	})
	if repositories.IsNotFoundError(err) {
		return ErrCartInvalidInput
	}
	return ErrCartUnavailable
}

// Count returns the badge count, the sum of line quantities.
func Count(cart domain.Cart) int {
	total := 0
	for _, line := range cart.Lines {
		total += line.Quantity
	}
	return total
}

// Total returns the grand total in minor units; it is recomputed on every
// render and never stored.
func Total(cart domain.Cart) int64 {
	var total int64
	for _, line := range cart.Lines {
		total += line.LineTotal()
	}
	return total
}
