package memory

import (
	"context"
	"testing"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

func TestCartRepositoryGetMissingReturnsEmpty(t *testing.T) {
	repo := NewCartRepository(NewStore())

	cart, err := repo.Get(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != "cart-1" {
		t.Fatalf("expected cart id cart-1, got %q", cart.ID)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Lines)
	}
}

func TestCartRepositorySaveThenGet(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	cart := domain.Cart{
		ID: "cart-1",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Gym Weight", UnitPrice: 24000, Quantity: 2},
		},
	}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := repo.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0] != cart.Lines[0] {
		t.Fatalf("expected persisted line back, got %+v", loaded.Lines)
	}
}

func TestCartRepositoryMalformedRecordDecodesEmpty(t *testing.T) {
	store := NewStore()
	store.Seed("cart:cart-1", []byte(`{"not":"an array"}`))
	repo := NewCartRepository(store)

	cart, err := repo.Get(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart for malformed record, got %+v", cart.Lines)
	}
}

func TestCartRepositoryDelete(t *testing.T) {
	repo := NewCartRepository(NewStore())
	ctx := context.Background()

	cart := domain.Cart{ID: "cart-1", Lines: []domain.CartLine{{ProductID: "p1", Quantity: 1}}}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := repo.Delete(ctx, "cart-1"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	loaded, err := repo.Get(ctx, "cart-1")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if len(loaded.Lines) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", loaded.Lines)
	}

	// deleting an absent record is a no-op
	if err := repo.Delete(ctx, "cart-404"); err != nil {
		t.Fatalf("unexpected error deleting absent cart: %v", err)
	}
}

func TestSubscriberRepositoryAddDedupes(t *testing.T) {
	repo := NewSubscriberRepository(NewStore())
	ctx := context.Background()

	added, err := repo.Add(ctx, "foo@bar.com")
	if err != nil || !added {
		t.Fatalf("expected first add to succeed, added=%v err=%v", added, err)
	}
	added, err = repo.Add(ctx, " FOO@bar.com ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatalf("expected duplicate add to be absorbed")
	}

	subs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(subs) != 1 || subs[0] != "foo@bar.com" {
		t.Fatalf("expected single subscriber, got %v", subs)
	}
}

func TestSubscriberRepositoryMalformedRecord(t *testing.T) {
	store := NewStore()
	store.Seed("newsletter:subscribers", []byte("garbage"))
	repo := NewSubscriberRepository(store)

	subs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected empty list for malformed record, got %v", subs)
	}
}
