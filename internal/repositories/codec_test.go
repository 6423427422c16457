package repositories

import (
	"testing"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

func TestDecodeCartRecordRoundTrip(t *testing.T) {
	cart := domain.Cart{
		ID: "cart-1",
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Gym Weight", UnitPrice: 24000, Quantity: 2},
			{ProductID: "p2", Name: "Cloud Nike Shoes", UnitPrice: 48000, Quantity: 1},
		},
	}

	raw, err := EncodeCartRecord(cart)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	decoded := DecodeCartRecord("cart-1", raw)
	if len(decoded.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(decoded.Lines))
	}
	if decoded.Lines[0] != cart.Lines[0] || decoded.Lines[1] != cart.Lines[1] {
		t.Fatalf("expected lines preserved, got %+v", decoded.Lines)
	}
}

func TestDecodeCartRecordMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "{{{"},
		{"non-array", `{"id":"p1"}`},
		{"number", `42`},
		{"truncated", `[{"id":"p1","name":"Gym We`},
		{"wrong element type", `["p1","p2"]`},
		{"decimal price", `[{"id":"p1","name":"x","price":240.5,"qty":1}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart := DecodeCartRecord("cart-1", []byte(tc.raw))
			if cart.ID != "cart-1" {
				t.Fatalf("expected cart id preserved, got %q", cart.ID)
			}
			if cart.Lines == nil {
				t.Fatalf("expected non-nil lines")
			}
			if len(cart.Lines) != 0 {
				t.Fatalf("expected empty cart, got %+v", cart.Lines)
			}
		})
	}
}

func TestDecodeCartRecordDefaultsFields(t *testing.T) {
	raw := `[{"id":"p1","name":"Gym Weight"},{"name":"no id"},{"id":"p2","price":-5,"qty":0}]`
	cart := DecodeCartRecord("cart-1", []byte(raw))

	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
	}
	if cart.Lines[0].UnitPrice != 0 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("expected defaulted price/qty, got %+v", cart.Lines[0])
	}
	if cart.Lines[1].UnitPrice != 0 || cart.Lines[1].Quantity != 1 {
		t.Fatalf("expected negative price and zero qty coerced, got %+v", cart.Lines[1])
	}
}

func TestDecodeSubscribersDedup(t *testing.T) {
	raw := `["foo@bar.com"," foo@bar.com ","FOO@BAR.COM","baz@qux.io",""]`
	subs := DecodeSubscribers([]byte(raw))

	if len(subs) != 2 {
		t.Fatalf("expected 2 subscribers, got %v", subs)
	}
	if subs[0] != "foo@bar.com" || subs[1] != "baz@qux.io" {
		t.Fatalf("expected first occurrence kept in order, got %v", subs)
	}
}

func TestDecodeSubscribersMalformed(t *testing.T) {
	for _, raw := range []string{"", "nope", `{"a":1}`, `[1,2,3]`} {
		subs := DecodeSubscribers([]byte(raw))
		if subs == nil || len(subs) != 0 {
			t.Fatalf("expected empty list for %q, got %v", raw, subs)
		}
	}
}
