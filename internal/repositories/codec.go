package repositories

import (
	"encoding/json"
	"strings"

	domain "github.com/GarwanshiJain/ecommerce.repo/internal/domain"
)

// cartLineRecord is the persisted shape of one cart line. The record value is
// a JSON array of these objects; anything that does not decode to that shape
// is treated as an empty cart.
type cartLineRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// EncodeCartRecord serializes cart lines into the durable record value.
func EncodeCartRecord(cart domain.Cart) ([]byte, error) {
	records := make([]cartLineRecord, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		records = append(records, cartLineRecord{
			ID:    line.ProductID,
			Name:  line.Name,
			Price: line.UnitPrice,
			Qty:   line.Quantity,
		})
	}
	return json.Marshal(records)
}

// DecodeCartRecord deserializes the record value, recovering silently to an
// empty cart on malformed input. Lines missing a product id are dropped and
// invalid numeric fields are defaulted (price 0, qty 1).
func DecodeCartRecord(cartID string, raw []byte) domain.Cart {
	cart := domain.Cart{ID: cartID, Lines: []domain.CartLine{}}
	if len(raw) == 0 {
		return cart
	}

	var records []cartLineRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return cart
	}

	for _, rec := range records {
		line := domain.NormalizeLine(domain.CartLine{
			ProductID: rec.ID,
			Name:      rec.Name,
			UnitPrice: rec.Price,
			Quantity:  rec.Qty,
		})
		if line.ProductID == "" {
			continue
		}
		cart.Lines = append(cart.Lines, line)
	}
	return cart
}

// EncodeSubscribers serializes the subscriber list record.
func EncodeSubscribers(emails []string) ([]byte, error) {
	if emails == nil {
		emails = []string{}
	}
	return json.Marshal(emails)
}

// DecodeSubscribers deserializes the subscriber record with the same tolerant
// contract: malformed input yields an empty list. Entries are trimmed and
// deduplicated case-insensitively, first occurrence wins.
func DecodeSubscribers(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var records []string
	if err := json.Unmarshal(raw, &records); err != nil {
		return []string{}
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, email := range records {
		trimmed := strings.TrimSpace(email)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
