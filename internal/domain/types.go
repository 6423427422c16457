package domain

import "strings"

// Cart aggregates the mutable shopping cart state for one storefront session.
type Cart struct {
	ID    string
	Lines []CartLine
}

// CartLine stores a single product entry within a cart. Lines are keyed by
// ProductID; a cart never carries two lines for the same product.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int
}

// LineTotal returns the extended price for the line in minor units.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Product describes a read-only catalog entry. Descriptions are markdown and
// rendered by the catalog service, never by templates directly.
type Product struct {
	ID          string
	Name        string
	UnitPrice   int64
	Description string
	Image       string
}

// NormalizeLine applies the defaulting rules for persisted or user-supplied
// line data: a negative or unset price becomes 0 and a quantity below one
// becomes 1. Identity fields are whitespace-trimmed.
func NormalizeLine(line CartLine) CartLine {
	line.ProductID = strings.TrimSpace(line.ProductID)
	line.Name = strings.TrimSpace(line.Name)
	if line.UnitPrice < 0 {
		line.UnitPrice = 0
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	return line
}

// NormalizeCart normalizes every line and drops entries whose product id is
// empty after trimming. Order of the surviving lines is preserved.
func NormalizeCart(cart Cart) Cart {
	if len(cart.Lines) == 0 {
		cart.Lines = []CartLine{}
		return cart
	}
	lines := make([]CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		normalized := NormalizeLine(line)
		if normalized.ProductID == "" {
			continue
		}
		lines = append(lines, normalized)
	}
	cart.Lines = lines
	return cart
}

// CloneLines returns a copy callers can mutate without aliasing the source
// cart.
func CloneLines(lines []CartLine) []CartLine {
	if len(lines) == 0 {
		return []CartLine{}
	}
	dup := make([]CartLine, len(lines))
	copy(dup, lines)
	return dup
}
