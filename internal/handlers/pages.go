package handlers

import (
	"html/template"

	"github.com/GarwanshiJain/ecommerce.repo/internal/nav"
)

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title string
	Path  string
	Nav   []nav.RenderedItem

	// CartBadge is the total item quantity shown next to the cart link.
	CartBadge int

	// Optional per-page view model payloads
	Home       any
	Product    any
	Cart       any
	Newsletter any
}

// ProductCardView is one catalog entry on the home grid.
type ProductCardView struct {
	ID    string
	Name  string
	Price string
	Image string
}

// ProductView is the detail page model.
type ProductView struct {
	Found       bool
	ID          string
	Name        string
	Price       string
	Image       string
	Description template.HTML
}

// CartLineView is one row of the cart table.
type CartLineView struct {
	ProductID string
	Name      string
	UnitPrice string
	Quantity  int
	LineTotal string
}

// CartView is the cart page and table fragment model.
type CartView struct {
	Lines []CartLineView
	Count int
	Total string
	Empty bool
}

// NoticeView is an inline message block rendered in place of a fragment
// when a mutation fails.
type NoticeView struct {
	Message string
	Tone    string
}

// NewsletterView carries signup form state across renders.
type NewsletterView struct {
	Email   string
	Message string
	Tone    string // "success" or "error"
}
