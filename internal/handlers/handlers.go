package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/GarwanshiJain/ecommerce.repo/internal/services"
)

// ConfirmFunc decides whether a destructive request was confirmed by the
// user. The default implementation reads the "confirm" form field, which the
// hx-confirm dialog submits on acceptance.
type ConfirmFunc func(r *http.Request) bool

// Deps carries handler dependencies. Renderer, Cart, Catalog and Subscribers
// are required.
type Deps struct {
	Renderer    *Renderer
	Cart        services.CartService
	Catalog     services.CatalogService
	Subscribers services.SubscriberService
	Confirm     ConfirmFunc
}

// Handlers serves all storefront routes.
type Handlers struct {
	renderer    *Renderer
	cart        services.CartService
	catalog     services.CatalogService
	subscribers services.SubscriberService
	confirm     ConfirmFunc
}

var (
	errRendererRequired    = errors.New("handlers: renderer is required")
	errCartRequired        = errors.New("handlers: cart service is required")
	errCatalogRequired     = errors.New("handlers: catalog service is required")
	errSubscribersRequired = errors.New("handlers: subscriber service is required")
)

// New validates dependencies and returns the handler set.
func New(deps Deps) (*Handlers, error) {
	if deps.Renderer == nil {
		return nil, errRendererRequired
	}
	if deps.Cart == nil {
		return nil, errCartRequired
	}
	if deps.Catalog == nil {
		return nil, errCatalogRequired
	}
	if deps.Subscribers == nil {
		return nil, errSubscribersRequired
	}
	confirm := deps.Confirm
	if confirm == nil {
		confirm = FormConfirm
	}
	return &Handlers{
		renderer:    deps.Renderer,
		cart:        deps.Cart,
		catalog:     deps.Catalog,
		subscribers: deps.Subscribers,
		confirm:     confirm,
	}, nil
}

// FormConfirm reports confirmation from the submitted "confirm" field.
func FormConfirm(r *http.Request) bool {
	switch strings.ToLower(strings.TrimSpace(r.FormValue("confirm"))) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
