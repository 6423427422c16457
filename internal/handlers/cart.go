package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GarwanshiJain/ecommerce.repo/internal/domain"
	"github.com/GarwanshiJain/ecommerce.repo/internal/format"
	mw "github.com/GarwanshiJain/ecommerce.repo/internal/middleware"
	"github.com/GarwanshiJain/ecommerce.repo/internal/nav"
	"github.com/GarwanshiJain/ecommerce.repo/internal/platform/metrics"
	"github.com/GarwanshiJain/ecommerce.repo/internal/services"
)

func buildCartView(cart domain.Cart) CartView {
	view := CartView{
		Lines: make([]CartLineView, 0, len(cart.Lines)),
		Count: services.Count(cart),
		Total: format.FmtPrice(services.Total(cart)),
	}
	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: format.FmtPrice(line.UnitPrice),
			Quantity:  line.Quantity,
			LineTotal: format.FmtPrice(line.LineTotal()),
		})
	}
	view.Empty = len(view.Lines) == 0
	return view
}

func (h *Handlers) loadCart(r *http.Request) (domain.Cart, error) {
	sd := mw.GetSession(r)
	return h.cart.GetCart(r.Context(), sd.CartID)
}

// CartHandler renders the cart page. A store outage degrades to an empty
// table with an error notice instead of failing the page.
func (h *Handlers) CartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := h.loadCart(r)
	view := buildCartView(cart)

	vm := PageData{
		Title:     "Your Cart",
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		CartBadge: view.Count,
		Cart:      view,
	}
	if err != nil {
		setToast(w, "error", "We couldn't load your cart. Please try again.")
	}
	h.renderer.RenderPage(w, r, vm)
}

// CartTableFrag re-renders the line items table fragment.
func (h *Handlers) CartTableFrag(w http.ResponseWriter, r *http.Request) {
	cart, err := h.loadCart(r)
	if err != nil {
		setToast(w, "error", "We couldn't load your cart. Please try again.")
	}
	h.renderer.RenderTemplate(w, r, "frag_cart_table", buildCartView(cart))
}

// CartAddHandler adds a product to the cart. Name and price come from the
// catalog when the id resolves; the submitted values are a fallback so the
// cart still accepts items the catalog no longer lists.
func (h *Handlers) CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sd := mw.GetSession(r)

	cmd := services.AddItemCommand{
		CartID:    sd.CartID,
		ProductID: strings.TrimSpace(r.FormValue("id")),
		Name:      strings.TrimSpace(r.FormValue("name")),
		UnitPrice: parsePrice(r.FormValue("price")),
		Quantity:  parseQuantity(r.FormValue("qty")),
	}
	if p, ok := h.catalog.Product(cmd.ProductID); ok {
		cmd.Name = p.Name
		cmd.UnitPrice = p.UnitPrice
	}

	cart, err := h.cart.AddItem(r.Context(), cmd)
	if err != nil {
		h.renderCartError(w, r, err)
		return
	}
	metrics.ObserveCartMutation("add")
	setToast(w, "success", cmd.Name+" added to cart.")
	h.respondCartMutation(w, r, cart)
}

// CartRemoveHandler removes every line matching the product id.
func (h *Handlers) CartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	sd := mw.GetSession(r)
	productID := chi.URLParam(r, "id")

	cart, err := h.cart.RemoveItem(r.Context(), sd.CartID, productID)
	if err != nil {
		h.renderCartError(w, r, err)
		return
	}
	metrics.ObserveCartMutation("remove")
	setToast(w, "success", "Item removed.")
	h.respondCartMutation(w, r, cart)
}

// CartClearHandler empties the cart when the request carries confirmation.
// A declined confirmation leaves the cart untouched.
func (h *Handlers) CartClearHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sd := mw.GetSession(r)

	cleared, err := h.cart.ClearCart(r.Context(), sd.CartID, h.confirm(r))
	if err != nil {
		h.renderCartError(w, r, err)
		return
	}
	if cleared {
		metrics.ObserveCartMutation("clear")
		setToast(w, "success", "Cart cleared.")
	}

	cart, loadErr := h.cart.GetCart(r.Context(), sd.CartID)
	if loadErr != nil {
		h.renderCartError(w, r, loadErr)
		return
	}
	h.respondCartMutation(w, r, cart)
}

// respondCartMutation answers an htmx request with the refreshed table plus
// an out-of-band badge swap, and a plain form post with a redirect.
func (h *Handlers) respondCartMutation(w http.ResponseWriter, r *http.Request, cart domain.Cart) {
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	view := buildCartView(cart)
	h.renderer.RenderTemplates(w, r, map[string]any{
		"frag_cart_table": view,
		"frag_cart_badge": view,
	}, "frag_cart_table", "frag_cart_badge")
}

func (h *Handlers) renderCartError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusServiceUnavailable
	message := "The store is temporarily unavailable. Please try again."
	if errors.Is(err, services.ErrCartInvalidInput) {
		status = http.StatusUnprocessableEntity
		message = "That item can't be added to the cart."
	}
	setToast(w, "error", message)
	if !mw.IsHTMX(r.Context()) {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	h.renderer.RenderTemplate(w, r, "frag_notice", NoticeView{Message: message, Tone: "error"})
}

// setToast queues a toast event for the frontend via the HX-Trigger header.
func setToast(w http.ResponseWriter, tone, message string) {
	payload := map[string]any{
		"shop:toast": map[string]string{
			"tone":    tone,
			"message": message,
		},
	}
	if raw, err := json.Marshal(payload); err == nil {
		w.Header().Set("HX-Trigger", string(raw))
	}
}

func parsePrice(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseQuantity(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return v
}
