package handlers

import (
	"net/http"
	"strings"

	"github.com/GarwanshiJain/ecommerce.repo/internal/format"
	"github.com/GarwanshiJain/ecommerce.repo/internal/nav"
)

// ProductHandler renders the product detail page from the ?id= query. An
// unknown id renders the not-found state with a 404 status; the page itself
// never errors.
func (h *Handlers) ProductHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))

	view := ProductView{ID: id}
	status := http.StatusNotFound
	if p, ok := h.catalog.Product(id); ok {
		status = http.StatusOK
		view = ProductView{
			Found:       true,
			ID:          p.ID,
			Name:        p.Name,
			Price:       format.FmtPrice(p.UnitPrice),
			Image:       p.Image,
			Description: p.SafeDescription(),
		}
	}

	cart, _ := h.loadCart(r)
	cview := buildCartView(cart)

	title := "Product not found"
	if view.Found {
		title = view.Name
	}
	vm := PageData{
		Title:     title,
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		CartBadge: cview.Count,
		Product:   view,
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	h.renderer.RenderPage(w, r, vm)
}
