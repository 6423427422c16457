package handlers

import (
	"net/http"

	"github.com/GarwanshiJain/ecommerce.repo/internal/format"
	"github.com/GarwanshiJain/ecommerce.repo/internal/nav"
)

// HomeView is the landing page model.
type HomeView struct {
	Products []ProductCardView
}

// HomeHandler renders the landing page with the product grid.
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	cards := make([]ProductCardView, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCardView{
			ID:    p.ID,
			Name:  p.Name,
			Price: format.FmtPrice(p.UnitPrice),
			Image: p.Image,
		})
	}

	cart, _ := h.loadCart(r)
	view := buildCartView(cart)

	vm := PageData{
		Title:     "Zay Shop",
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		CartBadge: view.Count,
		Home:      HomeView{Products: cards},
	}
	h.renderer.RenderPage(w, r, vm)
}
