package handlers

import (
	"errors"
	"net/http"
	"strings"

	mw "github.com/GarwanshiJain/ecommerce.repo/internal/middleware"
	"github.com/GarwanshiJain/ecommerce.repo/internal/platform/metrics"
	"github.com/GarwanshiJain/ecommerce.repo/internal/services"
)

// NewsletterHandler processes signup submissions. Success clears the field;
// a validation failure keeps the entered value so the user can fix it.
func (h *Handlers) NewsletterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))

	view := NewsletterView{Email: email}
	status := http.StatusOK

	added, err := h.subscribers.Subscribe(r.Context(), email)
	switch {
	case errors.Is(err, services.ErrSubscriberInvalidEmail):
		status = http.StatusUnprocessableEntity
		view.Tone = "error"
		view.Message = "Please enter a valid email address."
	case err != nil:
		status = http.StatusServiceUnavailable
		view.Tone = "error"
		view.Message = "Signup is temporarily unavailable. Please try again."
	case added:
		metrics.ObserveNewsletterSignup()
		view = NewsletterView{Tone: "success", Message: "Thanks for subscribing!"}
		setToast(w, "success", "You're on the list.")
	default:
		view = NewsletterView{Tone: "success", Message: "You're already subscribed."}
	}

	if !mw.IsHTMX(r.Context()) {
		if status != http.StatusOK {
			http.Error(w, view.Message, status)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	h.renderer.RenderTemplate(w, r, "frag_newsletter", view)
}
