package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_http_requests_total",
		Help: "HTTP requests processed, partitioned by method and status.",
	}, []string{"method", "status"})

	cartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_cart_mutations_total",
		Help: "Cart mutations applied, partitioned by operation.",
	}, []string{"op"})

	newsletterSignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_newsletter_signups_total",
		Help: "Newsletter subscriptions accepted.",
	})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method string, status int) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveCartMutation records one cart mutation ("add", "remove", "clear").
func ObserveCartMutation(op string) {
	cartMutationsTotal.WithLabelValues(op).Inc()
}

// ObserveNewsletterSignup records one accepted subscription.
func ObserveNewsletterSignup() {
	newsletterSignupsTotal.Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware counts every request by method and response status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		ObserveRequest(r.Method, sw.status)
	})
}
