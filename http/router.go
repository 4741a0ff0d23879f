package http

import (
	"net/http"

	"go.uber.org/zap"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Mortgage  *MortgageHandler
	Property  *PropertyHandler
	Analytics *AnalyticsHandler
	Browse    *BrowseHandler
}

// NewRouter wires the API routes. limiter may be nil to disable throttling of
// the calculation endpoints.
func NewRouter(h Handlers, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	limited := func(fn http.HandlerFunc) http.Handler {
		if limiter == nil {
			return fn
		}
		return RateLimitMiddleware(limiter, logger, fn)
	}

	mux.Handle("POST /mortgage/calculate", limited(h.Mortgage.Calculate))
	mux.Handle("POST /mortgage/schedule", limited(h.Mortgage.Schedule))
	mux.Handle("POST /mortgage/compare-terms", limited(h.Mortgage.CompareTerms))
	mux.Handle("POST /mortgage/prepayment", limited(h.Mortgage.Prepayment))
	mux.HandleFunc("GET /mortgage/recent", h.Mortgage.Recent)

	mux.HandleFunc("GET /properties", h.Property.List)
	mux.HandleFunc("GET /properties/featured", h.Property.Featured)
	mux.HandleFunc("GET /properties/random", h.Property.Random)
	mux.HandleFunc("GET /properties/options", h.Property.Options)
	mux.HandleFunc("GET /properties/{id}", h.Property.Get)
	mux.HandleFunc("GET /properties/{id}/similar", h.Property.Similar)
	mux.Handle("GET /properties/{id}/mortgage", limited(h.Mortgage.ForProperty))
	mux.HandleFunc("POST /properties/{id}/events", h.Analytics.PropertyEvent)

	mux.HandleFunc("POST /analytics/events", h.Analytics.Track)
	mux.HandleFunc("GET /analytics/events", h.Analytics.Export)
	mux.HandleFunc("GET /analytics/counts", h.Analytics.Counts)
	mux.HandleFunc("GET /analytics/summary", h.Analytics.Summary)
	mux.HandleFunc("GET /analytics/searches", h.Analytics.Searches)

	mux.HandleFunc("GET /browse", h.Browse.State)
	mux.HandleFunc("POST /browse/actions", h.Browse.Dispatch)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	return LoggingMiddleware(logger, SessionMiddleware(mux))
}
