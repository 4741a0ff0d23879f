package http

import (
	"net/http"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	tracker   service.Tracker
	logger    *zap.Logger
}

func NewAnalyticsHandler(
	analytics *service.AnalyticsService,
	tracker service.Tracker,
	logger *zap.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, tracker: tracker, logger: logger}
}

type trackRequest struct {
	Name domain.EventName `json:"name"`
	Data map[string]any   `json:"data"`
}

// Track queues a client-side event. It answers 202 whether or not the event
// is eventually recorded.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if req.Name == "" {
		writeError(w, h.logger, &service.ValidationError{
			Field: "name", Message: "event name is required", Err: service.ErrInvalidRequest,
		})
		return
	}

	h.tracker.Track(r.Context(), req.Name, req.Data)
	w.WriteHeader(http.StatusAccepted)
}

type propertyEventRequest struct {
	Kind domain.PropertyEventKind `json:"kind"`
}

func (h *AnalyticsHandler) PropertyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	var req propertyEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.analytics.RecordPropertyEvent(r.Context(), id, req.Kind); err != nil {
		writeError(w, h.logger, err)
		return
	}
	stats, _ := h.analytics.PropertyStats(id)
	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Counts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.analytics.Counts())
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.analytics.Summary())
}

func (h *AnalyticsHandler) Searches(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", service.DefaultSearchDays)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.analytics.SearchSummary(days))
}

func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 100)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	events, err := h.analytics.Export(r.Context(), limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	writeJSON(w, h.logger, http.StatusOK, events)
}
