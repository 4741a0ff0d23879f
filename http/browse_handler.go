package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/repository"
	"realty-agent/service"
)

const browseKeyPrefix = "browse:"

// BrowseHandler keeps one listing-grid state per visitor session.
type BrowseHandler struct {
	catalog *service.CatalogService
	cache   repository.CacheRepository
	tracker service.Tracker
	ttl     time.Duration
	logger  *zap.Logger
}

func NewBrowseHandler(
	catalog *service.CatalogService,
	cache repository.CacheRepository,
	tracker service.Tracker,
	ttl time.Duration,
	logger *zap.Logger,
) *BrowseHandler {
	return &BrowseHandler{catalog: catalog, cache: cache, tracker: tracker, ttl: ttl, logger: logger}
}

type browseResponse struct {
	State    domain.BrowseState `json:"state"`
	Page     domain.Page        `json:"page"`
	Selected *domain.Property   `json:"selected,omitempty"`
}

func (h *BrowseHandler) load(ctx context.Context) domain.BrowseState {
	sid := service.SessionIDFromContext(ctx)
	raw, ok := h.cache.Get(ctx, browseKeyPrefix+sid)
	if !ok {
		return domain.NewBrowseState()
	}
	var state domain.BrowseState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		h.logger.Warn("discarding unreadable browse state", zap.String("session", sid), zap.Error(err))
		return domain.NewBrowseState()
	}
	return state
}

func (h *BrowseHandler) save(ctx context.Context, state domain.BrowseState) {
	raw, err := json.Marshal(state)
	if err != nil {
		h.logger.Warn("could not encode browse state", zap.Error(err))
		return
	}
	sid := service.SessionIDFromContext(ctx)
	if err := h.cache.Set(ctx, browseKeyPrefix+sid, string(raw), h.ttl); err != nil {
		h.logger.Warn("could not save browse state", zap.String("session", sid), zap.Error(err))
	}
}

func (h *BrowseHandler) respond(w http.ResponseWriter, r *http.Request, state domain.BrowseState) {
	resp := browseResponse{State: state, Page: h.catalog.Page(state)}
	if state.SelectedPropertyID != 0 {
		if p, err := h.catalog.ByID(state.SelectedPropertyID); err == nil {
			resp.Selected = &p
		}
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

func (h *BrowseHandler) State(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.load(r.Context()))
}

// Dispatch applies one BrowseAction to the session's state.
func (h *BrowseHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var action domain.BrowseAction
	if err := decodeJSON(w, r, &action); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if !action.Type.Valid() {
		writeError(w, h.logger, &service.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown browse action %q", action.Type),
			Err:     service.ErrInvalidRequest,
		})
		return
	}

	ctx := r.Context()
	if action.Type == domain.ActionOpenProperty {
		if _, err := h.catalog.View(ctx, action.PropertyID); err != nil {
			writeError(w, h.logger, err)
			return
		}
	}

	state := domain.Reduce(h.load(ctx), action)

	switch action.Type {
	case domain.ActionSetTypeFilter:
		h.tracker.Track(ctx, domain.EventFilterChange, map[string]any{"filter": string(state.TypeFilter)})
	case domain.ActionSearch:
		h.catalog.Search(ctx, state.Filter(), state.SortBy)
	}

	h.save(ctx, state)
	h.respond(w, r, state)
}
