package http

import (
	"net/http"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/service"
)

type PropertyHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewPropertyHandler(catalog *service.CatalogService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{catalog: catalog, logger: logger}
}

type propertySummary struct {
	domain.Property
	FormattedPrice string `json:"formattedPrice"`
	FormattedArea  string `json:"formattedArea"`
}

func summarize(props []domain.Property) []propertySummary {
	out := make([]propertySummary, 0, len(props))
	for _, p := range props {
		out = append(out, propertySummary{
			Property:       p,
			FormattedPrice: service.FormatPrice(p.Price),
			FormattedArea:  service.FormatArea(p.Area),
		})
	}
	return out
}

// List searches the catalog: GET /properties?type=&priceRange=&location=&bedrooms=&q=&sort=
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	sortBy := r.URL.Query().Get("sort")
	var results []domain.Property
	if filter.IsEmpty() {
		results = h.catalog.Sort(h.catalog.All(), sortBy)
	} else {
		results = h.catalog.Search(r.Context(), filter, sortBy)
	}
	writeJSON(w, h.logger, http.StatusOK, summarize(results))
}

func (h *PropertyHandler) Featured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, summarize(h.catalog.Featured()))
}

func (h *PropertyHandler) Random(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultRandomLimit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, summarize(h.catalog.Random(limit)))
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	p, err := h.catalog.View(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, summarize([]domain.Property{p})[0])
}

func (h *PropertyHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	limit, err := queryInt(r, "limit", service.DefaultSimilarLimit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	similar, err := h.catalog.Similar(id, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, summarize(similar))
}

type catalogOptions struct {
	Types       []domain.PropertyTypeOption `json:"types"`
	PriceRanges []domain.PriceRange         `json:"priceRanges"`
	Locations   []string                    `json:"locations"`
}

func (h *PropertyHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, catalogOptions{
		Types:       h.catalog.Types(),
		PriceRanges: h.catalog.PriceRanges(),
		Locations:   h.catalog.Locations(),
	})
}
