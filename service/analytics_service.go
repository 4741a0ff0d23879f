package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/repository"
)

const countsCacheKey = "counts"

// baselineCounts are the figures the dashboard starts from before any
// visitor activity is recorded.
var baselineCounts = domain.InteractionCounts{
	Inquiries:           47,
	CalculatorUses:      128,
	PropertiesViewed:    892,
	Searches:            315,
	PropertiesSaved:     73,
	DirectionsRequested: 156,
}

// AnalyticsService aggregates visitor activity and mirrors it to a local store.
type AnalyticsService struct {
	store      repository.AnalyticsStore
	cache      repository.CacheRepository
	properties repository.PropertyRepository
	logger     *zap.Logger
	now        func() time.Time

	mu       sync.Mutex
	counts   domain.InteractionCounts
	stats    map[int]domain.PropertyStats
	searches []domain.SearchRecord
}

// NewAnalyticsService restores previously mirrored state from store. Listings
// with no stored stats get seeded figures drawn from rng.
func NewAnalyticsService(
	ctx context.Context,
	store repository.AnalyticsStore,
	cache repository.CacheRepository,
	properties repository.PropertyRepository,
	rng Rand,
	logger *zap.Logger,
) (*AnalyticsService, error) {
	s := &AnalyticsService{
		store:      store,
		cache:      cache,
		properties: properties,
		logger:     logger,
		now:        time.Now,
		counts:     baselineCounts,
		stats:      make(map[int]domain.PropertyStats),
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	now := s.now()
	for _, p := range properties.All() {
		if _, ok := s.stats[p.ID]; !ok {
			s.stats[p.ID] = seededStats(rng, now)
		}
	}
	return s, nil
}

func seededStats(rng Rand, now time.Time) domain.PropertyStats {
	window := 30 * 24 * time.Hour
	return domain.PropertyStats{
		Views:           rng.IntN(100) + 10,
		Saves:           rng.IntN(20) + 1,
		Shares:          rng.IntN(10) + 1,
		Directions:      rng.IntN(15) + 1,
		ContactRequests: rng.IntN(8) + 1,
		LastViewed:      now.Add(-time.Duration(rng.Float64() * float64(window))),
	}
}

func (s *AnalyticsService) load(ctx context.Context) error {
	if raw, ok, err := s.store.Load(ctx, repository.KeyInteractionCounts); err != nil {
		return fmt.Errorf("load interaction counts: %w", err)
	} else if ok {
		// stored values overlay the baseline field by field
		if err := json.Unmarshal([]byte(raw), &s.counts); err != nil {
			s.logger.Warn("could not decode stored interaction counts", zap.Error(err))
			s.counts = baselineCounts
		}
	}

	if raw, ok, err := s.store.Load(ctx, repository.KeyPropertyStats); err != nil {
		return fmt.Errorf("load property stats: %w", err)
	} else if ok {
		var stored map[int]domain.PropertyStats
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.Warn("could not decode stored property stats", zap.Error(err))
		}
		for id, st := range stored {
			if _, known := s.properties.ByID(id); known {
				s.stats[id] = st
			}
		}
	}

	if raw, ok, err := s.store.Load(ctx, repository.KeySearchHistory); err != nil {
		return fmt.Errorf("load search history: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.searches); err != nil {
			s.logger.Warn("could not decode stored search history", zap.Error(err))
			s.searches = nil
		}
	}
	return nil
}

// Record applies event to the counters and appends it to the event log.
func (s *AnalyticsService) Record(ctx context.Context, event domain.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	s.mu.Lock()
	countsChanged := s.incrementLocked(event.Name)
	statsChanged := false
	if kind, ok := propertyEventKind(event.Name); ok {
		if id, ok := intFrom(event.Data["property_id"]); ok {
			statsChanged = s.applyPropertyEventLocked(id, kind, event.Timestamp)
		}
	}
	var search *domain.SearchRecord
	if event.Name == domain.EventPropertySearch {
		rec := s.appendSearchLocked(event)
		search = &rec
	}
	counts := s.counts
	s.mu.Unlock()

	if err := s.store.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	if countsChanged {
		s.mirrorCounts(ctx, counts)
	}
	if statsChanged {
		s.mirrorStats(ctx)
	}
	if search != nil {
		s.mirrorSearches(ctx)
	}
	return nil
}

func (s *AnalyticsService) incrementLocked(name domain.EventName) bool {
	switch name {
	case domain.EventContactFormSubmit:
		s.counts.Inquiries++
	case domain.EventMortgageCalculation:
		s.counts.CalculatorUses++
	case domain.EventPropertyView:
		s.counts.PropertiesViewed++
	case domain.EventPropertySearch:
		s.counts.Searches++
	case domain.EventSaveProperty:
		s.counts.PropertiesSaved++
	case domain.EventGetDirections:
		s.counts.DirectionsRequested++
	default:
		return false
	}
	return true
}

func propertyEventKind(name domain.EventName) (domain.PropertyEventKind, bool) {
	switch name {
	case domain.EventPropertyView:
		return domain.PropertyEventView, true
	case domain.EventSaveProperty:
		return domain.PropertyEventSave, true
	case domain.EventShareProperty:
		return domain.PropertyEventShare, true
	case domain.EventGetDirections:
		return domain.PropertyEventDirections, true
	case domain.EventContactFormSubmit:
		return domain.PropertyEventContact, true
	}
	return "", false
}

// RecordPropertyEvent bumps one engagement counter of a listing.
func (s *AnalyticsService) RecordPropertyEvent(
	ctx context.Context,
	id int,
	kind domain.PropertyEventKind,
) error {
	if _, ok := s.properties.ByID(id); !ok {
		return ErrPropertyNotFound
	}

	s.mu.Lock()
	changed := s.applyPropertyEventLocked(id, kind, s.now())
	s.mu.Unlock()

	if !changed {
		return newValidationError("kind", ErrInvalidRequest, "unknown property event %q", kind)
	}
	s.mirrorStats(ctx)
	return nil
}

func (s *AnalyticsService) applyPropertyEventLocked(
	id int,
	kind domain.PropertyEventKind,
	at time.Time,
) bool {
	st, ok := s.stats[id]
	if !ok {
		return false
	}
	switch kind {
	case domain.PropertyEventView:
		st.Views++
		st.LastViewed = at
	case domain.PropertyEventSave:
		st.Saves++
	case domain.PropertyEventShare:
		st.Shares++
	case domain.PropertyEventDirections:
		st.Directions++
	case domain.PropertyEventContact:
		st.ContactRequests++
	default:
		return false
	}
	s.stats[id] = st
	return true
}

func (s *AnalyticsService) appendSearchLocked(event domain.Event) domain.SearchRecord {
	query, _ := event.Data["query"].(string)
	filter, _ := event.Data["filter"].(domain.PropertyFilter)
	resultCount, _ := intFrom(event.Data["result_count"])

	rec := domain.SearchRecord{
		Query:       strings.ToLower(strings.TrimSpace(query)),
		Filter:      filter,
		ResultCount: resultCount,
		Timestamp:   event.Timestamp,
		Successful:  resultCount > 0,
	}
	s.searches = append(s.searches, rec)
	if len(s.searches) > MaxSearchHistory {
		s.searches = slices.Clone(s.searches[len(s.searches)-MaxSearchHistory:])
	}
	return rec
}

func (s *AnalyticsService) mirrorCounts(ctx context.Context, counts domain.InteractionCounts) {
	raw, err := json.Marshal(counts)
	if err != nil {
		s.logger.Warn("could not encode interaction counts", zap.Error(err))
		return
	}
	if err := s.store.Store(ctx, repository.KeyInteractionCounts, string(raw)); err != nil {
		s.logger.Warn("could not save interaction counts", zap.Error(err))
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, countsCacheKey, string(raw), 0); err != nil {
			s.logger.Warn("could not cache interaction counts", zap.Error(err))
		}
	}
}

func (s *AnalyticsService) mirrorStats(ctx context.Context) {
	s.mu.Lock()
	raw, err := json.Marshal(s.stats)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("could not encode property stats", zap.Error(err))
		return
	}
	if err := s.store.Store(ctx, repository.KeyPropertyStats, string(raw)); err != nil {
		s.logger.Warn("could not save property stats", zap.Error(err))
	}
}

func (s *AnalyticsService) mirrorSearches(ctx context.Context) {
	s.mu.Lock()
	raw, err := json.Marshal(s.searches)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("could not encode search history", zap.Error(err))
		return
	}
	if err := s.store.Store(ctx, repository.KeySearchHistory, string(raw)); err != nil {
		s.logger.Warn("could not save search history", zap.Error(err))
	}
}

func (s *AnalyticsService) Counts() domain.InteractionCounts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts
}

func (s *AnalyticsService) PropertyStats(id int) (domain.PropertyStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stats[id]
	return st, ok
}

// Summary aggregates the per-listing engagement figures.
func (s *AnalyticsService) Summary() domain.AnalyticsSummary {
	props := s.properties.All()

	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.AnalyticsSummary{
		TotalProperties:   len(props),
		LocationBreakdown: make(map[string]int),
		TypeBreakdown:     make(map[string]int),
	}

	var priceSum int64
	for _, p := range props {
		st := s.stats[p.ID]
		summary.TotalViews += st.Views
		summary.TotalSaves += st.Saves
		summary.TotalShares += st.Shares
		summary.TotalDirections += st.Directions
		summary.TotalContactRequests += st.ContactRequests
		priceSum += p.Price

		location, _, _ := strings.Cut(p.Location, ",")
		summary.LocationBreakdown[location]++
		summary.TypeBreakdown[string(p.Type)]++
	}
	if len(props) > 0 {
		summary.AveragePrice = int64(math.Round(float64(priceSum) / float64(len(props))))
	}

	ranked := slices.Clone(props)
	slices.SortStableFunc(ranked, func(a, b domain.Property) int {
		return cmp.Compare(s.stats[b.ID].Views, s.stats[a.ID].Views)
	})
	for _, p := range ranked[:min(TopPerformingLimit, len(ranked))] {
		st := s.stats[p.ID]
		engagement := 0
		if st.Views > 0 {
			engagement = int(math.Round(float64(st.Saves+st.Shares+st.Directions) / float64(st.Views) * 100))
		}
		summary.TopPerformingProperties = append(summary.TopPerformingProperties, domain.TopProperty{
			ID:             p.ID,
			Title:          p.Title,
			Views:          st.Views,
			Saves:          st.Saves,
			EngagementRate: engagement,
		})
	}
	return summary
}

// SearchSummary reports on searches made in the last days days, capped at
// MaxSearchDays.
func (s *AnalyticsService) SearchSummary(days int) domain.SearchSummary {
	if days <= 0 {
		days = DefaultSearchDays
	}
	days = min(days, MaxSearchDays)
	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)

	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.SearchSummary{
		PopularQueries: []domain.QueryCount{},
		FilterUsage:    make(map[string]int),
		DailySearches:  make(map[civil.Date]int),
	}
	frequency := make(map[string]int)

	for _, rec := range s.searches {
		if rec.Timestamp.Before(cutoff) {
			continue
		}
		summary.TotalSearches++
		if rec.Successful {
			summary.SuccessfulSearches++
		}
		if rec.Query != "" {
			frequency[rec.Query]++
		}
		for _, key := range usedFilters(rec.Filter) {
			summary.FilterUsage[key]++
		}
		summary.DailySearches[civil.DateOf(rec.Timestamp)]++
	}

	if summary.TotalSearches > 0 {
		rate := float64(summary.SuccessfulSearches) / float64(summary.TotalSearches) * 100
		summary.SuccessRate = math.Round(rate*10) / 10
	}

	for q, n := range frequency {
		summary.PopularQueries = append(summary.PopularQueries, domain.QueryCount{Query: q, Count: n})
	}
	slices.SortFunc(summary.PopularQueries, func(a, b domain.QueryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Query, b.Query)
	})
	if len(summary.PopularQueries) > PopularQueryLimit {
		summary.PopularQueries = summary.PopularQueries[:PopularQueryLimit]
	}
	return summary
}

func usedFilters(f domain.PropertyFilter) []string {
	var used []string
	if f.Type != "" && f.Type != domain.TypeAll {
		used = append(used, "type")
	}
	if f.PriceRange != "" {
		used = append(used, "priceRange")
	}
	if f.Location != "" {
		used = append(used, "location")
	}
	if f.Bedrooms > 0 {
		used = append(used, "bedrooms")
	}
	return used
}

// Export returns up to limit logged events, newest first.
func (s *AnalyticsService) Export(ctx context.Context, limit int) ([]domain.Event, error) {
	events, err := s.store.Events(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("export events: %w", err)
	}
	return events, nil
}

// intFrom accepts the shapes an id takes in event data: Go ints, JSON
// numbers and numeric strings.
func intFrom(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}
