package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/repository"
)

var analyticsNow = time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)

type analyticsFixture struct {
	svc   *AnalyticsService
	store *repository.AnalyticsStoreMemory
	cache *repository.MemoryCache
}

func newAnalyticsFixture(t *testing.T, store *repository.AnalyticsStoreMemory) analyticsFixture {
	t.Helper()
	if store == nil {
		store = repository.NewAnalyticsStoreMemory()
	}
	cache := repository.NewMemoryCache()
	svc, err := NewAnalyticsService(context.Background(), store, cache,
		repository.NewPropertyRepositoryMemory(), NewSeededRand(7), zap.NewNop())
	require.NoError(t, err)
	svc.now = func() time.Time { return analyticsNow }
	return analyticsFixture{svc: svc, store: store, cache: cache}
}

func TestAnalytics_SeededStats(t *testing.T) {
	f := newAnalyticsFixture(t, nil)

	for id := 1; id <= 10; id++ {
		st, ok := f.svc.PropertyStats(id)
		require.True(t, ok, "property %d", id)
		assert.GreaterOrEqual(t, st.Views, 10)
		assert.Less(t, st.Views, 110)
		assert.GreaterOrEqual(t, st.Saves, 1)
		assert.LessOrEqual(t, st.Saves, 20)
		assert.GreaterOrEqual(t, st.ContactRequests, 1)
		assert.LessOrEqual(t, st.ContactRequests, 8)
		assert.False(t, st.LastViewed.IsZero())
	}

	_, ok := f.svc.PropertyStats(11)
	assert.False(t, ok)
	assert.Equal(t, baselineCounts, f.svc.Counts())
}

func TestAnalytics_RecordUpdatesCountsAndStats(t *testing.T) {
	f := newAnalyticsFixture(t, nil)
	ctx := context.Background()
	before, _ := f.svc.PropertyStats(3)

	require.NoError(t, f.svc.Record(ctx, domain.Event{
		ID:        "e1",
		Name:      domain.EventPropertyView,
		Data:      map[string]any{"property_id": float64(3)},
		Timestamp: analyticsNow,
	}))
	require.NoError(t, f.svc.Record(ctx, domain.Event{
		ID:   "e2",
		Name: domain.EventShareProperty,
		Data: map[string]any{"property_id": "3"},
	}))
	require.NoError(t, f.svc.Record(ctx, domain.Event{ID: "e3", Name: domain.EventScrollDepth}))

	after, _ := f.svc.PropertyStats(3)
	assert.Equal(t, before.Views+1, after.Views)
	assert.Equal(t, before.Shares+1, after.Shares)
	assert.Equal(t, analyticsNow, after.LastViewed)
	assert.Equal(t, baselineCounts.PropertiesViewed+1, f.svc.Counts().PropertiesViewed)

	raw, ok, err := f.store.Load(ctx, repository.KeyInteractionCounts)
	require.NoError(t, err)
	require.True(t, ok)
	var stored domain.InteractionCounts
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, f.svc.Counts(), stored)

	cached, ok := f.cache.Get(ctx, countsCacheKey)
	require.True(t, ok)
	assert.JSONEq(t, raw, cached)

	events, err := f.svc.Export(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "e3", events[0].ID)
}

func TestAnalytics_StateSurvivesRestart(t *testing.T) {
	store := repository.NewAnalyticsStoreMemory()
	first := newAnalyticsFixture(t, store)
	ctx := context.Background()

	require.NoError(t, first.svc.RecordPropertyEvent(ctx, 9, domain.PropertyEventSave))
	require.NoError(t, first.svc.Record(ctx, domain.Event{ID: "x", Name: domain.EventContactFormSubmit}))
	stats, _ := first.svc.PropertyStats(9)

	second := newAnalyticsFixture(t, store)
	restored, _ := second.svc.PropertyStats(9)
	assert.Equal(t, stats.Saves, restored.Saves)
	assert.True(t, stats.LastViewed.Equal(restored.LastViewed))
	assert.Equal(t, baselineCounts.Inquiries+1, second.svc.Counts().Inquiries)
}

func TestAnalytics_RecordPropertyEventErrors(t *testing.T) {
	f := newAnalyticsFixture(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.RecordPropertyEvent(ctx, 404, domain.PropertyEventView), ErrPropertyNotFound)

	err := f.svc.RecordPropertyEvent(ctx, 1, "teleport")
	assert.True(t, IsValidation(err))
}

func TestAnalytics_Summary(t *testing.T) {
	f := newAnalyticsFixture(t, nil)
	summary := f.svc.Summary()

	assert.Equal(t, 10, summary.TotalProperties)
	assert.Equal(t, int64(1_120_000), summary.AveragePrice)
	assert.Equal(t, 1, summary.LocationBreakdown["Harbor View"])
	assert.Equal(t, 3, summary.TypeBreakdown["condo"])
	assert.Equal(t, 3, summary.TypeBreakdown["apartment"])

	require.Len(t, summary.TopPerformingProperties, TopPerformingLimit)
	for i := 1; i < len(summary.TopPerformingProperties); i++ {
		assert.GreaterOrEqual(t,
			summary.TopPerformingProperties[i-1].Views,
			summary.TopPerformingProperties[i].Views)
	}

	total := 0
	for id := 1; id <= 10; id++ {
		st, _ := f.svc.PropertyStats(id)
		total += st.Views
	}
	assert.Equal(t, total, summary.TotalViews)
}

func TestAnalytics_SearchSummary(t *testing.T) {
	f := newAnalyticsFixture(t, nil)
	ctx := context.Background()

	search := func(query string, filter domain.PropertyFilter, results int, at time.Time) {
		t.Helper()
		require.NoError(t, f.svc.Record(ctx, domain.Event{
			ID:        fmt.Sprintf("%s-%d", query, at.UnixNano()),
			Name:      domain.EventPropertySearch,
			Data:      map[string]any{"query": query, "filter": filter, "result_count": results},
			Timestamp: at,
		}))
	}

	yesterday := analyticsNow.Add(-24 * time.Hour)
	search("Condo", domain.PropertyFilter{Type: domain.TypeCondo}, 3, analyticsNow)
	search("condo ", domain.PropertyFilter{}, 3, yesterday)
	search("castle", domain.PropertyFilter{PriceRange: "1500000+", Bedrooms: 4}, 0, analyticsNow)
	search("loft", domain.PropertyFilter{Location: "Industrial"}, 1, analyticsNow)
	search("old", domain.PropertyFilter{}, 1, analyticsNow.Add(-45*24*time.Hour))

	summary := f.svc.SearchSummary(30)
	assert.Equal(t, 4, summary.TotalSearches)
	assert.Equal(t, 3, summary.SuccessfulSearches)
	assert.Equal(t, 75.0, summary.SuccessRate)
	assert.Equal(t, []domain.QueryCount{
		{Query: "condo", Count: 2},
		{Query: "castle", Count: 1},
		{Query: "loft", Count: 1},
	}, summary.PopularQueries)
	assert.Equal(t, map[string]int{"type": 1, "priceRange": 1, "bedrooms": 1, "location": 1}, summary.FilterUsage)
	assert.Equal(t, 3, summary.DailySearches[civil.DateOf(analyticsNow)])
	assert.Equal(t, 1, summary.DailySearches[civil.DateOf(yesterday)])

	assert.Equal(t, 5, f.svc.SearchSummary(60).TotalSearches)
	assert.Equal(t, baselineCounts.Searches+5, f.svc.Counts().Searches)
}

func TestAnalytics_SearchHistoryIsBounded(t *testing.T) {
	store := repository.NewAnalyticsStoreMemory()
	f := newAnalyticsFixture(t, store)
	ctx := context.Background()

	for i := 0; i <= MaxSearchHistory; i++ {
		require.NoError(t, f.svc.Record(ctx, domain.Event{
			ID:        fmt.Sprintf("search-%d", i),
			Name:      domain.EventPropertySearch,
			Data:      map[string]any{"query": fmt.Sprintf("q%d", i), "result_count": 1},
			Timestamp: analyticsNow.Add(time.Duration(i) * time.Second),
		}))
	}

	raw, ok, err := store.Load(ctx, repository.KeySearchHistory)
	require.NoError(t, err)
	require.True(t, ok)

	var mirrored []domain.SearchRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &mirrored))
	require.Len(t, mirrored, MaxSearchHistory)
	assert.Equal(t, "q1", mirrored[0].Query)
	assert.Equal(t, fmt.Sprintf("q%d", MaxSearchHistory), mirrored[len(mirrored)-1].Query)

	reloaded := newAnalyticsFixture(t, store)
	assert.Equal(t, MaxSearchHistory, reloaded.svc.SearchSummary(1).TotalSearches)
}

func TestAnalytics_SearchSummaryLargeWindow(t *testing.T) {
	f := newAnalyticsFixture(t, nil)
	require.NoError(t, f.svc.Record(context.Background(), domain.Event{
		ID:        "old-search",
		Name:      domain.EventPropertySearch,
		Data:      map[string]any{"query": "cottage", "result_count": 2},
		Timestamp: analyticsNow.Add(-400 * 24 * time.Hour),
	}))

	assert.Equal(t, 1, f.svc.SearchSummary(1_000_000_000).TotalSearches)
	assert.Equal(t, 1, f.svc.SearchSummary(MaxSearchDays).TotalSearches)
}

func TestIntFrom(t *testing.T) {
	for _, v := range []any{7, int64(7), float64(7), json.Number("7"), " 7 "} {
		n, ok := intFrom(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 7, n)
	}
	for _, v := range []any{nil, 7.5, "seven", true} {
		_, ok := intFrom(v)
		assert.False(t, ok, "%v", v)
	}
}
