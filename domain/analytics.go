package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

type EventName string

const (
	EventMortgageCalculation EventName = "mortgage_calculation"
	EventPropertyView        EventName = "property_view"
	EventPropertySearch      EventName = "property_search"
	EventSaveProperty        EventName = "save_property"
	EventShareProperty       EventName = "share_property"
	EventGetDirections       EventName = "get_directions"
	EventContactFormSubmit   EventName = "contact_form_submit"
	EventFilterChange        EventName = "filter_change"
	EventMortgageForProperty EventName = "mortgage_calculation_requested"
	EventScrollDepth         EventName = "scroll_depth"
	EventSessionDuration     EventName = "session_duration"
)

type Event struct {
	ID        string         `json:"id"`
	Name      EventName      `json:"name"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"sessionId,omitempty"`
}

type InteractionCounts struct {
	Inquiries           int `json:"inquiries"`
	CalculatorUses      int `json:"calculatorUses"`
	PropertiesViewed    int `json:"propertiesViewed"`
	Searches            int `json:"searches"`
	PropertiesSaved     int `json:"propertiesSaved"`
	DirectionsRequested int `json:"directionsRequested"`
}

type PropertyEventKind string

const (
	PropertyEventView       PropertyEventKind = "view"
	PropertyEventSave       PropertyEventKind = "save"
	PropertyEventShare      PropertyEventKind = "share"
	PropertyEventDirections PropertyEventKind = "directions"
	PropertyEventContact    PropertyEventKind = "contact"
)

type PropertyStats struct {
	Views           int       `json:"views"`
	Saves           int       `json:"saves"`
	Shares          int       `json:"shares"`
	Directions      int       `json:"directions"`
	ContactRequests int       `json:"contactRequests"`
	LastViewed      time.Time `json:"lastViewed"`
}

type TopProperty struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Views          int    `json:"views"`
	Saves          int    `json:"saves"`
	EngagementRate int    `json:"engagementRate"`
}

type AnalyticsSummary struct {
	TotalProperties         int            `json:"totalProperties"`
	TotalViews              int            `json:"totalViews"`
	TotalSaves              int            `json:"totalSaves"`
	TotalShares             int            `json:"totalShares"`
	TotalDirections         int            `json:"totalDirections"`
	TotalContactRequests    int            `json:"totalContactRequests"`
	AveragePrice            int64          `json:"averagePrice"`
	TopPerformingProperties []TopProperty  `json:"topPerformingProperties"`
	LocationBreakdown       map[string]int `json:"locationBreakdown"`
	TypeBreakdown           map[string]int `json:"typeBreakdown"`
}

type SearchRecord struct {
	Query       string         `json:"query"`
	Filter      PropertyFilter `json:"filter"`
	ResultCount int            `json:"resultCount"`
	Timestamp   time.Time      `json:"timestamp"`
	Successful  bool           `json:"successful"`
}

type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type SearchSummary struct {
	TotalSearches      int                `json:"totalSearches"`
	SuccessfulSearches int                `json:"successfulSearches"`
	SuccessRate        float64            `json:"successRate"`
	PopularQueries     []QueryCount       `json:"popularQueries"`
	FilterUsage        map[string]int     `json:"filterUsage"`
	DailySearches      map[civil.Date]int `json:"dailySearches"`
}
