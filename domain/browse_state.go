package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultPageSize = 6
	DefaultSortBy   = "price-asc"
)

// BrowseState is everything the listing grid needs to render for one visitor.
type BrowseState struct {
	TypeFilter         PropertyType   `json:"typeFilter"`
	Search             PropertyFilter `json:"search"`
	SortBy             string         `json:"sortBy"`
	Page               int            `json:"page"`
	PageSize           int            `json:"pageSize"`
	Theme              Theme          `json:"theme"`
	MenuOpen           bool           `json:"menuOpen"`
	SelectedPropertyID int            `json:"selectedPropertyId,omitempty"`
}

func NewBrowseState() BrowseState {
	return BrowseState{
		TypeFilter: TypeAll,
		SortBy:     DefaultSortBy,
		Page:       1,
		PageSize:   DefaultPageSize,
		Theme:      ThemeLight,
	}
}

// Filter merges the type button and the search form into one criteria set.
// The search form's type wins when both are set.
func (s BrowseState) Filter() PropertyFilter {
	f := s.Search
	if f.Type == "" || f.Type == TypeAll {
		f.Type = s.TypeFilter
	}
	return f
}

type BrowseActionType string

const (
	ActionSetTypeFilter BrowseActionType = "set_type_filter"
	ActionSearch        BrowseActionType = "search"
	ActionSort          BrowseActionType = "sort"
	ActionLoadMore      BrowseActionType = "load_more"
	ActionReset         BrowseActionType = "reset"
	ActionToggleTheme   BrowseActionType = "toggle_theme"
	ActionToggleMenu    BrowseActionType = "toggle_menu"
	ActionOpenProperty  BrowseActionType = "open_property"
	ActionCloseProperty BrowseActionType = "close_property"
)

// Valid reports whether t is one of the actions Reduce understands.
func (t BrowseActionType) Valid() bool {
	switch t {
	case ActionSetTypeFilter, ActionSearch, ActionSort, ActionLoadMore, ActionReset,
		ActionToggleTheme, ActionToggleMenu, ActionOpenProperty, ActionCloseProperty:
		return true
	}
	return false
}

type BrowseAction struct {
	Type       BrowseActionType `json:"type"`
	TypeFilter PropertyType     `json:"typeFilter,omitempty"`
	Search     PropertyFilter   `json:"search,omitempty"`
	SortBy     string           `json:"sortBy,omitempty"`
	PropertyID int              `json:"propertyId,omitempty"`
}

// Reduce returns the state that results from applying action to s.
// Unknown actions return s unchanged.
func Reduce(s BrowseState, action BrowseAction) BrowseState {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.Page <= 0 {
		s.Page = 1
	}

	switch action.Type {
	case ActionSetTypeFilter:
		s.TypeFilter = action.TypeFilter
		if s.TypeFilter == "" {
			s.TypeFilter = TypeAll
		}
		s.Search = PropertyFilter{}
		s.Page = 1
	case ActionSearch:
		s.Search = action.Search
		s.Page = 1
	case ActionSort:
		if action.SortBy != "" {
			s.SortBy = action.SortBy
		}
		s.Page = 1
	case ActionLoadMore:
		s.Page++
	case ActionReset:
		next := NewBrowseState()
		next.Theme = s.Theme
		next.PageSize = s.PageSize
		return next
	case ActionToggleTheme:
		if s.Theme == ThemeDark {
			s.Theme = ThemeLight
		} else {
			s.Theme = ThemeDark
		}
	case ActionToggleMenu:
		s.MenuOpen = !s.MenuOpen
	case ActionOpenProperty:
		s.SelectedPropertyID = action.PropertyID
		s.MenuOpen = false
	case ActionCloseProperty:
		s.SelectedPropertyID = 0
	}
	return s
}
