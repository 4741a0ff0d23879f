package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	start := NewBrowseState()
	start.Page = 3

	tests := []struct {
		name   string
		state  BrowseState
		action BrowseAction
		want   func(BrowseState) BrowseState
	}{
		{
			name:   "type filter clears search and paging",
			state:  BrowseState{TypeFilter: TypeAll, Search: PropertyFilter{Query: "loft"}, SortBy: "price-desc", Page: 3, PageSize: 6},
			action: BrowseAction{Type: ActionSetTypeFilter, TypeFilter: TypeCondo},
			want: func(s BrowseState) BrowseState {
				s.TypeFilter = TypeCondo
				s.Search = PropertyFilter{}
				s.Page = 1
				return s
			},
		},
		{
			name:   "empty type filter means all",
			state:  BrowseState{TypeFilter: TypeHouse, Page: 1, PageSize: 6},
			action: BrowseAction{Type: ActionSetTypeFilter},
			want: func(s BrowseState) BrowseState {
				s.TypeFilter = TypeAll
				return s
			},
		},
		{
			name:   "search resets page",
			state:  start,
			action: BrowseAction{Type: ActionSearch, Search: PropertyFilter{Bedrooms: 3}},
			want: func(s BrowseState) BrowseState {
				s.Search = PropertyFilter{Bedrooms: 3}
				s.Page = 1
				return s
			},
		},
		{
			name:   "sort",
			state:  start,
			action: BrowseAction{Type: ActionSort, SortBy: "size-desc"},
			want: func(s BrowseState) BrowseState {
				s.SortBy = "size-desc"
				s.Page = 1
				return s
			},
		},
		{
			name:   "load more",
			state:  start,
			action: BrowseAction{Type: ActionLoadMore},
			want: func(s BrowseState) BrowseState {
				s.Page = 4
				return s
			},
		},
		{
			name:   "toggle theme",
			state:  start,
			action: BrowseAction{Type: ActionToggleTheme},
			want: func(s BrowseState) BrowseState {
				s.Theme = ThemeDark
				return s
			},
		},
		{
			name:   "open property closes menu",
			state:  BrowseState{MenuOpen: true, Page: 1, PageSize: 6},
			action: BrowseAction{Type: ActionOpenProperty, PropertyID: 4},
			want: func(s BrowseState) BrowseState {
				s.MenuOpen = false
				s.SelectedPropertyID = 4
				return s
			},
		},
		{
			name:   "close property",
			state:  BrowseState{SelectedPropertyID: 4, Page: 1, PageSize: 6},
			action: BrowseAction{Type: ActionCloseProperty},
			want: func(s BrowseState) BrowseState {
				s.SelectedPropertyID = 0
				return s
			},
		},
		{
			name:   "unknown action",
			state:  start,
			action: BrowseAction{Type: "fly"},
			want:   func(s BrowseState) BrowseState { return s },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.state, tt.action)
			assert.Equal(t, tt.want(tt.state), got)
		})
	}
}

func TestBrowseActionType_Valid(t *testing.T) {
	for _, a := range []BrowseActionType{ActionSetTypeFilter, ActionSearch, ActionSort, ActionLoadMore,
		ActionReset, ActionToggleTheme, ActionToggleMenu, ActionOpenProperty, ActionCloseProperty} {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, BrowseActionType("").Valid())
	assert.False(t, BrowseActionType("jump_to_page").Valid())
}

func TestReduce_ResetKeepsPreferences(t *testing.T) {
	s := NewBrowseState()
	s = Reduce(s, BrowseAction{Type: ActionToggleTheme})
	s = Reduce(s, BrowseAction{Type: ActionSetTypeFilter, TypeFilter: TypeHouse})
	s = Reduce(s, BrowseAction{Type: ActionLoadMore})
	s.PageSize = 12

	got := Reduce(s, BrowseAction{Type: ActionReset})

	want := NewBrowseState()
	want.Theme = ThemeDark
	want.PageSize = 12
	assert.Equal(t, want, got)
}

func TestReduce_ToggleMenuTwice(t *testing.T) {
	s := Reduce(NewBrowseState(), BrowseAction{Type: ActionToggleMenu})
	assert.True(t, s.MenuOpen)
	assert.False(t, Reduce(s, BrowseAction{Type: ActionToggleMenu}).MenuOpen)
}

func TestBrowseState_Filter(t *testing.T) {
	s := NewBrowseState()
	s.TypeFilter = TypeCondo
	s.Search = PropertyFilter{Location: "Harbor"}
	assert.Equal(t, PropertyFilter{Type: TypeCondo, Location: "Harbor"}, s.Filter())

	s.Search.Type = TypeHouse
	assert.Equal(t, TypeHouse, s.Filter().Type)
}

func TestPriceRange_Contains(t *testing.T) {
	r := PriceRange{Min: 500_000, Max: 750_000}
	assert.True(t, r.Contains(500_000))
	assert.True(t, r.Contains(750_000))
	assert.False(t, r.Contains(750_001))
	assert.False(t, r.Contains(499_999))

	open := PriceRange{Min: 1_500_000}
	assert.True(t, open.Contains(10_000_000))
}

func TestLoanInputs_LoanAmount(t *testing.T) {
	assert.Equal(t, 600000.0, LoanInputs{HomePrice: 750000, DownPayment: 150000}.LoanAmount())
}
