package domain

type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeCondo     PropertyType = "condo"
	TypeTownhouse PropertyType = "townhouse"

	// TypeAll is the filter value that disables type filtering.
	TypeAll PropertyType = "all"
)

type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Property struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Type        PropertyType `json:"type"`
	Price       int64        `json:"price"`
	Location    string       `json:"location"`
	Address     string       `json:"address"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        int          `json:"area"`
	YearBuilt   int          `json:"yearBuilt"`
	Featured    bool         `json:"featured"`
	Status      string       `json:"status"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Features    []string     `json:"features"`
	Agent       Agent        `json:"agent"`
	Coordinates Coordinates  `json:"coordinates"`
}

type PropertyTypeOption struct {
	Value PropertyType `json:"value"`
	Label string       `json:"label"`
	Icon  string       `json:"icon"`
}

// PriceRange bounds are inclusive. A zero Max means no upper bound.
type PriceRange struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max,omitempty"`
}

func (r PriceRange) Contains(price int64) bool {
	if price < r.Min {
		return false
	}
	return r.Max == 0 || price <= r.Max
}

// PropertyFilter is the set of listing criteria. Zero values disable a criterion.
type PropertyFilter struct {
	Type       PropertyType `json:"type,omitempty"`
	PriceRange string       `json:"priceRange,omitempty"`
	Location   string       `json:"location,omitempty"`
	Bedrooms   int          `json:"bedrooms,omitempty"`
	Query      string       `json:"query,omitempty"`
}

func (f PropertyFilter) IsEmpty() bool {
	return (f.Type == "" || f.Type == TypeAll) &&
		f.PriceRange == "" && f.Location == "" && f.Bedrooms == 0 && f.Query == ""
}

// Page is one slice of a listing along with how many results remain hidden.
type Page struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
	Remaining  int        `json:"remaining"`
}
