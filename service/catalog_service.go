package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"realty-agent/domain"
	"realty-agent/repository"
)

type CatalogService struct {
	repo    repository.PropertyRepository
	rng     Rand
	tracker Tracker
	logger  *zap.Logger
}

func NewCatalogService(
	repo repository.PropertyRepository,
	rng Rand,
	tracker Tracker,
	logger *zap.Logger,
) *CatalogService {
	if tracker == nil {
		tracker = NopTracker{}
	}
	return &CatalogService{repo: repo, rng: rng, tracker: tracker, logger: logger}
}

func (s *CatalogService) All() []domain.Property {
	return s.repo.All()
}

func (s *CatalogService) Featured() []domain.Property {
	return slices.DeleteFunc(s.repo.All(), func(p domain.Property) bool {
		return !p.Featured
	})
}

func (s *CatalogService) ByID(id int) (domain.Property, error) {
	p, ok := s.repo.ByID(id)
	if !ok {
		return domain.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

// View looks up a listing and records a property_view event for it.
func (s *CatalogService) View(ctx context.Context, id int) (domain.Property, error) {
	p, err := s.ByID(id)
	if err != nil {
		return p, err
	}
	s.tracker.Track(ctx, domain.EventPropertyView, map[string]any{
		"property_id":   p.ID,
		"property_type": string(p.Type),
	})
	return p, nil
}

func (s *CatalogService) PriceRange(value string) (domain.PriceRange, bool) {
	for _, r := range repository.PriceRanges() {
		if r.Value == value {
			return r, true
		}
	}
	return domain.PriceRange{}, false
}

// Filter keeps the listings matching every criterion set in f. An unknown
// price range key does not filter anything out.
func (s *CatalogService) Filter(f domain.PropertyFilter) []domain.Property {
	priceRange, hasRange := s.PriceRange(f.PriceRange)
	location := strings.ToLower(strings.TrimSpace(f.Location))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	return slices.DeleteFunc(s.repo.All(), func(p domain.Property) bool {
		if f.Type != "" && f.Type != domain.TypeAll && p.Type != f.Type {
			return true
		}
		if hasRange && !priceRange.Contains(p.Price) {
			return true
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			return true
		}
		if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
			return true
		}
		if query != "" && !strings.Contains(searchableText(p), query) {
			return true
		}
		return false
	})
}

func searchableText(p domain.Property) string {
	return strings.ToLower(strings.Join([]string{
		p.Title, p.Location, p.Description, strings.Join(p.Features, " "),
	}, " "))
}

// Sort orders a copy of props by a "field-direction" key such as "price-desc".
// Fields are price, date (year built), size and title. An unknown field keeps
// the input order.
func (s *CatalogService) Sort(props []domain.Property, sortBy string) []domain.Property {
	return SortProperties(props, sortBy)
}

func SortProperties(props []domain.Property, sortBy string) []domain.Property {
	if sortBy == "" {
		sortBy = domain.DefaultSortBy
	}
	field, direction, _ := strings.Cut(sortBy, "-")

	var compare func(a, b domain.Property) int
	switch field {
	case "price":
		compare = func(a, b domain.Property) int { return cmp.Compare(a.Price, b.Price) }
	case "date":
		compare = func(a, b domain.Property) int { return cmp.Compare(a.YearBuilt, b.YearBuilt) }
	case "size":
		compare = func(a, b domain.Property) int { return cmp.Compare(a.Area, b.Area) }
	case "title":
		compare = func(a, b domain.Property) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	default:
		return slices.Clone(props)
	}

	out := slices.Clone(props)
	if direction == "desc" {
		slices.SortStableFunc(out, func(a, b domain.Property) int { return -compare(a, b) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

// Search filters and sorts the catalog and records the search for analytics.
func (s *CatalogService) Search(
	ctx context.Context,
	f domain.PropertyFilter,
	sortBy string,
) []domain.Property {
	results := s.Sort(s.Filter(f), sortBy)

	s.logger.Debug("property search",
		zap.Any("filter", f),
		zap.String("sort", sortBy),
		zap.Int("results", len(results)))
	s.tracker.Track(ctx, domain.EventPropertySearch, map[string]any{
		"query":        f.Query,
		"filter":       f,
		"result_count": len(results),
	})
	return results
}

// Similar returns up to limit other listings of the same type or within
// SimilarPriceWindow of the listing's price, in catalog order.
func (s *CatalogService) Similar(id, limit int) ([]domain.Property, error) {
	target, err := s.ByID(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	out := make([]domain.Property, 0, limit)
	for _, p := range s.repo.All() {
		if len(out) == limit {
			break
		}
		if p.ID == target.ID {
			continue
		}
		diff := p.Price - target.Price
		if diff < 0 {
			diff = -diff
		}
		if p.Type == target.Type || diff < SimilarPriceWindow {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CatalogService) Random(limit int) []domain.Property {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}
	all := s.repo.All()
	perm := s.rng.Perm(len(all))
	if limit > len(all) {
		limit = len(all)
	}
	out := make([]domain.Property, 0, limit)
	for _, i := range perm[:limit] {
		out = append(out, all[i])
	}
	return out
}

// Page returns the slice of the listing grid visible in state.
func (s *CatalogService) Page(state domain.BrowseState) domain.Page {
	results := s.Sort(s.Filter(state.Filter()), state.SortBy)

	size := state.PageSize
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	page := max(state.Page, 1)
	shown := min(page*size, len(results))

	return domain.Page{
		Properties: results[:shown],
		Total:      len(results),
		Remaining:  len(results) - shown,
	}
}

func (s *CatalogService) Types() []domain.PropertyTypeOption {
	return repository.PropertyTypes()
}

func (s *CatalogService) PriceRanges() []domain.PriceRange {
	return repository.PriceRanges()
}

func (s *CatalogService) Locations() []string {
	return repository.Locations()
}
