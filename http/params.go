package http

import (
	"net/http"
	"strconv"

	"realty-agent/domain"
	"realty-agent/service"
)

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, &service.ValidationError{Field: "id", Message: "invalid property id", Err: service.ErrInvalidRequest}
	}
	return id, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.ValidationError{Field: key, Message: key + " must be an integer", Err: service.ErrInvalidRequest}
	}
	return n, nil
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &service.ValidationError{Field: key, Message: key + " must be a number", Err: service.ErrInvalidRequest}
	}
	return &f, nil
}

func filterFromQuery(r *http.Request) (domain.PropertyFilter, error) {
	q := r.URL.Query()
	bedrooms, err := queryInt(r, "bedrooms", 0)
	if err != nil {
		return domain.PropertyFilter{}, err
	}
	return domain.PropertyFilter{
		Type:       domain.PropertyType(q.Get("type")),
		PriceRange: q.Get("priceRange"),
		Location:   q.Get("location"),
		Bedrooms:   bedrooms,
		Query:      q.Get("q"),
	}, nil
}
