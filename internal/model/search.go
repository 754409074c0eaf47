package model

import "fmt"

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PropertySearchParams is the validated filter object handed to the query
// builder. Nil pointer fields mean "not supplied".
type PropertySearchParams struct {
	Query        string
	Location     string
	City         string
	State        string
	Country      string
	ZipCode      string
	PropertyType string
	Status       string
	PostedBy     *int64
	IsFeatured   *bool
	MinPrice     *float64
	MaxPrice     *float64
	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *float64
	MaxBathrooms *float64
	MinArea      *float64
	MaxArea      *float64
	MinYearBuilt *int
	MaxYearBuilt *int
	SortBy       string
	SortOrder    string
	Page         int
	PerPage      int
}

type PropertySearchResult struct {
	Items   []Property `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// Validate checks pagination bounds and every paired min/max constraint.
// It must pass before any search query is built.
func (p *PropertySearchParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		return fmt.Errorf("%w: per_page must be between 1 and %d", ErrInvalidInput, MaxPerPage)
	}
	if p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: sort_order must be asc or desc", ErrInvalidInput)
	}

	if p.MinPrice != nil && *p.MinPrice < 0 {
		return fmt.Errorf("%w: min_price must be >= 0", ErrInvalidInput)
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return fmt.Errorf("%w: max_price must be >= 0", ErrInvalidInput)
	}
	if p.MinPrice != nil && p.MaxPrice != nil && *p.MaxPrice < *p.MinPrice {
		return fmt.Errorf("%w: max_price cannot be less than min_price", ErrInvalidInput)
	}
	if p.MinBedrooms != nil && p.MaxBedrooms != nil && *p.MaxBedrooms < *p.MinBedrooms {
		return fmt.Errorf("%w: max_bedrooms cannot be less than min_bedrooms", ErrInvalidInput)
	}
	if p.MinBathrooms != nil && p.MaxBathrooms != nil && *p.MaxBathrooms < *p.MinBathrooms {
		return fmt.Errorf("%w: max_bathrooms cannot be less than min_bathrooms", ErrInvalidInput)
	}
	if p.MinArea != nil && p.MaxArea != nil && *p.MaxArea < *p.MinArea {
		return fmt.Errorf("%w: max_area cannot be less than min_area", ErrInvalidInput)
	}
	if p.MinYearBuilt != nil && p.MaxYearBuilt != nil && *p.MaxYearBuilt < *p.MinYearBuilt {
		return fmt.Errorf("%w: max_year_built cannot be less than min_year_built", ErrInvalidInput)
	}

	return nil
}
