package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go-property-listing/internal/model"
	"go-property-listing/internal/service"
	"go-property-listing/pkg/apierror"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.search.Search(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	totalPages := 0
	if result.PerPage > 0 {
		totalPages = (result.Total + result.PerPage - 1) / result.PerPage
	}

	writeSuccess(w, http.StatusOK, result.Items, &model.Meta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		Total:      result.Total,
		TotalPages: totalPages,
	})
}

func parseSearchParams(values url.Values) (model.PropertySearchParams, error) {
	params := model.PropertySearchParams{
		Query:        strings.TrimSpace(values.Get("q")),
		Location:     strings.TrimSpace(values.Get("location")),
		City:         strings.TrimSpace(values.Get("city")),
		State:        strings.TrimSpace(values.Get("state")),
		Country:      strings.TrimSpace(values.Get("country")),
		ZipCode:      strings.TrimSpace(values.Get("zip_code")),
		PropertyType: strings.TrimSpace(values.Get("property_type")),
		Status:       strings.TrimSpace(values.Get("status")),
		SortBy:       strings.TrimSpace(values.Get("sort_by")),
		SortOrder:    strings.TrimSpace(values.Get("sort_order")),
		Page:         1,
		PerPage:      model.DefaultPerPage,
	}

	if params.SortOrder == "" {
		params.SortOrder = model.SortOrderDesc
	}

	var err error
	if params.Page, err = paramInt(values, "page", 1); err != nil {
		return params, err
	}
	if params.PerPage, err = paramInt(values, "per_page", model.DefaultPerPage); err != nil {
		return params, err
	}

	if params.PostedBy, err = paramInt64Ptr(values, "posted_by"); err != nil {
		return params, err
	}
	if params.IsFeatured, err = paramBoolPtr(values, "is_featured"); err != nil {
		return params, err
	}

	if params.MinPrice, err = paramFloatPtr(values, "min_price"); err != nil {
		return params, err
	}
	if params.MaxPrice, err = paramFloatPtr(values, "max_price"); err != nil {
		return params, err
	}
	if params.MinBedrooms, err = paramIntPtr(values, "min_bedrooms"); err != nil {
		return params, err
	}
	if params.MaxBedrooms, err = paramIntPtr(values, "max_bedrooms"); err != nil {
		return params, err
	}
	if params.MinBathrooms, err = paramFloatPtr(values, "min_bathrooms"); err != nil {
		return params, err
	}
	if params.MaxBathrooms, err = paramFloatPtr(values, "max_bathrooms"); err != nil {
		return params, err
	}
	if params.MinArea, err = paramFloatPtr(values, "min_area"); err != nil {
		return params, err
	}
	if params.MaxArea, err = paramFloatPtr(values, "max_area"); err != nil {
		return params, err
	}
	if params.MinYearBuilt, err = paramIntPtr(values, "min_year_built"); err != nil {
		return params, err
	}
	if params.MaxYearBuilt, err = paramIntPtr(values, "max_year_built"); err != nil {
		return params, err
	}

	return params, nil
}

func paramInt(values url.Values, name string, fallback int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.BadRequest(name+" must be an integer", raw)
	}
	return parsed, nil
}

func paramIntPtr(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apierror.BadRequest(name+" must be an integer", raw)
	}
	return &parsed, nil
}

func paramInt64Ptr(values url.Values, name string) (*int64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apierror.BadRequest(name+" must be an integer", raw)
	}
	return &parsed, nil
}

func paramFloatPtr(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apierror.BadRequest(name+" must be a number", raw)
	}
	return &parsed, nil
}

func paramBoolPtr(values url.Values, name string) (*bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apierror.BadRequest(name+" must be true or false", raw)
	}
	return &parsed, nil
}
