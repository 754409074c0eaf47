package search

import (
	"go-property-listing/internal/model"
)

var sortFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"price":      "price",
	"area_sqft":  "area_sqft",
}

// BuildQuery translates validated search params into an Elasticsearch
// request body. It is a pure function with no I/O.
func BuildQuery(p model.PropertySearchParams) map[string]any {
	must := make([]any, 0, 2)
	filters := make([]any, 0, 8)

	if p.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query": p.Query,
				"fields": []string{
					"title^3",
					"description^2",
					"address",
					"city",
					"state",
					"zip_code",
					"country",
				},
				"fuzziness": "AUTO",
				"type":      "best_fields",
			},
		})
	}

	if p.Location != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  p.Location,
				"fields": []string{"city", "state", "country", "zip_code"},
				"type":   "phrase",
			},
		})
	}

	// Text fields filter on their keyword subfield; exact-match fields
	// filter directly.
	if p.City != "" {
		filters = append(filters, term("city.keyword", p.City))
	}
	if p.State != "" {
		filters = append(filters, term("state.keyword", p.State))
	}
	if p.Country != "" {
		filters = append(filters, term("country.keyword", p.Country))
	}
	if p.ZipCode != "" {
		filters = append(filters, term("zip_code.keyword", p.ZipCode))
	}
	if p.PropertyType != "" {
		filters = append(filters, term("property_type.keyword", p.PropertyType))
	}
	if p.Status != "" {
		filters = append(filters, term("status.keyword", p.Status))
	}
	if p.PostedBy != nil {
		filters = append(filters, term("posted_by", *p.PostedBy))
	}
	if p.IsFeatured != nil {
		filters = append(filters, term("is_featured", *p.IsFeatured))
	}

	if clause, ok := rangeClause("price", floatBound(p.MinPrice), floatBound(p.MaxPrice)); ok {
		filters = append(filters, clause)
	}
	if clause, ok := rangeClause("bedrooms", intBound(p.MinBedrooms), intBound(p.MaxBedrooms)); ok {
		filters = append(filters, clause)
	}
	if clause, ok := rangeClause("bathrooms", floatBound(p.MinBathrooms), floatBound(p.MaxBathrooms)); ok {
		filters = append(filters, clause)
	}
	if clause, ok := rangeClause("area_sqft", floatBound(p.MinArea), floatBound(p.MaxArea)); ok {
		filters = append(filters, clause)
	}
	if clause, ok := rangeClause("year_built", intBound(p.MinYearBuilt), intBound(p.MaxYearBuilt)); ok {
		filters = append(filters, clause)
	}

	boolQuery := map[string]any{}
	if len(must) > 0 {
		boolQuery["must"] = must
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	var query map[string]any
	if len(boolQuery) == 0 {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		query = map[string]any{"bool": boolQuery}
	}

	body := map[string]any{
		"query":            query,
		"from":             (p.Page - 1) * p.PerPage,
		"size":             p.PerPage,
		"sort":             []any{map[string]any{resolveSortField(p.SortBy): map[string]any{"order": resolveSortOrder(p.SortOrder)}}},
		"track_total_hits": true,
	}

	// Highlights are UI emphasis only; they never affect ranking.
	if p.Query != "" {
		body["highlight"] = map[string]any{
			"fields": map[string]any{
				"title":       map[string]any{},
				"description": map[string]any{},
				"address":     map[string]any{},
			},
			"fragment_size":       150,
			"number_of_fragments": 1,
		}
	}

	return body
}

func term(field string, value any) map[string]any {
	return map[string]any{"term": map[string]any{field: value}}
}

func rangeClause(field string, gte any, lte any) (map[string]any, bool) {
	bounds := map[string]any{}
	if gte != nil {
		bounds["gte"] = gte
	}
	if lte != nil {
		bounds["lte"] = lte
	}
	if len(bounds) == 0 {
		return nil, false
	}

	return map[string]any{"range": map[string]any{field: bounds}}, true
}

func floatBound(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intBound(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// resolveSortField checks the requested key against the allow-list;
// anything unrecognized falls back to created_at.
func resolveSortField(sortBy string) string {
	if field, ok := sortFields[sortBy]; ok {
		return field
	}
	return "created_at"
}

func resolveSortOrder(order string) string {
	if order == model.SortOrderAsc {
		return model.SortOrderAsc
	}
	return model.SortOrderDesc
}
