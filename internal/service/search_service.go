package service

import (
	"context"
	"fmt"

	"go-property-listing/internal/model"
	"go-property-listing/internal/search"
)

type searcher interface {
	Search(ctx context.Context, body map[string]any) (*search.Response, error)
}

// SearchService validates filter requests, builds the index query and
// normalizes the raw hits back into canonical properties.
type SearchService struct {
	backend searcher
}

func NewSearchService(backend searcher) *SearchService {
	return &SearchService{backend: backend}
}

func (s *SearchService) Search(ctx context.Context, params model.PropertySearchParams) (model.PropertySearchResult, error) {
	// Validation failures never reach the backend.
	if err := params.Validate(); err != nil {
		return model.PropertySearchResult{}, err
	}

	res, err := s.backend.Search(ctx, search.BuildQuery(params))
	if err != nil {
		return model.PropertySearchResult{}, err
	}

	items := make([]model.Property, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		property, err := search.NormalizeSource(hit.Source)
		if err != nil {
			return model.PropertySearchResult{}, fmt.Errorf("normalize search hit: %w", err)
		}
		items = append(items, property)
	}

	return model.PropertySearchResult{
		Items:   items,
		Total:   search.NormalizeTotal(res.Hits.Total),
		Page:    params.Page,
		PerPage: params.PerPage,
	}, nil
}
