package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go-property-listing/internal/model"
	"go-property-listing/internal/search"
)

type recordingSearcher struct {
	calls    int
	lastBody map[string]any
	response *search.Response
	err      error
}

func (r *recordingSearcher) Search(_ context.Context, body map[string]any) (*search.Response, error) {
	r.calls++
	r.lastBody = body
	if r.err != nil {
		return nil, r.err
	}
	return r.response, nil
}

func searchResponse(total any, sources ...map[string]any) *search.Response {
	res := &search.Response{}
	res.Hits.Total = total
	for _, source := range sources {
		res.Hits.Hits = append(res.Hits.Hits, search.Hit{Source: source})
	}
	return res
}

func validSearchParams() model.PropertySearchParams {
	return model.PropertySearchParams{
		SortOrder: model.SortOrderDesc,
		Page:      1,
		PerPage:   10,
	}
}

func TestSearchServiceSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns normalized hits with pagination", func(t *testing.T) {
		backend := &recordingSearcher{response: searchResponse(
			map[string]any{"value": float64(2), "relation": "eq"},
			map[string]any{"id": float64(1), "title": "Cottage", "posted_by": "7"},
			map[string]any{"id": float64(2), "title": "Condo", "image_urls": "a.jpg, b.jpg"},
		)}
		svc := NewSearchService(backend)

		result, err := svc.Search(context.Background(), validSearchParams())
		require.NoError(t, err)
		require.Equal(t, 2, result.Total)
		require.Equal(t, 1, result.Page)
		require.Equal(t, 10, result.PerPage)
		require.Len(t, result.Items, 2)
		require.Equal(t, int64(7), result.Items[0].PostedBy)
		require.Equal(t, []string{"a.jpg", "b.jpg"}, result.Items[1].ImageURLs)
	})

	t.Run("invalid params never reach the backend", func(t *testing.T) {
		backend := &recordingSearcher{response: searchResponse(float64(0))}
		svc := NewSearchService(backend)

		minPrice, maxPrice := 100.0, 50.0
		params := validSearchParams()
		params.MinPrice = &minPrice
		params.MaxPrice = &maxPrice

		_, err := svc.Search(context.Background(), params)
		require.ErrorIs(t, err, model.ErrInvalidInput)
		require.Zero(t, backend.calls)
	})

	t.Run("bad pagination never reaches the backend", func(t *testing.T) {
		backend := &recordingSearcher{response: searchResponse(float64(0))}
		svc := NewSearchService(backend)

		params := validSearchParams()
		params.PerPage = 500

		_, err := svc.Search(context.Background(), params)
		require.ErrorIs(t, err, model.ErrInvalidInput)
		require.Zero(t, backend.calls)
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		backend := &recordingSearcher{err: model.ErrBackendUnavailable}
		svc := NewSearchService(backend)

		_, err := svc.Search(context.Background(), validSearchParams())
		require.ErrorIs(t, err, model.ErrBackendUnavailable)
	})

	t.Run("passes the built query body to the backend", func(t *testing.T) {
		backend := &recordingSearcher{response: searchResponse(float64(0))}
		svc := NewSearchService(backend)

		params := validSearchParams()
		params.Query = "cottage"
		params.Page = 2
		params.PerPage = 20

		_, err := svc.Search(context.Background(), params)
		require.NoError(t, err)
		require.Equal(t, 1, backend.calls)
		require.Equal(t, 20, backend.lastBody["from"])
		require.Equal(t, 20, backend.lastBody["size"])
		require.Contains(t, backend.lastBody, "highlight")
	})

	t.Run("empty result keeps items non-nil", func(t *testing.T) {
		backend := &recordingSearcher{response: searchResponse(float64(0))}
		svc := NewSearchService(backend)

		result, err := svc.Search(context.Background(), validSearchParams())
		require.NoError(t, err)
		require.NotNil(t, result.Items)
		require.Empty(t, result.Items)
	})
}
