package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-property-listing/internal/model"
)

func baseParams() model.PropertySearchParams {
	return model.PropertySearchParams{
		SortOrder: model.SortOrderDesc,
		Page:      1,
		PerPage:   10,
	}
}

func TestBuildQueryEmpty(t *testing.T) {
	t.Parallel()

	body := BuildQuery(baseParams())

	require.Equal(t, map[string]any{"match_all": map[string]any{}}, body["query"])
	require.Equal(t, 0, body["from"])
	require.Equal(t, 10, body["size"])
	require.Equal(t, true, body["track_total_hits"])
	require.NotContains(t, body, "highlight")

	sort, ok := body["sort"].([]any)
	require.True(t, ok)
	require.Len(t, sort, 1)
	require.Equal(t, map[string]any{"created_at": map[string]any{"order": "desc"}}, sort[0])
}

func TestBuildQueryFullText(t *testing.T) {
	t.Parallel()

	params := baseParams()
	params.Query = "cozy cottage"

	body := BuildQuery(params)

	boolQuery := body["query"].(map[string]any)["bool"].(map[string]any)
	must := boolQuery["must"].([]any)
	require.Len(t, must, 1)

	multiMatch := must[0].(map[string]any)["multi_match"].(map[string]any)
	require.Equal(t, "cozy cottage", multiMatch["query"])
	require.Equal(t, "AUTO", multiMatch["fuzziness"])
	require.Contains(t, multiMatch["fields"].([]string), "title^3")

	highlight := body["highlight"].(map[string]any)
	require.Equal(t, 150, highlight["fragment_size"])
	require.Equal(t, 1, highlight["number_of_fragments"])
}

func TestBuildQueryLocation(t *testing.T) {
	t.Parallel()

	params := baseParams()
	params.Location = "Austin TX"

	body := BuildQuery(params)

	must := body["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
	require.Len(t, must, 1)

	multiMatch := must[0].(map[string]any)["multi_match"].(map[string]any)
	require.Equal(t, "phrase", multiMatch["type"])
	require.Equal(t, []string{"city", "state", "country", "zip_code"}, multiMatch["fields"])
}

func TestBuildQueryFilters(t *testing.T) {
	t.Parallel()

	postedBy := int64(7)
	featured := true

	params := baseParams()
	params.City = "Austin"
	params.PropertyType = model.PropertyTypeHouse
	params.Status = model.PropertyStatusAvailable
	params.PostedBy = &postedBy
	params.IsFeatured = &featured

	body := BuildQuery(params)

	filters := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
	require.Contains(t, filters, map[string]any{"term": map[string]any{"city.keyword": "Austin"}})
	require.Contains(t, filters, map[string]any{"term": map[string]any{"property_type.keyword": "house"}})
	require.Contains(t, filters, map[string]any{"term": map[string]any{"status.keyword": "available"}})
	require.Contains(t, filters, map[string]any{"term": map[string]any{"posted_by": int64(7)}})
	require.Contains(t, filters, map[string]any{"term": map[string]any{"is_featured": true}})
}

func TestBuildQueryRanges(t *testing.T) {
	t.Parallel()

	t.Run("both bounds present", func(t *testing.T) {
		minPrice, maxPrice := 100000.0, 250000.0

		params := baseParams()
		params.MinPrice = &minPrice
		params.MaxPrice = &maxPrice

		filters := BuildQuery(params)["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
		require.Contains(t, filters, map[string]any{
			"range": map[string]any{"price": map[string]any{"gte": 100000.0, "lte": 250000.0}},
		})
	})

	t.Run("single bound present", func(t *testing.T) {
		minBedrooms := 2

		params := baseParams()
		params.MinBedrooms = &minBedrooms

		filters := BuildQuery(params)["query"].(map[string]any)["bool"].(map[string]any)["filter"].([]any)
		require.Contains(t, filters, map[string]any{
			"range": map[string]any{"bedrooms": map[string]any{"gte": 2}},
		})
	})

	t.Run("absent bounds emit no clause", func(t *testing.T) {
		body := BuildQuery(baseParams())
		require.Equal(t, map[string]any{"match_all": map[string]any{}}, body["query"])
	})
}

func TestBuildQuerySorting(t *testing.T) {
	t.Parallel()

	t.Run("allow-listed field ascending", func(t *testing.T) {
		params := baseParams()
		params.SortBy = "price"
		params.SortOrder = model.SortOrderAsc

		sort := BuildQuery(params)["sort"].([]any)
		require.Equal(t, map[string]any{"price": map[string]any{"order": "asc"}}, sort[0])
	})

	t.Run("unrecognized field falls back to created_at", func(t *testing.T) {
		params := baseParams()
		params.SortBy = "password_hash"

		sort := BuildQuery(params)["sort"].([]any)
		require.Equal(t, map[string]any{"created_at": map[string]any{"order": "desc"}}, sort[0])
	})

	t.Run("unrecognized order falls back to desc", func(t *testing.T) {
		params := baseParams()
		params.SortBy = "price"
		params.SortOrder = "sideways"

		sort := BuildQuery(params)["sort"].([]any)
		require.Equal(t, map[string]any{"price": map[string]any{"order": "desc"}}, sort[0])
	})
}

func TestBuildQueryPagination(t *testing.T) {
	t.Parallel()

	params := baseParams()
	params.Page = 3
	params.PerPage = 25

	body := BuildQuery(params)
	require.Equal(t, 50, body["from"])
	require.Equal(t, 25, body["size"])
}
