package search

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go-property-listing/internal/model"
)

// NormalizeSource reshapes a raw index document into the canonical
// property shape. The index is populated out-of-band and is not
// consistent about field types:
//   - image_urls may be a JSON-encoded array string, a comma-separated
//     string, or an actual list
//   - posted_by may be a numeric string
//   - amenities is never indexed and defaults to empty
func NormalizeSource(source map[string]any) (model.Property, error) {
	doc := make(map[string]any, len(source)+1)
	for k, v := range source {
		doc[k] = v
	}

	if raw, ok := doc["image_urls"].(string); ok {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			doc["image_urls"] = urls
		} else {
			urls = urls[:0]
			for _, part := range strings.Split(raw, ",") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					urls = append(urls, trimmed)
				}
			}
			doc["image_urls"] = urls
		}
	}

	if raw, ok := doc["posted_by"].(string); ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			doc["posted_by"] = n
		}
	}

	if v, ok := doc["amenities"]; !ok || v == nil {
		doc["amenities"] = []string{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return model.Property{}, fmt.Errorf("encode normalized source: %w", err)
	}

	var p model.Property
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Property{}, fmt.Errorf("decode source into property: %w", err)
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	return p, nil
}

// NormalizeTotal accepts the hit count either as a bare number or as the
// newer {"value": n, "relation": ...} object and returns a plain int.
func NormalizeTotal(raw any) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case map[string]any:
		return NormalizeTotal(v["value"])
	default:
		return 0
	}
}
