package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"go-property-listing/internal/model"
)

type Hit struct {
	Source    map[string]any      `json:"_source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

type Response struct {
	Hits struct {
		Total any   `json:"total"`
		Hits  []Hit `json:"hits"`
	} `json:"hits"`
}

// Client wraps a shared Elasticsearch connection. It is created once at
// startup and reused across requests.
type Client struct {
	es      *elasticsearch.Client
	index   string
	timeout time.Duration
}

func NewClient(addresses []string, username string, password string, index string, timeout time.Duration) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	slog.Info("elasticsearch client ready", "index", index, "addresses", len(addresses))
	return &Client{es: es, index: index, timeout: timeout}, nil
}

// Search runs the given request body against the configured index. The
// call is bounded by the client timeout; unreachable or failing backends
// surface as model.ErrBackendUnavailable.
func (c *Client) Search(ctx context.Context, body map[string]any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", errors.Join(model.ErrBackendUnavailable, err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search response %s: %w", res.Status(), model.ErrBackendUnavailable)
	}

	var parsed Response
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &parsed, nil
}
