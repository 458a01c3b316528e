package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// LegacyClient fetches resource lists from the legacy storefront API.
// Every fetch carries a timeout, and a fetch superseded by a newer one
// for the same client reports stale so its result can be discarded
// instead of clobbering fresher data.
type LegacyClient struct {
	BaseURL    string
	HTTP       *http.Client
	generation uint64
}

// NewLegacyClient creates a client for the given base URL
func NewLegacyClient(baseURL string) *LegacyClient {
	return &LegacyClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchList GETs a resource and normalizes the response into records.
// Per the legacy contract, every failure mode (network, non-2xx,
// unparseable body) is logged and resolved to an empty list. The
// second return value reports whether a newer fetch superseded this
// one while it was in flight.
func (c *LegacyClient) FetchList(ctx context.Context, resource string) ([]Record, bool) {
	gen := atomic.AddUint64(&c.generation, 1)

	url := fmt.Sprintf("%s/%s", c.BaseURL, strings.TrimLeft(resource, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		LogError("Failed to build legacy request for %s: %v", url, err)
		return []Record{}, c.stale(gen)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		LogError("Legacy fetch failed for %s: %v", url, err)
		return []Record{}, c.stale(gen)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		LogError("Legacy fetch for %s returned status %d", url, resp.StatusCode)
		return []Record{}, c.stale(gen)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		LogError("Failed to read legacy response for %s: %v", url, err)
		return []Record{}, c.stale(gen)
	}

	list := NormalizeList(body)
	LogInfo("Fetched %d records from legacy resource %s", len(list), resource)
	return list, c.stale(gen)
}

func (c *LegacyClient) stale(gen uint64) bool {
	return atomic.LoadUint64(&c.generation) != gen
}
