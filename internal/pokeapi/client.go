package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/metrics"
)

// ClientConfig configures the creature data client
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	CacheSize   int
	ListTTL     time.Duration
	ResourceTTL time.Duration
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.ListTTL <= 0 {
		c.ListTTL = DefaultListTTL
	}
	if c.ResourceTTL <= 0 {
		c.ResourceTTL = DefaultResourceTTL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c
}

// Client fetches JSON resources from the creature data provider. Responses are
// cached by URL: dex pages for ListTTL, creatures and moves for ResourceTTL.
// Concurrent misses for the same URL share one request.
// The client never retries; transient failures surface as *domain.RetryableFetchError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	listCache  *responseCache
	dataCache  *responseCache
	inflight   singleflight.Group
}

// NewClient creates a client with its own caches
func NewClient(cfg ClientConfig) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		listCache: newResponseCache(cfg.CacheSize, cfg.ListTTL),
		dataCache: newResponseCache(cfg.CacheSize, cfg.ResourceTTL),
	}
}

// BaseURL returns the provider root without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getCreature(ctx context.Context, name string) (*apiCreature, error) {
	var out apiCreature
	if err := c.getJSON(ctx, ResourceCreature, c.baseURL+"/pokemon/"+name, c.dataCache, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getMove(ctx context.Context, ref namedResource) (*apiMove, error) {
	url := ref.URL
	if url == "" {
		url = c.baseURL + "/move/" + ref.Name
	}
	var out apiMove
	if err := c.getJSON(ctx, ResourceMove, url, c.dataCache, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = ref.Name
	}
	return &out, nil
}

func (c *Client) getList(ctx context.Context, limit, offset int) (*apiList, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)
	var out apiList
	if err := c.getJSON(ctx, ResourceList, url, c.listCache, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON serves url from cache or fetches it, then decodes into out.
// 404 maps to the resource's not-found sentinel; 5xx and transport errors
// map to *domain.RetryableFetchError.
func (c *Client) getJSON(ctx context.Context, resource, url string, cache *responseCache, out interface{}) error {
	log := logger.FromContext(ctx)

	if body, ok := cache.Get(url); ok {
		metrics.PokeAPICacheHits.WithLabelValues(resource).Inc()
		log.Debug(LogMsgCacheHit, "resource", resource, "url", url)
		return decode(body, out)
	}

	v, err, shared := c.inflight.Do(url, func() (interface{}, error) {
		log.Debug(LogMsgFetching, "resource", resource, "url", url)
		start := time.Now()
		body, err := c.fetch(ctx, resource, url)
		metrics.PokeAPIDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
		metrics.PokeAPIRequests.WithLabelValues(resource, resultLabel(err)).Inc()
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(body, new(json.RawMessage)); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextDecode, err)
		}
		cache.Set(url, body)
		return body, nil
	})
	if err != nil {
		log.Warn(LogMsgFetchFailed, "resource", resource, "url", url, "shared", shared, "error", err)
		return err
	}
	return decode(v.([]byte), out)
}

func (c *Client) fetch(ctx context.Context, resource, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBuildRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &domain.RetryableFetchError{Resource: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", notFoundFor(resource), url)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &domain.RetryableFetchError{Resource: url, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrInvalidInput, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RetryableFetchError{Resource: url, Err: err}
	}
	return body, nil
}

func decode(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDecode, err)
	}
	return nil
}

func notFoundFor(resource string) error {
	if resource == ResourceMove {
		return domain.ErrMoveNotFound
	}
	return domain.ErrCreatureNotFound
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrCreatureNotFound), errors.Is(err, domain.ErrMoveNotFound):
		return metrics.ResultNotFound
	case domain.IsRetryable(err):
		return metrics.ResultRetryable
	default:
		return metrics.ResultError
	}
}

// CacheEntries reports how many list and resource responses are cached
func (c *Client) CacheEntries() (list, data int) {
	return c.listCache.Len(), c.dataCache.Len()
}
