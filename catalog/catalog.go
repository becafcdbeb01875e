package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-faster/errors"
	"golang.org/x/time/rate"

	"github.com/qyinm/shoptui/types"
)

const (
	DefaultBaseURL = "https://dummyjson.com"
	userAgent      = "shoptui/0.1 (+https://github.com/qyinm/shoptui)"
)

// StatusError reports a non-2xx response from the catalog API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Code)
}

// Client implements types.ProductSource against a dummyjson-style REST API.
// Nothing is cached: every call hits the network.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	log     *log.Logger
}

// Compile-time interface check
var _ types.ProductSource = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRateLimit throttles outbound requests. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger attaches a logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewHTTPClient returns an http.Client with the given timeout; a
// non-positive timeout falls back to 10s.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// New creates a new Client with a 10s timeout and no throttling.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  NewHTTPClient(0),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	return c
}

// ProductsURL builds GET {base}/products?limit={limit}&skip={skip}.
func (c *Client) ProductsURL(skip, limit int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	return c.baseURL + "/products?" + q.Encode()
}

// GetProducts fetches one page of products starting at skip.
func (c *Client) GetProducts(ctx context.Context, skip, limit int) (types.Page, error) {
	if skip < 0 {
		return types.Page{}, errors.Errorf("invalid skip %d", skip)
	}
	if limit <= 0 {
		return types.Page{}, errors.Errorf("invalid limit %d", limit)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return types.Page{}, errors.Wrap(err, "wait for rate limiter")
	}

	u := c.ProductsURL(skip, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return types.Page{}, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("catalog request failed", "url", u, "err", err)
		return types.Page{}, errors.Wrap(err, "fetch products")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("catalog request rejected", "url", u, "status", resp.StatusCode)
		return types.Page{}, &StatusError{Code: resp.StatusCode}
	}

	page, err := ParseProducts(resp.Body)
	if err != nil {
		return types.Page{}, errors.Wrap(err, "parse products")
	}

	c.log.Debug("catalog page fetched",
		"skip", skip,
		"limit", limit,
		"items", len(page.Products()),
		"total", page.Total(),
		"took", time.Since(start),
	)
	return page, nil
}
