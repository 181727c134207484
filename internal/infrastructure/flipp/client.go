package flipp

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/pkg/contextx"
	"flyerplan/pkg/errcodes"
	"flyerplan/pkg/httpx"
	"flyerplan/pkg/logx"
)

const userAgent = "Mozilla/5.0"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Client talks to the flyer aggregation service. Both retrieval strategies
// share it: one HTTP client with a bounded timeout and request logging.
type Client struct {
	baseURL    string
	postalCode string
	locale     string
	httpClient *http.Client
	tokens     TokenGenerator
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTokenGenerator(tokens TokenGenerator) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

func NewClient(cfg config.Flipp, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		postalCode: cfg.PostalCode,
		locale:     cfg.Locale,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
		tokens: NewDigitTokenGenerator(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get issues one GET and returns the raw body. Transport failures and
// non-2xx statuses map to UpstreamUnavailable; the caller decides whether
// that aborts anything.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.UpstreamUnavailable, "flipp request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(errcodes.UpstreamUnavailable,
			fmt.Sprintf("flipp responded with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.UpstreamUnavailable, "read flipp response")
	}

	return body, nil
}
