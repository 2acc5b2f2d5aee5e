package lyrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://www.azlyrics.com"
	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 0.5
)

// Client fetches lyrics pages over HTTP.
//
// Requests are spaced by a token bucket so a burst of skipped tracks does not
// hammer the site. Failed requests are not retried.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RateLimit  float64 // requests per second
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewClient creates a new Client, filling unset options with defaults.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultRateLimit
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
		logger:     opts.Logger,
	}
}

// NewClientFromConfig creates a Client from the [lyrics] section of config.
func NewClientFromConfig(config shared.LyricsConfig, logger *log.Logger) *Client {
	return NewClient(ClientOpts{
		BaseURL:   config.BaseURL,
		UserAgent: config.UserAgent,
		Timeout:   config.Timeout(),
		RateLimit: config.RateLimit,
		Logger:    logger,
	})
}

// Get downloads url and returns the response body as text.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", shared.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", shared.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", shared.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", shared.ErrFetchFailed, err)
	}
	return string(body), nil
}

// Lyrics looks up the lyrics for a track.
//
// Fetch failures are logged and reported as [shared.ErrLyricsNotFound].
func (c *Client) Lyrics(ctx context.Context, artist, title string) ([]string, error) {
	url := URL(c.baseURL, artist, title)

	document, err := c.Get(ctx, url)
	if err != nil {
		c.logger.Warn("lyrics fetch failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %w", shared.ErrLyricsNotFound, err)
	}

	lines, err := Extract(document)
	if err != nil {
		c.logger.Debug("lyrics not found in page", "url", url, "error", err)
		return nil, err
	}
	return lines, nil
}
