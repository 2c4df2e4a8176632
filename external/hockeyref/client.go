package hockeyref

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"context"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/pucklab/icesync/internal/platform/logging"
)

const (
	defaultBaseURL         = "https://www.hockey-reference.com"
	defaultUserAgent       = "icesync/1.0 (+stats sync; contact in repo)"
	defaultRequestInterval = 5 * time.Second
	maxRetryAfterWait      = 2 * time.Minute
	maxResponseBytes       = 8 << 20
)

// ErrTransient marks failures worth retrying: network errors, 429 and 5xx.
var ErrTransient = crerr.New("hockeyref transient failure")

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	UserAgent       string
	Timeout         time.Duration
	MaxRetries      int
	RequestInterval time.Duration
	Logger          *logging.Logger
}

// Client fetches hockey-reference pages and lifts their tables. One limiter
// gates every request so consecutive per-game fetches keep the source's
// required spacing regardless of which importer is driving.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	limiter    *rate.Limiter
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = defaultRequestInterval
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: max(cfg.MaxRetries, 0),
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     logger,
	}
}

// FetchTables GETs one page and returns its tables in page order. A non-empty
// match keeps only tables whose text contains it, mirroring how roster pages
// are located by tab name. Retries are transparent; once exhausted the error
// is fatal for the caller's run.
func (c *Client) FetchTables(ctx context.Context, path, match string) ([]Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	html, err := c.getPage(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	tables := parseTables(html, match)
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables found at %s (match=%q)", fullURL, match)
	}

	return tables, nil
}

func (c *Client) getPage(ctx context.Context, fullURL string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		wait := time.Duration(attempt+1) * time.Second

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", ErrTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", ErrTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return string(raw), nil
			case resp.StatusCode == http.StatusTooManyRequests:
				lastErr = fmt.Errorf("%w: rate limited (status=429)", ErrTransient)
				if after := retryAfter(resp.Header); after > 0 {
					wait = after
				}
			case resp.StatusCode >= 500:
				lastErr = fmt.Errorf("%w: source status=%d", ErrTransient, resp.StatusCode)
			default:
				return "", fmt.Errorf("source status=%d for %s", resp.StatusCode, fullURL)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		c.logger.WarnContext(ctx, "retrying fetch", "url", fullURL, "attempt", attempt+1, "wait", wait.String(), "error", lastErr)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: request failed", ErrTransient)
	}
	c.logger.ErrorContext(ctx, "fetch failed", "url", fullURL, "error", lastErr)
	return "", lastErr
}

func retryAfter(header http.Header) time.Duration {
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	return min(time.Duration(seconds)*time.Second, maxRetryAfterWait)
}
