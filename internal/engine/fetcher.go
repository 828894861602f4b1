package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/tartampluch/birthday-week/internal/config"
)

// SourceFetcher defines the contract for retrieving a remote import source.
type SourceFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher implements SourceFetcher over net/http, retrying transient failures.
type HTTPFetcher struct {
	Client     *http.Client
	Attempts   uint
	RetryDelay time.Duration
}

// NewHTTPFetcher creates a new instance of HTTPFetcher with configured timeouts.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
		Attempts:   config.FetchAttempts,
		RetryDelay: config.FetchRetryDelay,
	}
}

// Fetch retrieves the source at targetURL. Network errors and 5xx answers are
// retried; any other non-200 status fails immediately.
// The returned body is capped at config.MaxHTTPResponseSize bytes.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query parameters may carry tokens; keep them out of the logs.
	safeURL := u.Scheme + "://" + u.Host + u.Path
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgFetchStart)

	attempts := f.Attempts
	if attempts == 0 {
		attempts = 1
	}

	resp, err := retry.DoWithData(
		func() (*http.Response, error) {
			return f.do(ctx, targetURL, user, pass, log)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(f.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn(config.MsgFetchRetry,
				slog.Int(config.LogKeyAttempt, int(n)+1),
				slog.Any(config.LogKeyError, err),
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgFetchOK, slog.Int64(config.LogKeyBytes, resp.ContentLength))

	return &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, config.MaxHTTPResponseSize),
		Closer: resp.Body,
	}, nil
}

// do performs a single attempt.
func (f *HTTPFetcher) do(ctx context.Context, targetURL, user, pass string, log *slog.Logger) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))

		statusErr := fmt.Errorf("%s: %d %s", config.ErrFetchStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, statusErr
		}
		return nil, retry.Unrecoverable(statusErr)
	}
	return resp, nil
}

// limitedReadCloser pairs a size-limited reader with the original body closer.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}
