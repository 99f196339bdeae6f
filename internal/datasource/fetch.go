package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

// Fetcher downloads one upstream document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches over HTTP with exponential retries. Transport errors and
// 5xx responses are retried; any other non-200 status fails at once.
type HTTPFetcher struct {
	Client          *http.Client
	MaxRetries      uint64
	InitialInterval time.Duration
}

// NewHTTPFetcher builds a fetcher whose single attempts time out after timeout.
func NewHTTPFetcher(timeout time.Duration, maxRetries int) *HTTPFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &HTTPFetcher{
		Client:          &http.Client{Timeout: timeout},
		MaxRetries:      uint64(maxRetries),
		InitialInterval: 500 * time.Millisecond,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	op := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, backoff.Permanent(fmt.Errorf("upstream status %d", resp.StatusCode))
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(body) {
			return nil, backoff.Permanent(fmt.Errorf("upstream body is not valid UTF-8"))
		}
		return body, nil
	}

	b := backoff.NewExponentialBackOff()
	if f.InitialInterval > 0 {
		b.InitialInterval = f.InitialInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, f.MaxRetries), ctx)

	body, err := backoff.RetryNotifyWithData(op, policy, func(err error, wait time.Duration) {
		logrus.WithFields(logrus.Fields{"url": url, "wait": wait}).Warnf("upstream fetch failed, retrying: %v", err)
	})
	if err != nil {
		return nil, apperr.ServerSide("fetch "+url, err)
	}
	return body, nil
}
