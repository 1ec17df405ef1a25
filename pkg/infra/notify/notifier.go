// Package notify delivers evaluation payloads to caller-supplied callback
// URLs. Delivery is at-most-N attempts with exponential backoff; there is no
// queue and no escalation after exhaustion.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/foundry/pkg/domain/interfaces"
	"github.com/m-mizutani/foundry/pkg/domain/model"
	"github.com/m-mizutani/foundry/pkg/domain/types"
	"github.com/m-mizutani/foundry/pkg/utils/retry"
)

type notifier struct {
	httpClient  *http.Client
	maxAttempts int
	baseDelay   time.Duration
	sleep       retry.SleepFunc
}

// Option is a functional option for notifier configuration
type Option func(*notifier)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(x *notifier) {
		x.httpClient = c
	}
}

// WithMaxAttempts sets the total number of delivery attempts
func WithMaxAttempts(n int) Option {
	return func(x *notifier) {
		x.maxAttempts = n
	}
}

// WithBaseDelay sets the first backoff delay; it doubles on each retry
func WithBaseDelay(d time.Duration) Option {
	return func(x *notifier) {
		x.baseDelay = d
	}
}

// WithSleep replaces the inter-attempt sleep (for tests)
func WithSleep(fn retry.SleepFunc) Option {
	return func(x *notifier) {
		x.sleep = fn
	}
}

// New creates a Notifier. Defaults: 5 attempts, 1s base delay.
func New(opts ...Option) interfaces.Notifier {
	x := &notifier{
		httpClient:  http.DefaultClient,
		maxAttempts: 5,
		baseDelay:   time.Second,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Notify POSTs the payload as JSON to url. Any non-200 response or transport
// error counts as a failed attempt. Returns the last error on exhaustion.
func (x *notifier) Notify(ctx context.Context, url string, payload *model.EvaluationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal evaluation payload")
	}

	logger := ctxlog.From(ctx)
	attempt := 0

	var retryOpts []retry.Option
	if x.sleep != nil {
		retryOpts = append(retryOpts, retry.WithSleep(x.sleep))
	}

	err = retry.Do(ctx, x.maxAttempts, retry.Backoff(x.baseDelay), func(ctx context.Context) error {
		attempt++
		if err := x.post(ctx, url, body); err != nil {
			logger.Warn("evaluation delivery attempt failed",
				"url", url,
				"attempt", attempt,
				"max_attempts", x.maxAttempts,
				"error", err,
			)
			return err
		}
		return nil
	}, retryOpts...)

	if err != nil {
		return goerr.Wrap(err, "evaluation delivery exhausted",
			goerr.V("url", url),
			goerr.V("attempts", x.maxAttempts),
		)
	}

	logger.Info("evaluation delivered", "url", url, "attempts", attempt)
	return nil
}

func (x *notifier) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build evaluation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "evaluation request failed", goerr.T(types.TagTransport))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("evaluation endpoint returned non-200",
			goerr.T(types.TagRemoteStatus),
			goerr.V("status", resp.StatusCode),
		)
	}

	return nil
}
