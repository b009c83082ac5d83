package payments

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type ctxKey int

const (
	idempotencyKeyCtx ctxKey = iota
	captureCtx
)

// responseCapture keeps the last non-2xx answer seen for one gateway call so
// the gateway can surface the processor's body verbatim.
type responseCapture struct {
	statusCode int
	body       []byte
}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	if strings.TrimSpace(key) == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx, key)
}

func withCapture(ctx context.Context) (context.Context, *responseCapture) {
	c := &responseCapture{}
	return context.WithValue(ctx, captureCtx, c), c
}

// requester is handed to the SDK as its HTTP client. It applies the per-call
// idempotency key and the base URL override, and records failed responses.
type requester struct {
	client  *http.Client
	baseURL *url.URL
}

func newRequester(baseURL string, timeout time.Duration) (*requester, error) {
	r := &requester{client: &http.Client{Timeout: timeout}}
	if strings.TrimSpace(baseURL) != "" {
		u, err := url.Parse(strings.TrimSpace(baseURL))
		if err != nil {
			return nil, err
		}
		r.baseURL = u
	}
	return r, nil
}

func (r *requester) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if key, ok := ctx.Value(idempotencyKeyCtx).(string); ok {
		req.Header.Set("X-Idempotency-Key", key)
	}
	if r.baseURL != nil {
		req.URL.Scheme = r.baseURL.Scheme
		req.URL.Host = r.baseURL.Host
		req.Host = r.baseURL.Host
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if c, ok := ctx.Value(captureCtx).(*responseCapture); ok {
		c.statusCode = resp.StatusCode
		c.body = body
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
