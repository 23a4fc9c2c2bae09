// Package network holds the shared HTTP plumbing used to talk to JSON web services.
package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/leighmacdonald/puppybowl-tui/internal/network/encoding"
)

var (
	ErrRequest        = errors.New("failed to create request")
	ErrResponse       = errors.New("failed to get response")
	ErrUnexpectedCode = errors.New("unexpected response status")
)

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// NewClient creates the http client used for all api calls. The timeout bounds the entire
// exchange including reading the body.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: time.Second,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// FetchJSON will query a json http service using a generic type for receiving results. Any
// non 2xx response is treated as a failure.
func FetchJSON[T any](ctx context.Context, client HTTPDoer, url string, headers http.Header) (T, error) {
	var value T

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if errReq != nil {
		return value, errors.Join(errReq, ErrRequest)
	}

	req.Header.Set("Accept", "application/json")
	for name, values := range headers {
		for _, headerValue := range values {
			req.Header.Add(name, headerValue)
		}
	}

	resp, errResp := client.Do(req)
	if errResp != nil {
		return value, errors.Join(errResp, ErrResponse)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return value, fmt.Errorf("%w: %d %s", ErrUnexpectedCode, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return encoding.UnmarshalJSON[T](resp.Body)
}
