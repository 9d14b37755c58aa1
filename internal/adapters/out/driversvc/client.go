// Package driversvc contains HTTP clients for the two external driver
// services: the driver directory (registry of drivers and their working
// cities) and the driver order service (per-driver task queues).
//
// All calls go through a shared http.Client with a hard request timeout, so a
// slow downstream surfaces as an error instead of stalling a sweep worker.
package driversvc

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

// DefaultRequestTimeout bounds every call to the driver services.
const DefaultRequestTimeout = 5 * time.Second

// NewHTTPClient returns the http.Client the driver service adapters share.
// A non-positive timeout falls back to DefaultRequestTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}

func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return "", errs.NewValueIsRequiredError("baseURL")
	}
	return baseURL, nil
}

// drainAndClose releases the response body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func unexpectedStatus(resp *http.Response) error {
	return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, resp.Request.URL.Path)
}
