package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nemuizzz/sha2sum/pkg/version"
)

// ErrUnexpectedStatus is returned by Fetch for responses outside the 2xx range
var ErrUnexpectedStatus = errors.New("unexpected status code")

// ClientOptions configures the HTTP client used for URL sources
type ClientOptions struct {
	Timeout         time.Duration
	FollowRedirects bool
	Headers         map[string]string
	UserAgent       string
}

// DefaultClientOptions returns default HTTP client options
func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		Timeout:         time.Second * 30,
		FollowRedirects: true,
		UserAgent:       version.UserAgent(),
	}
}

// NewClient creates a new HTTP client with the provided options
func NewClient(opts *ClientOptions) *http.Client {
	if opts == nil {
		opts = DefaultClientOptions()
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	if !opts.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return client
}

// AddHeaders sets the configured headers on req, falling back to
// defaultUserAgent when no User-Agent has been chosen yet
func AddHeaders(req *http.Request, headers map[string]string, defaultUserAgent string) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// IsURL reports whether source should be fetched over HTTP rather than read from disk
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch downloads url and returns the full response body. Any non-2xx status
// is reported as an error wrapping ErrUnexpectedStatus.
func Fetch(ctx context.Context, client *http.Client, url string, opts *ClientOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultClientOptions()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	AddHeaders(req, opts.Headers, userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
