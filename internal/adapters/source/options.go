// Package source fetches raw wanted-person records from the external
// source API.
package source

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/dragnet-io/dragnet/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the root of the paginated list API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithDetailBaseURL sets the root of the direct by-id endpoint.
func WithDetailBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.detailBaseURL = url
		}
	}
}

// WithUserAgent sets the client identification header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithPageSize sets the records-per-page query parameter.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithMaxPages sets the pagination safety cap.
func WithMaxPages(pages int) Option {
	return func(c *Client) {
		if pages > 0 {
			c.maxPages = pages
		}
	}
}

// WithPageDelay sets the minimum delay between successive page fetches.
func WithPageDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.limiter = rate.NewLimiter(rate.Every(delay), 1)
		}
	}
}

// WithHTTPClient sets a custom HTTP client (timeout included).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
