// Package aging is the client for the photo-aging collaborator: an opaque
// external service that takes an image and a year count and returns a
// transformed image. No internal contract is assumed beyond that.
package aging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/dragnet-io/dragnet/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// Client calls the photo-aging service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates an aging client. An empty baseURL yields a disabled
// client whose calls fail with ErrDisabled.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether a collaborator URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Age submits an image and the number of years to progress it by, and
// returns the transformed image payload.
func (c *Client) Age(ctx context.Context, image []byte, years int) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	metrics.RecordAgingRequest()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("years", strconv.Itoa(years)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	part, err := writer.CreateFormFile("image", "photo.jpg")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAgingError()
		metrics.RecordErrorByComponent("aging", "network_error")
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordAgingError()
		metrics.RecordErrorByComponent("aging", "status_"+strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrAgingFailed, resp.StatusCode)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordAgingError()
		return nil, fmt.Errorf("%w: %w", ErrAgingFailed, err)
	}
	return out, nil
}
