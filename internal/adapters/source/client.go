// Package source fetches raw wanted-person records from the external
// source API. Fetches fail soft: callers of list flows treat any failure
// as "no data", never as a fatal error.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/pkg/logger"
	"github.com/dragnet-io/dragnet/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL       = "https://api.fbi.gov/wanted/v1"
	defaultDetailBaseURL = "https://api.fbi.gov/@wanted-person"
	defaultUserAgent     = "Mozilla/5.0 (compatible; dragnet/1.0)"
	defaultPageSize      = 20
	defaultMaxPages      = 50
	defaultPageDelay     = 500 * time.Millisecond
	defaultFetchTimeout  = 10 * time.Second
)

// listResponse mirrors the source's paginated list envelope.
type listResponse struct {
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Items []json.RawMessage `json:"items"`
}

// Client issues paginated requests against the source API.
type Client struct {
	baseURL       string
	detailBaseURL string
	userAgent     string
	pageSize      int
	maxPages      int
	httpClient    *http.Client
	limiter       *rate.Limiter
	logger        logger.Logger
}

// NewClient creates a source client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:       defaultBaseURL,
		detailBaseURL: defaultDetailBaseURL,
		userAgent:     defaultUserAgent,
		pageSize:      defaultPageSize,
		maxPages:      defaultMaxPages,
		httpClient:    &http.Client{Timeout: defaultFetchTimeout},
		limiter:       rate.NewLimiter(rate.Every(defaultPageDelay), 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logger.Get().Named("source")
	}

	return c
}

// FetchPage fetches a single page of raw records. Network failure,
// non-2xx status and malformed JSON all surface as an error; individual
// records that fail strict decoding are dropped while the rest of the
// page survives.
func (c *Client) FetchPage(ctx context.Context, page int) ([]model.RawRecord, error) {
	start := time.Now()

	url := fmt.Sprintf("%s/list?page=%d&pageSize=%d&sort_on=modified&sort_order=desc",
		c.baseURL, page, c.pageSize)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.RecordFetchError()
		metrics.RecordErrorByComponent("source", "decode_error")
		return nil, fmt.Errorf("%w: page %d: %w", ErrDecode, page, err)
	}

	records := make([]model.RawRecord, 0, len(resp.Items))
	for i, item := range resp.Items {
		var rec model.RawRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			// Partial-batch corruption: drop this record only.
			metrics.RecordRecordDropped()
			c.logger.Warn(ctx, "dropping malformed record",
				logger.Int("page", page),
				logger.Int("index", i),
				logger.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}

	metrics.RecordPageFetched()
	metrics.RecordRecordsParsed(len(records))
	metrics.RecordFetchLatency(float64(time.Since(start).Milliseconds()))

	return records, nil
}

// FetchAll walks the paginated listing from page 1 until a short page, an
// empty page, a fetch failure, or the max-pages safety cap. A mid-walk
// failure returns whatever was accumulated; the cap logs a warning and
// does the same. An inter-page delay respects the source's rate limits.
func (c *Client) FetchAll(ctx context.Context) []model.RawRecord {
	all := make([]model.RawRecord, 0, c.pageSize*2)

	for page := 1; ; page++ {
		if page > c.maxPages {
			c.logger.Warn(ctx, "pagination cap reached; returning accumulated records",
				logger.Int("maxPages", c.maxPages),
				logger.Int("records", len(all)),
			)
			break
		}
		if err := c.limiter.Wait(ctx); err != nil {
			c.logger.Warn(ctx, "fetch cancelled", logger.Error(err))
			break
		}

		records, err := c.FetchPage(ctx, page)
		if err != nil {
			c.logger.Warn(ctx, "page fetch failed; returning accumulated records",
				logger.Int("page", page),
				logger.Int("records", len(all)),
				logger.Error(err),
			)
			break
		}
		if len(records) == 0 {
			break
		}
		all = append(all, records...)
		if len(records) < c.pageSize {
			break
		}
	}

	return all
}

// FetchByID fetches a single raw record. It tries the direct by-id
// endpoint first; if the source does not serve it, it falls back to
// scanning the full paginated listing. The fallback is O(total records)
// and bounded by the same pagination cap as FetchAll.
func (c *Client) FetchByID(ctx context.Context, rawID string) (*model.RawRecord, error) {
	body, err := c.get(ctx, c.detailBaseURL+"/"+rawID)
	if err == nil {
		var rec model.RawRecord
		if decodeErr := json.Unmarshal(body, &rec); decodeErr == nil && rec.UID != "" {
			return &rec, nil
		}
	}

	for _, rec := range c.FetchAll(ctx) {
		if rec.UID == rawID {
			r := rec
			return &r, nil
		}
	}
	return nil, fmt.Errorf("record %s: %w", rawID, ErrNotFound)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFetchError()
		metrics.RecordErrorByComponent("source", "network_error")
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordFetchError()
		metrics.RecordErrorByComponent("source", "status_"+strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordFetchError()
		metrics.RecordErrorByComponent("source", "read_error")
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return body, nil
}
