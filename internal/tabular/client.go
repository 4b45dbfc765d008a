// Package tabular is the read adapter for the spreadsheet-style store.
// Tables are addressed by name; rows come back as opaque field mappings.
package tabular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "familyboard/internal/errors"
	"familyboard/internal/model"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// SortField is one (field, direction) pair of a listing sort.
type SortField struct {
	Field     string
	Direction string // "asc" or "desc"
}

// Options narrows a ListRecords call.
type Options struct {
	// MaxRecords caps the number of returned rows; 0 means no cap.
	MaxRecords int
	// View selects a named pre-filtered view.
	View string
	// Sort is applied in order.
	Sort []SortField
}

// Client talks to the tabular store over HTTP. The zero credentials case is
// legal: IsConfigured reports it and ListRecords refuses to go remote.
type Client struct {
	apiKey string
	baseID string

	// BaseURL and HTTPClient are overridable for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a tabular client for the given workspace credentials.
func New(apiKey, baseID string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseID:     baseID,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured reports whether both the API key and the base identifier are
// present. Callers must check this before listing and short-circuit with a
// 503 when false.
func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != "" && c.baseID != ""
}

type listPageResponse struct {
	Records []model.TabularRecord `json:"records"`
	Offset  string                `json:"offset"`
}

// ListRecords fetches the complete result set for a table before returning;
// the store paginates, the caller never sees that. An empty table yields an
// empty slice, not an error.
func (c *Client) ListRecords(ctx context.Context, table string, opts Options) ([]model.TabularRecord, error) {
	if !c.IsConfigured() {
		return nil, apperrors.ErrTabularNotConfigured
	}
	if table == "" {
		return nil, &apperrors.AdapterError{
			Op:  "tabular.list",
			Err: fmt.Errorf("table name is empty"),
		}
	}

	records := make([]model.TabularRecord, 0)
	offset := ""
	for {
		page, next, err := c.listPage(ctx, table, opts, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
			return records[:opts.MaxRecords], nil
		}
		if next == "" {
			return records, nil
		}
		offset = next
	}
}

func (c *Client) listPage(ctx context.Context, table string, opts Options, offset string) ([]model.TabularRecord, string, error) {
	reqURL := fmt.Sprintf("%s/%s/%s", c.BaseURL, url.PathEscape(c.baseID), url.PathEscape(table))

	q := url.Values{}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if opts.View != "" {
		q.Set("view", opts.View)
	}
	for i, s := range opts.Sort {
		q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		q.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}
	if offset != "" {
		q.Set("offset", offset)
	}
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, "", &apperrors.AdapterError{Op: "tabular.list", Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", &apperrors.AdapterError{Op: "tabular.list", Err: fmt.Errorf("request %s: %w", table, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, "", &apperrors.AdapterError{
			Op:         "tabular.list",
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var page listPageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, "", &apperrors.AdapterError{Op: "tabular.list", Err: fmt.Errorf("decode response: %w", err)}
	}
	return page.Records, page.Offset, nil
}
