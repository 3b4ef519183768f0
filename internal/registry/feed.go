// Package registry fetches and parses the reference business registry,
// published as a spreadsheet and read through its CSV export URL. The
// feed is fetched fresh per request; nothing is cached across requests.
package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/config"
	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/model"
	"github.com/showline/report-cli/internal/report"
)

// Reference registry columns. The feed may carry extra columns; these
// are the ones the pipeline reads, located by header name.
const (
	colBusinessID = "Business Id"
	colChannel    = "Account: Account Name"
	colIndustry   = "Account: Industry"
	colRegion     = "Account: Owner Territory"
)

// Client reads the registry feed.
type Client struct {
	fetcher *fetcher.HTTPFetcher
	cfg     config.RegistryConfig
}

// NewClient creates a registry client over the shared HTTP fetcher.
func NewClient(f *fetcher.HTTPFetcher, cfg config.RegistryConfig) *Client {
	return &Client{fetcher: f, cfg: cfg}
}

// FeedURL builds the CSV export URL for the configured sheet.
func (c *Client) FeedURL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s",
		c.cfg.SheetID, c.cfg.GID)
}

// FetchReference downloads and parses the registry feed. Any transport
// or parse failure surfaces as an UpstreamError so the caller can choose
// a fallback; the merge never proceeds against a missing registry.
func (c *Client) FetchReference(ctx context.Context) ([]model.ReferenceRecord, error) {
	if c.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	body, err := c.fetcher.Download(ctx, c.FeedURL())
	if err != nil {
		return nil, &model.UpstreamError{Source: "registry feed", Err: err}
	}
	defer func() { _ = body.Close() }()

	rows, err := fetcher.ReadCSV(ctx, body, fetcher.CSVOptions{TrimSpace: true})
	if err != nil {
		return nil, &model.UpstreamError{Source: "registry feed", Err: err}
	}

	refs, err := ParseReference(rows)
	if err != nil {
		return nil, err
	}

	zap.L().Info("registry: fetched reference feed",
		zap.Int("rows", len(refs)),
	)
	return refs, nil
}

// ParseReference converts raw feed rows (header first) into reference
// records. Missing required columns are a DataError naming the feed.
func ParseReference(rows [][]string) ([]model.ReferenceRecord, error) {
	if len(rows) == 0 {
		return nil, &model.DataError{Table: "reference"}
	}

	idx, err := report.HeaderIndex("reference", rows[0], colBusinessID, colChannel, colIndustry, colRegion)
	if err != nil {
		return nil, err
	}

	cell := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	refs := make([]model.ReferenceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		refs = append(refs, model.ReferenceRecord{
			BusinessKey: report.NormalizeKeyPtr(cell(row, colBusinessID)),
			ChannelName: cell(row, colChannel),
			Industry:    cell(row, colIndustry),
			Region:      cell(row, colRegion),
		})
	}
	return refs, nil
}
