package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showline/report-cli/internal/config"
	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/model"
)

func TestParseReference(t *testing.T) {
	rows := [][]string{
		{"Business Id", "Account: Account Name", "Account: Industry", "Account: Owner Territory"},
		{"101", "Acme Stores", "Retail", "Japan"},
		{"102", "Beta Media", "", "United States"},
		{"", "No Key Co", "Retail", "Japan"},
	}

	refs, err := ParseReference(rows)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	require.NotNil(t, refs[0].BusinessKey)
	assert.Equal(t, 101.0, *refs[0].BusinessKey)
	assert.Equal(t, "Acme Stores", refs[0].ChannelName)
	assert.Equal(t, "Retail", refs[0].Industry)
	assert.Equal(t, "Japan", refs[0].Region)

	// Empty industry stays empty here; the merge turns it into the
	// Unknown sentinel on matched rows.
	assert.Equal(t, "", refs[1].Industry)
	assert.Nil(t, refs[2].BusinessKey)
}

func TestParseReference_HeaderOrderIndependent(t *testing.T) {
	rows := [][]string{
		{"Account: Owner Territory", "Business Id", "Extra Column", "Account: Industry", "Account: Account Name"},
		{"Japan", "7", "ignored", "Retail", "Acme"},
	}

	refs, err := ParseReference(rows)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, 7.0, *refs[0].BusinessKey)
	assert.Equal(t, "Acme", refs[0].ChannelName)
	assert.Equal(t, "Japan", refs[0].Region)
}

func TestParseReference_MissingColumn(t *testing.T) {
	rows := [][]string{
		{"Business Id", "Account: Account Name"},
		{"1", "Acme"},
	}

	_, err := ParseReference(rows)
	require.Error(t, err)

	var dataErr *model.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "reference", dataErr.Table)
	assert.Equal(t, "Account: Industry", dataErr.Column)
}

func TestParseReference_Empty(t *testing.T) {
	_, err := ParseReference(nil)
	var dataErr *model.DataError
	require.True(t, errors.As(err, &dataErr))
}

func TestFeedURL(t *testing.T) {
	c := NewClient(nil, config.RegistryConfig{SheetID: "sheet123", GID: "0"})
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/sheet123/export?format=csv&gid=0",
		c.FeedURL())
}

func TestFetchReference_UnreachableFeedIsUpstreamError(t *testing.T) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:    200 * time.Millisecond,
		MaxRetries: 1,
	})
	c := NewClient(f, config.RegistryConfig{SheetID: "nope", GID: "0", TimeoutSecs: 1})

	// A cancelled context makes the download fail immediately without
	// touching the network; the failure must surface as UpstreamError.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchReference(ctx)
	require.Error(t, err)

	var upstream *model.UpstreamError
	assert.True(t, errors.As(err, &upstream))
}

func TestOptions(t *testing.T) {
	refs := []model.ReferenceRecord{
		{Industry: "Retail", Region: "Japan"},
		{Industry: "Media", Region: "United States"},
		{Industry: "Retail", Region: "Japan"},
		{Industry: "", Region: ""},
		{Industry: "apparel", Region: "Germany"},
	}

	industries, countries := Options(refs)
	assert.Equal(t, []string{"apparel", "Media", "Retail"}, industries)
	assert.Equal(t, []string{"Germany", "Japan", "United States"}, countries)
}
