package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showline/report-cli/internal/model"
)

func enriched(channel, industry, region, host string, views float64) model.EnrichedRecord {
	r := model.EnrichedRecord{Hostname: host, PageURL: "https://" + host + "/p", ViewCount: views}
	if channel != "" {
		r.ChannelName = &channel
	}
	if industry != "" {
		r.Industry = &industry
	}
	if region != "" {
		r.Region = &region
	}
	return r
}

func filterFixture() []model.EnrichedRecord {
	return []model.EnrichedRecord{
		enriched("A", "Retail", "Japan", "a.example.com", 10),
		enriched("B", "Media", "Americas", "b.example.com", 20),
		enriched("C", "Retail", "Americas", "c.example.com", 30),
		enriched("D", "Gaming", "Europe", "d.example.com", 40),
		enriched("E", "", "", "e.example.com", 50), // unmatched in merge
	}
}

func TestFilter_NoFiltersReturnsAll(t *testing.T) {
	records := filterFixture()
	assert.Len(t, Filter(records, nil, ""), 5)
	assert.Len(t, Filter(records, nil, FilterNone), 5)
}

func TestFilter_IndustryORSemantics(t *testing.T) {
	out := Filter(filterFixture(), []string{"Retail", "Gaming"}, "")
	require.Len(t, out, 3)
	assert.Equal(t, "A", *out[0].ChannelName)
	assert.Equal(t, "C", *out[1].ChannelName)
	assert.Equal(t, "D", *out[2].ChannelName)
}

func TestFilter_RegionResolvesCountry(t *testing.T) {
	out := Filter(filterFixture(), nil, "United States")
	require.Len(t, out, 2)
	assert.Equal(t, "B", *out[0].ChannelName)
	assert.Equal(t, "C", *out[1].ChannelName)
}

func TestFilter_UnmatchedRecordsExcludedByActiveFilter(t *testing.T) {
	out := Filter(filterFixture(), []string{"Retail", "Media", "Gaming"}, "")
	assert.Len(t, out, 4) // record E has nil industry

	out = Filter(filterFixture(), nil, "Japan")
	assert.Len(t, out, 1) // record E has nil region too
}

func TestFilter_EmptyResultIsValid(t *testing.T) {
	out := Filter(filterFixture(), []string{"Aerospace"}, "")
	assert.Empty(t, out)
}

func TestFilter_Commutes(t *testing.T) {
	records := filterFixture()

	industryFirst := Filter(Filter(records, []string{"Retail", "Media"}, ""), nil, "United States")
	regionFirst := Filter(Filter(records, nil, "United States"), []string{"Retail", "Media"}, "")
	both := Filter(records, []string{"Retail", "Media"}, "United States")

	assert.Equal(t, industryFirst, regionFirst)
	assert.Equal(t, both, industryFirst)
}
