package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showline/report-cli/internal/model"
)

func TestRun_EndToEnd(t *testing.T) {
	video := []model.PerformanceRecord{
		perfRow(keyPtr(1), "https://a.example.com/p1", 100),
		perfRow(keyPtr(1), "https://a.example.com/p2", 60),
		perfRow(keyPtr(2), "https://b.example.com/p1", 50),
		perfRow(keyPtr(3), "https://c.example.com/p1", 10),
	}
	refs := []model.ReferenceRecord{
		refRow(1, "Alpha", "Retail", "Japan"),
		refRow(2, "Beta", "Retail", "Japan"),
		refRow(3, "Gamma", "Media", "Japan"),
	}

	result, err := Run(video, nil, refs, RunParams{
		Source:          model.SourceVideo,
		Industries:      []string{"Retail"},
		Country:         "Japan",
		Page:            1,
		PageSize:        10,
		MaxRowsPerGroup: 1,
	})
	require.NoError(t, err)

	require.Len(t, result.Page.Groups, 2)
	assert.Equal(t, "Alpha", result.Page.Groups[0].GroupKey)
	assert.Equal(t, 160.0, result.Page.Groups[0].TotalViews)
	assert.Equal(t, "Beta", result.Page.Groups[1].GroupKey)
	assert.False(t, result.Page.HasNext)

	// Row cap of 1 keeps only Alpha's biggest page plus Beta's single one.
	require.Len(t, result.Records, 2)
	assert.Equal(t, 100.0, result.Records[0].ViewCount)
}

func TestRun_PropagatesMergeError(t *testing.T) {
	_, err := Run(nil, nil, nil, RunParams{Source: model.SourceVideo})
	assert.Error(t, err)
}

func TestRows_DisplayFillAndClassifications(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("Alpha", "Retail", "Japan", "a.example.com", 10),
		{PageURL: "https://raw.example.com", Hostname: "raw.example.com", ViewCount: 5},
	}
	cls := map[string]model.Classification{
		"https://a.example.com/p": {HasMarker: true, Format: model.FormatGrid},
	}

	rows := Rows(records, cls)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].HasMarker)
	assert.True(t, *rows[0].HasMarker)
	assert.Equal(t, model.FormatGrid, rows[0].Format)

	// Unmatched enrichment renders as empty strings, view count stays numeric.
	assert.Equal(t, "", rows[1].ChannelName)
	assert.Equal(t, "", rows[1].Industry)
	assert.Equal(t, 5.0, rows[1].ViewCount)
	assert.Nil(t, rows[1].HasMarker)
}

func TestURLs_SkipsEmpty(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "Retail", "Japan", "a.example.com", 1),
		{ViewCount: 2},
		enriched("A", "Retail", "Japan", "a.example.com", 3),
	}

	urls := URLs(records)
	assert.Equal(t, []string{"https://a.example.com/p", "https://a.example.com/p"}, urls)
}
