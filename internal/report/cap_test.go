package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showline/report-cli/internal/model"
)

func TestCapDetailRows_KeepsTopNByViews(t *testing.T) {
	var records []model.EnrichedRecord
	for _, views := range []float64{5, 90, 10, 70, 30, 80, 1} {
		records = append(records, enriched("A", "Retail", "Japan", "a.example.com", views))
	}

	out := CapDetailRows(records, 3)
	require.Len(t, out, 3)
	assert.Equal(t, 90.0, out[0].ViewCount)
	assert.Equal(t, 80.0, out[1].ViewCount)
	assert.Equal(t, 70.0, out[2].ViewCount)
}

func TestCapDetailRows_PreservesGroupOrder(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "Retail", "Japan", "a.example.com", 1),
		enriched("B", "Media", "Japan", "b.example.com", 100),
		enriched("A", "Retail", "Japan", "a.example.com", 2),
		enriched("B", "Media", "Japan", "b.example.com", 50),
	}

	out := CapDetailRows(records, 1)
	require.Len(t, out, 2)
	// Group A was encountered first, so its capped rows come first even
	// though group B has more views.
	assert.Equal(t, "A", *out[0].ChannelName)
	assert.Equal(t, 2.0, out[0].ViewCount)
	assert.Equal(t, "B", *out[1].ChannelName)
	assert.Equal(t, 100.0, out[1].ViewCount)
}

func TestCapDetailRows_GroupsSmallerThanCapAreKept(t *testing.T) {
	records := []model.EnrichedRecord{
		enriched("A", "Retail", "Japan", "a.example.com", 1),
		enriched("A", "Retail", "Japan", "a.example.com", 2),
	}

	out := CapDetailRows(records, 3)
	assert.Len(t, out, 2)
}

func TestCapDetailRows_InvalidCapUsesDefault(t *testing.T) {
	var records []model.EnrichedRecord
	for _, views := range []float64{1, 2, 3, 4, 5} {
		records = append(records, enriched("A", "Retail", "Japan", "a.example.com", views))
	}

	out := CapDetailRows(records, 0)
	assert.Len(t, out, DefaultMaxRowsPerGroup)
}
