package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegions(t *testing.T) {
	assert.Equal(t, []string{"Japan"}, ResolveRegions("Japan"))
	assert.Equal(t, []string{"Americas"}, ResolveRegions("United States"))
	assert.Equal(t, []string{"Europe"}, ResolveRegions("Germany"))
	assert.Equal(t, []string{"APAC"}, ResolveRegions("Thailand"))
}

func TestResolveRegions_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, []string{"Atlantis"}, ResolveRegions("Atlantis"))
	assert.Equal(t, []string{"System"}, ResolveRegions("System"))
}

func TestResolveRegions_CaseSensitive(t *testing.T) {
	// Lookup is exact match; a lowercased known country is treated as
	// unknown and passed through.
	assert.Equal(t, []string{"japan"}, ResolveRegions("japan"))
}

func TestResolveRegions_ReturnsCopy(t *testing.T) {
	first := ResolveRegions("Japan")
	first[0] = "mutated"
	assert.Equal(t, []string{"Japan"}, ResolveRegions("Japan"))
}
