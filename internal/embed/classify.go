// Package embed detects the fw- embed widget marker in fetched pages and
// classifies which visual format variant it renders.
package embed

import (
	"regexp"

	"github.com/showline/report-cli/internal/model"
)

// formatRule pairs a marker pattern with the format it proves. Rules are
// checked in order: variants carrying extra attributes come before the
// bare embed-feed supertype, so a tag that would match several rules
// classifies as the most specific one. Reordering changes results.
type formatRule struct {
	format model.Format
	re     *regexp.Regexp
}

// Patterns are case-insensitive and tolerate attribute order and line
// breaks by scanning within a single tag ([^>]*). No backreferences or
// nested quantifiers, so matching stays linear on adversarial input.
var formatRules = []formatRule{
	{model.FormatStoryblock, regexp.MustCompile(`(?i)<fw-storyblock\b`)},
	{model.FormatHeroUnit, regexp.MustCompile(`(?i)<fw-herounit\b`)},
	{model.FormatPlayer, regexp.MustCompile(`(?i)<fw-player\b`)},
	{model.FormatGrid, regexp.MustCompile(`(?i)<fw-embed-feed\b[^>]*\bmode\s*=\s*["']?grid\b`)},
	{model.FormatCarousel, regexp.MustCompile(`(?i)<fw-embed-feed\b[^>]*\bmode\s*=\s*["']?row\b`)},
	{model.FormatEmbedFeed, regexp.MustCompile(`(?i)<fw-embed-feed\b`)},
}

// markerPrefix catches marker elements no variant rule recognizes.
var markerPrefix = regexp.MustCompile(`(?i)<fw-[a-z]`)

// Classify inspects a document for the embed marker. The first matching
// rule wins; a marker element no rule recognizes reports HasMarker with
// FormatUnknown; a document without the marker prefix reports neither.
// Empty or malformed input classifies as no marker, never an error.
func Classify(html string) model.Classification {
	if html == "" {
		return model.NoMarker()
	}
	for _, rule := range formatRules {
		if rule.re.MatchString(html) {
			return model.Classification{HasMarker: true, Format: rule.format}
		}
	}
	if markerPrefix.MatchString(html) {
		return model.Classification{HasMarker: true, Format: model.FormatUnknown}
	}
	return model.NoMarker()
}
