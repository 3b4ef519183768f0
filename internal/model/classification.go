package model

// Format is one of the mutually exclusive visual presentation modes of the
// embed widget.
type Format string

const (
	FormatStoryblock Format = "Storyblock"
	FormatHeroUnit   Format = "Hero Unit"
	FormatPlayer     Format = "Player"
	FormatGrid       Format = "Grid"
	FormatCarousel   Format = "Carousel"
	FormatEmbedFeed  Format = "Embed Feed"
	FormatUnknown    Format = "Unknown"
)

// Classification records whether a fetched page carries the embed marker
// and, if so, which format variant it renders. HasMarker distinguishes
// "marker present, variant not recognized" from "no marker at all"; both
// report FormatUnknown.
type Classification struct {
	HasMarker bool   `json:"has_marker"`
	Format    Format `json:"format"`
}

// NoMarker is the classification recorded for pages without the marker and
// for pages that could not be fetched.
func NoMarker() Classification {
	return Classification{HasMarker: false, Format: FormatUnknown}
}
