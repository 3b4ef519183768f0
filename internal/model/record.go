package model

// SourceType selects which of the two uploaded performance workbooks is
// authoritative for a report run.
type SourceType string

const (
	SourceVideo SourceType = "short_video"
	SourceLive  SourceType = "live_stream"
)

// IndustryUnknown replaces an empty industry on a matched registry row.
const IndustryUnknown = "Unknown"

// PerformanceRecord is one row from an uploaded performance workbook.
// BusinessKey is nil when the cell was blank or not numeric; such rows
// never match in the merge but are still carried through it.
type PerformanceRecord struct {
	BusinessKey *float64
	PageURL     string
	ViewCount   float64
}

// ReferenceRecord is one row of the reference business registry.
// Duplicate BusinessKeys are permitted; the merge fans out over them.
type ReferenceRecord struct {
	BusinessKey *float64
	ChannelName string
	Industry    string
	Region      string
}

// EnrichedRecord is a performance row joined against zero or one registry
// rows. The enrichment pointers are nil when no registry match was found.
type EnrichedRecord struct {
	BusinessKey *float64
	PageURL     string
	Hostname    string
	ViewCount   float64
	ChannelName *string
	Industry    *string
	Region      *string
}

// Display renders an optional enrichment field for presentation. Absent
// values become the empty string; numeric fields are never run through
// this and stay numbers.
func Display(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
