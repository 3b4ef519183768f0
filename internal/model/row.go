package model

// ReportRow is one rendered detail row of the final report. Enrichment
// fields that were absent render as empty strings; ViewCount stays
// numeric. HasMarker and Format are only set when the embed check ran
// for the row's URL.
type ReportRow struct {
	ChannelName string  `json:"channel_name"`
	Industry    string  `json:"industry"`
	Region      string  `json:"region"`
	PageURL     string  `json:"page_url"`
	ViewCount   float64 `json:"view_count"`
	HasMarker   *bool   `json:"has_marker,omitempty"`
	Format      Format  `json:"format,omitempty"`
}
