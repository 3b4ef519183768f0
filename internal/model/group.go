package model

// ChannelGroup is one aggregated channel in the ranked report. GroupKey is
// the channel name when every record in the batch carried one, otherwise
// the page hostname. Industry, Region, and ChannelName are the first
// encountered row's values; heterogeneous groups keep whichever row came
// first, a known limitation.
type ChannelGroup struct {
	GroupKey    string  `json:"group_key"`
	ChannelName string  `json:"channel_name"`
	Industry    string  `json:"industry"`
	Region      string  `json:"region"`
	TotalViews  float64 `json:"total_views"`
	URLCount    int     `json:"url_count"`
}

// PageResult is one page of the ranked group list plus the pagination
// metadata the presentation layer renders.
type PageResult struct {
	Groups          []ChannelGroup `json:"groups"`
	CurrentPage     int            `json:"current_page"`
	PageSize        int            `json:"page_size"`
	HasNext         bool           `json:"has_next"`
	TotalGroupCount int            `json:"total_group_count"`
}
