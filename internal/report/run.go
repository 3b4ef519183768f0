package report

import (
	"github.com/showline/report-cli/internal/model"
)

// RunParams selects and shapes one report run.
type RunParams struct {
	Source          model.SourceType
	Industries      []string
	Country         string
	Page            int
	PageSize        int
	MaxRowsPerGroup int
}

// RunResult is one page of the report: the ranked groups with pagination
// metadata, plus the capped detail records for those groups.
type RunResult struct {
	Page    model.PageResult
	Records []model.EnrichedRecord
}

// Run executes the synchronous pipeline for one request: merge, filter,
// aggregate, paginate, and cap. The embed check is a separate concurrent
// stage the caller attaches afterwards.
func Run(video, live []model.PerformanceRecord, refs []model.ReferenceRecord, p RunParams) (*RunResult, error) {
	merged, err := Merge(video, live, refs, p.Source)
	if err != nil {
		return nil, err
	}

	filtered := Filter(merged, p.Industries, p.Country)
	groups := Aggregate(filtered)
	page := Paginate(groups, p.Page, p.PageSize)
	records := CapDetailRows(RecordsForGroups(filtered, page.Groups), p.MaxRowsPerGroup)

	return &RunResult{Page: page, Records: records}, nil
}

// Rows renders capped records for presentation, attaching per-URL
// classifications when the embed check ran (pass nil when it did not).
func Rows(records []model.EnrichedRecord, classifications map[string]model.Classification) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(records))
	for _, r := range records {
		row := model.ReportRow{
			ChannelName: model.Display(r.ChannelName),
			Industry:    model.Display(r.Industry),
			Region:      model.Display(r.Region),
			PageURL:     r.PageURL,
			ViewCount:   r.ViewCount,
		}
		if classifications != nil {
			if cls, ok := classifications[r.PageURL]; ok {
				marker := cls.HasMarker
				row.HasMarker = &marker
				row.Format = cls.Format
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// URLs collects the page URLs of the given records, preserving order and
// duplicates; the checker deduplicates internally.
func URLs(records []model.EnrichedRecord) []string {
	urls := make([]string, 0, len(records))
	for _, r := range records {
		if r.PageURL != "" {
			urls = append(urls, r.PageURL)
		}
	}
	return urls
}
