package report

import (
	"sort"

	"github.com/showline/report-cli/internal/model"
)

// DefaultMaxRowsPerGroup caps each group's detail rows in the rendered
// report when no explicit limit is configured.
const DefaultMaxRowsPerGroup = 3

// CapDetailRows limits each group to its top maxPerGroup detail rows by
// view count. Output keeps group encounter order; within a group rows are
// sorted by view count descending before the cap. A limit below 1 falls
// back to the default.
func CapDetailRows(records []model.EnrichedRecord, maxPerGroup int) []model.EnrichedRecord {
	if maxPerGroup < 1 {
		maxPerGroup = DefaultMaxRowsPerGroup
	}

	key := groupKeyFn(records)

	var order []string
	buckets := make(map[string][]model.EnrichedRecord)
	for _, r := range records {
		k := key(r)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], r)
	}

	out := make([]model.EnrichedRecord, 0, len(records))
	for _, k := range order {
		rows := buckets[k]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ViewCount > rows[j].ViewCount
		})
		if len(rows) > maxPerGroup {
			rows = rows[:maxPerGroup]
		}
		out = append(out, rows...)
	}
	return out
}
