package report

import (
	"sort"

	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/model"
)

// groupKeyFn picks the grouping key for a batch. Channel-name keying is
// all-or-nothing: a single record without a channel name switches the
// entire batch to hostname keying, never a per-record mix.
func groupKeyFn(records []model.EnrichedRecord) func(model.EnrichedRecord) string {
	for _, r := range records {
		if r.ChannelName == nil || *r.ChannelName == "" {
			return func(r model.EnrichedRecord) string { return r.Hostname }
		}
	}
	return func(r model.EnrichedRecord) string { return *r.ChannelName }
}

// Aggregate groups filtered records by channel identity and ranks the
// groups by total views, descending. Ties keep encounter order (stable
// sort over insertion-ordered groups). Industry, region, and channel name
// on a group are the first row's values.
func Aggregate(records []model.EnrichedRecord) []model.ChannelGroup {
	key := groupKeyFn(records)

	var order []string
	groups := make(map[string]*model.ChannelGroup)
	for _, r := range records {
		k := key(r)
		g, ok := groups[k]
		if !ok {
			g = &model.ChannelGroup{
				GroupKey:    k,
				ChannelName: model.Display(r.ChannelName),
				Industry:    model.Display(r.Industry),
				Region:      model.Display(r.Region),
			}
			groups[k] = g
			order = append(order, k)
		}
		g.TotalViews += r.ViewCount
		g.URLCount++
	}

	out := make([]model.ChannelGroup, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalViews > out[j].TotalViews
	})

	zap.L().Debug("aggregate: ranked channel groups",
		zap.Int("records", len(records)),
		zap.Int("groups", len(out)),
	)
	return out
}

// Paginate slices the ranked group list. Pages are 1-based; values below
// 1 are coerced to 1. Pagination counts groups, not detail rows.
func Paginate(groups []model.ChannelGroup, page, pageSize int) model.PageResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(groups)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.PageResult{
		Groups:          groups[start:end],
		CurrentPage:     page,
		PageSize:        pageSize,
		HasNext:         page*pageSize < total,
		TotalGroupCount: total,
	}
}

// RecordsForGroups returns the records belonging to the given groups, in
// input order. It must be called with the same batch Aggregate keyed, so
// the all-or-nothing key rule resolves identically.
func RecordsForGroups(records []model.EnrichedRecord, groups []model.ChannelGroup) []model.EnrichedRecord {
	key := groupKeyFn(records)
	want := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		want[g.GroupKey] = struct{}{}
	}
	var out []model.EnrichedRecord
	for _, r := range records {
		if _, ok := want[key(r)]; ok {
			out = append(out, r)
		}
	}
	return out
}
