package report

import (
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/model"
)

// Merge performs a left outer join of the selected performance table
// against the reference registry on the normalized business key. Unmatched
// performance rows are retained with nil enrichment so coverage gaps stay
// visible; duplicate registry keys fan out into one enriched row per
// match. A nil reference table is an UpstreamError, never an empty join.
func Merge(video, live []model.PerformanceRecord, refs []model.ReferenceRecord, source model.SourceType) ([]model.EnrichedRecord, error) {
	if refs == nil {
		return nil, &model.UpstreamError{Source: "reference registry"}
	}

	main := video
	if source == model.SourceLive {
		main = live
	}

	// Index registry rows by key, preserving registry order so duplicate
	// keys fan out deterministically.
	index := make(map[float64][]model.ReferenceRecord, len(refs))
	for _, ref := range refs {
		if ref.BusinessKey == nil {
			continue
		}
		index[*ref.BusinessKey] = append(index[*ref.BusinessKey], ref)
	}

	var matched, unmatched int
	out := make([]model.EnrichedRecord, 0, len(main))
	for _, perf := range main {
		host := hostnameOf(perf.PageURL)

		var matches []model.ReferenceRecord
		if perf.BusinessKey != nil {
			matches = index[*perf.BusinessKey]
		}

		if len(matches) == 0 {
			unmatched++
			out = append(out, model.EnrichedRecord{
				BusinessKey: perf.BusinessKey,
				PageURL:     perf.PageURL,
				Hostname:    host,
				ViewCount:   perf.ViewCount,
			})
			continue
		}

		matched++
		for _, ref := range matches {
			industry := ref.Industry
			if industry == "" {
				industry = model.IndustryUnknown
			}
			rec := model.EnrichedRecord{
				BusinessKey: perf.BusinessKey,
				PageURL:     perf.PageURL,
				Hostname:    host,
				ViewCount:   perf.ViewCount,
				Industry:    &industry,
				Region:      strPtr(ref.Region),
			}
			if ref.ChannelName != "" {
				rec.ChannelName = strPtr(ref.ChannelName)
			}
			out = append(out, rec)
		}
	}

	zap.L().Info("merge: joined performance rows against registry",
		zap.String("source", string(source)),
		zap.Int("performance_rows", len(main)),
		zap.Int("reference_rows", len(refs)),
		zap.Int("matched", matched),
		zap.Int("unmatched", unmatched),
		zap.Int("enriched_rows", len(out)),
	)
	return out, nil
}

func strPtr(s string) *string { return &s }

// hostnameOf extracts the host for fallback grouping. Scheme-less URLs
// get an https prefix before parsing; anything unparsable yields "".
func hostnameOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
