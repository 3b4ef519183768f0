package report

import (
	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/model"
)

// FilterNone disables a filter dimension when passed as the country, and
// is how the presentation layer spells "no selection".
const FilterNone = "none"

// Filter narrows enriched records by industry membership and region, in
// that order. Industries are OR'd together; the country is resolved to
// its region label set before matching. An empty industry set and a
// country of "" or "none" each disable that dimension. Records without
// enrichment (nil industry/region) are excluded by an active filter. An
// empty result is valid output, not an error.
func Filter(records []model.EnrichedRecord, industries []string, country string) []model.EnrichedRecord {
	out := records

	if len(industries) > 0 {
		want := make(map[string]struct{}, len(industries))
		for _, ind := range industries {
			want[ind] = struct{}{}
		}
		kept := make([]model.EnrichedRecord, 0, len(out))
		for _, r := range out {
			if r.Industry == nil {
				continue
			}
			if _, ok := want[*r.Industry]; ok {
				kept = append(kept, r)
			}
		}
		zap.L().Debug("filter: industry",
			zap.Strings("industries", industries),
			zap.Int("before", len(out)),
			zap.Int("after", len(kept)),
		)
		out = kept
	}

	if country != "" && country != FilterNone {
		regions := ResolveRegions(country)
		want := make(map[string]struct{}, len(regions))
		for _, region := range regions {
			want[region] = struct{}{}
		}
		kept := make([]model.EnrichedRecord, 0, len(out))
		for _, r := range out {
			if r.Region == nil {
				continue
			}
			if _, ok := want[*r.Region]; ok {
				kept = append(kept, r)
			}
		}
		zap.L().Debug("filter: region",
			zap.String("country", country),
			zap.Strings("regions", regions),
			zap.Int("before", len(out)),
			zap.Int("after", len(kept)),
		)
		out = kept
	}

	return out
}
