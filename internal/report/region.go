package report

// countryToRegions maps a registry country name to the internal region
// labels used for filtering. Built once at init and never mutated. Japan
// is its own bucket in the registry, so it maps to itself. Lookup is
// case-sensitive exact match.
var countryToRegions = map[string][]string{
	"Japan": {"Japan"},

	"United States": {"Americas"},
	"Canada":        {"Americas"},
	"Mexico":        {"Americas"},
	"Brazil":        {"Americas"},
	"Argentina":     {"Americas"},
	"Chile":         {"Americas"},
	"Colombia":      {"Americas"},

	"United Kingdom": {"Europe"},
	"Germany":        {"Europe"},
	"France":         {"Europe"},
	"Italy":          {"Europe"},
	"Spain":          {"Europe"},
	"Netherlands":    {"Europe"},
	"Sweden":         {"Europe"},
	"Switzerland":    {"Europe"},
	"Poland":         {"Europe"},
	"Ireland":        {"Europe"},

	"China":       {"APAC"},
	"South Korea": {"APAC"},
	"Taiwan":      {"APAC"},
	"Hong Kong":   {"APAC"},
	"Singapore":   {"APAC"},
	"Thailand":    {"APAC"},
	"Vietnam":     {"APAC"},
	"Indonesia":   {"APAC"},
	"Malaysia":    {"APAC"},
	"Philippines": {"APAC"},
	"India":       {"APAC"},
	"Australia":   {"APAC"},
	"New Zealand": {"APAC"},

	"United Arab Emirates": {"Middle East"},
	"Saudi Arabia":         {"Middle East"},
	"Israel":               {"Middle East"},
	"Turkey":               {"Middle East"},

	"South Africa": {"Africa"},
	"Nigeria":      {"Africa"},
	"Egypt":        {"Africa"},
}

// ResolveRegions maps a country name to its region labels. Unknown input
// comes back unchanged as a single-element slice, which lets internal
// sentinel values like "System" pass through the region filter as-is.
func ResolveRegions(country string) []string {
	if regions, ok := countryToRegions[country]; ok {
		out := make([]string, len(regions))
		copy(out, regions)
		return out
	}
	return []string{country}
}
