package registry

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/showline/report-cli/internal/model"
)

// Options extracts the distinct non-empty industry and country values
// from the registry, sorted with an English collator so the option lists
// order sensibly regardless of byte values.
func Options(refs []model.ReferenceRecord) (industries, countries []string) {
	indSet := make(map[string]struct{})
	ctySet := make(map[string]struct{})
	for _, ref := range refs {
		if ref.Industry != "" {
			indSet[ref.Industry] = struct{}{}
		}
		if ref.Region != "" {
			ctySet[ref.Region] = struct{}{}
		}
	}

	industries = make([]string, 0, len(indSet))
	for v := range indSet {
		industries = append(industries, v)
	}
	countries = make([]string, 0, len(ctySet))
	for v := range ctySet {
		countries = append(countries, v)
	}

	c := collate.New(language.English)
	c.SortStrings(industries)
	c.SortStrings(countries)
	return industries, countries
}
