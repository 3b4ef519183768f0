package report

import (
	"strings"

	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/model"
)

// Required performance workbook columns. Located by header name, so
// column order in the upload does not matter.
const (
	ColBusinessID = "Business Id"
	ColPageURL    = "Page Url"
	ColViewCount  = "Video Views"
)

// HeaderIndex locates required columns in a header row. Header cells are
// trimmed before comparison. A missing column is a DataError naming the
// table and the column so the operator can fix the upload.
func HeaderIndex(table string, header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		idx[strings.TrimSpace(cell)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, &model.DataError{Table: table, Column: col}
		}
	}
	return idx, nil
}

// ParsePerformanceTable converts raw workbook rows into performance
// records. The first row is the header. Blank or non-numeric business
// keys parse to nil and simply fail to match in the merge; view counts
// that do not parse count as zero.
func ParsePerformanceTable(table string, rows [][]string) ([]model.PerformanceRecord, error) {
	if len(rows) == 0 {
		return nil, &model.DataError{Table: table}
	}

	idx, err := HeaderIndex(table, rows[0], ColBusinessID, ColPageURL, ColViewCount)
	if err != nil {
		return nil, err
	}

	cell := func(row []string, col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]model.PerformanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		views, _ := NormalizeKey(cell(row, ColViewCount))
		records = append(records, model.PerformanceRecord{
			BusinessKey: NormalizeKeyPtr(cell(row, ColBusinessID)),
			PageURL:     strings.TrimSpace(cell(row, ColPageURL)),
			ViewCount:   views,
		})
	}

	zap.L().Debug("table: parsed performance rows",
		zap.String("table", table),
		zap.Int("rows", len(records)),
	)
	return records, nil
}
