package dataset

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a workbook with the same header contract
// and row-skip policy as the CSV path.
func loadXLSX(path string, logger *slog.Logger) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrParse)
	}

	idx, err := indexHeader(records[0])
	if err != nil {
		return nil, err
	}

	var rows []Row
	skipped := 0
	for _, record := range records[1:] {
		row, err := parseRow(record, idx)
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		logger.Warn("skipped malformed rows", "path", path, "skipped", skipped, "loaded", len(rows))
	}
	return rows, nil
}
