package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// ErrParse marks a structural parse failure: the file cannot be tokenized as
// a whole, or the header is missing required columns. Per-row malformation is
// never an error; bad rows are dropped.
var ErrParse = errors.New("structural parse failure")

// columnIndex maps required column names to their position in the header.
type columnIndex map[string]int

func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, required := range requiredColumns() {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrParse, required)
		}
	}
	return idx, nil
}

// loadCSV reads a comma-delimited file in lenient mode: quoted fields with
// lazy quoting, variable field counts. Rows that cannot be parsed into a Row
// are skipped.
func loadCSV(path string, logger *slog.Logger) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: %v", ErrParse, err)
			}
			return nil, fmt.Errorf("read dataset: %w", err)
		}
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

// parseRow converts one record into a Row. Any missing field or unparseable
// numeric disqualifies the whole record.
func parseRow(record []string, idx columnIndex) (Row, error) {
	field := func(name string) (string, error) {
		i := idx[name]
		if i >= len(record) {
			return "", fmt.Errorf("row too short for column %q", name)
		}
		return record[i], nil
	}
	var firstErr error
	str := func(name string) string {
		v, err := field(name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return v
	}
	num := func(name string) float64 {
		v, err := field(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return 0
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %q: %w", name, err)
		}
		return n
	}
	integer := func(name string) int {
		return int(num(name))
	}

	row := Row{
		ID:              uuid.New(),
		Province:        str(colProvince),
		District:        str(colDistrict),
		Subdistrict:     str(colSubdistrict),
		HappyBlock:      str(colHappyBlock),
		L2:              str(colL2),
		Latitude:        num(colLatitude),
		Longitude:       num(colLongitude),
		Household:       integer(colHousehold),
		Install:         integer(colInstall),
		Churn:           integer(colChurn),
		ChurnPercent:    num(colChurnPercent),
		PortUse:         integer(colPortUse),
		PortAvailable:   integer(colPortAvailable),
		PortUtilization: num(colPortUtilization),
		MarketShareAIS:  num(colShareAIS),
		MarketShare3BB:  num(colShare3BB),
		MarketShareNT:   num(colShareNT),
		MarketShareTrue: num(colShareTrue),
		TrueSpeed:       str(colTrueSpeed),
		NetAdd:          integer(colNetAdd),
	}
	if firstErr != nil {
		return Row{}, firstErr
	}
	return row, nil
}
