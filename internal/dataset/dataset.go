// Package dataset loads the tabular infrastructure metrics file and holds it
// as an immutable in-memory collection for the lifetime of the process.
package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Domain is an inclusive numeric range observed in (or fixed for) a column.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Domains carries the default bounds for the four range filters.
type Domains struct {
	NetAdd          Domain `json:"net_add"`
	PotentialScore  Domain `json:"potential_score"`
	PortUtilization Domain `json:"port_utilization"`
	MarketShareTrue Domain `json:"market_share_true"`
}

// Dataset is the frozen row collection served for the rest of the process.
// Rows must not be mutated after New.
type Dataset struct {
	ID      uuid.UUID
	Rows    []Row
	Domains Domains

	byID map[uuid.UUID]int
}

// Load reads the file at path, dispatching on extension (.csv or .xlsx).
// Structural failures wrap ErrParse; malformed rows are dropped silently
// beyond a single summary log line.
func Load(path string, logger *slog.Logger) ([]Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path, logger)
	case ".xlsx":
		return loadXLSX(path, logger)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
}

// New freezes a scored row collection into a Dataset, computing the default
// filter domains. Net Add bounds are observed; the three percentage columns
// keep their fixed 0–100 scale.
func New(rows []Row) *Dataset {
	d := &Dataset{
		ID:   uuid.New(),
		Rows: rows,
		Domains: Domains{
			PotentialScore:  Domain{Min: 0, Max: 100},
			PortUtilization: Domain{Min: 0, Max: 100},
			MarketShareTrue: Domain{Min: 0, Max: 100},
		},
		byID: make(map[uuid.UUID]int, len(rows)),
	}
	for i, r := range rows {
		v := float64(r.NetAdd)
		if i == 0 || v < d.Domains.NetAdd.Min {
			d.Domains.NetAdd.Min = v
		}
		if i == 0 || v > d.Domains.NetAdd.Max {
			d.Domains.NetAdd.Max = v
		}
		d.byID[r.ID] = i
	}
	return d
}

// RowByID returns the row with the given id, or false if absent.
func (d *Dataset) RowByID(id uuid.UUID) (Row, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Row{}, false
	}
	return d.Rows[i], true
}
