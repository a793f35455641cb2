// Package filter narrows the dataset by hierarchical geography and numeric
// ranges, and computes the candidate option lists for the dependent
// selection controls.
package filter

import (
	"github.com/tol-insights/potentialmap/internal/dataset"
)

// Range is an inclusive numeric bound pair.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Constraints is a conjunction of optional equality constraints on the
// geographic hierarchy and optional inclusive ranges on the numeric columns.
// An empty string or nil range means no constraint at that position.
type Constraints struct {
	Province    string
	District    string
	Subdistrict string
	HappyBlock  string

	NetAdd          *Range
	PotentialScore  *Range
	PortUtilization *Range
	MarketShareTrue *Range
}

// View is the complete evaluation of one constraint set: the four option
// lists for the dependent controls plus the filtered subset.
type View struct {
	Provinces    []string
	Districts    []string
	Subdistricts []string
	HappyBlocks  []string
	Rows         []dataset.Row
}

// Evaluate computes the full view for a constraint set in one call.
func Evaluate(rows []dataset.Row, c Constraints) View {
	return View{
		Provinces:    Provinces(rows),
		Districts:    Districts(rows, c),
		Subdistricts: Subdistricts(rows, c),
		HappyBlocks:  HappyBlocks(rows, c),
		Rows:         Apply(rows, c),
	}
}

// Apply returns the subset of rows matching every active constraint, in
// source order. A stale equality constraint yields an empty result, never an
// error.
func Apply(rows []dataset.Row, c Constraints) []dataset.Row {
	out := []dataset.Row{}
	for _, r := range rows {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r dataset.Row, c Constraints) bool {
	if c.Province != "" && r.Province != c.Province {
		return false
	}
	if c.District != "" && r.District != c.District {
		return false
	}
	if c.Subdistrict != "" && r.Subdistrict != c.Subdistrict {
		return false
	}
	if c.HappyBlock != "" && r.HappyBlock != c.HappyBlock {
		return false
	}
	if c.NetAdd != nil && !c.NetAdd.Contains(float64(r.NetAdd)) {
		return false
	}
	if c.PotentialScore != nil && !c.PotentialScore.Contains(r.PotentialScore) {
		return false
	}
	if c.PortUtilization != nil && !c.PortUtilization.Contains(r.PortUtilization) {
		return false
	}
	if c.MarketShareTrue != nil && !c.MarketShareTrue.Contains(r.MarketShareTrue) {
		return false
	}
	return true
}
