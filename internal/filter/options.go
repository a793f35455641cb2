package filter

import (
	"github.com/tol-insights/potentialmap/internal/dataset"
)

// Option discovery for the cascading controls. Each query applies only the
// equality constraints for levels strictly above its own, then returns the
// distinct values of its column in first-seen order within that subset.

// Provinces returns the distinct provinces of the full dataset.
func Provinces(rows []dataset.Row) []string {
	return distinct(rows, func(r dataset.Row) string { return r.Province })
}

// Districts returns district options under the current province constraint.
func Districts(rows []dataset.Row, c Constraints) []string {
	narrowed := Apply(rows, Constraints{Province: c.Province})
	return distinct(narrowed, func(r dataset.Row) string { return r.District })
}

// Subdistricts returns sub-district options under the current province and
// district constraints.
func Subdistricts(rows []dataset.Row, c Constraints) []string {
	narrowed := Apply(rows, Constraints{Province: c.Province, District: c.District})
	return distinct(narrowed, func(r dataset.Row) string { return r.Subdistrict })
}

// HappyBlocks returns happy-block options under the province, district and
// sub-district constraints.
func HappyBlocks(rows []dataset.Row, c Constraints) []string {
	narrowed := Apply(rows, Constraints{
		Province:    c.Province,
		District:    c.District,
		Subdistrict: c.Subdistrict,
	})
	return distinct(narrowed, func(r dataset.Row) string { return r.HappyBlock })
}

func distinct(rows []dataset.Row, key func(dataset.Row) string) []string {
	seen := make(map[string]bool, len(rows))
	out := []string{}
	for _, r := range rows {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
