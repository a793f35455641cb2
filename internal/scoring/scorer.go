// Package scoring derives the 0–100 Potential Score from five weighted,
// normalized sub-factors over the full dataset.
package scoring

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tol-insights/potentialmap/internal/dataset"
)

// FactorResult captures one factor's contribution to a row's score.
type FactorResult struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Scorer runs the weighted additive scoring pass.
type Scorer struct {
	weights WeightSet
	logger  *slog.Logger
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(weights WeightSet, logger *slog.Logger) *Scorer {
	return &Scorer{weights: weights, logger: logger}
}

// Weights returns the weight set the scorer was built with.
func (s *Scorer) Weights() WeightSet { return s.weights }

// ParseSpeed extracts the numeric portion of a "<number> <unit>" speed string
// and scales it by 1/1000. Only the leading token is read; units are assumed
// consistent across the dataset.
func ParseSpeed(speed string) (float64, error) {
	fields := strings.Fields(speed)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty speed value")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("speed %q: %w", speed, err)
	}
	return v / 1000, nil
}

// Score computes the derived columns for every row and returns a new slice;
// the input is left untouched. Normalization denominators are taken over the
// entire input before any per-row division, so this is a collection-wide
// pass, never row-at-a-time.
//
// A zero denominator (all households zero, all raw scores zero, ...) is a
// degenerate input and fails the pass rather than producing NaN columns.
func (s *Scorer) Score(rows []dataset.Row) ([]dataset.Row, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	var maxHousehold, maxInstall, maxShare float64
	for _, r := range rows {
		if v := float64(r.Household); v > maxHousehold {
			maxHousehold = v
		}
		if v := float64(r.Install); v > maxInstall {
			maxInstall = v
		}
		if r.MarketShareTrue > maxShare {
			maxShare = r.MarketShareTrue
		}
	}
	if maxHousehold == 0 {
		return nil, fmt.Errorf("degenerate input: max Household is zero")
	}
	if maxInstall == 0 {
		return nil, fmt.Errorf("degenerate input: max Install is zero")
	}
	if maxShare == 0 {
		return nil, fmt.Errorf("degenerate input: max Market Share True is zero")
	}

	out := make([]dataset.Row, len(rows))
	raw := make([]float64, len(rows))
	var maxRaw float64
	for i, r := range rows {
		r.HouseholdNorm = float64(r.Household) / maxHousehold
		r.InstallNorm = float64(r.Install) / maxInstall
		r.Retention = retention(r.Churn, r.PortUse)
		r.MarketShareNorm = r.MarketShareTrue / maxShare

		speed, err := ParseSpeed(r.TrueSpeed)
		if err != nil {
			return nil, fmt.Errorf("row %s: %w", r.ID, err)
		}
		r.SpeedNorm = speed

		raw[i] = s.weights.Household*r.HouseholdNorm +
			s.weights.Install*r.InstallNorm +
			s.weights.Retention*r.Retention +
			s.weights.MarketShare*r.MarketShareNorm +
			s.weights.Speed*r.SpeedNorm
		if raw[i] > maxRaw {
			maxRaw = raw[i]
		}
		out[i] = r
	}
	if maxRaw == 0 {
		return nil, fmt.Errorf("degenerate input: all raw scores are zero")
	}

	for i := range out {
		out[i].PotentialScore = raw[i] / maxRaw * 100
	}

	s.logger.Info("scoring pass complete",
		"rows", len(out),
		"max_household", maxHousehold,
		"max_install", maxInstall,
		"max_market_share", maxShare,
	)
	return out, nil
}

// Explain returns the per-factor breakdown for an already-scored row.
func (s *Scorer) Explain(r dataset.Row) []FactorResult {
	factors := []FactorResult{
		{Name: "household", Score: r.HouseholdNorm, Weight: s.weights.Household},
		{Name: "install", Score: r.InstallNorm, Weight: s.weights.Install},
		{Name: "retention", Score: r.Retention, Weight: s.weights.Retention},
		{Name: "market_share", Score: r.MarketShareNorm, Weight: s.weights.MarketShare},
		{Name: "speed", Score: r.SpeedNorm, Weight: s.weights.Speed},
	}
	for i := range factors {
		factors[i].Weighted = factors[i].Score * factors[i].Weight
	}
	return factors
}

// retention is 1 − Churn/PortUse with the ratio clipped to 1, so churn
// exceeding port use floors at zero retention instead of going negative.
// Zero port use counts as fully churned.
func retention(churn, portUse int) float64 {
	if portUse <= 0 {
		return 0
	}
	ratio := float64(churn) / float64(portUse)
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio
}
