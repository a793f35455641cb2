package scoring

import (
	"fmt"
	"math"
)

// WeightSet defines the relative importance of each scoring factor.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	Household   float64
	Install     float64
	Retention   float64
	MarketShare float64
	Speed       float64
}

// DefaultWeights returns the fixed Potential Score weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Household:   0.40,
		Install:     0.25,
		Retention:   0.20,
		MarketShare: 0.05,
		Speed:       0.10,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Household + w.Install + w.Retention + w.MarketShare + w.Speed
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Household, w.Install, w.Retention, w.MarketShare, w.Speed} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
