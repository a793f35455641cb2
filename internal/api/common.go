package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/filter"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseConstraints builds a constraint set from query parameters. A range is
// active when either bound is present; the missing bound falls back to the
// dataset's default domain.
func parseConstraints(r *http.Request, ds *dataset.Dataset) (filter.Constraints, error) {
	q := r.URL.Query()
	c := filter.Constraints{
		Province:    q.Get("province"),
		District:    q.Get("district"),
		Subdistrict: q.Get("subdistrict"),
		HappyBlock:  q.Get("happy_block"),
	}

	var err error
	c.NetAdd, err = parseRange(q.Get("net_add_min"), q.Get("net_add_max"), ds.Domains.NetAdd)
	if err != nil {
		return c, err
	}
	c.PotentialScore, err = parseRange(q.Get("score_min"), q.Get("score_max"), ds.Domains.PotentialScore)
	if err != nil {
		return c, err
	}
	c.PortUtilization, err = parseRange(q.Get("utilization_min"), q.Get("utilization_max"), ds.Domains.PortUtilization)
	if err != nil {
		return c, err
	}
	c.MarketShareTrue, err = parseRange(q.Get("market_share_min"), q.Get("market_share_max"), ds.Domains.MarketShareTrue)
	if err != nil {
		return c, err
	}
	return c, nil
}

func parseRange(minStr, maxStr string, def dataset.Domain) (*filter.Range, error) {
	if minStr == "" && maxStr == "" {
		return nil, nil
	}
	rng := &filter.Range{Min: def.Min, Max: def.Max}
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range bound %q", minStr)
		}
		rng.Min = v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range bound %q", maxStr)
		}
		rng.Max = v
	}
	return rng, nil
}
