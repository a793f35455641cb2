package api

import (
	"net/http"

	"github.com/tol-insights/potentialmap/internal/config"
	"github.com/tol-insights/potentialmap/internal/dataset"
)

type MetaHandler struct {
	ds  *dataset.Dataset
	cfg *config.Config
}

func NewMetaHandler(ds *dataset.Dataset, cfg *config.Config) *MetaHandler {
	return &MetaHandler{ds: ds, cfg: cfg}
}

// Meta handles GET /api/v1/meta — snapshot identity, default filter domains
// and map defaults, used by the dashboard to initialize its controls.
func (h *MetaHandler) Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id": h.ds.ID,
		"row_count":   len(h.ds.Rows),
		"domains":     h.ds.Domains,
		"map": map[string]interface{}{
			"zoom":       h.cfg.Map.Zoom,
			"color_low":  h.cfg.Map.ColorLow,
			"color_high": h.cfg.Map.ColorHigh,
		},
	})
}
