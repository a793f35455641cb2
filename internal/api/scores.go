package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/scoring"
)

type ScoresHandler struct {
	ds     *dataset.Dataset
	scorer *scoring.Scorer
}

func NewScoresHandler(ds *dataset.Dataset, scorer *scoring.Scorer) *ScoresHandler {
	return &ScoresHandler{ds: ds, scorer: scorer}
}

// Explain returns the scoring breakdown for one row.
// GET /api/v1/rows/{id}/score
func (h *ScoresHandler) Explain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row id"})
		return
	}

	row, ok := h.ds.RowByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "row not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"row_id":          row.ID,
		"potential_score": row.PotentialScore,
		"factors":         h.scorer.Explain(row),
	})
}
