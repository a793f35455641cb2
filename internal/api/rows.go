package api

import (
	"net/http"

	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/filter"
)

type RowsHandler struct {
	ds *dataset.Dataset
}

func NewRowsHandler(ds *dataset.Dataset) *RowsHandler {
	return &RowsHandler{ds: ds}
}

// List handles GET /api/v1/rows — the main filter query. All eight
// constraints arrive as query parameters; unset constraints are wildcards.
func (h *RowsHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := parseConstraints(r, h.ds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, filter.Apply(h.ds.Rows, c))
}
