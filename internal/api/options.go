package api

import (
	"net/http"

	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/filter"
)

type OptionsHandler struct {
	ds *dataset.Dataset
}

func NewOptionsHandler(ds *dataset.Dataset) *OptionsHandler {
	return &OptionsHandler{ds: ds}
}

// Provinces handles GET /api/v1/options/provinces
func (h *OptionsHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, filter.Provinces(h.ds.Rows))
}

// Districts handles GET /api/v1/options/districts
func (h *OptionsHandler) Districts(w http.ResponseWriter, r *http.Request) {
	c, err := parseConstraints(r, h.ds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, filter.Districts(h.ds.Rows, c))
}

// Subdistricts handles GET /api/v1/options/subdistricts
func (h *OptionsHandler) Subdistricts(w http.ResponseWriter, r *http.Request) {
	c, err := parseConstraints(r, h.ds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, filter.Subdistricts(h.ds.Rows, c))
}

// HappyBlocks handles GET /api/v1/options/happy-blocks
func (h *OptionsHandler) HappyBlocks(w http.ResponseWriter, r *http.Request) {
	c, err := parseConstraints(r, h.ds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, filter.HappyBlocks(h.ds.Rows, c))
}
