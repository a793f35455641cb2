package api

import (
	"net/http"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/filter"
)

type ChartHandler struct {
	ds *dataset.Dataset
}

func NewChartHandler(ds *dataset.Dataset) *ChartHandler {
	return &ChartHandler{ds: ds}
}

// Distribution handles GET /api/v1/chart — a PNG histogram of the Potential
// Score distribution over the currently filtered subset.
func (h *ChartHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	c, err := parseConstraints(r, h.ds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rows := filter.Apply(h.ds.Rows, c)
	if len(rows) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no rows match the current filter"})
		return
	}

	values := make(plotter.Values, len(rows))
	for i, row := range rows {
		values[i] = row.PotentialScore
	}

	p := plot.New()
	p.Title.Text = "Potential Score Distribution"
	p.X.Label.Text = "Potential Score"
	p.Y.Label.Text = "Sub-units"
	p.X.Min = 0
	p.X.Max = 100

	hist, err := plotter.NewHist(values, 20)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	p.Add(hist)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := wt.WriteTo(w); err != nil {
		return
	}
}
