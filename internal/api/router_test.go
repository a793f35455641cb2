package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tol-insights/potentialmap/internal/config"
	"github.com/tol-insights/potentialmap/internal/dataset"
	"github.com/tol-insights/potentialmap/internal/scoring"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixtureHandler(t *testing.T) (http.Handler, *dataset.Dataset, *scoring.Scorer) {
	t.Helper()
	mk := func(province, district, subdistrict, block string, household, netAdd int) dataset.Row {
		return dataset.Row{
			ID:              uuid.New(),
			Province:        province,
			District:        district,
			Subdistrict:     subdistrict,
			HappyBlock:      block,
			Latitude:        7.0,
			Longitude:       100.5,
			Household:       household,
			Install:         household / 2,
			Churn:           2,
			PortUse:         40,
			MarketShareTrue: 35,
			TrueSpeed:       "500 Mbps",
			NetAdd:          netAdd,
		}
	}
	raw := []dataset.Row{
		mk("A", "D1", "S1", "HB1", 200, 5),
		mk("A", "D1", "S2", "HB2", 120, 25),
		mk("A", "D2", "S3", "HB3", 60, -3),
		mk("B", "X", "S4", "HB4", 90, 8),
	}

	scorer := scoring.NewScorer(scoring.DefaultWeights(), discardLogger())
	scored, err := scorer.Score(raw)
	require.NoError(t, err)

	ds := dataset.New(scored)
	cfg, err := config.Load("")
	require.NoError(t, err)

	return NewRouter(ds, scorer, cfg, discardLogger()), ds, scorer
}

func doJSON(t *testing.T, h http.Handler, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestProvinceOptions(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	var provinces []string
	rec := doJSON(t, h, "/api/v1/options/provinces", &provinces)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"A", "B"}, provinces)
}

func TestDistrictOptionsCascade(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	var districts []string
	rec := doJSON(t, h, "/api/v1/options/districts?province=A", &districts)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"D1", "D2"}, districts)
}

func TestHappyBlockOptionsStaleSelection(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	var blocks []string
	rec := doJSON(t, h, "/api/v1/options/happy-blocks?province=A&district=X", &blocks)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, blocks)
}

func TestRowsFilterConjunction(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	var rows []dataset.Row
	rec := doJSON(t, h, "/api/v1/rows?province=A&net_add_min=0&net_add_max=10", &rows)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rows, 1)
	assert.Equal(t, "S1", rows[0].Subdistrict)
}

func TestRowsStaleSelectionIsEmptyNotError(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	var rows []dataset.Row
	rec := doJSON(t, h, "/api/v1/rows?province=A&district=X", &rows)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rows)
}

func TestRowsBadRangeParam(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	rec := doJSON(t, h, "/api/v1/rows?score_min=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRowsUnfilteredReturnsAllScored(t *testing.T) {
	h, ds, _ := fixtureHandler(t)

	var rows []dataset.Row
	rec := doJSON(t, h, "/api/v1/rows", &rows)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rows, len(ds.Rows))
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.PotentialScore, 0.0)
		assert.LessOrEqual(t, r.PotentialScore, 100.0)
	}
}

func TestScoreExplain(t *testing.T) {
	h, ds, _ := fixtureHandler(t)

	var resp struct {
		RowID          uuid.UUID              `json:"row_id"`
		PotentialScore float64                `json:"potential_score"`
		Factors        []scoring.FactorResult `json:"factors"`
	}
	rec := doJSON(t, h, "/api/v1/rows/"+ds.Rows[0].ID.String()+"/score", &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ds.Rows[0].ID, resp.RowID)
	require.Len(t, resp.Factors, 5)

	var weightSum float64
	for _, f := range resp.Factors {
		weightSum += f.Weight
	}
	assert.InDelta(t, 1.0, weightSum, 0.001)
}

func TestScoreExplainUnknownRow(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	rec := doJSON(t, h, "/api/v1/rows/"+uuid.NewString()+"/score", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "/api/v1/rows/not-a-uuid/score", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeta(t *testing.T) {
	h, ds, _ := fixtureHandler(t)

	var meta struct {
		SnapshotID uuid.UUID       `json:"snapshot_id"`
		RowCount   int             `json:"row_count"`
		Domains    dataset.Domains `json:"domains"`
	}
	rec := doJSON(t, h, "/api/v1/meta", &meta)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ds.ID, meta.SnapshotID)
	assert.Equal(t, len(ds.Rows), meta.RowCount)
	assert.Equal(t, -3.0, meta.Domains.NetAdd.Min)
	assert.Equal(t, 25.0, meta.Domains.NetAdd.Max)
}

func TestDashboardServed(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	rec := doJSON(t, h, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "leaflet")
}

func TestChartPNG(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	rec := doJSON(t, h, "/api/v1/chart?province=A", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestChartEmptySubset(t *testing.T) {
	h, _, _ := fixtureHandler(t)

	rec := doJSON(t, h, "/api/v1/chart?province=A&district=X", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestHealthAndMetrics(t *testing.T) {
	h := NewMetricsRouter()

	rec := doJSON(t, h, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
