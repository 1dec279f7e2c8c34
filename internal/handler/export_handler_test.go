package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/itinerary"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

func newExportHandler() *ExportHandler {
	return NewExportHandler(store.NewLive(itinerary.Default()), "Flåm Shore Excursion", slog.New(slog.DiscardHandler))
}

func TestExportCSVDefault(t *testing.T) {
	h := newExportHandler()

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/v1/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "itinerary.csv")
	assert.Contains(t, rec.Body.String(), "id,start,end,duration,title")
	assert.Contains(t, rec.Body.String(), "The Flåm Railway")
}

func TestExportJSON(t *testing.T) {
	h := newExportHandler()

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/v1/export?format=json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"totalNOK"`)
}

func TestExportUnknownFormat(t *testing.T) {
	h := newExportHandler()

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/v1/export?format=pdf", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
