package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/itinerary"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/storage"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

func newBudgetHandler(t *testing.T) *BudgetHandler {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBudgetHandler(store.NewLive(itinerary.Default()), db, slog.New(slog.DiscardHandler))
}

func TestGetBudgetItineraryTotals(t *testing.T) {
	h := newBudgetHandler(t)

	rec := httptest.NewRecorder()
	h.GetBudget(rec, httptest.NewRequest(http.MethodGet, "/v1/budget", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"itineraryNOK":2165`)
	assert.Contains(t, rec.Body.String(), `"itineraryEUR":203.5`)
	assert.Contains(t, rec.Body.String(), `"expenses":[]`)
}

func TestAddAndDeleteExpense(t *testing.T) {
	h := newBudgetHandler(t)

	rec := httptest.NewRecorder()
	h.AddExpense(rec, httptest.NewRequest(http.MethodPost, "/v1/budget/expenses",
		strings.NewReader(`{"title": "Waffles", "priceNOK": 95, "priceEUR": 9}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Waffles"`)

	rec = httptest.NewRecorder()
	h.GetBudget(rec, httptest.NewRequest(http.MethodGet, "/v1/budget", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expensesNOK":95`)
	assert.Contains(t, rec.Body.String(), `"totalNOK":2260`)

	var created struct {
		ID string `json:"id"`
	}
	rec2 := httptest.NewRecorder()
	h.AddExpense(rec2, httptest.NewRequest(http.MethodPost, "/v1/budget/expenses",
		strings.NewReader(`{"title": "Postcard", "priceNOK": 30, "priceEUR": 3}`)))
	require.Equal(t, http.StatusCreated, rec2.Code)
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &created))

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /v1/budget/expenses/{id}", h.DeleteExpense)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/budget/expenses/"+created.ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.GetBudget(rec, httptest.NewRequest(http.MethodGet, "/v1/budget", nil))
	assert.NotContains(t, rec.Body.String(), "Postcard")
	assert.Contains(t, rec.Body.String(), "Waffles")
}

func TestAddExpenseValidation(t *testing.T) {
	h := newBudgetHandler(t)

	rec := httptest.NewRecorder()
	h.AddExpense(rec, httptest.NewRequest(http.MethodPost, "/v1/budget/expenses",
		strings.NewReader(`{"priceNOK": 95}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.AddExpense(rec, httptest.NewRequest(http.MethodPost, "/v1/budget/expenses",
		strings.NewReader(`{"title": "x", "priceNOK": -5}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
