package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/storage"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

type BudgetHandler struct {
	store   *store.Live
	storage *storage.Store
	logger  *slog.Logger
}

func NewBudgetHandler(s *store.Live, st *storage.Store, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{store: s, storage: st, logger: logger}
}

type BudgetResponse struct {
	ItineraryNOK float64                `json:"itineraryNOK"`
	ItineraryEUR float64                `json:"itineraryEUR"`
	Expenses     []domain.CustomExpense `json:"expenses"`
	ExpensesNOK  float64                `json:"expensesNOK"`
	ExpensesEUR  float64                `json:"expensesEUR"`
	TotalNOK     float64                `json:"totalNOK"`
	TotalEUR     float64                `json:"totalEUR"`
}

// GetBudget sums the fixed itinerary prices and the user-added expenses.
func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	resp := BudgetResponse{Expenses: []domain.CustomExpense{}}

	for _, a := range h.store.Activities() {
		resp.ItineraryNOK += a.PriceNOK
		resp.ItineraryEUR += a.PriceEUR
	}

	expenses, err := h.storage.Expenses()
	if err != nil {
		h.logger.Error("failed to load expenses", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	for _, e := range expenses {
		resp.ExpensesNOK += e.PriceNOK
		resp.ExpensesEUR += e.PriceEUR
	}
	if expenses != nil {
		resp.Expenses = expenses
	}

	resp.TotalNOK = resp.ItineraryNOK + resp.ExpensesNOK
	resp.TotalEUR = resp.ItineraryEUR + resp.ExpensesEUR

	respondJSON(w, http.StatusOK, resp)
}

type AddExpenseRequest struct {
	Title    string  `json:"title"`
	PriceNOK float64 `json:"priceNOK"`
	PriceEUR float64 `json:"priceEUR"`
}

func (h *BudgetHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid expense payload")
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "expense title is required")
		return
	}
	if req.PriceNOK < 0 || req.PriceEUR < 0 {
		respondError(w, http.StatusBadRequest, "expense price must not be negative")
		return
	}

	expense := domain.CustomExpense{
		ID:       uuid.New().String(),
		Title:    req.Title,
		PriceNOK: req.PriceNOK,
		PriceEUR: req.PriceEUR,
	}

	if err := h.storage.AddExpense(expense); err != nil {
		h.logger.Error("failed to add expense", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to add expense")
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (h *BudgetHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	if err := h.storage.DeleteExpense(id); err != nil {
		h.logger.Error("failed to delete expense", "expense_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
