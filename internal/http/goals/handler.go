package goals

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Handler struct {
	svc *goal.Service
}

func NewHandler(svc *goal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

type settingsResponse struct {
	MonthlyBudget  float64 `json:"monthly_budget"`
	MonthlySavings float64 `json:"monthly_savings"`
}

func toResponse(s goal.Settings) settingsResponse {
	return settingsResponse{
		MonthlyBudget:  transaction.Units(s.MonthlyBudget),
		MonthlySavings: transaction.Units(s.MonthlySavings),
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(h.svc.Current())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateSettingsRequest struct {
	MonthlyBudget  float64 `json:"monthly_budget"`
	MonthlySavings float64 `json:"monthly_savings"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := h.svc.Set(r.Context(), req.MonthlyBudget, req.MonthlySavings)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidGoal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(settings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
