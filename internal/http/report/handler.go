package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Handler struct {
	ledger *ledger.Service
	goals  *goal.Service
}

func NewHandler(ledger *ledger.Service, goals *goal.Service) *Handler {
	return &Handler{
		ledger: ledger,
		goals:  goals,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/monthly", h.monthly)
	r.Get("/categories", h.categories)
	r.Get("/goals", h.goalProgress)
}

type summaryResponse struct {
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	Balance       float64         `json:"balance"`
	Ratio         float64         `json:"ratio"`
	Severity      report.Severity `json:"severity"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s := report.Summarize(h.ledger.All())

	resp := summaryResponse{
		TotalIncome:   transaction.Units(s.TotalIncome),
		TotalExpenses: transaction.Units(s.TotalExpenses),
		Balance:       transaction.Units(s.Balance),
		Ratio:         s.Ratio,
		Severity:      report.SeverityOf(s.Ratio),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	months := report.DefaultMonths

	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 24 {
			http.Error(w, "months must be between 1 and 24", http.StatusBadRequest)
			return
		}

		months = n
	}

	window := report.LastNMonths(months, time.Now().UTC())
	chart := report.MonthlyChart(h.ledger.All(), window)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(chart); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	limit := report.DefaultTopCategories

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}

		limit = n
	}

	chart := report.TopCategoryChart(h.ledger.All(), limit)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(chart); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type goalProgressResponse struct {
	MonthlyBudget   float64 `json:"monthly_budget"`
	MonthlySavings  float64 `json:"monthly_savings"`
	CurrentExpenses float64 `json:"current_expenses"`
	CurrentSavings  float64 `json:"current_savings"`
	ExpenseProgress float64 `json:"expense_progress"`
	SavingsProgress float64 `json:"savings_progress"`
	OverBudget      bool    `json:"over_budget"`
}

func (h *Handler) goalProgress(w http.ResponseWriter, r *http.Request) {
	settings := h.goals.Current()
	progress := report.Progress(h.ledger.All(), settings, time.Now().UTC())

	resp := goalProgressResponse{
		MonthlyBudget:   transaction.Units(settings.MonthlyBudget),
		MonthlySavings:  transaction.Units(settings.MonthlySavings),
		CurrentExpenses: transaction.Units(progress.CurrentExpenses),
		CurrentSavings:  transaction.Units(progress.CurrentSavings),
		ExpenseProgress: progress.ExpenseProgress,
		SavingsProgress: progress.SavingsProgress,
		OverBudget:      progress.OverBudget,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
