package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

// Handler serves the fixed category catalog so clients can render pickers
// without hardcoding the keys.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type categoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type catalogResponse struct {
	Income  []categoryResponse `json:"income"`
	Expense []categoryResponse `json:"expense"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		Income:  toResponses(category.Income()),
		Expense: toResponses(category.Expense()),
	}

	if t := transaction.Type(r.URL.Query().Get("type")); t != "" {
		switch t {
		case transaction.TypeIncome:
			resp.Expense = nil
		case transaction.TypeExpense:
			resp.Income = nil
		default:
			http.Error(w, "unknown transaction type", http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponses(keys []string) []categoryResponse {
	out := make([]categoryResponse, len(keys))
	for i, key := range keys {
		out[i] = categoryResponse{Key: key, Label: category.Name(key)}
	}

	return out
}
