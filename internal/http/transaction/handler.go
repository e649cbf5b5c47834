package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/suggest"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Handler struct {
	ledger     *ledger.Service
	suggestSvc *suggest.Service
}

func NewHandler(ledger *ledger.Service, suggestSvc *suggest.Service) *Handler {
	return &Handler{
		ledger:     ledger,
		suggestSvc: suggestSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Amount      float64          `json:"amount"`
	Date        string           `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := transaction.CentsFromFloat(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := transaction.ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.ledger.Add(r.Context(), transaction.CreateParams{
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	// Remember the description so future imports of the same merchant land in
	// this category. Best effort, a failure never blocks the creation.
	if err := h.suggestSvc.Learn(r.Context(), tx.Description, tx.Category); err != nil {
		slog.Warn("failed to learn category mapping", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(*tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{
		Category: r.URL.Query().Get("category"),
		Type:     transaction.Type(r.URL.Query().Get("type")),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		http.Error(w, "unknown transaction type", http.StatusBadRequest)
		return
	}

	txs := report.Apply(h.ledger.All(), filter)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	removed, err := h.ledger.Remove(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !removed {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
