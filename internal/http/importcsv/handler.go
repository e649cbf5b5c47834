package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/importer"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/suggest"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Handler struct {
	importSvc  *importer.Service
	ledger     *ledger.Service
	suggestSvc *suggest.Service
}

func NewHandler(importSvc *importer.Service, ledger *ledger.Service, suggestSvc *suggest.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		ledger:     ledger,
		suggestSvc: suggestSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.preview)
	r.Post("/confirm", h.confirm)
}

type rowDTO struct {
	Type          transaction.Type `json:"type"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	Description   string           `json:"description"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
}

type previewResponse struct {
	BatchID uuid.UUID `json:"batch_id"`
	Rows    []rowDTO  `json:"rows"`
}

// preview parses an uploaded bank CSV and returns the rows it would create,
// with suggested categories filled in. Nothing is persisted until the client
// confirms, so the user can fix categories first.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatBankCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]rowDTO, 0, len(params))

	for _, p := range params {
		key, err := h.suggestSvc.Suggest(r.Context(), p.Description)
		if err != nil {
			slog.Warn("category suggestion failed", "error", err)
			key = ""
		}

		if key == "" {
			key = fallbackCategory(p.Type)
		}

		rows = append(rows, rowDTO{
			Type:          p.Type,
			Category:      key,
			CategoryLabel: category.Name(key),
			Description:   p.Description,
			Amount:        transaction.Units(p.Amount),
			Date:          p.Date.Format(time.DateOnly),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(previewResponse{
		BatchID: uuid.New(),
		Rows:    rows,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmRequest struct {
	BatchID uuid.UUID `json:"batch_id"`
	Rows    []rowDTO  `json:"rows"`
}

type confirmResponse struct {
	Imported int     `json:"imported"`
	IDs      []int64 `json:"ids"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	ids := make([]int64, 0, len(req.Rows))

	for _, row := range req.Rows {
		amount, err := transaction.CentsFromFloat(row.Amount)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		date, err := transaction.ParseDate(row.Date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		tx, err := h.ledger.Add(r.Context(), transaction.CreateParams{
			Type:        row.Type,
			Category:    row.Category,
			Description: row.Description,
			Amount:      amount,
			Date:        date,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if err := h.suggestSvc.Learn(r.Context(), tx.Description, tx.Category); err != nil {
			slog.Warn("failed to learn category mapping", "error", err)
		}

		ids = append(ids, tx.ID)
	}

	slog.Info("import batch confirmed", "batch_id", req.BatchID, "imported", len(ids))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(confirmResponse{
		Imported: len(ids),
		IDs:      ids,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func fallbackCategory(t transaction.Type) string {
	if t == transaction.TypeIncome {
		return category.DefaultIncome
	}

	return category.DefaultExpense
}
