package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rgarcia-dev/billetera/internal/export"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type Handler struct {
	svc    *export.Service
	ledger *ledger.Service
}

func NewHandler(svc *export.Service, ledger *ledger.Service) *Handler {
	return &Handler{
		svc:    svc,
		ledger: ledger,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{
		Category: r.URL.Query().Get("category"),
		Type:     transaction.Type(r.URL.Query().Get("type")),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		http.Error(w, "unknown transaction type", http.StatusBadRequest)
		return
	}

	txs := report.Apply(h.ledger.All(), filter)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", h.svc.Filename(time.Now())))

	if err := h.svc.Write(w, txs); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
