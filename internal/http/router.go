package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rgarcia-dev/billetera/internal/http/catalog"
	"github.com/rgarcia-dev/billetera/internal/http/export"
	"github.com/rgarcia-dev/billetera/internal/http/goals"
	"github.com/rgarcia-dev/billetera/internal/http/importcsv"
	"github.com/rgarcia-dev/billetera/internal/http/report"
	"github.com/rgarcia-dev/billetera/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	reportsV1 *report.Handler,
	goalsV1 *goals.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	catalogV1 *catalog.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			goalsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)

		r.Route("/categories", catalogV1.Routes)
	})

	return router
}
