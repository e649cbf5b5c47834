package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rgarcia-dev/billetera/internal/config"
	"github.com/rgarcia-dev/billetera/internal/database"
	"github.com/rgarcia-dev/billetera/internal/export"
	"github.com/rgarcia-dev/billetera/internal/goal"
	goalStore "github.com/rgarcia-dev/billetera/internal/goal/store"
	billeteraHttp "github.com/rgarcia-dev/billetera/internal/http"
	catalogHandler "github.com/rgarcia-dev/billetera/internal/http/catalog"
	exportHandler "github.com/rgarcia-dev/billetera/internal/http/export"
	goalsHandler "github.com/rgarcia-dev/billetera/internal/http/goals"
	importHandler "github.com/rgarcia-dev/billetera/internal/http/importcsv"
	reportHandler "github.com/rgarcia-dev/billetera/internal/http/report"
	txHandler "github.com/rgarcia-dev/billetera/internal/http/transaction"
	"github.com/rgarcia-dev/billetera/internal/importer"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	ledgerStore "github.com/rgarcia-dev/billetera/internal/ledger/store"
	"github.com/rgarcia-dev/billetera/internal/suggest"
	suggestStore "github.com/rgarcia-dev/billetera/internal/suggest/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		goalService    = goal.NewService(goalStore.New(db))
		suggestService = suggest.NewService(suggestStore.New(db))
		importService  = importer.NewService()
		exportService  = export.NewService()
	)

	if err := ledgerService.Load(ctx); err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	if err := goalService.Load(ctx); err != nil {
		slog.Error("failed to load goal settings", "error", err)
		os.Exit(1)
	}

	var (
		transactionH = txHandler.NewHandler(ledgerService, suggestService)
		reportH      = reportHandler.NewHandler(ledgerService, goalService)
		goalsH       = goalsHandler.NewHandler(goalService)
		importH      = importHandler.NewHandler(importService, ledgerService, suggestService)
		exportH      = exportHandler.NewHandler(exportService, ledgerService)
		catalogH     = catalogHandler.NewHandler()
	)

	router := billeteraHttp.New(transactionH, reportH, goalsH, importH, exportH, catalogH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
