package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rgarcia-dev/billetera/cmd/tui/internal/view"
	"github.com/rgarcia-dev/billetera/internal/config"
	"github.com/rgarcia-dev/billetera/internal/database"
	"github.com/rgarcia-dev/billetera/internal/goal"
	goalStore "github.com/rgarcia-dev/billetera/internal/goal/store"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	ledgerStore "github.com/rgarcia-dev/billetera/internal/ledger/store"
	"github.com/rgarcia-dev/billetera/internal/suggest"
	suggestStore "github.com/rgarcia-dev/billetera/internal/suggest/store"
)

type model struct {
	ledgerService  *ledger.Service
	goalService    *goal.Service
	suggestService *suggest.Service

	currentView View

	addView       view.AddModel
	listView      view.ListModel
	dashboardView view.DashboardModel
	goalsView     view.GoalsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewAdd       View = 1
	ViewList      View = 2
	ViewDashboard View = 3
	ViewGoals     View = 4
)

func initialModel() model {
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

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	goalSvc := goal.NewService(goalStore.New(db))
	suggestSvc := suggest.NewService(suggestStore.New(db))

	if err := ledgerSvc.Load(ctx); err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	if err := goalSvc.Load(ctx); err != nil {
		slog.Error("failed to load goal settings", "error", err)
		os.Exit(1)
	}

	return model{
		ledgerService:  ledgerSvc,
		goalService:    goalSvc,
		suggestService: suggestSvc,
		currentView:    ViewMenu,
		addView:        view.NewAddModel(ledgerSvc, suggestSvc),
		listView:       view.NewListModel(ledgerSvc),
		dashboardView:  view.NewDashboardModel(ledgerSvc, goalSvc),
		goalsView:      view.NewGoalsModel(goalSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.ledgerService, m.suggestService)

				return m, m.addView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.ledgerService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.ledgerService, m.goalService)

				return m, m.dashboardView.Init()
			case "4":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.goalService)

				return m, m.goalsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Billetera\n\n" +
				"1. Nuevo Movimiento\n" +
				"2. Movimientos\n" +
				"3. Resumen\n" +
				"4. Objetivos\n\n" +
				"q. Salir",
		)
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewGoals:
		return m.goalsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
