package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgarcia-dev/billetera/internal/goal"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/report"
)

const (
	chartBarWidth    = 30
	progressBarWidth = 25
)

var (
	incomeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	expenseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	overBudgetTag = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render(" ¡Presupuesto superado!")
)

type DashboardModel struct {
	CommonModel
	ledger *ledger.Service
	goals  *goal.Service

	summary  report.Summary
	months   []report.Month
	series   report.MonthlySeries
	topCats  []report.CategoryTotal
	progress report.GoalProgress
	settings goal.Settings
}

func NewDashboardModel(ledgerSvc *ledger.Service, goalSvc *goal.Service) DashboardModel {
	return DashboardModel{
		ledger: ledgerSvc,
		goals:  goalSvc,
	}
}

func (m DashboardModel) Title() string     { return "Resumen" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.summary = msg.summary
		m.months = msg.months
		m.series = msg.series
		m.topCats = msg.topCats
		m.progress = msg.progress
		m.settings = msg.settings

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	content := m.viewSummary() +
		m.viewMonthly() +
		m.viewCategories() +
		m.viewGoals()

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m DashboardModel) viewSummary() string {
	severity := report.SeverityOf(m.summary.Ratio)

	ratioStyle := incomeStyle
	switch severity {
	case report.SeverityWarning:
		ratioStyle = warningStyle
	case report.SeverityCritical:
		ratioStyle = expenseStyle
	}

	return sectionStyle.Render("Balance general") + "\n" +
		fmt.Sprintf("  Ingresos:  %s\n", incomeStyle.Render(FormatAmount(m.summary.TotalIncome))) +
		fmt.Sprintf("  Gastos:    %s\n", expenseStyle.Render(FormatAmount(m.summary.TotalExpenses))) +
		fmt.Sprintf("  Balance:   %s\n", FormatAmount(m.summary.Balance)) +
		fmt.Sprintf("  Gasto/Ingreso: %s\n", ratioStyle.Render(fmt.Sprintf("%.1f%%", m.summary.Ratio)))
}

func (m DashboardModel) viewMonthly() string {
	s := sectionStyle.Render(fmt.Sprintf("Últimos %d meses", len(m.months))) + "\n"

	// One scale for both series keeps the bars comparable.
	var max int64
	for i := range m.months {
		if m.series.Income[i] > max {
			max = m.series.Income[i]
		}

		if m.series.Expenses[i] > max {
			max = m.series.Expenses[i]
		}
	}

	for i, month := range m.months {
		income := m.series.Income[i]
		expenses := m.series.Expenses[i]

		s += fmt.Sprintf("  %-9s %s %s\n", month.Label,
			incomeStyle.Render(Bar(float64(income), float64(max), chartBarWidth)),
			FormatAmount(income))
		s += fmt.Sprintf("  %-9s %s %s\n", "",
			expenseStyle.Render(Bar(float64(expenses), float64(max), chartBarWidth)),
			FormatAmount(expenses))
	}

	return s
}

func (m DashboardModel) viewCategories() string {
	s := sectionStyle.Render("Principales categorías de gasto") + "\n"

	if len(m.topCats) == 0 {
		return s + faintStyle.Render("  Sin gastos registrados") + "\n"
	}

	max := m.topCats[0].Amount

	for _, cat := range m.topCats {
		s += fmt.Sprintf("  %-16s %s %s\n", cat.Label,
			expenseStyle.Render(Bar(float64(cat.Amount), float64(max), chartBarWidth)),
			FormatAmount(cat.Amount))
	}

	return s
}

func (m DashboardModel) viewGoals() string {
	s := sectionStyle.Render("Objetivos del mes") + "\n"

	if m.settings.MonthlyBudget == 0 && m.settings.MonthlySavings == 0 {
		return s + faintStyle.Render("  Sin objetivos configurados") + "\n"
	}

	if m.settings.MonthlyBudget > 0 {
		style := incomeStyle
		suffix := ""

		if m.progress.OverBudget {
			style = expenseStyle
			suffix = overBudgetTag
		}

		s += fmt.Sprintf("  Presupuesto %s %.0f%% (%s de %s)%s\n",
			style.Render(Bar(m.progress.ExpenseProgress, 100, progressBarWidth)),
			m.progress.ExpenseProgress,
			FormatAmount(m.progress.CurrentExpenses),
			FormatAmount(m.settings.MonthlyBudget),
			suffix)
	}

	if m.settings.MonthlySavings > 0 {
		s += fmt.Sprintf("  Ahorro      %s %.0f%% (%s de %s)\n",
			incomeStyle.Render(Bar(m.progress.SavingsProgress, 100, progressBarWidth)),
			m.progress.SavingsProgress,
			FormatAmount(m.progress.CurrentSavings),
			FormatAmount(m.settings.MonthlySavings))
	}

	return s
}

// Messages

type dashboardDataMsg struct {
	summary  report.Summary
	months   []report.Month
	series   report.MonthlySeries
	topCats  []report.CategoryTotal
	progress report.GoalProgress
	settings goal.Settings
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		txs := m.ledger.All()
		settings := m.goals.Current()
		now := time.Now().UTC()
		months := report.LastNMonths(report.DefaultMonths, now)

		return dashboardDataMsg{
			summary:  report.Summarize(txs),
			months:   months,
			series:   report.MonthlyTotals(txs, months),
			topCats:  report.TopExpenseCategories(txs, report.DefaultTopCategories),
			progress: report.Progress(txs, settings, now),
			settings: settings,
		}
	}
}
