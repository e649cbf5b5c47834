package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgarcia-dev/billetera/internal/goal"
)

type goalsState int

const (
	goalsStateForm goalsState = iota
	goalsStateResult
)

type GoalsModel struct {
	CommonModel
	goals *goal.Service

	state goalsState
	form  *huh.Form

	// Form bindings
	formBudget  string
	formSavings string

	status string
	err    error
}

func NewGoalsModel(goalSvc *goal.Service) GoalsModel {
	m := GoalsModel{goals: goalSvc}
	m.buildForm()

	return m
}

func (m GoalsModel) Title() string { return "Objetivos" }

func (m GoalsModel) ShortHelp() string {
	return "Navigate form | Esc: back"
}

func (m *GoalsModel) buildForm() {
	current := m.goals.Current()
	m.formBudget = formatGoalValue(current.MonthlyBudget)
	m.formSavings = formatGoalValue(current.MonthlySavings)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("budget").
				Title("Presupuesto mensual de gastos").
				Description("0 para desactivar").
				Placeholder("0.00").
				Value(&m.formBudget).
				Validate(validateGoalValue),

			huh.NewInput().
				Key("savings").
				Title("Objetivo mensual de ahorro").
				Description("0 para desactivar").
				Placeholder("0.00").
				Value(&m.formSavings).
				Validate(validateGoalValue),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m GoalsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == goalsStateResult {
				m.state = goalsStateForm
				m.err = nil
				m.status = ""
				m.buildForm()

				return m, m.form.Init()
			}

			return m, Back
		}

	case goalsSavedMsg:
		m.state = goalsStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = "Objetivos guardados"

		return m, nil
	}

	if m.state != goalsStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m GoalsModel) View() string {
	if m.state == goalsStateResult {
		style := lipgloss.NewStyle().Padding(2)
		color := lipgloss.Color("46")

		if m.err != nil {
			color = lipgloss.Color("196")
		}

		return style.Render(
			lipgloss.NewStyle().Foreground(color).Render(m.status) +
				"\n\n(Esc para volver)",
		)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}

// Messages

type goalsSavedMsg struct {
	err error
}

func (m GoalsModel) saveCmd() tea.Cmd {
	budgetStr := m.formBudget
	savingsStr := m.formSavings

	return func() tea.Msg {
		budget, err := strconv.ParseFloat(strings.TrimSpace(budgetStr), 64)
		if err != nil {
			return goalsSavedMsg{err: err}
		}

		savings, err := strconv.ParseFloat(strings.TrimSpace(savingsStr), 64)
		if err != nil {
			return goalsSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.goals.Set(ctx, budget, savings)

		return goalsSavedMsg{err: err}
	}
}

func formatGoalValue(cents int64) string {
	if cents == 0 {
		return "0"
	}

	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

func validateGoalValue(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("debe ser un número mayor o igual que 0")
	}

	return nil
}
