package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/suggest"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type addState int

const (
	addStateTypeSelect addState = iota
	addStateForm
	addStateResult
)

type AddModel struct {
	CommonModel
	ledger     *ledger.Service
	suggestSvc *suggest.Service

	state        addState
	typeOptions  []transaction.Type
	typeCursor   int
	selectedType transaction.Type

	form *huh.Form

	// Form bindings
	formCategory string
	formDesc     string
	formAmount   string
	formDate     string

	status string
	err    error
}

func NewAddModel(ledgerSvc *ledger.Service, suggestSvc *suggest.Service) AddModel {
	return AddModel{
		ledger:      ledgerSvc,
		suggestSvc:  suggestSvc,
		typeOptions: []transaction.Type{transaction.TypeExpense, transaction.TypeIncome},
	}
}

func (m AddModel) Title() string { return "Nuevo Movimiento" }

func (m AddModel) ShortHelp() string {
	if m.state == addStateForm {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m AddModel) Init() tea.Cmd {
	return nil
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == addStateTypeSelect {
			return m.updateTypeSelect(msg)
		}

	case addResultMsg:
		m.state = addStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Guardado: %s (%s)", msg.tx.Description, FormatAmount(msg.tx.Amount))

		return m, nil
	}

	if m.state != addStateForm || m.form == nil {
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

func (m AddModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case addStateForm:
		m.state = addStateTypeSelect
		m.form = nil

		return m, nil
	case addStateResult:
		m.state = addStateTypeSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m AddModel) updateTypeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case tea.KeyDown:
		if m.typeCursor < len(m.typeOptions)-1 {
			m.typeCursor++
		}
	case tea.KeyEnter:
		m.selectedType = m.typeOptions[m.typeCursor]
		return m.enterForm()
	}

	return m, nil
}

func (m AddModel) enterForm() (tea.Model, tea.Cmd) {
	keys := category.Expense()
	if m.selectedType == transaction.TypeIncome {
		keys = category.Income()
	}

	options := make([]huh.Option[string], 0, len(keys))
	for _, key := range keys {
		options = append(options, huh.NewOption(category.Name(key), key))
	}

	m.formCategory = keys[0]
	m.formDesc = ""
	m.formAmount = ""
	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Categoría").
				Options(options...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("description").
				Title("Descripción").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("la descripción es obligatoria")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Importe").
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("el importe debe ser un número positivo")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Fecha").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := transaction.ParseDate(s); err != nil {
						return fmt.Errorf("fecha inválida (YYYY-MM-DD)")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = addStateForm

	return m, m.form.Init()
}

func (m AddModel) View() string {
	switch m.state {
	case addStateTypeSelect:
		s := "Tipo de movimiento:\n\n"

		labels := map[transaction.Type]string{
			transaction.TypeExpense: "Gasto",
			transaction.TypeIncome:  "Ingreso",
		}

		for i, t := range m.typeOptions {
			cursor := " "
			if i == m.typeCursor {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, labels[t])
		}

		return lipgloss.NewStyle().Padding(2).Render(s)

	case addStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())

	case addStateResult:
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

	return ""
}

// Messages

type addResultMsg struct {
	tx  *transaction.Transaction
	err error
}

func (m AddModel) saveCmd() tea.Cmd {
	txType := m.selectedType
	categoryKey := m.formCategory
	desc := m.formDesc
	amountStr := m.formAmount
	dateStr := m.formDate

	return func() tea.Msg {
		amountUnits, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			return addResultMsg{err: err}
		}

		amount, err := transaction.CentsFromFloat(amountUnits)
		if err != nil {
			return addResultMsg{err: err}
		}

		date, err := transaction.ParseDate(dateStr)
		if err != nil {
			return addResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.ledger.Add(ctx, transaction.CreateParams{
			Type:        txType,
			Category:    categoryKey,
			Description: desc,
			Amount:      amount,
			Date:        date,
		})
		if err != nil {
			return addResultMsg{err: err}
		}

		_ = m.suggestSvc.Learn(ctx, tx.Description, tx.Category)

		return addResultMsg{tx: tx}
	}
}
