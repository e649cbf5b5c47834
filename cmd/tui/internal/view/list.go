package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgarcia-dev/billetera/internal/category"
	"github.com/rgarcia-dev/billetera/internal/ledger"
	"github.com/rgarcia-dev/billetera/internal/report"
	"github.com/rgarcia-dev/billetera/internal/transaction"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateConfirmDelete
)

type ListModel struct {
	CommonModel
	ledger *ledger.Service

	state listState
	table table.Model
	txs   []transaction.Transaction
	form  *huh.Form

	// Filter cycling
	typeFilterIdx     int
	categoryFilterIdx int
	categoryKeys      []string

	filter  report.Filter
	status  string
	confirm bool
}

func NewListModel(ledgerSvc *ledger.Service) ListModel {
	columns := []table.Column{
		{Title: "Fecha", Width: 12},
		{Title: "Tipo", Width: 9},
		{Title: "Categoría", Width: 18},
		{Title: "Importe", Width: 12},
		{Title: "Descripción", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	// Index 0 means "all categories".
	keys := append([]string{""}, category.Expense()...)
	keys = append(keys, category.Income()...)

	return ListModel{
		ledger:       ledgerSvc,
		table:        t,
		categoryKeys: keys,
	}
}

func (m ListModel) Title() string { return "Movimientos" }

func (m ListModel) ShortHelp() string {
	if m.state == listStateConfirmDelete {
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back | d: delete | t: type filter | c: category filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error al borrar: %v", msg.err)
		} else if !msg.removed {
			m.status = "El movimiento ya no existe"
		} else {
			m.status = "Movimiento borrado"
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case listStateBrowse:
		return m.updateBrowse(msg)
	case listStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadTxsCmd()
		case "d":
			return m.enterConfirmDelete()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadTxsCmd()
		case "c":
			m.categoryFilterIdx = (m.categoryFilterIdx + 1) % len(m.categoryKeys)
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) enterConfirmDelete() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	tx := m.txs[idx]
	m.confirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("¿Borrar %q (%s)?", tx.Description, FormatAmount(tx.Amount))).
				Affirmative("Sí").
				Negative("No").
				Value(&m.confirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = listStateConfirmDelete
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirm {
		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.deleteCmd()
}

func (m ListModel) View() string {
	typeLabels := []string{"Todos", "Ingresos", "Gastos"}

	categoryLabel := "Todas"
	if key := m.categoryKeys[m.categoryFilterIdx]; key != "" {
		categoryLabel = category.Name(key)
	}

	header := fmt.Sprintf(
		"Filtro: [t] Tipo: %s | [c] Categoría: %s",
		activeStyle(typeLabels[m.typeFilterIdx]),
		activeStyle(categoryLabel),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if len(m.txs) == 0 {
		tableView = lipgloss.NewStyle().Padding(2).Faint(true).
			Render("No hay movimientos que mostrar")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == listStateConfirmDelete && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		m.filter.Type = transaction.TypeIncome
	case 2:
		m.filter.Type = transaction.TypeExpense
	default:
		m.filter.Type = ""
	}

	m.filter.Category = m.categoryKeys[m.categoryFilterIdx]
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			category.Name(tx.Category),
			FormatAmount(tx.Amount),
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []transaction.Transaction
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		txs := report.Apply(m.ledger.All(), m.filter)
		return loadListMsg{txs: txs}
	}
}

type deleteResultMsg struct {
	removed bool
	err     error
}

func (m ListModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		removed, err := m.ledger.Remove(ctx, id)

		return deleteResultMsg{removed: removed, err: err}
	}
}
