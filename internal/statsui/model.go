// Package statsui provides the Bubble Tea exam history interface.
package statsui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okutan/tusnet/internal/model"
	"github.com/okutan/tusnet/internal/stats"
	"github.com/okutan/tusnet/internal/store"
)

const (
	viewList = iota
	viewDetail
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea exam history UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	activeView int
	examTable  table.Model
	detail     viewport.Model

	width  int
	height int
}

// NewModel constructs an exam history model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store:  st,
		cfg:    cfg,
		detail: viewport.New(0, 0),
	}
	m.initExamTable()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter", "right", "l":
			if m.activeView == viewList && len(m.report.Exams) > 0 {
				m.activeView = viewDetail
				m.renderDetail()
				return m, tea.ClearScreen
			}
		case "esc", "left", "h":
			if m.activeView == viewDetail {
				m.activeView = viewList
				return m, tea.ClearScreen
			}
		}
		if m.activeView == viewDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.examTable, cmd = m.examTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var body string
	if m.activeView == viewDetail {
		body = detailStyle.Render(m.detail.View())
	} else {
		body = m.examTable.View()
	}
	parts := []string{
		titleStyle.Render("Exam history"),
		body,
		m.renderFooter(),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.activeView == viewDetail {
		return headerStyle.Render("Scroll: up/down  Back: esc  Quit: q")
	}
	return headerStyle.Render("Nav: up/down  Detail: enter  Quit: q")
}

func (m *Model) initExamTable() {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Temel Net", Width: 10},
		{Title: "Klinik Net", Width: 10},
		{Title: "Total", Width: 8},
		{Title: "D", Width: 4},
		{Title: "Y", Width: 4},
		{Title: "B", Width: 4},
	}
	m.examTable = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	m.examTable.SetStyles(styles)
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load stats: %v", err)
		return
	}
	m.errMsg = ""
	m.report = report

	// Newest first for the history list.
	rows := make([]table.Row, 0, len(report.Exams))
	for i := len(report.Exams) - 1; i >= 0; i-- {
		e := report.Exams[i]
		rows = append(rows, table.Row{
			e.CreatedAt,
			fmt.Sprintf("%.2f", e.Theoretical.Net),
			fmt.Sprintf("%.2f", e.Clinical.Net),
			fmt.Sprintf("%.2f", e.TotalNet()),
			fmt.Sprintf("%d", e.Theoretical.Correct+e.Clinical.Correct),
			fmt.Sprintf("%d", e.Theoretical.Wrong+e.Clinical.Wrong),
			fmt.Sprintf("%d", e.Theoretical.Empty+e.Clinical.Empty),
		})
	}
	m.examTable.SetRows(rows)
	if m.errMsg == "" && len(rows) == 0 {
		m.errMsg = "No exams recorded yet."
	}
}

func (m *Model) selectedExam() (model.ExamAggregate, bool) {
	idx := m.examTable.Cursor()
	if idx < 0 || idx >= len(m.report.Exams) {
		return model.ExamAggregate{}, false
	}
	// Table rows are reversed relative to the report's oldest-first order.
	return m.report.Exams[len(m.report.Exams)-1-idx], true
}

func (m *Model) renderDetail() {
	exam, ok := m.selectedExam()
	if !ok {
		m.detail.SetContent("")
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  Temel %.2f  Klinik %.2f  Total %.2f\n\n",
		exam.CreatedAt, exam.Theoretical.Net, exam.Clinical.Net, exam.TotalNet())
	for _, sc := range m.report.SubjectScores[exam.ExamID] {
		fmt.Fprintf(&b, "%-8s %-14s %3dD %3dY %3dB -> %6.2f\n",
			sc.Category, sc.Subject, sc.Correct, sc.Wrong, sc.Empty, sc.Net)
	}
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.height - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.examTable.SetHeight(bodyHeight)
	m.detail.Width = m.width - 4
	m.detail.Height = bodyHeight - 2
	if m.detail.Height < 1 {
		m.detail.Height = 1
	}
}
