// Package tui provides the Bubble Tea answer entry interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/okutan/tusnet/internal/exam"
	"github.com/okutan/tusnet/internal/record"
	statsPkg "github.com/okutan/tusnet/internal/stats"
	"github.com/okutan/tusnet/internal/store"
)

var (
	legendStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subjectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea answer entry UI. It owns one quiz; on
// completion the sheet is persisted and the next key press exits.
type Model struct {
	quiz       *exam.Quiz
	store      *store.Store
	recordsDir string

	width  int
	height int

	done      bool
	savedPath string
	saveErr   error
}

// NewModel constructs an answer entry model.
func NewModel(quiz *exam.Quiz, store *store.Store, recordsDir string) *Model {
	return &Model{
		quiz:       quiz,
		store:      store,
		recordsDir: recordsDir,
	}
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
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			// Abort discards the in-progress quiz; nothing is persisted.
			return m, tea.Quit
		}
		if m.done {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyDelete:
			m.quiz.Erase()
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		if m.done {
			return
		}
		answer, ok := exam.ParseKey(r)
		if !ok {
			continue
		}
		complete, err := m.quiz.Update(answer)
		if err != nil {
			logErrf("failed to record answer: %v\n", err)
			return
		}
		if complete {
			m.finishQuiz()
		}
	}
}

func (m *Model) finishQuiz() {
	m.done = true
	path, err := record.Save(m.recordsDir, m.quiz.Record())
	if err != nil {
		m.saveErr = err
		return
	}
	m.savedPath = path

	summary, subjects := statsPkg.Summarize(m.quiz, time.Now())
	if _, err := m.store.InsertExam(context.Background(), summary, subjects); err != nil {
		m.saveErr = fmt.Errorf("failed to store exam summary: %w", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		legendStyle.Render("D Doğru   Y Yanlış   B Boş   Backspace Sil   Ctrl+C İptal"),
		"",
	}
	lines = append(lines, m.renderCategory(m.quiz.Theoretical())...)
	lines = append(lines, "")
	lines = append(lines, m.renderCategory(m.quiz.Clinical())...)
	lines = append(lines, "", m.renderFooter())

	out := strings.Join(lines, "\n")
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out
}

func (m *Model) renderCategory(cat *exam.Category) []string {
	view := cat.View()
	header := fmt.Sprintf("%s (%3d/%d)   %3dD %3dY %3dB -> %6.2f",
		cat.Name(), view.Cursor(), view.Len(),
		cat.NumCorrect(), cat.NumWrong(), cat.NumEmpty(), cat.NumNet())
	lines := []string{categoryStyle.Render(header)}

	nameWidth := 0
	for _, s := range cat.Subjects() {
		if w := runewidth.StringWidth(s.Name()); w > nameWidth {
			nameWidth = w
		}
	}

	active := !m.done && cat == m.quiz.Active()
	offset := 0
	for _, s := range cat.Subjects() {
		name := s.Name() + strings.Repeat(" ", nameWidth-runewidth.StringWidth(s.Name()))
		counts := fmt.Sprintf("%3dD %3dY %3dB -> %6.2f", s.NumCorrect(), s.NumWrong(), s.NumEmpty(), s.NumNet())
		cells := m.renderCells(s, active, view.Cursor()-offset)
		lines = append(lines, "  "+subjectStyle.Render(name)+"  "+counts+"  "+cells)
		offset += s.Len()
	}
	return lines
}

// renderCells draws one subject's answer slots. cursorInner is the active
// view cursor translated into this subject's index space; it highlights the
// next slot to fill when it lands inside the subject.
func (m *Model) renderCells(s *exam.Subject, active bool, cursorInner int) string {
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		answer, err := s.At(i)
		if err != nil {
			continue
		}
		cell := "[" + string(answer) + "]"
		switch {
		case active && i == cursorInner:
			b.WriteString(cursorStyle.Render(cell))
		case answer == exam.Correct:
			b.WriteString(correctStyle.Render(cell))
		case answer == exam.Wrong:
			b.WriteString(wrongStyle.Render(cell))
		case answer == exam.Empty:
			b.WriteString(emptyStyle.Render(cell))
		default:
			b.WriteString(missingStyle.Render(cell))
		}
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	if m.saveErr != nil {
		return errorStyle.Render(fmt.Sprintf("failed to save quiz record: %v", m.saveErr)) +
			"\n" + footerStyle.Render("Press any key to exit.")
	}
	if m.done {
		return footerStyle.Render(fmt.Sprintf("Quiz entry successful. Saved to %s", m.savedPath)) +
			"\n" + footerStyle.Render("Press any key to exit.")
	}
	filled := m.quiz.Theoretical().View().Cursor() + m.quiz.Clinical().View().Cursor()
	return footerStyle.Render(fmt.Sprintf("Progress %d/%d", filled, m.quiz.Len()))
}

// Done reports whether the quiz was completed and persisted.
func (m *Model) Done() bool {
	return m.done
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
