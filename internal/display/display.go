// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent catalog status bar and an input
// prompt at the bottom of the terminal. All application output is
// printed above the rendered area via Program.Println,
// ensuring concurrent writes never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	heavyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// ── Output styles (soft palette) ──

	// BannerStyle: muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Chat: soft sky blue for assistant lines and questions.
	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Heading: soft mint for recipe names and section headers.
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Primary text: light zinc for ingredient and step lines.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text: dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Urgent: soft coral for errors and calorie alerts.
	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// SummarySource supplies the recipe overview shown in the status bar.
// It is polled from the UI goroutine.
type SummarySource interface {
	Summaries() []domain.RecipeSummary
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). Other goroutines may
// safely call [UI.Println] and read from [UI.InputChan] at any time
// after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	source  SummarySource
	done    atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(source SummarySource) *UI {
	return &UI{
		source:  source,
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
	}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational line or question.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHeading prints a recipe name or section header.
func (u *UI) PrintHeading(text string) {
	u.Println(headingStyle.Render("  " + text))
}

// PrintLine prints primary content such as an ingredient or step.
func (u *UI) PrintLine(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an urgent/error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render("recipes") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(text))
}

// PrintCatalog renders every recipe in the order given.
func (u *UI) PrintCatalog(recipes []domain.Recipe) {
	for _, l := range CatalogLines(recipes) {
		switch l.Kind {
		case LineHeading:
			u.PrintHeading(l.Text)
		case LineSection:
			u.PrintHint(l.Text)
		case LineBlank:
			u.Println("")
		default:
			u.PrintLine(l.Text)
		}
	}
}

// SetPlaceholder shows hint text in the empty prompt, e.g. the field
// currently being asked for. An empty string clears it.
func (u *UI) SetPlaceholder(text string) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(placeholderMsg(text))
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt keeps the textinput width math correct; styled
	// prompts add ANSI bytes that break offset calculations.
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		source:  u.source,
		input:   ti,
		inputCh: u.inputCh,
		readyCh: u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

const promptText = "recipes> "

type model struct {
	source  SummarySource
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	queued  []string     // submitted lines not yet taken from inputCh
	status  catalogStatus
	width   int
}

// catalogStatus is what the status bar shows.
type catalogStatus struct {
	count int
	heavy []domain.RecipeSummary // recipes over the calorie threshold
}

// Messages.
type (
	tickMsg        time.Time
	placeholderMsg string
)

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			// Empty lines are forwarded too: a blank answer is valid
			// for optional fields like the measurement unit.
			m.queued = append(m.queued, v)
			m.flush()
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			// Echo runs as a Cmd, outside Update, so it won't deadlock.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(promptText) {
			m.input.Width = msg.Width - len(promptText)
		}
		return m, nil

	case placeholderMsg:
		m.input.Placeholder = string(msg)
		return m, nil

	case tickMsg:
		m.flush()
		m.status = readStatus(m.source)
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(m.status.title()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// flush hands queued lines to the reader in order without blocking the
// event loop. Whatever the reader has not room for waits for the next
// Enter or tick.
func (m *model) flush() {
	for len(m.queued) > 0 {
		select {
		case m.inputCh <- m.queued[0]:
			m.queued = m.queued[1:]
		default:
			return
		}
	}
}

func readStatus(src SummarySource) catalogStatus {
	if src == nil {
		return catalogStatus{}
	}
	summaries := src.Summaries()
	st := catalogStatus{count: len(summaries)}
	for _, s := range summaries {
		if s.OverThreshold() {
			st.heavy = append(st.heavy, s)
		}
	}
	return st
}

func (s catalogStatus) title() string {
	if s.count == 0 {
		return "RecipeBook"
	}
	return fmt.Sprintf("RecipeBook (%s)", pluralRecipes(s.count))
}

func pluralRecipes(n int) string {
	if n == 1 {
		return "1 recipe"
	}
	return fmt.Sprintf("%d recipes", n)
}

func (m model) View() string {
	var b strings.Builder

	if m.status.count > 0 {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	parts := []string{countStyle.Render(pluralRecipes(m.status.count))}
	for _, s := range m.status.heavy {
		parts = append(parts,
			labelStyle.Render(s.Name+": ")+
				heavyStyle.Render(FormatNumber(s.TotalCalories)+" cal"))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
