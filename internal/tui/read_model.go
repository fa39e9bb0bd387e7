package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/progress"
)

// readMode is the state of the reading timer screen
type readMode int

const (
	modeTiming readMode = iota // clock running
	modePages                  // timer stopped, asking for pages read
)

// ReadModel is the TUI model for a live reading session
type ReadModel struct {
	width  int
	height int

	book *models.Book
	agg  *progress.Aggregator

	startedAt time.Time
	elapsed   time.Duration

	// Animation state
	animation int

	mode       readMode
	pagesInput textinput.Model
	pagesErr   string

	// Outcome, read by the runner after the program exits
	saving  bool // user stopped and wants the session logged
	exiting bool // user bailed without saving
	pages   *int // pages entered at stop time, nil if skipped
}

// clockTickMsg is sent every second to update the timer
type clockTickMsg struct{}

// pulseTickMsg drives the header animation
type pulseTickMsg struct{}

// NewReadModel creates a reading timer for a book
func NewReadModel(book *models.Book, agg *progress.Aggregator) ReadModel {
	input := textinput.New()
	input.Placeholder = "pages read (optional)"
	input.CharLimit = 5
	input.Width = 24

	return ReadModel{
		book:       book,
		agg:        agg,
		startedAt:  time.Now(),
		pagesInput: input,
	}
}

// Init starts the clock and animation tickers
func (m ReadModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return clockTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m ReadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.elapsed = time.Since(m.startedAt)
		if m.mode == modeTiming && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return clockTickMsg{}
			})
		}
		return m, nil

	case pulseTickMsg:
		m.animation = (m.animation + 1) % 2
		if m.mode == modeTiming && !m.exiting {
			return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
				return pulseTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modePages {
			return m.updatePagesPrompt(msg)
		}

		switch msg.String() {
		case "s", "S":
			// Freeze the clock and ask about pages
			m.elapsed = time.Since(m.startedAt)
			m.mode = modePages
			m.pagesInput.Focus()
			return m, textinput.Blink
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// updatePagesPrompt handles keys while the pages question is up
func (m ReadModel) updatePagesPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.pagesInput.Value())
		if value == "" {
			m.saving = true
			return m, tea.Quit
		}
		pages, err := parsePositiveInt(value)
		if err != nil {
			m.pagesErr = "Enter a whole number of pages"
			return m, nil
		}
		m.pages = &pages
		m.saving = true
		return m, tea.Quit
	case "ctrl+c":
		m.exiting = true
		return m, tea.Quit
	case "esc":
		// Back to the running clock
		m.mode = modeTiming
		m.pagesErr = ""
		m.pagesInput.Blur()
		m.startedAt = time.Now().Add(-m.elapsed) // resume from frozen elapsed
		return m, m.Init()
	}

	var cmd tea.Cmd
	m.pagesInput, cmd = m.pagesInput.Update(msg)
	return m, cmd
}

// View renders the reading timer
func (m ReadModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	// Narrow terminals get just the clock panel
	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderClockPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderClockPanel(leftWidth, contentHeight),
		"  ",
		m.renderBookPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderClockPanel renders the left panel with the big clock
func (m ReadModel) renderClockPanel(width, height int) string {
	var components []string

	headerText := "📖  READING  📖"
	if m.animation == 1 {
		headerText = "📖  READING  📚"
	}
	if m.mode == modePages {
		headerText = "SESSION STOPPED"
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	idStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, idStyle.Render(fmt.Sprintf("#%d", m.book.ID)))

	title := m.book.Title
	if len(title) > width-4 {
		title = title[:width-7] + "..."
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, titleStyle.Render(title))

	// Big clock, centered line by line
	var clock strings.Builder
	for _, line := range strings.Split(m.renderBigClock(), "\n") {
		clock.WriteString(lipgloss.NewStyle().Align(lipgloss.Center).Width(width).Render(line))
		clock.WriteString("\n")
	}
	components = append(components, strings.TrimRight(clock.String(), "\n"))

	if m.mode == modePages {
		components = append(components, m.renderPagesPrompt(width))
	} else {
		startInfo := fmt.Sprintf("Started at %s", m.startedAt.Format("15:04:05"))
		infoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, infoStyle.Render(startInfo))
	}

	content := strings.Join(components, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderPagesPrompt renders the stop-time pages question
func (m ReadModel) renderPagesPrompt(width int) string {
	var b strings.Builder

	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Width(width)
	b.WriteString(promptStyle.Render("How many pages did you read?"))
	b.WriteString("\n")

	inputStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width)
	b.WriteString(inputStyle.Render(m.pagesInput.View()))

	if m.pagesErr != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.pagesErr))
	}

	return b.String()
}

// clockDigits is the 5-row ASCII art used by the big clock
var clockDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders the elapsed time as ASCII art
func (m ReadModel) renderBigClock() string {
	hours := int(m.elapsed.Hours())
	minutes := int(m.elapsed.Minutes()) % 60
	seconds := int(m.elapsed.Seconds()) % 60

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderBookPanel renders the right panel with book details
func (m ReadModel) renderBookPanel(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderLogo(width - 8))
	b.WriteString("\n\n")

	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	b.WriteString(separatorStyle.Render(strings.Repeat("─", min(width-12, 40))))
	b.WriteString("\n\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render(m.book.Title))
	b.WriteString("\n\n")

	b.WriteString(renderBookDetails(m.book, m.agg, width-8))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// renderHelpBar renders the key hints at the bottom
func (m ReadModel) renderHelpBar() string {
	helpText := "s stop & log session · esc/q exit without logging · ctrl+c force quit"
	if m.mode == modePages {
		helpText = "enter save · esc back to timer · ctrl+c discard session"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(helpText)
}

// parsePositiveInt parses a non-negative integer from user input
func parsePositiveInt(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number")
		}
		n = n*10 + int(r-'0')
		if n > 100000 {
			return 0, fmt.Errorf("too large")
		}
	}
	return n, nil
}

// RunReadingTimerTUI runs the reading timer and logs the session on stop
func RunReadingTimerTUI(store *db.Store, agg *progress.Aggregator, book *models.Book) error {
	model := NewReadModel(book, agg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(ReadModel)
	if !m.saving {
		fmt.Println("❌ Session discarded, nothing logged.")
		return nil
	}

	minutes := int(m.elapsed.Minutes())
	if minutes < 1 {
		fmt.Println("Session was under a minute, nothing logged.")
		return nil
	}

	session, err := store.LogSession(db.LogSessionRequest{
		BookID:  book.ID,
		Minutes: minutes,
		Pages:   m.pages,
		Date:    progress.Day(time.Now()),
	})
	if err != nil {
		return fmt.Errorf("failed to log session: %w", err)
	}

	// A session on a shelved book means the user started it
	if book.Status == models.StatusWantToRead {
		if _, err := store.StartBook(book.ID); err != nil {
			return err
		}
	}

	if err := agg.SyncCurrentPage(book.ID); err != nil {
		return err
	}

	fmt.Printf("⏹️  Logged %dm for book #%d: %s\n", session.Minutes, book.ID, book.Title)
	if session.Pages != nil {
		fmt.Printf("📊 Pages read: %d\n", *session.Pages)
	}

	return nil
}
