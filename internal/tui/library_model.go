package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/progress"
)

const booksPerPage = 12

// LibraryModel is the interactive library browser
type LibraryModel struct {
	width  int
	height int

	store *db.Store
	agg   *progress.Aggregator

	books    []models.Book
	selected int
	page     int

	// Shimmer effect on the selected title
	shimmer *ShimmerState

	statusMsg     string
	confirmDelete bool
}

// shimmerTickMsg drives the selected-title animation
type shimmerTickMsg struct{}

// NewLibraryModel creates the browser over the given books
func NewLibraryModel(store *db.Store, agg *progress.Aggregator, books []models.Book) LibraryModel {
	return LibraryModel{
		store:   store,
		agg:     agg,
		books:   books,
		shimmer: NewShimmerState(),
	}
}

// Init starts the shimmer ticker
func (m LibraryModel) Init() tea.Cmd {
	if m.shimmer.ShouldTick() {
		return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		})
	}
	return nil
}

// Update handles messages
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes navigation and book actions
func (m LibraryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key other than a second d cancels a pending delete
	if m.confirmDelete && key != "d" {
		m.confirmDelete = false
		m.statusMsg = ""
	}

	switch key {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
			m.page = m.selected / booksPerPage
			m.shimmer.Reset()
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.books)-1 {
			m.selected++
			m.page = m.selected / booksPerPage
			m.shimmer.Reset()
		}
		return m, nil

	case "left", "h":
		if m.page > 0 {
			m.page--
			m.selected = m.page * booksPerPage
			m.shimmer.Reset()
		}
		return m, nil

	case "right", "l":
		if (m.page+1)*booksPerPage < len(m.books) {
			m.page++
			m.selected = m.page * booksPerPage
			m.shimmer.Reset()
		}
		return m, nil

	case "s":
		return m.toggleReading(), nil

	case "f":
		return m.finishSelected(), nil

	case "d":
		return m.deleteSelected(), nil
	}

	return m, nil
}

// current returns the selected book, or nil when the library is empty
func (m *LibraryModel) current() *models.Book {
	if len(m.books) == 0 || m.selected >= len(m.books) {
		return nil
	}
	return &m.books[m.selected]
}

// refresh reloads books after a mutation, clamping the selection
func (m LibraryModel) refresh() LibraryModel {
	books, err := m.store.ListBooks("")
	if err != nil {
		m.statusMsg = "✗ " + err.Error()
		return m
	}
	m.books = books
	if m.selected >= len(books) {
		m.selected = len(books) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.page = 0
	if len(books) > 0 {
		m.page = m.selected / booksPerPage
	}
	return m
}

// toggleReading starts a shelved book or shelves a started one
func (m LibraryModel) toggleReading() LibraryModel {
	book := m.current()
	if book == nil {
		return m
	}

	var err error
	if book.Status == models.StatusCurrentlyReading {
		_, err = m.store.ShelveBook(book.ID)
		m.statusMsg = fmt.Sprintf("🗃️  Shelved #%d", book.ID)
	} else {
		_, err = m.store.StartBook(book.ID)
		m.statusMsg = fmt.Sprintf("📖 Started #%d", book.ID)
	}
	if err != nil {
		m.statusMsg = "✗ " + err.Error()
	}

	return m.refresh()
}

// finishSelected marks the selected book read
func (m LibraryModel) finishSelected() LibraryModel {
	book := m.current()
	if book == nil {
		return m
	}

	if _, err := m.store.FinishBook(book.ID); err != nil {
		m.statusMsg = "✗ " + err.Error()
	} else {
		m.statusMsg = fmt.Sprintf("✅ Finished #%d", book.ID)
	}

	return m.refresh()
}

// deleteSelected deletes on the second d press
func (m LibraryModel) deleteSelected() LibraryModel {
	book := m.current()
	if book == nil {
		return m
	}

	if !m.confirmDelete {
		m.confirmDelete = true
		m.statusMsg = fmt.Sprintf("Press d again to delete #%d and its sessions", book.ID)
		return m
	}

	m.confirmDelete = false
	if _, err := m.store.DeleteBook(book.ID); err != nil {
		m.statusMsg = "✗ " + err.Error()
	} else {
		m.statusMsg = fmt.Sprintf("🗑️  Deleted #%d", book.ID)
	}

	return m.refresh()
}

// View renders the browser
func (m LibraryModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 3

	if len(m.books) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center, lipgloss.Center).
			Width(m.width).
			Height(contentHeight).
			Render("Library is empty. Add a book with 'pagestreak add'.")
		return lipgloss.JoinVertical(lipgloss.Left, empty, m.renderStatusLine(), helpBar)
	}

	if m.width < 100 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTable(m.width, contentHeight),
			m.renderStatusLine(),
			helpBar,
		)
	}

	leftWidth := (m.width * 3) / 5
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTable(leftWidth, contentHeight),
		"  ",
		m.renderDetailPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusLine(), helpBar)
}

// renderTable renders the current page of books
func (m LibraryModel) renderTable(width, height int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s %-3s %-*s %s", "ID", "", width-40, "TITLE", "PROGRESS")))
	b.WriteString("\n")

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	b.WriteString(borderStyle.Render(strings.Repeat("─", width-2)))
	b.WriteString("\n")

	start := m.page * booksPerPage
	end := min(start+booksPerPage, len(m.books))

	titleWidth := width - 40
	if titleWidth < 10 {
		titleWidth = 10
	}

	for i := start; i < end; i++ {
		book := m.books[i]

		icon := "○"
		switch book.Status {
		case models.StatusCurrentlyReading:
			icon = "📖"
		case models.StatusRead:
			icon = "✅"
		}

		progressStr := "     "
		if ep, err := m.agg.BookEnhancedProgress(&book); err == nil && ep.Source != progress.SourceNone {
			progressStr = fmt.Sprintf("%4d%%", ep.Percentage)
		}

		title := book.Title
		if book.Author != "" {
			title += " - " + book.Author
		}

		if i == m.selected {
			cursor := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("›")
			b.WriteString(fmt.Sprintf("%s %-4d %-3s %s %s",
				cursor, book.ID, icon, padRight(m.shimmer.Render(title, titleWidth), title, titleWidth), progressStr))
		} else {
			plain := title
			if len(plain) > titleWidth {
				plain = plain[:titleWidth-3] + "..."
			}
			rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
			b.WriteString(fmt.Sprintf("  %-4d %-3s %s %s",
				book.ID, icon, rowStyle.Render(fmt.Sprintf("%-*s", titleWidth, plain)), progressStr))
		}
		b.WriteString("\n")
	}

	if len(m.books) > booksPerPage {
		pageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		b.WriteString("\n")
		b.WriteString(pageStyle.Render(fmt.Sprintf("  page %d/%d",
			m.page+1, (len(m.books)+booksPerPage-1)/booksPerPage)))
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// padRight pads a styled string so the column lines up with plain rows.
// The styled string carries ANSI escapes, so padding is computed from the
// original text length.
func padRight(styled, original string, width int) string {
	visible := len(original)
	if visible > width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visible)
}

// renderDetailPanel renders the right-hand detail card
func (m LibraryModel) renderDetailPanel(width, height int) string {
	book := m.current()
	if book == nil {
		return ""
	}

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
	b.WriteString(titleStyle.Render(book.Title))
	b.WriteString("\n\n")

	b.WriteString(renderBookDetails(book, m.agg, width-8))

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

// renderStatusLine shows feedback from the last action
func (m LibraryModel) renderStatusLine() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.statusMsg)
}

// renderHelpBar renders the key hints at the bottom
func (m LibraryModel) renderHelpBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/↓ navigate · ←/→ page · s start/shelve · f finish · d delete · esc/q quit")
}

// RunLibraryTUI starts the interactive library browser
func RunLibraryTUI(store *db.Store, agg *progress.Aggregator, books []models.Book) error {
	model := NewLibraryModel(store, agg, books)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
