package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pagestreak/pagestreak/internal/db"
	"github.com/pagestreak/pagestreak/internal/parser"
)

// Field indices for the add-book form
const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldYear
	fieldISBN
	fieldPublisher
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Author",
	"Total pages",
	"Year",
	"ISBN",
	"Publisher",
	"Notes",
}

var fieldPlaceholders = [fieldCount]string{
	"The Left Hand of Darkness",
	"Ursula K. Le Guin",
	"304",
	"1969",
	"9780441478125",
	"Ace Books",
	"loan from Sam",
}

// AddBookModel is the interactive add-book form
type AddBookModel struct {
	width  int
	height int

	store  *db.Store
	inputs [fieldCount]textinput.Model
	focus  int

	errMsg string

	// Outcome, read by the runner
	cancelled    bool
	completed    bool
	createdID    uint
	createdTitle string
	err          error
}

// NewAddBookModel builds the form, optionally pre-filled
func NewAddBookModel(store *db.Store, prefilled map[string]string) AddBookModel {
	m := AddBookModel{store: store}

	keys := [fieldCount]string{"title", "author", "pages", "year", "isbn", "publisher", "note"}
	for i := 0; i < fieldCount; i++ {
		input := textinput.New()
		input.Placeholder = fieldPlaceholders[i]
		input.CharLimit = 120
		input.Width = 40
		if value, ok := prefilled[keys[i]]; ok {
			input.SetValue(value)
		}
		m.inputs[i] = input
	}

	m.inputs[fieldTitle].Focus()
	return m
}

// Init initializes the form
func (m AddBookModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddBookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "ctrl+s":
			return m.submit()

		case "enter":
			if m.focus == fieldCount-1 {
				return m.submit()
			}
			return m.moveFocus(1)

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// moveFocus shifts focus between fields, wrapping around
func (m AddBookModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

// submit validates the form and creates the book
func (m AddBookModel) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.errMsg = "Title is required"
		return m, nil
	}

	pages := 0
	if v := strings.TrimSpace(m.inputs[fieldPages].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			m.errMsg = "Total pages must be a positive number"
			return m, nil
		}
		pages = n
	}

	year := 0
	if v := strings.TrimSpace(m.inputs[fieldYear].Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			m.errMsg = "Year must be a number"
			return m, nil
		}
		year = n
	}

	isbn := strings.TrimSpace(m.inputs[fieldISBN].Value())
	if isbn != "" {
		normalized, err := parser.NormalizeISBN(isbn)
		if err != nil {
			m.errMsg = "ISBN must be 10 or 13 digits"
			return m, nil
		}
		isbn = normalized
	}

	book, err := m.store.CreateBook(db.CreateBookRequest{
		Title:      title,
		Author:     strings.TrimSpace(m.inputs[fieldAuthor].Value()),
		TotalPages: pages,
		Year:       year,
		ISBN:       isbn,
		Publisher:  strings.TrimSpace(m.inputs[fieldPublisher].Value()),
		Note:       strings.TrimSpace(m.inputs[fieldNote].Value()),
	})
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.completed = true
	m.createdID = book.ID
	m.createdTitle = book.Title
	return m, tea.Quit
}

// View renders the form
func (m AddBookModel) View() string {
	var b strings.Builder

	b.WriteString(renderLogo(48))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(headerStyle.Render("Add a book"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == m.focus {
			b.WriteString(activeLabelStyle.Render("› " + label))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n")
		b.WriteString("  " + m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓ move · enter next (last field saves) · ctrl+s save · esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 3).
		Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

// RunAddBookTUI starts the interactive add-book form
func RunAddBookTUI(store *db.Store, prefilled map[string]string) error {
	model := NewAddBookModel(store, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(AddBookModel); ok {
		if m.cancelled {
			fmt.Println("❌ Book not added.")
		} else if m.completed && m.createdID > 0 {
			fmt.Printf("📚 Added book #%d: %s\n", m.createdID, m.createdTitle)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
