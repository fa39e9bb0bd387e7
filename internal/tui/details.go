package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pagestreak/pagestreak/internal/models"
	"github.com/pagestreak/pagestreak/internal/progress"
)

var logoLines = []string{
	"┌─┐┌─┐┌─┐┌─┐┌─┐┌┬┐┬─┐┌─┐┌─┐┬┌─",
	"├─┘├─┤│ ┬├┤ └─┐ │ ├┬┘├┤ ├─┤├┴┐",
	"┴  ┴ ┴└─┘└─┘└─┘ ┴ ┴└─└─┘┴ ┴┴ ┴",
}

// renderLogo renders the pagestreak wordmark centered in the given width
func renderLogo(width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(strings.Join(logoLines, "\n"))
}

// renderBookDetails renders the structured detail lines shared by the
// reading timer and the library browser.
func renderBookDetails(book *models.Book, agg *progress.Aggregator, width int) string {
	var b strings.Builder

	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width)

	// Status with emoji
	statusIcon := "○"
	statusColor := ColorSecondaryText
	statusText := "want to read"
	switch book.Status {
	case models.StatusCurrentlyReading:
		statusIcon = "📖"
		statusColor = ColorAccentBright
		statusText = "reading"
	case models.StatusRead:
		statusIcon = "✅"
		statusColor = ColorSuccess
		statusText = "read"
	}
	b.WriteString(lineStyle.Render(fmt.Sprintf("%s Status: %s", statusIcon,
		lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Bold(true).Render(statusText))))
	b.WriteString("\n")

	authorValue := "unknown"
	authorColor := ColorDisabledText
	if book.Author != "" {
		authorValue = book.Author
		authorColor = ColorAccentBright
	}
	b.WriteString(lineStyle.Render(fmt.Sprintf("✍️  Author: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(authorColor)).Render(authorValue))))
	b.WriteString("\n")

	// Progress bar from the strongest available source
	if agg != nil {
		if ep, err := agg.BookEnhancedProgress(book); err == nil && ep.Source != progress.SourceNone {
			barWidth := min(width-16, 24)
			if barWidth > 4 {
				b.WriteString(lineStyle.Render(fmt.Sprintf("%s %d%%",
					renderProgressBar(ep.Percentage, barWidth), ep.Percentage)))
				b.WriteString("\n")
			}
		}
		if minutes, err := agg.MinutesForBook(book.ID); err == nil && minutes > 0 {
			value := fmt.Sprintf("%dm", minutes)
			if minutes >= 60 {
				value = fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
			}
			b.WriteString(lineStyle.Render(fmt.Sprintf("⏱  Time reading: %s",
				lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(value))))
			b.WriteString("\n")
		}
	}

	pagesValue := "unknown"
	pagesColor := ColorDisabledText
	if book.TotalPages > 0 {
		pagesValue = fmt.Sprintf("%d", book.TotalPages)
		pagesColor = ColorSecondaryText
	}
	b.WriteString(lineStyle.Render(fmt.Sprintf("📄 Pages: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(pagesColor)).Render(pagesValue))))
	b.WriteString("\n")

	if book.Year > 0 {
		b.WriteString(lineStyle.Render(fmt.Sprintf("📅 Published: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(fmt.Sprintf("%d", book.Year)))))
		b.WriteString("\n")
	}

	if book.StartedAt != nil {
		b.WriteString(lineStyle.Render(fmt.Sprintf("📝 Started: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(book.StartedAt.Format("Jan 02, 2006")))))
		b.WriteString("\n")
	}
	if book.FinishedAt != nil {
		b.WriteString(lineStyle.Render(fmt.Sprintf("🏁 Finished: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(book.FinishedAt.Format("Jan 02, 2006")))))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderProgressBar draws a filled/empty bar for a 0-100 percentage
func renderProgressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	color := ColorAccentBright
	if pct >= 100 {
		color = ColorSuccess
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
}
