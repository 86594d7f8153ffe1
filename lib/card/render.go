package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stamp ink colours for terminal output, keyed by CSS class
var inkColors = map[string]lipgloss.Color{
	"text-red-600":   lipgloss.Color("#dc2626"),
	"text-blue-600":  lipgloss.Color("#2563eb"),
	"text-amber-900": lipgloss.Color("#78350f"),
	"text-green-600": lipgloss.Color("#16a34a"),
	"text-gray-700":  lipgloss.Color("#374151"),
}

const cardWidth = 60

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#a8a29e")).
			Padding(0, 1).
			Width(cardWidth)
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#57534e"))
	quoteStyle   = lipgloss.NewStyle().Italic(true).Width(cardWidth - 4)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#78716c")).Width(cardWidth - 4).Align(lipgloss.Center)
)

// Render draws the card for a terminal. Stamps are indented by their x offset
// and coloured by their ink; the vertical offset, rotation and font have no
// terminal equivalent and are left out.
func Render(c Card) string {
	var sb strings.Builder

	header := fmt.Sprintf("%-6s %s  %s", c.Category, headingStyle.Render(Heading), c.DeweyNumber)
	sb.WriteString(header + "\n")
	sb.WriteString(labelStyle.Render("Form No. "+c.FormNumber) + "\n\n")

	sb.WriteString(labelStyle.Render("Author:") + " " + c.Author + "\n")
	sb.WriteString(labelStyle.Render("Title:") + "  " + c.Title + "\n\n")

	sb.WriteString(fmt.Sprintf("%-24s %s\n", "DATE", "ISSUED TO"))
	sb.WriteString(strings.Repeat("-", cardWidth-4) + "\n")
	for _, row := range c.Rows {
		ink, ok := inkColors[row.ColorClass]
		if !ok {
			ink = inkColors["text-gray-700"]
		}
		// offsets range from -8 to 8, shift them into a positive indent
		indent := strings.Repeat(" ", (row.OffsetX+8)/4)
		date := lipgloss.NewStyle().Foreground(ink).Render(fmt.Sprintf("%-20s", row.Date))
		sb.WriteString(fmt.Sprintf("%s%s %s\n", indent, date, row.Borrower))
	}
	for range c.EmptyRows {
		sb.WriteString("\n")
	}

	if c.Quote != "" {
		sb.WriteString("\n" + labelStyle.Render("NOTABLE PASSAGE") + "\n")
		sb.WriteString(quoteStyle.Render(fmt.Sprintf("%q", c.Quote)) + "\n")
	}

	sb.WriteString("\n" + footerStyle.Render(c.Library.Name+"\n"+c.Library.Address))

	return cardStyle.Render(sb.String())
}
