package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wardydev/bri-finder-admin/internal/models"
)

// cellWidth caps table cell text so wide addresses and comment bodies do not
// wreck the layout.
const cellWidth = 40

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

func renderLocationTable(items []models.Location) string {
	t := newTable("ID", "NAME", "BANK", "ADDRESS", "HOURS")
	for _, l := range items {
		t.Row(l.ID, cell(l.Name), cell(l.Bank), cell(l.Address), cell(l.Hours))
	}
	return t.Render()
}

func renderCommentTable(items []models.Comment) string {
	t := newTable("ID", "COMMENT", "AUTHOR", "DATE")
	for _, c := range items {
		t.Row(c.ID, cell(c.Text), cell(c.Author), FormatDate(c.CreatedAt))
	}
	return t.Render()
}

// cell truncates s to cellWidth runes, marking the cut with an ellipsis.
func cell(s string) string {
	return truncate(s, cellWidth)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
