package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// maxCellWidth truncates long cells such as notes.
const maxCellWidth = 40

// printTable renders rows under a bold header with padded columns.
func printTable(w io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := lipgloss.Width(truncate(cell, maxCellWidth)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	header := make([]string, len(columns))
	total := 0
	for i, c := range columns {
		header[i] = headerStyle.Render(padRight(c, widths[i]))
		total += widths[i] + 2
	}
	_, _ = fmt.Fprintln(w, strings.Join(header, "  "))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", max(total-2, 0)))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(truncate(cell, maxCellWidth), widths[i])
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func padRight(s string, length int) string {
	if n := lipgloss.Width(s); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}

func truncate(s string, length int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
