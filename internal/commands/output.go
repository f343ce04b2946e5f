package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cleared-dev/fsprep/internal/export"
)

const (
	successSymbol = "✓"
	warnSymbol    = "!"
	infoSymbol    = "→"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D78700", Dark: "#FFAF00"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	amountStyle  = lipgloss.NewStyle().Align(lipgloss.Right)
)

func printSuccessf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render(successSymbol), fmt.Sprintf(format, args...))
}

func printWarnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", warnStyle.Render(warnSymbol), warnStyle.Render(fmt.Sprintf(format, args...)))
}

func printInfof(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", infoStyle.Render(infoSymbol), fmt.Sprintf(format, args...))
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// renderSheet prints a sheet's leading title rows as headings and the rest
// as a table. Blank spacer rows are dropped.
func renderSheet(w io.Writer, s export.Sheet) {
	rows := s.Rows
	for len(rows) > 0 && !isBlank(rows[0]) {
		_, _ = fmt.Fprintln(w, titleStyle.Render(rows[0][0]))
		rows = rows[1:]
	}

	var body [][]string
	for _, r := range rows {
		if !isBlank(r) {
			body = append(body, r)
		}
	}
	if len(body) == 0 {
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col > 0 {
				return amountStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(body...)
	_, _ = fmt.Fprintln(w, t.String())
}
