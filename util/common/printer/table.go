// Package printer renders tabular console output.
package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/harness/pubcheck/internal/style"
)

// Table is a header row plus data rows of equal width.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Append adds a row.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// renderStyledTable renders a table using lipgloss/table with the project's colour theme.
func renderStyledTable(t Table) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Cyan).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Foreground(style.White).
		Padding(0, 1)

	dimCellStyle := lipgloss.NewStyle().
		Foreground(style.Dim).
		Padding(0, 1)

	lt := lgtable.New().
		Headers(t.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row%2 == 0 {
				return cellStyle
			}
			return dimCellStyle
		})

	for _, r := range t.Rows {
		lt = lt.Row(r...)
	}
	return lt.Render()
}

// renderPtermTable renders a boxed plain-text table for non-TTY / no-color output.
func renderPtermTable(t Table) (string, error) {
	data := pterm.TableData{t.Headers}
	data = append(data, t.Rows...)
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Srender()
}

// PrintTable writes t to w. When colour is enabled it renders with
// lipgloss/table, otherwise with the pterm boxed table. An empty table
// prints nothing.
func PrintTable(w io.Writer, t Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	var out string
	if style.Enabled {
		out = renderStyledTable(t)
	} else {
		var err error
		if out, err = renderPtermTable(t); err != nil {
			log.Error().Err(err).Msg("failed to render table")
			return err
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
