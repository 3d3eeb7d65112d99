// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the section table
// printed by "cmdbatch --list".
package static

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/cmdbatch/internal/ui/styles"
)

// SectionTableHeaders are the column headers used with SectionTableRow.
var SectionTableHeaders = []string{"SECTION", "COMMAND", "OPTIONS"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// SectionTableRow builds one row for the section table.
// Commands inherited from [DEFAULT] are rendered muted.
func SectionTableRow(name, command string, inherited bool, options int) []string {
	cmdCell := command
	if inherited {
		cmdCell = styles.MutedStyle.Render(command)
	}
	return []string{name, cmdCell, strconv.Itoa(options)}
}
