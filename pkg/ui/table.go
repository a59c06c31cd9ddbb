package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// EmptyTablePlaceholder is the single row rendered when the asset list is
// empty. An empty inventory is a normal state, not an error.
const EmptyTablePlaceholder = "Nenhum ativo encontrado."

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int
	Align  string // "left", "right", "center"
}

// Table represents a data table
type Table struct {
	Columns     []TableColumn
	Rows        [][]string
	RowStyles   []lipgloss.Style // optional per-row override
	Placeholder string           // rendered instead of rows when there are none
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// AssetColumns is the column layout shared by the inventory views.
func AssetColumns() []TableColumn {
	return []TableColumn{
		{Header: "ID", Width: 4, Align: "right"},
		{Header: "Nome", Width: 20},
		{Header: "MAC", Width: 17},
		{Header: "IP", Width: 15},
		{Header: "Status", Width: 8},
		{Header: "Condição", Width: 12},
	}
}

// NewAssetTable builds the inventory table from an asset list, in the order
// given. An empty list produces the placeholder row.
func NewAssetTable(assets []domain.Asset) *Table {
	t := NewTable(AssetColumns())
	t.Placeholder = EmptyTablePlaceholder

	for _, a := range assets {
		t.AddRow(AssetRow(a))
	}
	return t
}

// AssetRow renders one asset as table cells with badge-styled status and
// condition.
func AssetRow(a domain.Asset) []string {
	return []string{
		fmt.Sprintf("%d", a.ID),
		a.DisplayName(),
		a.DisplayMAC(),
		a.DisplayIP(),
		StatusStyle(a.Status).Render(a.DisplayStatus()),
		ConditionStyle(a.Condition).Render(a.DisplayCondition()),
	}
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var builder strings.Builder

	// Calculate actual column widths based on content
	colWidths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		colWidths[i] = len(col.Header)
	}

	// Check row content widths (ANSI-aware)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	// Apply minimum widths from column specs
	for i, col := range t.Columns {
		if col.Width > colWidths[i] {
			colWidths[i] = col.Width
		}
	}

	// Render header
	headerParts := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headerParts[i] = padString(col.Header, colWidths[i], "left")
	}
	headerLine := StyleTableHeader.Render(strings.Join(headerParts, "  "))
	builder.WriteString(headerLine)
	builder.WriteString("\n")

	// Render separator
	separatorParts := make([]string, len(t.Columns))
	for i := range t.Columns {
		separatorParts[i] = strings.Repeat("─", colWidths[i])
	}
	separator := StyleTableBorder.Render(strings.Join(separatorParts, "  "))
	builder.WriteString(separator)
	builder.WriteString("\n")

	// Empty table renders exactly one placeholder row spanning all columns
	if len(t.Rows) == 0 && t.Placeholder != "" {
		total := len(colWidths)*2 - 2
		for _, w := range colWidths {
			total += w
		}
		builder.WriteString(StyleSubtle.Render(padString(t.Placeholder, total, "center")))
		builder.WriteString("\n")
		return builder.String()
	}

	// Render rows
	for idx, row := range t.Rows {
		rowParts := make([]string, len(t.Columns))
		for i, cell := range row {
			if i < len(t.Columns) {
				align := t.Columns[i].Align
				if align == "" {
					align = "left"
				}
				rowParts[i] = padString(cell, colWidths[i], align)
			}
		}

		// Alternate row styles unless the caller set one
		var rowStyle lipgloss.Style
		switch {
		case idx < len(t.RowStyles):
			rowStyle = t.RowStyles[idx]
		case idx%2 == 0:
			rowStyle = StyleTableRow
		default:
			rowStyle = StyleTableRowAlt
		}

		rowLine := rowStyle.Render(strings.Join(rowParts, "  "))
		builder.WriteString(rowLine)
		builder.WriteString("\n")
	}

	return builder.String()
}

// padString pads a string to the specified width with alignment. Width is
// measured with ANSI escapes stripped so styled cells line up.
func padString(s string, width int, align string) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}

	padding := width - visible

	switch align {
	case "right":
		return strings.Repeat(" ", padding) + s
	case "center":
		leftPad := padding / 2
		rightPad := padding - leftPad
		return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", rightPad)
	default: // "left"
		return s + strings.Repeat(" ", padding)
	}
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s",
		StyleAccent.Render(key),
		value,
	)
}

// RenderBar renders a fixed-width proportion bar used by the stats command.
func RenderBar(count, max, width int, style lipgloss.Style) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := count * width / max
	if count > 0 && filled == 0 {
		filled = 1
	}
	return style.Render(strings.Repeat("█", filled)) + StyleMuted.Render(strings.Repeat("░", width-filled))
}
