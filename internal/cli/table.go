package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	columnGap = 2
	ellipsis  = "…"
)

// Table writes rows as aligned columns. Widths are measured in terminal
// cells so that CJK names line up with Latin codes.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// SetMaxWidth caps every column at n cells. Longer cells are truncated
// with an ellipsis. Zero disables the cap.
func (t *Table) SetMaxWidth(n int) *Table {
	t.maxWidth = max(0, n)
	return t
}

// Append adds a row. Missing cells are blank and extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the header, a rule and every row to w.
func (t *Table) Render(w io.Writer) error {
	header := t.fit(t.headers)
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = t.fit(row)
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if _, err := fmt.Fprintln(w, TitleStyle.Render(t.line(header, widths))); err != nil {
		return err
	}

	total := 0
	for _, width := range widths {
		total += width + columnGap
	}
	if _, err := fmt.Fprintln(w, SubtleStyle.Render(strings.Repeat("─", max(0, total-columnGap)))); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, t.line(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) fit(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		cell = strings.Join(strings.Fields(cell), " ")
		if t.maxWidth > 0 {
			cell = runewidth.Truncate(cell, t.maxWidth, ellipsis)
		}
		out[i] = cell
	}
	return out
}

func (t *Table) line(row []string, widths []int) string {
	var b strings.Builder
	for i, cell := range row {
		if i == len(row)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]+columnGap))
	}
	return strings.TrimRight(b.String(), " ")
}
