package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one column. Width zero sizes the column to its widest
// cell; a positive Width pads or truncates every cell to exactly that many
// cells, so rows formatted separately still line up.
type Column struct {
	Width int
	Align Alignment
}

// Format returns the rows padded per column. The last column is never
// padded on the right.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for c := range widths {
		if c < len(columns) && columns[c].Width > 0 {
			widths[c] = columns[c].Width
			continue
		}
		for _, row := range rows {
			if c < len(row) {
				if w := CellWidth(row[c]); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			fixed := c < len(columns) && columns[c].Width > 0
			if fixed {
				cell = Truncate(cell, widths[c])
			}
			pad := widths[c] - CellWidth(cell)
			last := c == colCount-1
			if c < len(columns) && columns[c].Align == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// CellWidth reports the terminal width of text, counting wide runes twice.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to width cells, ending with an ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if CellWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
