package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type column struct {
	title string
	right bool
}

type textTable struct {
	columns []column
	rows    [][]string
}

func newTextTable(columns ...column) *textTable {
	return &textTable{columns: columns}
}

func (t *textTable) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// lines renders the header and rows with columns padded to their widest cell.
func (t *textTable) lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col.title)
	}
	for _, row := range t.rows {
		for i := range t.columns {
			if w := runewidth.StringWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = col.title
	}
	out := make([]string, 0, len(t.rows)+1)
	out = append(out, t.joinRow(header, widths))
	for _, row := range t.rows {
		out = append(out, t.joinRow(row, widths))
	}
	return out
}

func (t *textTable) joinRow(row []string, widths []int) string {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cell := cellAt(row, i)
		if col.right {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.Join(cells, " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
