package asciiprint

import (
	"bytes"
	"io"
)

// Layout describes how the character grid is split across side-by-side
// pages. Between two pages the grid carries a gap that is not printed.
type Layout struct {
	Columns     int // Width of the whole grid
	Pages       int
	PageColumns int // Printed width of one page
	GapColumns  int // Width of one join between pages
}

// NewLayout derives the page layout from cfg.
func NewLayout(cfg Config) Layout {
	return Layout{
		Columns:     gridColumns(cfg),
		Pages:       cfg.Pages,
		PageColumns: int(cfg.PageWidth * float64(cfg.Pitch)),
		GapColumns:  cfg.Gap * 2 * cfg.Pitch,
	}
}

// PageRange returns the half-open column range [start, end) printed on page
// i. The last page runs to the edge of the grid to absorb rounding.
func (l Layout) PageRange(i int) (start, end int) {
	start = i * (l.PageColumns + l.GapColumns)
	end = start + l.PageColumns
	if i == l.Pages-1 || end > l.Columns {
		end = l.Columns
	}
	if start > l.Columns {
		start = l.Columns
	}
	return start, end
}

// SplitPages rewrites encoded text page by page, dropping the gap columns.
// Pages are separated by a form feed so each one starts a new sheet.
func SplitPages(w io.Writer, text []byte, l Layout) error {
	lines := bytes.Split(bytes.TrimSuffix(text, []byte{'\n'}), []byte{'\n'})
	if len(text) == 0 {
		lines = nil
	}

	var buf bytes.Buffer
	for page := 0; page < l.Pages; page++ {
		if page > 0 {
			buf.WriteByte('\f')
		}
		start, end := l.PageRange(page)
		for _, line := range lines {
			buf.Write(clip(line, start, end))
			buf.WriteByte('\n')
		}
	}
	_, err := buf.WriteTo(w)
	return err
}

func clip(line []byte, start, end int) []byte {
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}
