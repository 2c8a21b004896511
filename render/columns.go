package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	columnGutter = 2
	maxColumns   = 10
)

// Columns lays items out like ls does on a terminal of the given width.
// Items that fit on one line are printed on one line. Otherwise the widest
// column count (up to 10) whose column-major layout fits is chosen; columns
// are as wide as their widest item plus a two cell gutter. The last cell of
// every row is not padded.
func Columns(items []Span, width int) Content {
	if len(items) == 0 {
		return Content{}
	}

	total := 0
	for _, item := range items {
		total += runewidth.StringWidth(item.Text) + columnGutter
	}
	if total < width {
		line := make(Line, 0, len(items)*2)
		for i, item := range items {
			if i > 0 {
				line = append(line, Plain(strings.Repeat(" ", columnGutter)))
			}
			line = append(line, item)
		}
		return Content{line}
	}

	chunks, widths := layout(items, width)

	rows := len(chunks[0])
	content := make(Content, 0, rows)
	for r := 0; r < rows; r++ {
		var line Line
		for c, chunk := range chunks {
			if r >= len(chunk) {
				continue
			}
			if len(line) > 0 {
				prev := chunks[c-1][r]
				if pad := widths[c-1] - runewidth.StringWidth(prev.Text); pad > 0 {
					line = append(line, Plain(strings.Repeat(" ", pad)))
				}
			}
			line = append(line, chunk[r])
		}
		content = append(content, line)
	}

	return content
}

// layout returns the column-major chunks and each column's width.
func layout(items []Span, width int) ([][]Span, []int) {
	for cols := min(maxColumns, len(items)); cols >= 1; cols-- {
		rows := (len(items) + cols - 1) / cols

		var chunks [][]Span
		var widths []int
		total := 0
		for start := 0; start < len(items); start += rows {
			chunk := items[start:min(start+rows, len(items))]
			w := 0
			for _, item := range chunk {
				w = max(w, runewidth.StringWidth(item.Text)+columnGutter)
			}
			chunks = append(chunks, chunk)
			widths = append(widths, w)
			total += w
		}

		if total < width || cols == 1 {
			return chunks, widths
		}
	}

	return [][]Span{items}, []int{0}
}
