// Package mdtable renders rows as a compact GitHub-flavored Markdown table.
//
// Cells are not padded to a common width, which keeps diffs between
// successive reports small:
//
//	| Name | D/L |
//	| - | - |
//	| leveldown | 120000 |
package mdtable

import "strings"

// Formatter renders Markdown tables. The zero value is ready to use.
type Formatter struct{}

// New returns a Formatter.
func New() Formatter { return Formatter{} }

// Format renders rows with the first row as header. Rows shorter than the
// header are filled with empty cells. Pipes inside cells are escaped.
func (Formatter) Format(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	var b strings.Builder
	writeRow(&b, rows[0], width)
	b.WriteByte('\n')
	b.WriteString("|")
	for i := 0; i < width; i++ {
		b.WriteString(" - |")
	}
	for _, r := range rows[1:] {
		b.WriteByte('\n')
		writeRow(&b, r, width)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string, width int) {
	b.WriteString("|")
	for i := 0; i < width; i++ {
		cell := ""
		if i < len(row) {
			cell = escape(row[i])
		}
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func escape(s string) string {
	return cellReplacer.Replace(s)
}
