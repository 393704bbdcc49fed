package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/addonscan/pkg/survey"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// =============================================================================
// Report Table
// =============================================================================

// renderTable renders the report for a terminal. Names are not shortened
// or linked, downloads are humanized and platforms go one per line.
func renderTable(r *survey.Report) string {
	recs := r.Sorted()
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		napi := ""
		if rec.Napi {
			napi = "yes"
		}
		rows = append(rows, []string{
			rec.Name,
			rec.Version,
			rec.Type,
			strconv.Itoa(len(rec.Prebuilds)),
			napi,
			rec.Language,
			humanize.Comma(int64(rec.Downloads)),
			strings.Join(rec.Platforms(), "\n"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(survey.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			switch col {
			case 0:
				return styleCell.Foreground(colorWhite)
			case 6:
				return styleCell.Foreground(colorCyan).Align(lipgloss.Right)
			case 7:
				return styleCell.Foreground(colorGray)
			}
			return styleCell
		})
	return t.Render()
}

// summaryLine renders counters for a terminal, e.g. "12 included · 3 unpopular".
func summaryLine(c survey.Counters) string {
	parts := []string{
		StyleNumber.Render(humanize.Comma(int64(c.Seen))) + StyleDim.Render(" raw"),
		StyleNumber.Render(humanize.Comma(int64(c.Excluded))) + StyleDim.Render(" ignored"),
		StyleNumber.Render(humanize.Comma(int64(c.Unresolved))) + StyleDim.Render(" uncertain"),
		StyleNumber.Render(humanize.Comma(int64(c.Unpopular))) + StyleDim.Render(" unpopular"),
		StyleNumber.Render(humanize.Comma(int64(c.Included))) + StyleDim.Render(" included"),
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}
