// Package report renders measured contract sizes as a fixed-width table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"contract-size/src/artifact"
	"contract-size/src/ranking"
)

// Column widths, including the single space of padding on each side.
const (
	nameColWidth  = 34
	kbColWidth    = 11
	bytesColWidth = 14

	tableWidth   = nameColWidth + 1 + kbColWidth + 1 + bytesColWidth
	titleIndent  = 21
	title        = "Contract Sizes"
	limitWarning = "⚠️  EXCEEDS LIMIT"
)

// Reporter writes contract size tables to an output stream.
type Reporter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   *StyleConfig
}

// New creates a Reporter writing to w. Styling is applied only when w is a
// color-capable terminal.
func New(w io.Writer) *Reporter {
	return &Reporter{
		out:      w,
		renderer: lipgloss.NewRenderer(w),
		styles:   DefaultStyles(),
	}
}

// Render sorts records by size (largest first) and writes the table with a
// trailing summary. Records over artifact.SizeLimit get an inline warning.
func (r *Reporter) Render(records []artifact.Record) error {
	ranked := ranking.Rank(records)
	warning := r.styles.WarningStyle(r.renderer).Render(limitWarning)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("┌" + strings.Repeat("─", tableWidth) + "┐\n")
	b.WriteString("│" + PadRight(strings.Repeat(" ", titleIndent)+r.styles.TitleStyle(r.renderer).Render(title), tableWidth) + "│\n")
	b.WriteString("├" + strings.Repeat("─", tableWidth) + "┤\n")
	b.WriteString("│ " + PadRight("Contract Name", nameColWidth-2) +
		" │ " + PadRight("Size (KB)", kbColWidth-2) +
		" │ " + PadRight("Size (bytes)", bytesColWidth-2) + " │\n")
	b.WriteString(separator("├", "┼", "┤"))

	for _, rr := range ranked {
		b.WriteString(formatRow(rr, warning))
		b.WriteString("\n")
	}

	b.WriteString(separator("└", "┴", "┘"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total contracts: %d\n", len(ranked))
	limit := artifact.Record{SizeBytes: artifact.SizeLimit}
	fmt.Fprintf(&b, "Maximum contract size: %s KB (%d bytes)\n", limit.SizeKB(), artifact.SizeLimit)
	b.WriteString("\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// formatRow renders one table row; warning is appended only for records
// over the size limit.
func formatRow(rr ranking.RankedRecord, warning string) string {
	row := "│ " + TruncateAndPad(rr.Record.Name, nameColWidth-2, true) +
		" │ " + PadLeft(rr.Record.SizeKB(), kbColWidth-2) +
		" │ " + PadLeft(strconv.Itoa(rr.Record.SizeBytes), bytesColWidth-2) + " │"
	if rr.OverLimit {
		row += " " + warning
	}
	return row
}

func separator(left, mid, right string) string {
	return left + strings.Repeat("─", nameColWidth) +
		mid + strings.Repeat("─", kbColWidth) +
		mid + strings.Repeat("─", bytesColWidth) + right + "\n"
}

// RenderError writes the guidance shown when no artifacts directory exists.
// hint is the build command the operator should run.
func RenderError(w io.Writer, hint string) error {
	_, err := fmt.Fprintf(w, "Error: Could not find artifacts. Please compile contracts first.\nRun: %s\n", hint)
	return err
}
