package report

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// VisualWidth returns the display width of text, ignoring ANSI escape
// sequences and accounting for wide characters.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate truncates text to maxLen characters (visual width) with optional ellipsis
func Truncate(s string, maxLen int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) > maxLen {
		if ellipsis && maxLen > 3 {
			return runewidth.Truncate(s, maxLen-3, "") + "..."
		}
		return runewidth.Truncate(s, maxLen, "")
	}
	return s
}

// TruncateAndPad truncates text with optional ellipsis and pads it on the
// right to exactly width columns. Used for left-aligned table cells.
func TruncateAndPad(s string, width int, ellipsis bool) string {
	s = Truncate(s, width, ellipsis)
	return PadRight(s, width)
}

// PadRight appends spaces until s is width columns wide.
func PadRight(s string, width int) string {
	if w := VisualWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft prepends spaces until s is width columns wide. Used for
// right-aligned numeric cells; longer values are left intact.
func PadLeft(s string, width int) string {
	if w := VisualWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
