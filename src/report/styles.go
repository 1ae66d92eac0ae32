package report

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds the colors used when the output is a color terminal.
type StyleConfig struct {
	Title   lipgloss.Color
	Warning lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		Title:   lipgloss.Color("#8AB4F8"),
		Warning: lipgloss.Color("#EA4335"),
	}
}

// TitleStyle returns the table title style bound to renderer r.
func (s *StyleConfig) TitleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(s.Title).
		Bold(true)
}

// WarningStyle returns the exceeds-limit marker style bound to renderer r.
func (s *StyleConfig) WarningStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(s.Warning).
		Bold(true)
}
