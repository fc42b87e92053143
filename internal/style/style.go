// Package style holds the shared terminal styles for the winutils tools.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Match is the color wrapped around matched search terms and file names.
var Match = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// Highlight wraps every literal occurrence of term inside s with the match
// color. An empty term leaves s untouched.
func Highlight(s, term string) string {
	if term == "" {
		return s
	}
	return strings.ReplaceAll(s, term, Match.Render(term))
}
