package exgain

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderFooter renders a footer with a hint or error on the left and the transport on the right.
func RenderFooter(left, right string, isError bool, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if isError {
		style = errorStyle
	}

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	footer := style.Render(left + strings.Repeat(" ", padding) + right)
	return footer
}
