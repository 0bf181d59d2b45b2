package exgain

import "charm.land/lipgloss/v2"

var (
	borderColor = lipgloss.Color("240")
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("223")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	unStyle     = lipgloss.NewStyle()
)

// panelBorder is a rounded border with the resize handle in the bottom-right corner.
func panelBorder() lipgloss.Border {
	brd := lipgloss.RoundedBorder()
	brd.BottomRight = handleGlyph
	return brd
}

const handleGlyph = "◢"
