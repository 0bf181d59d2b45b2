package exgain

// Screen indicates which screen is currently displayed
type Screen int

const (
	PanelScreen Screen = iota
	HelpScreen
)
