package exgain

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "exgain/entity"
	"exgain/gesture"
	"exgain/message"
	"exgain/slider"
)

// Slider positions within the panel.
const (
	GainSlider = iota
	LengthSlider
	PowSlider
	AmountSlider
)

const noSlider = -1

// Panel owns the control panel's state: sliders, size, the resize gesture and the key log.
// Methods return the updated panel and any messages for the host.
type Panel struct {
	sliders []slider.Slider
	focus   int
	grabbed int

	size    nt.Size
	scale   nt.Point
	drag    gesture.Drag
	display string
	keys    KeyLog

	termWidth  int
	termHeight int
}

// NewPanel creates a panel at the configured size with sliders at their defaults.
func NewPanel(cfg Config) Panel {

	return Panel{
		sliders: []slider.Slider{
			slider.New("gain", "Gain", 0, 1, 0.01, 0.5),
			slider.New("length", "Length", 0, 4, 1, 0),
			slider.New("pow", "Pow", 0, 20, 0.1, 10),
			slider.New("amount", "Amount", 0, 1, 0.01, 0.5),
		},
		grabbed: noSlider,
		size:    cfg.size(),
		scale:   cfg.scale(),
	}
}

// Size returns the panel size as the panel knows it.
func (pnl Panel) Size() nt.Size {
	return pnl.size
}

// DragState returns whether a resize gesture is in progress.
func (pnl Panel) DragState() gesture.State {
	return pnl.drag.State()
}

// Slider returns the slider at idx.
func (pnl Panel) Slider(idx int) slider.Slider {
	return pnl.sliders[idx]
}

// Focus returns the index of the focused slider.
func (pnl Panel) Focus() int {
	return pnl.focus
}

// Display returns the host-provided display text.
func (pnl Panel) Display() string {
	return pnl.display
}

// Keys returns the key log.
func (pnl Panel) Keys() KeyLog {
	return pnl.keys
}

// SetTerminal records the space available to the panel, in cells.
func (pnl Panel) SetTerminal(width, height int) Panel {
	pnl.termWidth = width
	pnl.termHeight = height
	return pnl
}

// LogKey records a key event in the key log.
func (pnl Panel) LogKey(event, key string) Panel {
	pnl.keys = pnl.keys.Log(event, key)
	return pnl
}

// ApplyParamChange shows a host parameter change.
// Only the gain slider follows, whichever parameter changed.
func (pnl Panel) ApplyParamChange(msg message.ParamChange) Panel {
	sl, _ := pnl.sliders[GainSlider].Set(msg.Value)
	pnl.sliders = slices.Clone(pnl.sliders)
	pnl.sliders[GainSlider] = sl
	pnl.display = msg.Text
	return pnl
}

// ApplySize takes the host's panel size.
func (pnl Panel) ApplySize(msg message.SizeUpdate) Panel {
	pnl.size = nt.Size{Width: msg.Width, Height: msg.Height}
	return pnl
}

// HandleKey moves focus or adjusts the focused slider.
func (pnl Panel) HandleKey(msg tea.KeyPressMsg) (Panel, []message.Outbound) {

	switch msg.String() {
	case "up", "k", "shift+tab":
		pnl.focus = (pnl.focus + len(pnl.sliders) - 1) % len(pnl.sliders)
		return pnl, nil
	case "down", "j", "tab":
		pnl.focus = (pnl.focus + 1) % len(pnl.sliders)
		return pnl, nil
	}

	sl, changed := pnl.sliders[pnl.focus].Update(msg)
	return pnl.setSlider(pnl.focus, sl, changed)
}

// Press handles a left mouse-down at cell.
func (pnl Panel) Press(cell nt.Point) (Panel, []message.Outbound) {

	fr := pnl.frame()

	if fr.onHandle(cell) {
		pnl.drag = pnl.drag.Begin(pnl.pixels(cell), pnl.size)
		return pnl, nil
	}

	idx, frac, ok := fr.sliderAt(cell, len(pnl.sliders))
	if !ok {
		return pnl, nil
	}

	pnl.focus = idx
	pnl.grabbed = idx
	sl, changed := pnl.sliders[idx].SetFraction(frac)
	return pnl.setSlider(idx, sl, changed)
}

// Motion handles the cursor moving to cell.
func (pnl Panel) Motion(cell nt.Point) (Panel, []message.Outbound) {

	if size, ok := pnl.drag.Move(pnl.pixels(cell)); ok {
		pnl.size = size
		return pnl, []message.Outbound{
			message.SetSize{Width: size.Width, Height: size.Height},
		}
	}

	if pnl.grabbed == noSlider {
		return pnl, nil
	}

	fr := pnl.frame()
	offset := cell.X - fr.trackX()
	frac := float64(offset) / float64(fr.trackWidth()-1)

	sl, changed := pnl.sliders[pnl.grabbed].SetFraction(frac)
	return pnl.setSlider(pnl.grabbed, sl, changed)
}

// Release ends any gesture, wherever the button comes up.
func (pnl Panel) Release() Panel {
	pnl.drag = pnl.drag.End()
	pnl.grabbed = noSlider
	return pnl
}

// Render draws the panel box.
func (pnl Panel) Render() string {

	fr := pnl.frame()
	width := fr.innerWidth()
	pad := strings.Repeat(" ", margin)

	lines := []string{
		pad + titleStyle.Render("ExGain"),
		"",
	}
	for i, sl := range pnl.sliders {
		lines = append(lines, pad+sl.Render(fr.trackWidth(), i == pnl.focus))
	}
	lines = append(lines,
		"",
		pad+mutedStyle.Render("gain    ")+pnl.display,
		pad+mutedStyle.Render("size    ")+pnl.size.String(),
		pad+mutedStyle.Render("key     ")+pnl.keys.String(),
	)

	rows := make([]string, fr.innerHeight())
	for i := range rows {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		rows[i] = fit(line, width)
	}

	return lipgloss.NewStyle().
		Border(panelBorder()).
		BorderForeground(borderColor).
		Render(strings.Join(rows, "\n"))
}

// unexported

func (pnl Panel) frame() frame {
	return newFrame(pnl.size, pnl.scale, pnl.termWidth, pnl.termHeight)
}

// pixels converts a terminal cell to a cursor position in pixels.
func (pnl Panel) pixels(cell nt.Point) nt.Point {
	return nt.Point{X: cell.X * pnl.scale.X, Y: cell.Y * pnl.scale.Y}
}

func (pnl Panel) setSlider(idx int, sl slider.Slider, changed bool) (Panel, []message.Outbound) {

	pnl.sliders = slices.Clone(pnl.sliders)
	pnl.sliders[idx] = sl
	if !changed {
		return pnl, nil
	}

	out, ok := message.ValueOf(sl.Name(), sl.Value())
	if !ok {
		return pnl, nil
	}
	return pnl, []message.Outbound{out}
}

// fit truncates or pads line to exactly width cells.
func fit(line string, width int) string {
	line = unStyle.MaxWidth(width).Render(line)
	if gap := width - lipgloss.Width(line); gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}
