// Package slider is a horizontal range input bound to [min,max].
package slider

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	coarse = 10 // steps per shift+arrow
)

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("223")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

// Slider is a continuous input snapped to step.
type Slider struct {
	name  string
	label string
	min   float64
	max   float64
	step  float64
	value float64
	prec  int
}

// New creates a slider; value is clamped and snapped.
func New(name, label string, min, max, step, value float64) Slider {
	if max < min {
		min, max = max, min
	}
	if step <= 0 {
		step = (max - min) / 100
	}

	sl := Slider{
		name:  name,
		label: label,
		min:   min,
		max:   max,
		step:  step,
		prec:  precision(step),
	}
	sl.value = sl.snap(value)
	return sl
}

// Name identifies the parameter the slider drives.
func (sl Slider) Name() string {
	return sl.name
}

func (sl Slider) Label() string {
	return sl.label
}

func (sl Slider) Value() float64 {
	return sl.value
}

func (sl Slider) Min() float64 {
	return sl.min
}

func (sl Slider) Max() float64 {
	return sl.max
}

// Fraction returns the value's position within the range, 0 to 1.
func (sl Slider) Fraction() float64 {
	if sl.max == sl.min {
		return 0
	}
	return (sl.value - sl.min) / (sl.max - sl.min)
}

// Set moves the slider to v, reporting whether the value changed.
func (sl Slider) Set(v float64) (Slider, bool) {
	if math.IsNaN(v) {
		return sl, false
	}

	old := sl.value
	sl.value = sl.snap(v)
	return sl, sl.value != old
}

// SetFraction moves the slider to the given position within its range.
func (sl Slider) SetFraction(frac float64) (Slider, bool) {
	frac = math.Max(0, math.Min(1, frac))
	return sl.Set(sl.min + frac*(sl.max-sl.min))
}

// Step moves the slider by n steps.
func (sl Slider) Step(n int) (Slider, bool) {
	return sl.Set(sl.value + float64(n)*sl.step)
}

// Update handles key presses for a focused slider.
func (sl Slider) Update(msg tea.Msg) (Slider, bool) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			return sl.Step(-1)
		case "right", "l":
			return sl.Step(1)
		case "shift+left", "H":
			return sl.Step(-coarse)
		case "shift+right", "L":
			return sl.Step(coarse)
		case "home":
			return sl.Set(sl.min)
		case "end":
			return sl.Set(sl.max)
		}
	}
	return sl, false
}

// Text formats the value to the step's precision.
func (sl Slider) Text() string {
	return strconv.FormatFloat(sl.value, 'f', sl.prec, 64)
}

// Render draws the track at the given width.
func (sl Slider) Render(width int, focused bool) string {
	if width < 2 {
		width = 2
	}

	filled := int(math.Round(sl.Fraction() * float64(width-1)))
	track := filledStyle.Render(strings.Repeat("━", filled)) +
		focusStyle.Render("●") +
		emptyStyle.Render(strings.Repeat("─", width-1-filled))

	label := labelStyle
	if focused {
		label = focusStyle
	}
	return fmt.Sprintf("%s%s %s", label.Width(LabelWidth).Render(sl.label), track, sl.Text())
}

// LabelWidth is the number of columns before the track starts.
const LabelWidth = 8

// unexported

// snap clamps v and rounds it onto the step grid.
func (sl Slider) snap(v float64) float64 {
	v = math.Max(sl.min, math.Min(sl.max, v))

	steps := math.Round((v - sl.min) / sl.step)
	v = sl.min + steps*sl.step
	v = math.Max(sl.min, math.Min(sl.max, v))

	scale := math.Pow(10, float64(sl.prec))
	return math.Round(v*scale) / scale
}

// precision is the number of decimals needed to print step.
func precision(step float64) int {
	text := strconv.FormatFloat(step, 'f', -1, 64)
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	return len(text) - dot - 1
}
