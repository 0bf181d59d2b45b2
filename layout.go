package exgain

import (
	nt "exgain/entity"
	"exgain/slider"
)

const (
	border      = 1 // cells on each side of the box
	margin      = 1 // blank column inside the left border
	headerRows  = 2 // title and a blank line
	valueWidth  = 6 // space plus widest slider text
	minTrack    = 2
	handleReach = 2 // columns left of the corner that still grab the handle
)

// frame is the panel box geometry in terminal cells.
type frame struct {
	cols int
	rows int
}

// newFrame sizes the box for size, clamped to the terminal when known.
func newFrame(size nt.Size, scale nt.Point, termWidth, termHeight int) frame {

	fr := frame{
		cols: size.Width / scale.X,
		rows: size.Height / scale.Y,
	}

	if termWidth > 0 {
		fr.cols = min(fr.cols, termWidth)
	}
	if termHeight > 0 {
		fr.rows = min(fr.rows, termHeight)
	}

	fr.cols = max(fr.cols, 2*border+1)
	fr.rows = max(fr.rows, 2*border+1)
	return fr
}

func (fr frame) innerWidth() int {
	return fr.cols - 2*border
}

func (fr frame) innerHeight() int {
	return fr.rows - 2*border
}

// onHandle reports whether cell is on the resize handle.
func (fr frame) onHandle(cell nt.Point) bool {
	return cell.Y == fr.rows-1 &&
		cell.X <= fr.cols-1 &&
		cell.X > fr.cols-1-handleReach
}

func (fr frame) trackX() int {
	return border + margin + slider.LabelWidth
}

func (fr frame) trackWidth() int {
	return max(minTrack, fr.innerWidth()-margin-slider.LabelWidth-valueWidth-margin)
}

func (fr frame) sliderRow(idx int) int {
	return border + headerRows + idx
}

// sliderAt returns the slider under cell and where on its track cell falls, 0 to 1.
func (fr frame) sliderAt(cell nt.Point, count int) (idx int, frac float64, ok bool) {

	idx = cell.Y - fr.sliderRow(0)
	if idx < 0 || idx >= count || cell.Y >= fr.rows-border {
		return
	}

	width := fr.trackWidth()
	offset := cell.X - fr.trackX()
	if offset < 0 || offset >= width {
		return
	}

	frac = float64(offset) / float64(width-1)
	ok = true
	return
}
