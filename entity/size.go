package entity

import "fmt"

// MinDim is the smallest width or height a panel may be resized to.
const MinDim = 100

// Size is a panel's dimensions in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Floor returns the size with each dimension raised to at least MinDim.
func (sz Size) Floor() Size {
	return Size{
		Width:  max(MinDim, sz.Width),
		Height: max(MinDim, sz.Height),
	}
}

// Grow returns the size offset by delta on each axis.
func (sz Size) Grow(delta Point) Size {
	return Size{
		Width:  sz.Width + delta.X,
		Height: sz.Height + delta.Y,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%dx%d", sz.Width, sz.Height)
}

// Point is a cursor position in pixels.
type Point struct {
	X int
	Y int
}

// Sub returns the offset from other to pt.
func (pt Point) Sub(other Point) Point {
	return Point{X: pt.X - other.X, Y: pt.Y - other.Y}
}
