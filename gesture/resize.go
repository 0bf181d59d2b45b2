// Package gesture tracks the mouse-down, move, mouse-up resize gesture.
package gesture

import (
	nt "exgain/entity"
)

// State of a drag.
type State int

const (
	Idle State = iota
	Dragging
)

func (st State) String() string {
	if st == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag holds the start of a resize gesture.
// The zero value is Idle.
type Drag struct {
	active    bool
	start     nt.Point
	startSize nt.Size
}

// State returns the drag's current state.
func (drg Drag) State() State {
	if drg.active {
		return Dragging
	}
	return Idle
}

// Begin starts a drag at cursor, snapshotting size.
func (drg Drag) Begin(cursor nt.Point, size nt.Size) Drag {
	return Drag{
		active:    true,
		start:     cursor,
		startSize: size,
	}
}

// Move returns the size for cursor, floored on each axis.
// ok is false when no drag is in progress.
func (drg Drag) Move(cursor nt.Point) (size nt.Size, ok bool) {
	if !drg.active {
		return
	}

	size = drg.startSize.Grow(cursor.Sub(drg.start)).Floor()
	ok = true
	return
}

// End finishes the gesture, whether or not one was in progress.
func (drg Drag) End() Drag {
	return Drag{}
}
