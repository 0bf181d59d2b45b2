package gesture

import (
	"testing"

	nt "exgain/entity"
)

func TestDragScenario(t *testing.T) {
	drg := Drag{}.Begin(nt.Point{X: 800, Y: 600}, nt.Size{Width: 400, Height: 400})

	size, ok := drg.Move(nt.Point{X: 300, Y: 100})
	if !ok {
		t.Fatal("expected move while dragging")
	}
	if size != (nt.Size{Width: 100, Height: 100}) {
		t.Errorf("got %v, want 100x100", size)
	}
}

func TestDragFloor(t *testing.T) {
	start := nt.Point{X: 50, Y: 50}
	deltas := []nt.Point{
		{X: 0, Y: 0},
		{X: -299, Y: 10},
		{X: -300, Y: -300},
		{X: -301, Y: -10000},
		{X: 25, Y: -1_000_000},
		{X: 1000, Y: 1000},
	}

	for _, delta := range deltas {
		drg := Drag{}.Begin(start, nt.Size{Width: 400, Height: 400})
		size, ok := drg.Move(nt.Point{X: start.X + delta.X, Y: start.Y + delta.Y})
		if !ok {
			t.Fatalf("delta %v: expected move", delta)
		}
		if size.Width < nt.MinDim || size.Height < nt.MinDim {
			t.Errorf("delta %v: size %v below floor", delta, size)
		}
		if delta.X > -300 && size.Width != 400+delta.X {
			t.Errorf("delta %v: width %d, want %d", delta, size.Width, 400+delta.X)
		}
	}
}

func TestDragAxesIndependent(t *testing.T) {
	drg := Drag{}.Begin(nt.Point{X: 10, Y: 10}, nt.Size{Width: 300, Height: 200})

	size, _ := drg.Move(nt.Point{X: 60, Y: -500})
	if size != (nt.Size{Width: 350, Height: 100}) {
		t.Errorf("got %v, want 350x100", size)
	}
}

func TestDragUsesRawPosition(t *testing.T) {
	drg := Drag{}.Begin(nt.Point{X: 0, Y: 0}, nt.Size{Width: 200, Height: 200})

	drg.Move(nt.Point{X: 500, Y: 500})
	drg.Move(nt.Point{X: -50, Y: 0})
	size, _ := drg.Move(nt.Point{X: 20, Y: 30})
	if size != (nt.Size{Width: 220, Height: 230}) {
		t.Errorf("got %v, want 220x230", size)
	}
}

func TestEndWithoutBegin(t *testing.T) {
	drg := Drag{}.End()

	if drg.State() != Idle {
		t.Errorf("got %v, want idle", drg.State())
	}
	if _, ok := drg.Move(nt.Point{X: 5, Y: 5}); ok {
		t.Error("expected no move when idle")
	}
}

func TestEndResets(t *testing.T) {
	drg := Drag{}.Begin(nt.Point{X: 1, Y: 1}, nt.Size{Width: 400, Height: 400})
	if drg.State() != Dragging {
		t.Fatalf("got %v, want dragging", drg.State())
	}

	drg = drg.End()
	if drg.State() != Idle {
		t.Errorf("got %v, want idle", drg.State())
	}
	if drg != (Drag{}) {
		t.Errorf("expected zero drag after end, got %#v", drg)
	}
}
