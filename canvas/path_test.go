package canvas

import "testing"

func TestPathCloseReturnsToSubpathStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.LineTo(30, 20)
	p.LineTo(30, 40)
	p.Close()

	if p.current != p.start {
		t.Errorf("current %v != subpath start %v after Close", p.current, p.start)
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	if p.IsEmpty() {
		t.Fatal("path empty after Rectangle")
	}
	p.Clear()
	if !p.IsEmpty() {
		t.Error("path not empty after Clear")
	}
}

func TestRectangleElements(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 3, 4)

	elements := p.Elements()
	if len(elements) != 5 {
		t.Fatalf("rectangle has %d elements, want move + 3 lines + close", len(elements))
	}
	if _, ok := elements[0].(MoveTo); !ok {
		t.Error("rectangle does not start with MoveTo")
	}
	if _, ok := elements[4].(Close); !ok {
		t.Error("rectangle does not end with Close")
	}
}

func TestCircleIsClosedCurve(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 10)

	elements := p.Elements()
	last := elements[len(elements)-1]
	if _, ok := last.(Close); !ok {
		t.Error("circle path is not closed")
	}
	curves := 0
	for _, e := range elements {
		if _, ok := e.(CubicTo); ok {
			curves++
		}
	}
	if curves != 4 {
		t.Errorf("circle uses %d cubic segments, want 4", curves)
	}
}

func TestRoundedRectangleClampsRadius(t *testing.T) {
	p := NewPath()
	// Radius larger than half the short side must not fold the path.
	p.RoundedRectangle(0, 0, 20, 10, 50)
	if p.IsEmpty() {
		t.Fatal("no elements generated")
	}
}
