package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(8, 0)

	if !c.Lit(0, 0) || !c.Lit(7, 7) {
		t.Error("expected set pixels to be lit")
	}
	if c.Lit(1, 0) {
		t.Error("neighbouring pixel should stay dark")
	}

	c.Clear()
	if c.Lit(0, 0) {
		t.Error("clear should reset pixels")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	rows := strings.Split(c.String(), "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != "⠀⠀⠀" {
		t.Errorf("expected blank braille row, got %q", rows[0])
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if got := []rune(c.String())[0]; got != 0x2800|0x1|0x80 {
		t.Errorf("unexpected cell %U", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 0)
	for x := 0; x < 20; x++ {
		if !c.Lit(x, 0) {
			t.Errorf("pixel %d not lit", x)
		}
	}
	if c.Lit(0, 1) {
		t.Error("row below should stay dark")
	}
}

func TestCanvasProjectCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	tests := []struct {
		x, y   float32
		px, py int
	}{
		{-1, 1, 0, 0},
		{1, -1, 19, 19},
		{1, 1, 19, 0},
		{0, 0, 10, 10},
	}
	for _, tt := range tests {
		px, py := c.Project(tt.x, tt.y)
		if px != tt.px || py != tt.py {
			t.Errorf("project(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, px, py, tt.px, tt.py)
		}
	}
}

func TestCanvasDrawSegmentsReplacesFrame(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawSegments([]float32{-1, 1, 1, 1})
	if !c.Lit(5, 0) {
		t.Error("top edge should be drawn")
	}

	c.DrawSegments([]float32{-1, -1, 1, -1})
	if c.Lit(5, 0) {
		t.Error("previous frame should be cleared")
	}
	if !c.Lit(5, 19) {
		t.Error("bottom edge should be drawn")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Resize(0, -2)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("expected clamp to 1x1, got %dx%d", c.Width, c.Height)
	}
}
