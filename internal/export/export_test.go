package export

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSegmentsToSVG(t *testing.T) {
	style := DefaultStyle()
	svg := SegmentsToSVG([]float32{-1, 1, 1, -1, 0, 0, 1, 0}, 200, 100, style)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected a complete SVG document")
	}
	if n := strings.Count(svg, "<line "); n != 2 {
		t.Errorf("expected 2 lines, got %d", n)
	}
	if !strings.Contains(svg, `x1="0.0" y1="0.0" x2="200.0" y2="100.0"`) {
		t.Errorf("diagonal not mapped to corners:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#ffffff"`) || !strings.Contains(svg, `stroke="#000000"`) {
		t.Error("style colours missing")
	}
}

func TestSegmentsToImage(t *testing.T) {
	style := Style{
		Line:       color.RGBA{255, 0, 0, 255},
		Background: color.RGBA{0, 0, 255, 255},
		LineWidth:  4,
	}
	img := SegmentsToImage([]float32{-1, 0, 1, 0}, 64, 64, style)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("unexpected bounds %v", b)
	}

	r, _, bl, _ := img.At(32, 32).RGBA()
	if r>>8 != 255 || bl>>8 != 0 {
		t.Errorf("expected line colour at centre, got r=%d b=%d", r>>8, bl>>8)
	}
	r, _, bl, _ = img.At(32, 2).RGBA()
	if r>>8 != 0 || bl>>8 != 255 {
		t.Errorf("expected background away from the line, got r=%d b=%d", r>>8, bl>>8)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	segments := []float32{-0.5, -0.5, 0.5, 0.5}

	svgPath := filepath.Join(dir, "frame.svg")
	if err := WriteFile(svgPath, segments, 32, 32, DefaultStyle()); err != nil {
		t.Fatalf("svg write failed: %v", err)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil || !strings.Contains(string(data), "<line ") {
		t.Errorf("svg file missing line: %v", err)
	}

	pngPath := filepath.Join(dir, "frame.PNG")
	if err := WriteFile(pngPath, segments, 32, 32, DefaultStyle()); err != nil {
		t.Fatalf("png write failed: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("png not decodable: %v", err)
	}

	if err := WriteFile(filepath.Join(dir, "frame.gif"), segments, 32, 32, DefaultStyle()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
