package export

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("export: unknown snapshot format")

// Style colours a snapshot.
type Style struct {
	Line       color.RGBA
	Background color.RGBA
	LineWidth  float64
}

func DefaultStyle() Style {
	return Style{
		Line:       color.RGBA{0, 0, 0, 255},
		Background: color.RGBA{255, 255, 255, 255},
		LineWidth:  1.5,
	}
}

// toPixels maps normalized device coordinates (y up) to image pixels.
func toPixels(x, y float32, width, height int) (float64, float64) {
	return float64(x+1) / 2 * float64(width), float64(1-y) / 2 * float64(height)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteFile writes segments as SVG or PNG, picked by the path extension.
func WriteFile(path string, segments []float32, width, height int, style Style) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if ext == ".svg" {
		_, err = file.WriteString(SegmentsToSVG(segments, width, height, style))
		return err
	}
	return WritePNG(file, segments, width, height, style)
}
