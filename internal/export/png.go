package export

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
)

// SegmentsToImage rasterizes segments with anti-aliased strokes.
func SegmentsToImage(segments []float32, width, height int, style Style) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(style.Background)
	dc.Clear()

	dc.SetColor(style.Line)
	dc.SetLineWidth(style.LineWidth)
	dc.SetLineCap(gg.LineCapRound)
	for i := 0; i+3 < len(segments); i += 4 {
		x0, y0 := toPixels(segments[i], segments[i+1], width, height)
		x1, y1 := toPixels(segments[i+2], segments[i+3], width, height)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	return dc.Image()
}

func WritePNG(w io.Writer, segments []float32, width, height int, style Style) error {
	return png.Encode(w, SegmentsToImage(segments, width, height, style))
}
