package export

import (
	"fmt"
	"strings"
)

// SegmentsToSVG renders x0, y0, x1, y1 segments as an SVG document.
func SegmentsToSVG(segments []float32, width, height int, style Style) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke="%s" stroke-width="%.2f" stroke-linecap="round">
`, width, height, width, height, hexColor(style.Background), hexColor(style.Line), style.LineWidth))

	for i := 0; i+3 < len(segments); i += 4 {
		x0, y0 := toPixels(segments[i], segments[i+1], width, height)
		x1, y1 := toPixels(segments[i+2], segments[i+3], width, height)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y1))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
