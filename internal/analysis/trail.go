package analysis

import (
	"strings"

	"github.com/finnegancarroll/graphdrift/internal/frame"
)

// TrailToASCII draws the path of one vertex over a recorded run. The view is
// fixed to the [-1, 1] square so trails of different vertices line up.
func TrailToASCII(records []frame.Record, vertex, width, height int) string {
	if len(records) == 0 || width < 2 || height < 2 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Axes
	midCol := (width - 1) / 2
	midRow := (height - 1) / 2
	for row := 0; row < height; row++ {
		canvas[row][midCol] = '│'
	}
	for col := 0; col < width; col++ {
		canvas[midRow][col] = '─'
	}
	canvas[midRow][midCol] = '┼'

	for _, rec := range records {
		if 2*vertex+1 >= len(rec.Positions) {
			continue
		}
		x, y := rec.Positions[2*vertex], rec.Positions[2*vertex+1]
		col := int((x + 1) / 2 * float64(width-1))
		row := height - 1 - int((y+1)/2*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
