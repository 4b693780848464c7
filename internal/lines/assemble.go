// Package lines turns a scene's points and edges into vertex data for a
// "draw disconnected line segments" primitive.
package lines

import "github.com/finnegancarroll/graphdrift/internal/scene"

// FloatsPerEdge is two endpoints of two coordinates each.
const FloatsPerEdge = 4

// Assemble returns x0, y0, x1, y1 for every edge, in edge order. A vertex
// shared by several edges is emitted once per edge.
func Assemble(points []scene.Point, edges []scene.Edge) []float32 {
	return AppendSegments(make([]float32, 0, FloatsPerEdge*len(edges)), points, edges)
}

// AppendSegments appends the segment data to dst and returns the extended
// slice. Passing dst[:0] reuses its backing array.
func AppendSegments(dst []float32, points []scene.Point, edges []scene.Edge) []float32 {
	for _, e := range edges {
		a, b := points[e.A], points[e.B]
		dst = append(dst, a.X(), a.Y(), b.X(), b.Y())
	}
	return dst
}

// Buffer is a segment slice overwritten in place every frame.
type Buffer struct {
	data []float32
}

func NewBuffer(edges int) *Buffer {
	return &Buffer{data: make([]float32, 0, FloatsPerEdge*edges)}
}

// Fill overwrites the buffer with the scene's current segments. The returned
// slice is only valid until the next call.
func (b *Buffer) Fill(s *scene.Scene) []float32 {
	b.data = AppendSegments(b.data[:0], s.Points, s.Edges)
	return b.data
}

// Vertices is the number of line endpoints in a segment slice.
func Vertices(segments []float32) int {
	return len(segments) / 2
}
