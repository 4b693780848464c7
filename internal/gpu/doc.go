// Package gpu draws line segments through an OpenGL pipeline.
//
// The pipeline has two shader stages (position passthrough and a fixed
// colour), one vertex attribute (a_position: two tightly packed floats, not
// normalized) and draws with GL_LINES. One vertex buffer is allocated and
// overwritten every frame.
//
// The window and GL context come from raylib. Build with the raylib tag to
// enable it:
//
//	go build -tags raylib ./cmd/graphdrift
//
// Without the tag [Run] always fails with [ErrContextUnavailable].
package gpu
