// Package viz draws the line graph in a terminal.
//
// The terminal view is a Bubble Tea program:
//
//   - [Model]: steps a frame loop on every tick and renders its segments
//   - [Canvas]: braille-based pixel canvas, 2x4 dots per cell
//   - Theme selection with 3 built-in colour schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle colour themes
//	Q     - Quit
package viz
