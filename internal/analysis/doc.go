// Package analysis inspects recorded vertex trajectories.
//
//   - [PowerSpectrum]: windowed magnitude spectrum of a trajectory
//   - [DominantPeriod]: strongest oscillation period, in frames
//   - [BouncePeriods]: per-vertex bounce periods of a recorded run
//   - [TrailToASCII]: a vertex's path drawn inside the [-1, 1] square
//
// A vertex moving at constant speed between the walls traces a triangle
// wave, so its spectrum peaks at the bounce period:
//
//	periods := analysis.BouncePeriods(records)
//	for _, p := range periods {
//	    fmt.Println(p.Vertex, p.XFrames, p.YFrames)
//	}
package analysis
