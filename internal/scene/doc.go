// Package scene holds the state of a drifting line graph.
//
// A [Scene] owns three parallel pieces of data:
//
//   - Points: vertex positions in normalized device coordinates
//   - Velocities: one per point, sign-flipped on boundary reflection
//   - Edges: fixed index pairs naming the segments to draw
//
// Points and edges come from a named [Topology] and never change shape after
// construction. Velocities are seeded once with [Scene.Randomize].
//
// # Example
//
//	s, _ := scene.FromTopology("default")
//	s.Randomize(rand.New(rand.NewPCG(seed, seed)))
//
// # Thread Safety
//
// Scene instances are NOT thread-safe. A scene is owned by exactly one frame
// loop, which is the only code that mutates it.
package scene
