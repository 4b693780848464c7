// Package frame drives a scene one frame at a time.
//
// A [Loop] owns the scene it animates. Each [Loop.Tick] samples the clock,
// refreshes the frame-rate estimate, steps the motion integrator with a
// timestep derived from that estimate, assembles the line segments into a
// reused buffer and hands them to a [Renderer].
//
// Hosts that own their own frame callback (a window or terminal program)
// call Tick from that callback. Headless runs use [Loop.Run], which repeats
// Tick until the context is cancelled or a frame budget is spent:
//
//	loop, _ := frame.New(s, motion.NewIntegrator(motion.Discard), r, frame.DefaultConfig())
//	result, err := loop.Run(ctx, frame.RunConfig{MaxFrames: 600})
//
// # Thread Safety
//
// Loop instances are NOT thread-safe. Tick and Run must be called from one
// goroutine.
package frame
