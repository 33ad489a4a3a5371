// Package wall implements the folding-wall kinematics core.
//
// A wall is an image cut into vertical strips, each hinged about its own
// center. Every frame the host supplies one [InputSample]; each strip's
// [StripState] relaxes toward a target rotation, lateral position, depth
// offset and tilt derived from that sample:
//
//   - [Generate]: flat strip layout and texture windows for a [Config]
//   - [Update]: per-strip kinematic step
//   - [Wall]: owns layouts and states, ticks every strip with one sample
//
// # Example
//
//	w, err := wall.New(wall.Config{StripCount: 24, Width: 8, Height: 4, MaxFoldAngle: 1.2})
//	if err != nil {
//		return err
//	}
//	w.Tick(wall.InputSample{PointerX: 0.4, Elapsed: t, Delta: dt})
//	for _, s := range w.Strips() {
//		draw(s)
//	}
//
// # Thread Safety
//
// A Wall is NOT safe for concurrent use. Within a single Tick, strips may be
// updated on several goroutines (see [Wall.SetWorkers]); each strip's state is
// only ever touched by one of them.
package wall
