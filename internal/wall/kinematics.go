package wall

import "math"

// Relaxation rates in 1/s. Rotation reacts fastest, tilt slowest.
const (
	RotationRate = 10.0
	PositionRate = 8.0
	TiltRate     = 5.0
)

const (
	compressionGain = 1.5
	waveSpeed       = 0.5
	wavePhaseStep   = 0.1
	waveAmplitude   = 0.1
	waveFoldWeight  = 0.2
	depthPop        = 0.25
	tiltGain        = 0.2
)

// Direction is +1 for even strips and -1 for odd ones.
func Direction(index int) float64 {
	if index%2 == 0 {
		return 1
	}
	return -1
}

// Compression maps horizontal pointer distance from center to fold
// intensity in [0, 1]. It saturates once |pointerX| >= 2/3.
func Compression(pointerX float64) float64 {
	return math.Max(0, math.Min(1, math.Abs(pointerX)*compressionGain))
}

// Wave is the slow idle oscillation, phase shifted per strip.
func Wave(elapsed float64, index int) float64 {
	return math.Sin(elapsed*waveSpeed+float64(index)*wavePhaseStep) * waveAmplitude
}

// TargetAngle is the fold angle strip index is pulled toward.
func TargetAngle(index int, in InputSample, cfg Config) float64 {
	return Direction(index) * (cfg.MaxFoldAngle*Compression(in.PointerX) + Wave(in.Elapsed, index)*waveFoldWeight)
}

// Smoothing returns the lerp factor for a relaxation rate over dt.
func Smoothing(rate, dt float64) float64 {
	return math.Min(1, rate*dt)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Update advances one strip's state by one frame. Pointer and delta are
// clamped so a malformed sample can neither stall nor invert the motion.
func Update(layout StripLayout, state *StripState, in InputSample, cfg Config) {
	in = in.Sanitize()
	dir := Direction(layout.Index)

	state.RotationY = lerp(state.RotationY, TargetAngle(layout.Index, in, cfg), Smoothing(RotationRate, in.Delta))

	// Position targets follow the smoothed angle, not the raw target.
	abs := math.Abs(state.RotationY)
	targetX := layout.FlatCenterX * math.Cos(abs)
	targetZ := math.Sin(abs) * (cfg.StripWidth() * depthPop) * dir

	k := Smoothing(PositionRate, in.Delta)
	state.PositionX = lerp(state.PositionX, targetX, k)
	state.PositionZ = lerp(state.PositionZ, targetZ, k)

	state.TiltX = lerp(state.TiltX, clampUnit(in.PointerY)*tiltGain, Smoothing(TiltRate, in.Delta))
}

// TargetFor reports the pose a strip in the given state is relaxing toward
// for this sample, without mutating anything. Position targets are taken
// from the current rotation.
func TargetFor(layout StripLayout, state StripState, in InputSample, cfg Config) Target {
	in = in.Sanitize()
	dir := Direction(layout.Index)
	abs := math.Abs(state.RotationY)
	return Target{
		RotationY: TargetAngle(layout.Index, in, cfg),
		PositionX: layout.FlatCenterX * math.Cos(abs),
		PositionZ: math.Sin(abs) * (cfg.StripWidth() * depthPop) * dir,
		TiltX:     in.PointerY * tiltGain,
	}
}
