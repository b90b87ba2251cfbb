package orbit

import "math"

const (
	// StartAngle is where every body begins a lap: the top of its ring.
	StartAngle = -math.Pi / 2

	// LapEnd is one full turn past StartAngle.
	LapEnd = 2*math.Pi - math.Pi/2

	// wrapTolerance absorbs rounding so that a body sitting exactly one
	// step short of LapEnd wraps on that step.
	wrapTolerance = 1e-9
)

type Body struct {
	Distance  float64
	Angle     float64
	Speed     float64
	BaseSpeed float64
	Size      float64
	Color     Color
	Orbits    int
}

func NewBody(distance, speed, size float64, color Color) Body {
	return Body{
		Distance:  distance,
		Angle:     StartAngle,
		Speed:     speed,
		BaseSpeed: speed,
		Size:      size,
		Color:     color,
	}
}

// Progress is the total angle travelled: Angle + 2π·Orbits.
func (b *Body) Progress() float64 {
	return b.Angle + 2*math.Pi*float64(b.Orbits)
}

// Advance moves the body by its speed and reports whether a lap was completed.
// The angle snaps back to StartAngle on a wrap and any overshoot is dropped,
// so at most one lap is credited per call however large the speed is.
func (b *Body) Advance() bool {
	b.Angle += b.Speed
	if b.Angle >= LapEnd-wrapTolerance {
		b.Angle = StartAngle
		b.Orbits++
		return true
	}
	return false
}

// Reset puts the body back on the start line at its base speed.
func (b *Body) Reset() {
	b.Angle = StartAngle
	b.Orbits = 0
	b.Speed = b.BaseSpeed
}

// Position projects the body onto a plane centered at (cx, cy).
func (b *Body) Position(cx, cy, scale float64) (float64, float64) {
	r := b.Distance * scale
	return cx + math.Cos(b.Angle)*r, cy + math.Sin(b.Angle)*r
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
