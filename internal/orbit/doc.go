// Package orbit provides the body model for the orbit race.
//
// A [Body] revolves around a shared center at a scalar angular speed:
//
//   - [NewBody]: creates a body parked at the top of its ring
//   - [Body.Advance]: moves the body one tick and credits completed laps
//   - [Body.Progress]: cumulative angle used to rank racers
//   - [Color]: typed RGB value owned by each body
//
// # Angles
//
// Angles are in radians and live in [StartAngle, LapEnd). Zero points to the
// right of the center and positive angles turn clockwise on a screen whose y
// axis grows downward, so StartAngle (-π/2) is the top of the ring.
package orbit
