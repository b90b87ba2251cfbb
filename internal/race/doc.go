// Package race implements the orbit race state machine.
//
// A [Race] owns its bodies and moves through three phases:
//
//	Idle --Start--> Running --(winner)--> Finished --Reset--> Idle
//
// Running can also be Reset straight back to Idle. Each [Race.Tick] while
// Running perturbs speeds every SpeedChangeInterval ticks, applies the rubber
// band, advances every body in index order and then checks for a winner.
// When several bodies reach LapsToWin on the same tick the lowest index wins.
//
// # Thread Safety
//
// Race is NOT thread-safe. It is meant to be driven by a single frame loop;
// input commands must be dispatched from that same loop.
package race
