// Package viz draws an orbit race in the terminal with Bubble Tea.
//
//   - [Model]: the Bubble Tea model; every frame tick advances the race once
//   - [Canvas]: braille pixel canvas with per-cell colors
//   - [Theme]: background gradient and panel colors
//
// # Key Bindings
//
//	Enter - Start the race, or reset it once a planet has won
//	R     - Reset at any time
//	1-9   - Boost that planet
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
