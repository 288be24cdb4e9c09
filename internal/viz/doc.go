// Package viz renders sorting traces in the terminal.
//
// The package implements a replay player using the Bubble Tea framework:
//
//   - [Player]: steps through one or more traces frame by frame
//   - [RenderBars]: draws a frame as a vertical bar chart colored by state
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Play/Pause
//	h/l   - Step backward/forward (pauses playback)
//	g/G   - Jump to first/last frame
//	+/-   - Change speed (1 to 10)
//	R     - Rewind and pause
//	T     - Cycle color themes
//	?     - Show help overlay
//
// At speed s the player advances one frame every 1000/(2s) milliseconds.
package viz
