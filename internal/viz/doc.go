// Package viz renders a running Game of Life in the terminal.
//
//   - [Canvas]: braille pixel canvas, usable as an anim.Surface
//   - [Model]: Bubble Tea model whose ticks schedule animation frames
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the pattern or a fresh random population
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// Frames are recorded while G is active and written to lifesim.gif in the
// current directory when recording stops.
package viz
