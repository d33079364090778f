// Package tui hosts the RSVP reader in a Bubble Tea program.
//
// The engine stays pure; this package owns the recurring timer and
// re-arms it whenever playback starts or the pace changes. Each armed
// tick carries a generation number and stale generations are ignored, so
// overlapping timers can never coexist.
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/→   - Skip back / forward 10 words
//	+/-   - Pace up / down 50 wpm
//	R     - Reload text from the clipboard
//	?     - Toggle help
//	Q     - Quit
package tui
