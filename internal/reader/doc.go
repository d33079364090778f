// Package reader implements the RSVP playback state machine.
//
// An [Engine] owns one reading session: the loaded token sequence, the
// cursor, the running flag, and the pace in words per minute. It has
// three states:
//
//   - Empty: no tokens loaded
//   - Paused: tokens loaded, cursor valid, not advancing
//   - Playing: a host timer is armed and calling [Engine.Advance]
//
// The engine never owns a timer. The host arms a recurring tick of
// [Engine.Interval] whenever playback starts or the pace changes, and
// drops the tick when playback stops. All transitions run synchronously
// on the host's event loop; the engine is not safe for concurrent
// callers.
//
// # Derived state
//
// [Engine.Snapshot] exposes the read-only view a UI renders each tick:
// current word, progress fraction, words remaining, and an estimated
// time remaining at the current pace.
package reader
