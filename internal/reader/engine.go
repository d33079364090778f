package reader

import (
	"fmt"
	"time"
)

// Pace bounds in words per minute. The UI adjusts pace in PaceStep
// increments and seeks in SkipSize jumps.
const (
	MinPace     = 50
	MaxPace     = 1000
	PaceStep    = 50
	DefaultPace = 300
	SkipSize    = 10
)

// Engine holds one reading session. The zero value is unusable; construct
// with New.
type Engine struct {
	tokens  []string
	cursor  int
	running bool
	pace    int
}

// New returns an empty engine at the given pace, clamped into
// [MinPace, MaxPace].
func New(pace int) *Engine {
	return &Engine{pace: clampPace(pace)}
}

// Load replaces the token sequence and rewinds the cursor. Playback stops
// either way, so no armed timer keeps advancing across a reload. An empty
// sequence is reported as ErrNoTokens and the previous sequence stays
// loaded; the caller decides whether to notify the user.
func (e *Engine) Load(tokens []string) error {
	e.running = false
	if len(tokens) == 0 {
		return ErrNoTokens
	}
	e.tokens = tokens
	e.cursor = 0
	return nil
}

// TogglePlay flips between Playing and Paused and reports whether the
// engine is now running. Toggling while paused on the last word restarts
// from the beginning. With nothing loaded it is a no-op.
func (e *Engine) TogglePlay() bool {
	if len(e.tokens) == 0 {
		return false
	}
	if !e.running && e.cursor == len(e.tokens)-1 {
		e.cursor = 0
		e.running = true
		return true
	}
	e.running = !e.running
	return e.running
}

// Advance moves the cursor one word forward. It is driven by the host
// timer, never by user input, and is the only way the cursor increases
// during autoplay. Reaching the last word ends the pass: running drops to
// false and the cursor stays put.
func (e *Engine) Advance() {
	if len(e.tokens) == 0 {
		return
	}
	if e.cursor >= len(e.tokens)-1 {
		e.running = false
		return
	}
	e.cursor++
}

// Seek moves the cursor by delta, clamped into the loaded sequence. It is
// legal in any state and neither starts nor stops playback.
func (e *Engine) Seek(delta int) {
	if len(e.tokens) == 0 {
		return
	}
	e.cursor = clamp(e.cursor+delta, 0, len(e.tokens)-1)
}

// SetPace clamps wpm into [MinPace, MaxPace]. The cursor is untouched;
// a playing host re-arms its timer with the new Interval.
func (e *Engine) SetPace(wpm int) {
	e.pace = clampPace(wpm)
}

// Pace reports the current pace in words per minute.
func (e *Engine) Pace() int { return e.pace }

// Running reports whether a pass is in progress.
func (e *Engine) Running() bool { return e.running }

// Interval is the delay between automatic advances at the current pace.
func (e *Engine) Interval() time.Duration {
	return time.Minute / time.Duration(e.pace)
}

// Snapshot is the read-only view the host renders each tick.
type Snapshot struct {
	Word      string
	Cursor    int
	Total     int
	Running   bool
	Pace      int
	Progress  float64
	WordsLeft int
	Remaining time.Duration
}

// Snapshot derives the current presentation state. Progress is 0 when
// fewer than two tokens are loaded.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{Cursor: e.cursor, Total: len(e.tokens), Running: e.running, Pace: e.pace}
	if len(e.tokens) == 0 {
		return s
	}
	s.Word = e.tokens[e.cursor]
	if len(e.tokens) > 1 {
		s.Progress = float64(e.cursor) / float64(len(e.tokens)-1)
	}
	s.WordsLeft = len(e.tokens) - e.cursor - 1
	s.Remaining = time.Duration(float64(s.WordsLeft) / float64(e.pace) * float64(time.Minute))
	return s
}

// Status is the user-facing playback label.
func (s Snapshot) Status() string {
	switch {
	case s.Total == 0:
		return "Empty"
	case s.Running:
		return "Playing"
	default:
		return "Paused"
	}
}

// ProgressLabel formats the 1-based position as "current/total (percent%)".
func (s Snapshot) ProgressLabel() string {
	if s.Total == 0 {
		return "0/0 (0%)"
	}
	return fmt.Sprintf("%d/%d (%.0f%%)", s.Cursor+1, s.Total, s.Progress*100)
}

// FormatRemaining renders a duration as M:SS.
func FormatRemaining(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func clampPace(wpm int) int {
	return clamp(wpm, MinPace, MaxPace)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
