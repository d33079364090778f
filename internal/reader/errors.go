package reader

import "errors"

// Domain errors for playback operations.
var (
	// ErrNoTokens indicates acquired text produced zero tokens; the host
	// shows a "nothing to read" notice instead of failing.
	ErrNoTokens = errors.New("reader: nothing to read")
)
