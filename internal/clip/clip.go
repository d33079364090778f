// Package clip acquires reader input from the system clipboard.
package clip

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmpty indicates the clipboard holds no readable text.
var ErrEmpty = errors.New("clip: clipboard is empty")

// Read returns the current clipboard contents. Whitespace-only content
// counts as empty. A failure of the host clipboard itself is returned
// as-is for the caller to report as a generic notice.
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}
