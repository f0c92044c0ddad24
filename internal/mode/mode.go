// Package mode defines the I/O modes a stream can be opened with.
package mode

import (
	"fmt"
	"strings"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// Mode is the direction a stream is opened in. It is fixed for the lifetime
// of the stream.
type Mode int

const (
	// Read opens a stream for reading messages.
	Read Mode = iota
	// Write opens a stream for writing messages, truncating any existing data.
	Write
	// Append opens a stream for writing messages after any existing data.
	Append
)

// Parse converts a mode string ("r", "w", "a" or the long forms) to a Mode.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "read", "":
		return Read, nil
	case "w", "write":
		return Write, nil
	case "a", "append":
		return Append, nil
	default:
		return Read, gpserr.Configuration("unknown mode %q", s)
	}
}

// CanRead reports whether m permits reading.
func (m Mode) CanRead() bool {
	return m == Read
}

// CanWrite reports whether m permits writing.
func (m Mode) CanWrite() bool {
	return m == Write || m == Append
}

// String returns the short form accepted by Parse.
func (m Mode) String() string {
	switch m {
	case Read:
		return "r"
	case Write:
		return "w"
	case Append:
		return "a"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
