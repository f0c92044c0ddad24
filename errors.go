package gpsdio

import (
	"errors"

	"github.com/SkyTruth/gpsdio/internal/compress"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrConfiguration indicates an unknown driver or compression name, an
	// undetectable format or a schema referencing undefined fields.
	ErrConfiguration = gpserr.ErrConfiguration

	// ErrDriverNotFound indicates a driver or compression that is neither
	// registered nor detectable. It is a configuration error.
	ErrDriverNotFound = gpserr.ErrDriverNotFound

	// ErrStreamState indicates an operation the stream's mode or state
	// doesn't allow.
	ErrStreamState = gpserr.ErrStreamState

	// ErrNotReadable is returned by Next on a stream opened for writing.
	ErrNotReadable = gpserr.ErrNotReadable

	// ErrNotWritable is returned by Write on a stream opened for reading.
	ErrNotWritable = gpserr.ErrNotWritable

	// ErrClosed is returned by any operation on a closed stream.
	ErrClosed = gpserr.ErrClosed

	// ErrCodec matches every per-record decode, encode and coercion failure.
	ErrCodec = gpserr.ErrCodec

	// ErrNotFound indicates a target opened for reading doesn't exist.
	ErrNotFound = target.ErrNotFound

	// ErrUnsupportedMode indicates a backend that can't open a target in the
	// requested mode, e.g. appending to a GCS object.
	ErrUnsupportedMode = target.ErrUnsupportedMode

	// ErrReadOnlyCompression indicates writing with a compression that only
	// supports reading.
	ErrReadOnlyCompression = compress.ErrUnsupportedMode

	// ErrInteractiveInput indicates decompressing a terminal.
	ErrInteractiveInput = compress.ErrInteractiveInput

	// ErrOpenerClosed indicates the Opener has been closed.
	ErrOpenerClosed = errors.New("gpsdio: opener closed")
)

// CodecError describes a per-record failure: a record that could not be
// decoded or encoded, or a field that could not be coerced.
type CodecError = gpserr.CodecError

// ErrorClass is the broad category of an error.
type ErrorClass = gpserr.Class

// Error classes.
const (
	ClassUnknown       = gpserr.ClassUnknown
	ClassConfiguration = gpserr.ClassConfiguration
	ClassStreamState   = gpserr.ClassStreamState
	ClassCodec         = gpserr.ClassCodec
	ClassEndOfStream   = gpserr.ClassEndOfStream
)

// Classify returns the class of err.
func Classify(err error) ErrorClass {
	return gpserr.ClassOf(err)
}
