// Package gpserr classifies the errors produced while opening, reading and
// writing message streams.
//
// Configuration and stream-state errors are never recoverable locally. Codec
// errors describe a single bad record and are the only class a stream may
// swallow when asked to skip failures. End of stream is io.EOF and is not an
// error class at all.
package gpserr

import (
	"errors"
	"fmt"
	"io"
)

// Class is the handling class of an error.
type Class int

const (
	// ClassUnknown covers errors outside the taxonomy, typically I/O errors
	// from the underlying handle.
	ClassUnknown Class = iota
	// ClassConfiguration is an unknown driver or an inconsistent schema.
	ClassConfiguration
	// ClassStreamState is an operation on the wrong mode or a closed stream.
	ClassStreamState
	// ClassCodec is a failure to decode, encode or coerce one record.
	ClassCodec
	// ClassEndOfStream is the terminal io.EOF signal.
	ClassEndOfStream
)

// String returns the string representation of Class.
func (c Class) String() string {
	switch c {
	case ClassConfiguration:
		return "configuration"
	case ClassStreamState:
		return "stream-state"
	case ClassCodec:
		return "codec"
	case ClassEndOfStream:
		return "end-of-stream"
	default:
		return "unknown"
	}
}

var (
	// ErrConfiguration is the root of all configuration errors.
	ErrConfiguration = errors.New("gpsdio: configuration error")

	// ErrDriverNotFound indicates an unknown or undetectable driver name.
	ErrDriverNotFound = fmt.Errorf("%w: driver not found", ErrConfiguration)

	// ErrStreamState is the root of all stream-state errors.
	ErrStreamState = errors.New("gpsdio: invalid stream state")

	// ErrNotReadable indicates a read on a stream opened for writing.
	ErrNotReadable = fmt.Errorf("%w: stream not open for reading", ErrStreamState)

	// ErrNotWritable indicates a write on a stream opened for reading.
	ErrNotWritable = fmt.Errorf("%w: stream not open for writing", ErrStreamState)

	// ErrClosed indicates an operation on a closed stream.
	ErrClosed = fmt.Errorf("%w: can't operate on a closed stream", ErrStreamState)

	// ErrCodec is the root of all per-record codec errors.
	ErrCodec = errors.New("gpsdio: codec error")
)

// CodecError describes a failure to decode, encode or coerce one record.
type CodecError struct {
	// Op is the operation that failed, e.g. "decode", "encode", "import".
	Op string
	// Field is the field being coerced, if the failure is field specific.
	Field string
	// Value is the raw value that could not be handled, if known.
	Value any
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gpsdio: %s field %q (value %v): %v", e.Op, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("gpsdio: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// Is makes every CodecError match ErrCodec.
func (e *CodecError) Is(target error) bool {
	return target == ErrCodec
}

// Codec wraps err as a record-level CodecError for op.
func Codec(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CodecError{Op: op, Err: err}
}

// Configuration wraps err as a configuration error.
func Configuration(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// ClassOf classifies err.
func ClassOf(err error) Class {
	switch {
	case err == nil:
		return ClassUnknown
	case errors.Is(err, ErrConfiguration):
		return ClassConfiguration
	case errors.Is(err, ErrStreamState):
		return ClassStreamState
	case errors.Is(err, ErrCodec):
		return ClassCodec
	case errors.Is(err, io.EOF):
		return ClassEndOfStream
	default:
		return ClassUnknown
	}
}

// IsCodec reports whether err is a per-record codec error.
func IsCodec(err error) bool {
	return ClassOf(err) == ClassCodec
}
