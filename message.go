package gpsdio

import (
	"errors"
	"io"
	"iter"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/schema"
)

// Message is one report: field names mapped to values. No field is required;
// "type", when present, selects the schema used to interpret the others.
type Message map[string]any

// Type returns the message type.
func (m Message) Type() (int, bool) {
	return schema.MessageType(m)
}

// Source produces messages. Next returns io.EOF once exhausted.
type Source interface {
	Next() (Message, error)
}

// Sink consumes messages.
type Sink interface {
	Write(msg Message) error
}

// Mode is the direction a stream is opened in.
type Mode = mode.Mode

// Stream modes.
const (
	Read   = mode.Read
	Write  = mode.Write
	Append = mode.Append
)

// ParseMode converts "r", "w" or "a" to a Mode.
func ParseMode(s string) (Mode, error) {
	return mode.Parse(s)
}

// Messages iterates over src until it is exhausted. The first error, a
// per-record failure included, is yielded last. Callers that want to resume
// past a bad record call src.Next directly.
func Messages(src Source) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		for {
			msg, err := src.Next()
			if errors.Is(err, io.EOF) && !gpserr.IsCodec(err) {
				return
			}
			if !yield(msg, err) || err != nil {
				return
			}
		}
	}
}

// Copy writes every message from src to dst and returns how many were
// written. It stops at the first error.
func Copy(dst Sink, src Source) (int64, error) {
	var n int64
	for {
		msg, err := src.Next()
		if errors.Is(err, io.EOF) && !gpserr.IsCodec(err) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := dst.Write(msg); err != nil {
			return n, err
		}
		n++
	}
}
