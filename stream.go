package gpsdio

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio/internal/compress"
	"github.com/SkyTruth/gpsdio/internal/driver"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
	"github.com/SkyTruth/gpsdio/internal/schema"
	"github.com/SkyTruth/gpsdio/internal/stats"
)

// Compile-time checks that Stream is a Source and a Sink.
var (
	_ Source = (*Stream)(nil)
	_ Sink   = (*Stream)(nil)
)

// StreamStats counts what a stream has done so far.
type StreamStats struct {
	Read     int64
	Written  int64
	Skipped  int64
	Failures int64
}

// Stream reads or writes messages through a container driver, an optional
// compression layer and a byte handle. Its mode is fixed when it is opened.
// A Stream is not safe for concurrent use.
type Stream struct {
	name string
	mode Mode

	reader  driver.Reader
	writer  driver.Writer
	closers []io.Closer // compression layer, then the handle

	schema       *schema.Registry
	convert      bool
	skipFailures bool

	logger *zap.Logger
	stats  stats.Collector
	counts StreamStats
	closed bool
}

// newReadStream layers comp and drv over rc. rc is closed if layering fails.
func newReadStream(name string, rc io.ReadCloser, owned bool, comp compress.Driver, drv driver.Driver, cfg options) (*Stream, error) {
	s := newStream(name, Read, cfg)

	var r io.Reader = rc
	s.closers = append(s.closers, rc)
	if comp != nil {
		cr, err := comp.Reader(rc, cfg.compressionOptions)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("opening %s compression on %s: %w", comp.Name(), displayName(name), err)
		}
		r = cr
		s.closers = append([]io.Closer{cr}, s.closers...)
	}

	dr, err := drv.NewReader(r, cfg.codecOptions)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("opening %s reader on %s: %w", drv.Name(), displayName(name), err)
	}
	s.reader = dr

	s.opened(comp, drv, owned)
	return s, nil
}

// newWriteStream layers comp and drv over wc. wc is closed if layering fails.
func newWriteStream(name string, m Mode, wc io.WriteCloser, owned bool, comp compress.Driver, drv driver.Driver, cfg options) (*Stream, error) {
	s := newStream(name, m, cfg)

	var w io.Writer = wc
	s.closers = append(s.closers, wc)
	if comp != nil {
		cw, err := comp.Writer(wc, cfg.compressionOptions)
		if err != nil {
			wc.Close()
			return nil, fmt.Errorf("opening %s compression on %s: %w", comp.Name(), displayName(name), err)
		}
		w = cw
		s.closers = append([]io.Closer{cw}, s.closers...)
	}

	dw, err := drv.NewWriter(w, cfg.codecOptions)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("opening %s writer on %s: %w", drv.Name(), displayName(name), err)
	}
	s.writer = dw

	s.opened(comp, drv, owned)
	return s, nil
}

func newStream(name string, m Mode, cfg options) *Stream {
	return &Stream{
		name:         name,
		mode:         m,
		schema:       cfg.schema,
		convert:      cfg.convert,
		skipFailures: cfg.skipFailures,
		logger:       cfg.logger.Named("stream").With(zap.String("stream", displayName(name))),
		stats:        cfg.stats,
	}
}

func (s *Stream) opened(comp compress.Driver, drv driver.Driver, owned bool) {
	s.stats.IncCounter(stats.MetricStreamsOpened, 1)
	compression := NoCompression
	if comp != nil {
		compression = comp.Name()
	}
	s.logger.Debug("stream opened",
		zap.Stringer("mode", s.mode),
		zap.String("driver", drv.Name()),
		zap.String("compression", compression),
		zap.Bool("ownsHandle", owned),
		zap.Bool("convert", s.convert),
		zap.Bool("skipFailures", s.skipFailures),
	)
}

// Name returns the target or handle name the stream was opened on.
func (s *Stream) Name() string {
	return s.name
}

// Mode returns the mode the stream was opened in.
func (s *Stream) Mode() Mode {
	return s.mode
}

// Closed reports whether Close has been called.
func (s *Stream) Closed() bool {
	return s.closed
}

// Stats returns the stream's counters.
func (s *Stream) Stats() StreamStats {
	return s.counts
}

// Next returns the next message. At the end of the stream it returns io.EOF.
//
// A record that fails to decode or coerce is logged. It is then returned as
// a *CodecError, leaving the stream usable for further calls, or with
// WithSkipFailures dropped in favor of the following record. Other errors
// from the underlying handle are always returned.
func (s *Stream) Next() (Message, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.mode.CanRead() {
		return nil, ErrNotReadable
	}

	for {
		raw, err := s.reader.Read()
		if err == nil && s.convert {
			raw, err = s.schema.ImportMessage(raw)
		}
		switch {
		case err == nil:
			s.counts.Read++
			s.stats.IncCounter(stats.MetricMessagesRead, 1)
			return Message(raw), nil
		case gpserr.IsCodec(err):
			if !s.failed("read", err) {
				return nil, err
			}
		case errors.Is(err, io.EOF):
			return nil, io.EOF
		default:
			s.logger.Error("read failed", zap.Error(err))
			return nil, fmt.Errorf("reading %s: %w", displayName(s.name), err)
		}
	}
}

// Write writes msg. A message that fails to coerce or encode is logged and
// returned as a *CodecError, or dropped with WithSkipFailures.
func (s *Stream) Write(msg Message) error {
	if s.closed {
		return ErrClosed
	}
	if !s.mode.CanWrite() {
		return ErrNotWritable
	}

	out := map[string]any(msg)
	var err error
	if s.convert {
		out, err = s.schema.ExportMessage(msg)
	}
	if err == nil {
		err = s.writer.Write(out)
	}

	switch {
	case err == nil:
		s.counts.Written++
		s.stats.IncCounter(stats.MetricMessagesWritten, 1)
		return nil
	case gpserr.IsCodec(err):
		if s.failed("write", err) {
			return nil
		}
		return err
	default:
		s.logger.Error("write failed", zap.Error(err))
		return fmt.Errorf("writing %s: %w", displayName(s.name), err)
	}
}

// failed records a per-record failure and reports whether it was skipped.
func (s *Stream) failed(op string, err error) bool {
	s.counts.Failures++
	s.stats.IncCounter(stats.MetricFailures, 1)
	if !s.skipFailures {
		s.logger.Warn("record failed", zap.String("op", op), zap.Error(err))
		return false
	}
	s.counts.Skipped++
	s.stats.IncCounter(stats.MetricMessagesSkipped, 1)
	s.logger.Warn("skipping record", zap.String("op", op), zap.Error(err))
	return true
}

// All iterates over the remaining messages. See Messages.
func (s *Stream) All() iter.Seq2[Message, error] {
	return Messages(s)
}

// Close flushes and releases the driver, the compression layer and the
// handle, in that order. Closing a closed stream returns ErrClosed.
func (s *Stream) Close() error {
	if s.closed {
		return ErrClosed
	}

	var errs []error
	switch {
	case s.reader != nil:
		errs = append(errs, s.reader.Close())
	case s.writer != nil:
		errs = append(errs, s.writer.Close())
	}
	errs = append(errs, s.release())

	s.logger.Debug("stream closed",
		zap.Int64("read", s.counts.Read),
		zap.Int64("written", s.counts.Written),
		zap.Int64("skipped", s.counts.Skipped),
	)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("closing %s: %w", displayName(s.name), err)
	}
	return nil
}

// release marks the stream closed and closes the compression layer and the
// handle.
func (s *Stream) release() error {
	s.closed = true
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func displayName(name string) string {
	if name == "" {
		return "<handle>"
	}
	return name
}
