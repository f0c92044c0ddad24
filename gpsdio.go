// Package gpsdio reads and writes streams of AIS/GPS position messages.
//
// A stream layers a container driver (newline delimited JSON, MessagePack)
// over an optional compression (gzip, bzip2, zstd) over a byte handle: a
// local file, standard input/output, or an object in S3 or GCS. Drivers and
// compression are detected from the target's name unless given explicitly.
// Field values are coerced through the schema registry on the way in and
// out, so that e.g. timestamps are time.Time values in memory.
//
// Example usage:
//
//	src, err := gpsdio.Open(ctx, "positions.json.gz", gpsdio.Read)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	f, err := gpsdio.Filter(src, "mmsi == 366268061")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for msg, err := range gpsdio.Messages(f) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(msg["lat"], msg["lon"])
//	}
package gpsdio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio/internal/compress"
	"github.com/SkyTruth/gpsdio/internal/compress/bzip2compress"
	"github.com/SkyTruth/gpsdio/internal/compress/gzipcompress"
	"github.com/SkyTruth/gpsdio/internal/compress/zstdcompress"
	"github.com/SkyTruth/gpsdio/internal/driver"
	"github.com/SkyTruth/gpsdio/internal/driver/jsonldriver"
	"github.com/SkyTruth/gpsdio/internal/driver/msgpackdriver"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
	"github.com/SkyTruth/gpsdio/internal/schema"
	"github.com/SkyTruth/gpsdio/internal/stats"
	"github.com/SkyTruth/gpsdio/internal/target"
	"github.com/SkyTruth/gpsdio/internal/target/filetarget"
	"github.com/SkyTruth/gpsdio/internal/target/gcstarget"
	"github.com/SkyTruth/gpsdio/internal/target/memtarget"
	"github.com/SkyTruth/gpsdio/internal/target/s3target"
)

// Opener opens message streams. It holds the driver registries, the target
// backends and the defaults applied to every stream it opens.
// An Opener is safe for concurrent use by multiple goroutines; the streams
// it returns are not.
type Opener struct {
	cfg          options
	drivers      *driver.Registry
	compressions *compress.Registry

	mu       sync.Mutex
	backends map[string]target.Backend

	closed atomic.Bool
}

// New creates a new Opener with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Opener, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.schema == nil {
		cfg.schema = schema.Default()
	}
	if cfg.stats == nil {
		cfg.stats = stats.NewNoop()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	o := &Opener{
		cfg:          cfg,
		drivers:      defaultDrivers(),
		compressions: defaultCompressions(),
		backends:     make(map[string]target.Backend),
	}
	for _, d := range cfg.drivers {
		o.drivers.Register(d)
	}
	for _, c := range cfg.compressions {
		o.compressions.Register(c)
	}
	for scheme, b := range cfg.backends {
		o.backends[strings.ToLower(scheme)] = b
	}

	o.cfg.logger.Debug("opener initialized",
		zap.Strings("drivers", o.drivers.Names()),
		zap.Strings("compressions", o.compressions.Names()),
	)

	return o, nil
}

func defaultDrivers() *driver.Registry {
	r := driver.NewRegistry()
	r.Register(jsonldriver.New())
	r.Register(msgpackdriver.New())
	return r
}

func defaultCompressions() *compress.Registry {
	r := compress.NewRegistry()
	r.Register(gzipcompress.New())
	r.Register(bzip2compress.New())
	r.Register(zstdcompress.New())
	return r
}

var defaultOpener = sync.OnceValue(func() *Opener {
	o, err := New()
	if err != nil {
		panic(fmt.Sprintf("gpsdio: creating default opener: %v", err))
	}
	return o
})

// Open opens target with the default Opener. See Opener.Open.
func Open(ctx context.Context, target string, m Mode, opts ...Option) (*Stream, error) {
	return defaultOpener().Open(ctx, target, m, opts...)
}

// OpenReader reads messages from r with the default Opener.
// See Opener.OpenReader.
func OpenReader(r io.Reader, opts ...Option) (*Stream, error) {
	return defaultOpener().OpenReader(r, opts...)
}

// OpenWriter writes messages to w with the default Opener.
// See Opener.OpenWriter.
func OpenWriter(w io.Writer, m Mode, opts ...Option) (*Stream, error) {
	return defaultOpener().OpenWriter(w, m, opts...)
}

// Drivers returns the names of the registered container drivers.
func (o *Opener) Drivers() []string {
	return o.drivers.Names()
}

// Compressions returns the names of the registered compressions.
func (o *Opener) Compressions() []string {
	return o.compressions.Names()
}

// Schema returns the schema registry streams are coerced with.
func (o *Opener) Schema() *Schema {
	return o.cfg.schema
}

// Open opens a message stream on target in mode m.
//
// target is a local path, "-" for standard input (Read) or output (Write,
// Append), file://path, s3://bucket/key, gs://bucket/object, or mem://name
// when an in-memory backend was registered with WithBackend. Unless given
// with WithDriver and WithCompression, the driver and compression are
// detected from target's extensions, e.g. "day.json.gz".
func (o *Opener) Open(ctx context.Context, name string, m Mode, opts ...Option) (*Stream, error) {
	if o.closed.Load() {
		return nil, ErrOpenerClosed
	}
	cfg := o.config(opts)

	scheme, loc := target.Parse(name)
	comp, drv, err := o.resolve(loc, cfg)
	if err != nil {
		return nil, err
	}

	backend, err := o.backend(ctx, scheme)
	if err != nil {
		return nil, err
	}

	if m.CanRead() {
		rc, err := backend.OpenReader(ctx, loc)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		return newReadStream(name, rc, true, comp, drv, cfg)
	}

	if err := checkWritable(comp, name); err != nil {
		return nil, err
	}
	wc, err := backend.OpenWriter(ctx, loc, m)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return newWriteStream(name, m, wc, true, comp, drv, cfg)
}

// OpenReader reads messages from r, which remains owned by the caller and is
// not closed by the stream. Without WithDriver, the driver is detected from
// r's Name method, if it has one (as *os.File does).
func (o *Opener) OpenReader(r io.Reader, opts ...Option) (*Stream, error) {
	if o.closed.Load() {
		return nil, ErrOpenerClosed
	}
	cfg := o.config(opts)
	name := handleName(r)

	comp, drv, err := o.resolve(name, cfg)
	if err != nil {
		return nil, err
	}
	// io.NopCloser hides r's Fd from the compression layer.
	if comp != nil {
		if err := compress.CheckReadable(r); err != nil {
			return nil, fmt.Errorf("opening %s compression on %s: %w", comp.Name(), displayName(name), err)
		}
	}
	return newReadStream(name, io.NopCloser(r), false, comp, drv, cfg)
}

// OpenWriter writes messages to w in mode m (Write or Append). w remains
// owned by the caller and is not closed by the stream, but everything
// buffered is flushed to it when the stream is closed.
func (o *Opener) OpenWriter(w io.Writer, m Mode, opts ...Option) (*Stream, error) {
	if o.closed.Load() {
		return nil, ErrOpenerClosed
	}
	if !m.CanWrite() {
		return nil, gpserr.Configuration("OpenWriter requires a write mode, got %q", m)
	}
	cfg := o.config(opts)
	name := handleName(w)

	comp, drv, err := o.resolve(name, cfg)
	if err != nil {
		return nil, err
	}
	if err := checkWritable(comp, name); err != nil {
		return nil, err
	}
	return newWriteStream(name, m, nopWriteCloser{w}, false, comp, drv, cfg)
}

// Close releases the backends held by the Opener. Streams already open are
// unaffected, but must not be used once their backend is closed.
func (o *Opener) Close() error {
	if !o.closed.CompareAndSwap(false, true) {
		return ErrOpenerClosed
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for scheme, b := range o.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s backend: %w", scheme, err))
		}
	}
	clear(o.backends)
	return errors.Join(errs...)
}

// config merges per-call options over the Opener's.
func (o *Opener) config(opts []Option) options {
	cfg := o.cfg.clone()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.schema == nil {
		cfg.schema = schema.Default()
	}
	if cfg.stats == nil {
		cfg.stats = stats.NewNoop()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// resolve picks the compression and container drivers for a target named
// name. An undetectable compression means none; an undetectable driver is a
// configuration error. The driver is detected on the name with the
// compression extension removed.
func (o *Opener) resolve(name string, cfg options) (compress.Driver, driver.Driver, error) {
	var (
		comp compress.Driver
		ext  string
		err  error
	)
	switch cfg.compression {
	case "":
		if comp, ext, err = o.compressions.Detect(name); err != nil {
			comp, ext = nil, ""
		}
	case NoCompression:
	default:
		if comp, err = o.compressions.Resolve(cfg.compression); err != nil {
			return nil, nil, err
		}
		ext = matchedExtension(name, comp.Extensions())
	}

	if cfg.driver != "" {
		drv, err := o.drivers.Resolve(cfg.driver)
		if err != nil {
			return nil, nil, err
		}
		return comp, drv, nil
	}

	stripped := name
	if ext != "" {
		stripped = name[:len(name)-len(ext)-1]
	}
	drv, _, err := o.drivers.Detect(stripped)
	if err != nil {
		return nil, nil, fmt.Errorf("%w; name one with WithDriver", err)
	}
	return comp, drv, nil
}

// checkWritable fails for read-only compressions before any handle is
// opened, so existing targets are left untouched.
func checkWritable(comp compress.Driver, name string) error {
	if comp != nil && !compress.Writable(comp) {
		return fmt.Errorf("%w: %s can't write %s", ErrReadOnlyCompression, comp.Name(), displayName(name))
	}
	return nil
}

// matchedExtension returns the extension of exts that name ends with.
func matchedExtension(name string, exts []string) string {
	lower := strings.ToLower(name)
	best := ""
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" && strings.HasSuffix(lower, "."+ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best
}

// backend returns the backend serving scheme, creating it on first use.
func (o *Opener) backend(ctx context.Context, scheme string) (target.Backend, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed.Load() {
		return nil, ErrOpenerClosed
	}
	if b, ok := o.backends[scheme]; ok {
		return b, nil
	}

	var (
		b   target.Backend
		err error
	)
	switch scheme {
	case target.SchemeFile:
		b = filetarget.NewWithStdio(o.cfg.stdin, o.cfg.stdout)
	case s3target.Scheme:
		b, err = s3target.New(ctx, o.cfg.s3Options...)
	case gcstarget.Scheme:
		b, err = gcstarget.New(ctx)
	case memtarget.Scheme:
		b = memtarget.New()
	default:
		return nil, gpserr.Configuration("unsupported target scheme %q", scheme)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s backend: %w", scheme, err)
	}

	o.backends[scheme] = b
	return b, nil
}

// handleName returns the name of an open handle, if it exposes one.
func handleName(h any) string {
	if n, ok := h.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
