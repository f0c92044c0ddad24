package gpsdio

import (
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio/internal/compress"
	"github.com/SkyTruth/gpsdio/internal/driver"
	"github.com/SkyTruth/gpsdio/internal/schema"
	"github.com/SkyTruth/gpsdio/internal/stats"
	"github.com/SkyTruth/gpsdio/internal/target"
	"github.com/SkyTruth/gpsdio/internal/target/s3target"
)

// NoCompression disables compression detection when passed to
// WithCompression.
const NoCompression = "none"

type (
	// Driver is a container codec, e.g. newline delimited JSON.
	Driver = driver.Driver

	// DriverReader decodes records from a byte stream.
	DriverReader = driver.Reader

	// DriverWriter encodes records to a byte stream.
	DriverWriter = driver.Writer

	// CodecOptions are passed through to a container driver.
	CodecOptions = driver.Options

	// Compression wraps byte streams with a compression format.
	Compression = compress.Driver

	// CompressionOptions are passed through to a compression driver.
	CompressionOptions = compress.Options

	// Backend opens byte handles for one target scheme.
	Backend = target.Backend

	// Collector receives stream metrics.
	Collector = stats.Collector

	// Schema is a built schema registry.
	Schema = schema.Registry
)

// Option configures an Opener or a single Open call.
// Options given to Open override those given to New.
type Option interface {
	apply(*options)
}

// options holds the opener and stream configuration.
type options struct {
	compression        string
	driver             string
	codecOptions       driver.Options
	compressionOptions compress.Options
	convert            bool
	skipFailures       bool

	schema *schema.Registry
	stats  stats.Collector
	logger *zap.Logger

	drivers      []driver.Driver
	compressions []compress.Driver
	backends     map[string]target.Backend
	s3Options    []s3target.Option
	stdin        io.Reader
	stdout       io.Writer
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		convert: true,
		stats:   stats.NewNoop(),
		logger:  zap.NewNop(),
	}
}

// clone returns a copy of o that can be modified without affecting o.
func (o options) clone() options {
	o.codecOptions = maps.Clone(o.codecOptions)
	o.compressionOptions = maps.Clone(o.compressionOptions)
	o.backends = maps.Clone(o.backends)
	o.drivers = slices.Clone(o.drivers)
	o.compressions = slices.Clone(o.compressions)
	o.s3Options = slices.Clone(o.s3Options)
	return o
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithCompression names the compression to use, e.g. "GZIP".
// If not set, it is detected from the target's extension, defaulting to
// none. NoCompression forces uncompressed I/O.
func WithCompression(name string) Option {
	return optionFunc(func(o *options) {
		o.compression = name
	})
}

// WithDriver names the container driver to use, e.g. "NewlineJSON".
// If not set, it is detected from the target's extension.
func WithDriver(name string) Option {
	return optionFunc(func(o *options) {
		o.driver = name
	})
}

// WithCodecOptions sets options passed to the container driver.
func WithCodecOptions(opts CodecOptions) Option {
	return optionFunc(func(o *options) {
		o.codecOptions = maps.Clone(opts)
	})
}

// WithCompressionOptions sets options passed to the compression driver.
func WithCompressionOptions(opts CompressionOptions) Option {
	return optionFunc(func(o *options) {
		o.compressionOptions = maps.Clone(opts)
	})
}

// WithConvert enables or disables schema coercion of field values.
// Enabled by default.
func WithConvert(convert bool) Option {
	return optionFunc(func(o *options) {
		o.convert = convert
	})
}

// WithSkipFailures makes streams log and drop records that fail to decode,
// encode or coerce instead of returning the failure.
//
// MessagePack has no record separator: after a record fails to decode, the
// rest of a MessagePack stream can't be located and reads end with io.EOF.
func WithSkipFailures(skip bool) Option {
	return optionFunc(func(o *options) {
		o.skipFailures = skip
	})
}

// WithSchema sets the schema registry used for coercion.
// If not set, the built-in registry is used.
func WithSchema(s *Schema) Option {
	return optionFunc(func(o *options) {
		o.schema = s
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithDrivers registers additional container drivers. A driver with the name
// of a built-in one replaces it. Only honored by New.
func WithDrivers(ds ...Driver) Option {
	return optionFunc(func(o *options) {
		o.drivers = append(o.drivers, ds...)
	})
}

// WithCompressions registers additional compression drivers. Only honored
// by New.
func WithCompressions(cs ...Compression) Option {
	return optionFunc(func(o *options) {
		o.compressions = append(o.compressions, cs...)
	})
}

// WithBackend serves targets of the given scheme ("s3" for s3://...) from b.
// The Opener closes b when it is closed. Only honored by New.
func WithBackend(scheme string, b Backend) Option {
	return optionFunc(func(o *options) {
		if o.backends == nil {
			o.backends = make(map[string]target.Backend)
		}
		o.backends[scheme] = b
	})
}

// WithS3Region sets the AWS region of the s3:// backend. Only honored by New.
func WithS3Region(region string) Option {
	return optionFunc(func(o *options) {
		o.s3Options = append(o.s3Options, s3target.WithRegion(region))
	})
}

// WithS3Endpoint sets a custom endpoint for the s3:// backend (for
// S3-compatible services like MinIO). Only honored by New.
func WithS3Endpoint(endpoint string) Option {
	return optionFunc(func(o *options) {
		o.s3Options = append(o.s3Options, s3target.WithEndpoint(endpoint))
	})
}

// WithStdio replaces the process's standard input and output used for the
// "-" target. Only honored by New.
func WithStdio(stdin io.Reader, stdout io.Writer) Option {
	return optionFunc(func(o *options) {
		o.stdin = stdin
		o.stdout = stdout
	})
}
