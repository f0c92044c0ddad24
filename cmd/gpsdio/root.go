package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio"
	"github.com/SkyTruth/gpsdio/internal/driver/jsonldriver"
	"github.com/SkyTruth/gpsdio/internal/stats"
	statslogger "github.com/SkyTruth/gpsdio/internal/stats/logger"
)

var (
	// Global flags.
	verbose          bool
	schemaFiles      []string
	s3Region         string
	s3Endpoint       string
	inputDriver      string
	inputCompression string
	skipFailures     bool
)

var rootCmd = &cobra.Command{
	Use:   "gpsdio",
	Short: "Read, write and inspect streams of AIS/GPS messages",
	Long: `gpsdio reads and writes streams of AIS/GPS position messages stored as
newline delimited JSON or MessagePack, optionally compressed with gzip,
bzip2 or zstd, on local disk, S3 or GCS.

Drivers and compression are detected from file extensions. Use "-" for
standard input or output; it is read and written as newline JSON unless a
driver is given.

Examples:
  # Convert a day of positions to compressed MessagePack
  gpsdio cat 2015-01-01.json.gz 2015-01-01.msg.zst

  # Keep one vessel, ordered by time
  gpsdio cat --filter 'mmsi == 366268061' --sort timestamp in.json.bz2 -

  # Summarize a file in S3
  gpsdio info s3://bucket/ais/2015-01-01.json.gz

  # Describe the fields of a position report
  gpsdio types 1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringSliceVar(&schemaFiles, "schema", nil, "YAML schema extension files")
	rootCmd.PersistentFlags().StringVar(&s3Region, "s3-region", "", "AWS region for s3:// targets")
	rootCmd.PersistentFlags().StringVar(&s3Endpoint, "s3-endpoint", "", "custom S3 endpoint (e.g. MinIO)")
	rootCmd.PersistentFlags().StringVar(&inputDriver, "driver", "", "input driver (default: detect from the name)")
	rootCmd.PersistentFlags().StringVar(&inputCompression, "compression", "", "input compression, or \"none\" (default: detect from the name)")
	rootCmd.PersistentFlags().BoolVar(&skipFailures, "skip-failures", false, "drop records that fail to decode or coerce")
}

// newLogger logs warnings and above as JSON, or everything in a readable
// form with --verbose.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// env holds what every command needs.
type env struct {
	logger *zap.Logger
	opener *gpsdio.Opener
}

// newEnv builds the logger, schema and Opener from the global flags. Standard
// input and output are those of cmd.
func newEnv(cmd *cobra.Command) (*env, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	sch, err := gpsdio.LoadSchema(logger, schemaFiles...)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var collector stats.Collector = stats.NewNoop()
	if verbose {
		collector = statslogger.New(logger)
	}

	opts := []gpsdio.Option{
		gpsdio.WithLogger(logger),
		gpsdio.WithSchema(sch),
		gpsdio.WithStats(collector),
		gpsdio.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
	if s3Region != "" {
		opts = append(opts, gpsdio.WithS3Region(s3Region))
	}
	if s3Endpoint != "" {
		opts = append(opts, gpsdio.WithS3Endpoint(s3Endpoint))
	}

	opener, err := gpsdio.New(opts...)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("creating opener: %w", err)
	}
	return &env{logger: logger, opener: opener}, nil
}

func (e *env) Close() {
	e.opener.Close()
	e.logger.Sync()
}

// streamOptions returns the options for opening target with the given
// driver and compression names. Standard streams default to newline JSON.
func streamOptions(target, driver, compression string) []gpsdio.Option {
	opts := []gpsdio.Option{gpsdio.WithSkipFailures(skipFailures)}
	if driver == "" && target == "-" {
		driver = jsonldriver.Name
	}
	if driver != "" {
		opts = append(opts, gpsdio.WithDriver(driver))
	}
	if compression != "" {
		opts = append(opts, gpsdio.WithCompression(compression))
	}
	return opts
}

// openInput opens target for reading with the input flags.
func (e *env) openInput(cmd *cobra.Command, target string) (*gpsdio.Stream, error) {
	s, err := e.opener.Open(cmd.Context(), target, gpsdio.Read, streamOptions(target, inputDriver, inputCompression)...)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return s, nil
}
