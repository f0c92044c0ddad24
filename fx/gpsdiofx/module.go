// Package gpsdiofx provides an fx module for a gpsdio Opener.
package gpsdiofx

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio"
	"github.com/SkyTruth/gpsdio/internal/stats"
	"github.com/SkyTruth/gpsdio/internal/stats/logger"
	statsprom "github.com/SkyTruth/gpsdio/internal/stats/prometheus"
)

// Config holds configuration for the Opener.
type Config struct {
	// SchemaFiles are YAML schema extension files.
	SchemaFiles []string

	// SkipFailures drops records that fail to decode or coerce instead of
	// returning them as errors.
	SkipFailures bool

	// S3Region and S3Endpoint configure s3:// targets. Both are optional.
	S3Region   string
	S3Endpoint string
}

// Module provides a *gpsdio.Opener and the *gpsdio.Schema it uses.
// Requires a Config and a *zap.Logger to be provided. Metrics go to a
// prometheus.Registerer if one is provided, and to the logger otherwise.
var Module = fx.Module("gpsdio",
	fx.Provide(
		newStatsCollector,
		newSchema,
		newOpener,
	),
)

// StatsParams holds dependencies for creating the stats collector.
type StatsParams struct {
	fx.In

	Logger     *zap.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

func newStatsCollector(p StatsParams) stats.Collector {
	if p.Registerer != nil {
		return statsprom.New(p.Registerer)
	}
	return logger.New(p.Logger.Named("gpsdio.stats"))
}

func newSchema(cfg Config, log *zap.Logger) (*gpsdio.Schema, error) {
	return gpsdio.LoadSchema(log.Named("gpsdio.schema"), cfg.SchemaFiles...)
}

// Params holds dependencies for creating the Opener.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Schema    *gpsdio.Schema
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided Opener.
type Result struct {
	fx.Out

	Opener *gpsdio.Opener
}

func newOpener(p Params) (Result, error) {
	opts := []gpsdio.Option{
		gpsdio.WithSchema(p.Schema),
		gpsdio.WithStats(p.Collector),
		gpsdio.WithLogger(p.Logger.Named("gpsdio")),
		gpsdio.WithSkipFailures(p.Config.SkipFailures),
	}
	if p.Config.S3Region != "" {
		opts = append(opts, gpsdio.WithS3Region(p.Config.S3Region))
	}
	if p.Config.S3Endpoint != "" {
		opts = append(opts, gpsdio.WithS3Endpoint(p.Config.S3Endpoint))
	}

	opener, err := gpsdio.New(opts...)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return opener.Close()
		},
	})

	return Result{Opener: opener}, nil
}
