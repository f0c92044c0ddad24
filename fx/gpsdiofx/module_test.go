package gpsdiofx

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio"
	"github.com/SkyTruth/gpsdio/internal/stats"
	statsprom "github.com/SkyTruth/gpsdio/internal/stats/prometheus"
)

func TestModule(t *testing.T) {
	var (
		opener    *gpsdio.Opener
		collector stats.Collector
	)
	app := fxtest.New(t,
		fx.Supply(Config{SchemaFiles: []string{"../../internal/schema/testdata/extension.yaml"}}),
		fx.Supply(zap.NewNop()),
		Module,
		fx.Populate(&opener, &collector),
	)
	app.RequireStart()

	if _, ok := opener.Schema().Field("vessel_class"); !ok {
		t.Error("schema extension not loaded")
	}
	if _, ok := collector.(*statsprom.Collector); ok {
		t.Error("collector is prometheus without a Registerer")
	}

	app.RequireStop()

	_, err := opener.Open(context.Background(), "mem://x.json", gpsdio.Read)
	if !errors.Is(err, gpsdio.ErrOpenerClosed) {
		t.Errorf("Open() after stop error = %v, want ErrOpenerClosed", err)
	}
}

func TestModule_Prometheus(t *testing.T) {
	var collector stats.Collector
	app := fxtest.New(t,
		fx.Supply(Config{}),
		fx.Supply(zap.NewNop()),
		fx.Provide(func() prometheus.Registerer { return prometheus.NewRegistry() }),
		Module,
		fx.Populate(&collector),
	)
	app.RequireStart()
	defer app.RequireStop()

	if _, ok := collector.(*statsprom.Collector); !ok {
		t.Errorf("collector = %T, want *prometheus.Collector", collector)
	}
}
