package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/dataset"
	"github.com/sells-group/volcano-cli/internal/explore"
	"github.com/sells-group/volcano-cli/internal/fetcher"
	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/monitoring"
)

// newLoader builds a dataset loader whose HTTP fetcher follows the fetch config.
func newLoader() *dataset.Loader {
	return dataset.NewLoader(fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Fetch.UserAgent,
		Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Fetch.MaxRetries,
	}))
}

func volcanoSource() dataset.Source {
	return dataset.Source{
		Location: cfg.Data.Volcanoes,
		Charset:  cfg.Data.VolcanoEncoding,
		Sheet:    cfg.Data.VolcanoSheet,
	}
}

func citySource() dataset.Source {
	return dataset.Source{Location: cfg.Data.Cities, Sheet: cfg.Data.CitySheet}
}

// loadVolcanoes reads only the volcano table.
func loadVolcanoes(ctx context.Context) ([]model.Volcano, error) {
	if err := cfg.Validate("compute"); err != nil {
		return nil, err
	}
	return newLoader().Volcanoes(ctx, volcanoSource())
}

// thresholdFor returns the --threshold flag when it was given and the configured
// threshold otherwise.
func thresholdFor(cmd *cobra.Command, flagValue float64) float64 {
	if cmd.Flags().Changed("threshold") {
		return flagValue
	}
	return cfg.Proximity.ThresholdMiles
}

// loadSnapshot reads both tables and computes proximity at thresholdMiles.
// m may be nil.
func loadSnapshot(ctx context.Context, thresholdMiles float64, m *monitoring.Metrics) (*explore.Snapshot, error) {
	l := newLoader()
	volcanoes, err := l.Volcanoes(ctx, volcanoSource())
	if err != nil {
		return nil, err
	}
	cities, err := l.Cities(ctx, citySource(), cfg.Data.MinPopulation)
	if err != nil {
		return nil, err
	}

	snap, err := explore.Build(ctx, volcanoes, cities, explore.BuildOptions{
		ThresholdMiles: thresholdMiles,
		Workers:        cfg.Proximity.Workers,
	})
	if m != nil {
		if err != nil {
			m.ObserveSnapshotError()
		} else {
			m.ObserveSnapshot(snap)
		}
	}
	return snap, err
}

// openOutput returns stdout for "" or "-" and otherwise creates path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, eris.Wrap(err, "create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrapf(err, "create %s", path)
	}
	zap.L().Debug("writing output", zap.String("path", path))
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
