package dataset

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/fetcher"
	"github.com/sells-group/volcano-cli/internal/model"
)

// Source locates one input table.
type Source struct {
	Location string // local path or http(s) URL
	Charset  string // CSV encoding label; ignored for XLSX
	Sheet    string // XLSX sheet name; first sheet when empty
}

// Loader reads the source tables through a Fetcher.
type Loader struct {
	fetcher fetcher.Fetcher
}

// NewLoader creates a Loader. A nil fetcher restricts sources to local paths.
func NewLoader(f fetcher.Fetcher) *Loader {
	return &Loader{fetcher: f}
}

// Volcanoes loads and normalizes the volcano table.
func (l *Loader) Volcanoes(ctx context.Context, src Source) ([]model.Volcano, error) {
	t, err := l.readTable(ctx, src)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read volcanoes")
	}
	volcanoes, err := ParseVolcanoes(t)
	if err != nil {
		return nil, err
	}
	zap.L().Info("dataset: loaded volcanoes",
		zap.String("source", src.Location),
		zap.Int("rows", len(volcanoes)),
	)
	return volcanoes, nil
}

// Cities loads the world-cities table, keeping cities of at least minPopulation
// when it is positive.
func (l *Loader) Cities(ctx context.Context, src Source, minPopulation int64) ([]model.City, error) {
	t, err := l.readTable(ctx, src)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read cities")
	}
	cities, err := ParseCities(t, minPopulation)
	if err != nil {
		return nil, err
	}
	zap.L().Info("dataset: loaded cities",
		zap.String("source", src.Location),
		zap.Int("rows", len(cities)),
		zap.Int("source_rows", len(t.Rows)),
		zap.Int64("min_population", minPopulation),
	)
	return cities, nil
}

func (l *Loader) readTable(ctx context.Context, src Source) (*fetcher.Table, error) {
	if isXLSX(src.Location) {
		return l.readXLSX(ctx, src)
	}

	rc, err := fetcher.Open(ctx, l.fetcher, src.Location)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck

	return fetcher.ReadCSV(ctx, rc, fetcher.CSVOptions{Charset: src.Charset, LazyQuotes: true})
}

func (l *Loader) readXLSX(ctx context.Context, src Source) (*fetcher.Table, error) {
	local := src.Location
	if fetcher.IsURL(src.Location) {
		if l.fetcher == nil {
			return nil, eris.Errorf("dataset: no http fetcher configured for %s", src.Location)
		}
		dir, err := os.MkdirTemp("", "volcano-cli-*")
		if err != nil {
			return nil, eris.Wrap(err, "dataset: create temp dir")
		}
		defer os.RemoveAll(dir) //nolint:errcheck

		local = filepath.Join(dir, "source.xlsx")
		if _, err := l.fetcher.DownloadToFile(ctx, src.Location, local); err != nil {
			return nil, err
		}
	}
	return fetcher.ReadXLSX(local, fetcher.XLSXOptions{SheetName: src.Sheet})
}

func isXLSX(location string) bool {
	p := location
	if i := strings.IndexAny(p, "?#"); i >= 0 && fetcher.IsURL(p) {
		p = p[:i]
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}
