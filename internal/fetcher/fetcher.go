// Package fetcher opens dataset sources from local paths or HTTP(S) URLs and parses
// CSV and XLSX tables.
package fetcher

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadToFile fetches the URL and writes it to the given path. Returns bytes written.
	DownloadToFile(ctx context.Context, url string, path string) (int64, error)
}

// IsURL reports whether source should be fetched over HTTP rather than opened from disk.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns a reader for a local path or, when f is non-nil, an HTTP(S) URL.
func Open(ctx context.Context, f Fetcher, source string) (io.ReadCloser, error) {
	if IsURL(source) {
		if f == nil {
			return nil, eris.Errorf("fetcher: no http fetcher configured for %s", source)
		}
		return f.Download(ctx, source)
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open file")
	}
	return file, nil
}
