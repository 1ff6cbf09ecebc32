package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/statkit/reglin/compress"
	"github.com/statkit/reglin/frame"
	"github.com/statkit/reglin/internal/options"
)

// DefaultBaseURL is where Fetch looks for datasets unless WithBaseURL
// overrides it.
const DefaultBaseURL = "https://raw.githubusercontent.com/statkit/reglin/main/dataset/data"

// ErrFetchFailed is returned when the remote server answers with an
// unexpected status.
var ErrFetchFailed = errors.New("dataset: fetch failed")

type fetchConfig struct {
	baseURL     string
	cacheDir    string
	compression compress.Type
	noCache     bool
	client      *http.Client
}

// Option configures Fetch.
type Option = options.Option[*fetchConfig]

// WithBaseURL overrides the remote location datasets are fetched from.
func WithBaseURL(url string) Option {
	return options.NoError(func(cfg *fetchConfig) {
		cfg.baseURL = url
	})
}

// WithCacheDir overrides the cache directory, which defaults to a
// "reglin" directory under os.UserCacheDir.
func WithCacheDir(dir string) Option {
	return options.NoError(func(cfg *fetchConfig) {
		cfg.cacheDir = dir
	})
}

// WithCacheCompression selects the codec for cached payloads. The
// default is Zstandard.
func WithCacheCompression(t compress.Type) Option {
	return options.New(func(cfg *fetchConfig) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		cfg.compression = t
		return nil
	})
}

// WithNoCache disables the on-disk cache for both reads and writes.
func WithNoCache() Option {
	return options.NoError(func(cfg *fetchConfig) {
		cfg.noCache = true
	})
}

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return options.NoError(func(cfg *fetchConfig) {
		cfg.client = client
	})
}

// Fetch downloads a dataset by name and parses it into a data frame.
//
// Unless disabled with WithNoCache, a compressed copy is kept under the
// cache directory and later calls are served from it without touching
// the network. A cache entry that fails to decompress or parse is
// discarded and fetched again.
func Fetch(ctx context.Context, name string, opts ...Option) (*frame.Frame, error) {
	cfg := &fetchConfig{
		baseURL:     DefaultBaseURL,
		compression: compress.TypeZstd,
		client:      http.DefaultClient,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !cfg.noCache && cfg.cacheDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			cfg.noCache = true
		} else {
			cfg.cacheDir = filepath.Join(dir, "reglin")
		}
	}

	if !cfg.noCache {
		if data, ok := readCache(cfg, name); ok {
			return data, nil
		}
	}

	raw, err := download(ctx, cfg, name)
	if err != nil {
		return nil, err
	}

	data, err := frame.ReadCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %q: %w", name, err)
	}

	if !cfg.noCache {
		// Cache failures are not fatal; the next call downloads again.
		_ = writeCache(cfg, name, raw)
	}

	return data, nil
}

func download(ctx context.Context, cfg *fetchConfig, name string) ([]byte, error) {
	url := cfg.baseURL + "/" + name + ".csv"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request: %w", err)
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownDataset, name, cfg.baseURL)
	default:
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, url, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}

	return raw, nil
}

// cachePath is the cache file for a dataset under a given codec, e.g.
// <dir>/entregas.csv.zst.
func cachePath(cfg *fetchConfig, name string, t compress.Type) string {
	return filepath.Join(cfg.cacheDir, name+".csv"+t.Ext())
}

// readCache tries the configured codec first, then any other codec an
// earlier run may have cached with.
func readCache(cfg *fetchConfig, name string) (*frame.Frame, bool) {
	candidates := []compress.Type{
		cfg.compression,
		compress.TypeZstd, compress.TypeS2, compress.TypeLZ4, compress.TypeNone,
	}

	seen := make(map[compress.Type]bool, len(candidates))
	for _, t := range candidates {
		if seen[t] {
			continue
		}
		seen[t] = true

		raw, err := os.ReadFile(cachePath(cfg, name, t))
		if err != nil {
			continue
		}

		codec, err := compress.GetCodec(t)
		if err != nil {
			continue
		}
		payload, err := codec.Decompress(raw)
		if err != nil {
			continue
		}

		data, err := frame.ReadCSV(bytes.NewReader(payload))
		if err != nil {
			continue
		}

		return data, true
	}

	return nil, false
}

func writeCache(cfg *fetchConfig, name string, raw []byte) error {
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.cacheDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(cachePath(cfg, name, cfg.compression), payload, 0o644)
}
