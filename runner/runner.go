// Package runner drives batch analysis over a project tree: it discovers
// JSX-bearing files, fans them out to a bounded worker pool, and caches
// per-file results by content hash. Files are independent, so the only shared
// state is the cache.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"jsxtrace/inspector"
	"jsxtrace/repository"
)

const defaultCacheSize = 512

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the analysis pool; values below 1 fall back to
// runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithCacheSize sets the result cache capacity.
func WithCacheSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.cacheSize = n
		}
	}
}

// WithLogger sets the logger used for per-file progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithInspector overrides the inspector configuration.
func WithInspector(i *inspector.Inspector) Option {
	return func(r *Runner) {
		r.inspector = i
	}
}

// WithKeyResolver overrides how file keys are derived from paths.
func WithKeyResolver(resolver *repository.KeyResolver) Option {
	return func(r *Runner) {
		r.keys = resolver
	}
}

// Runner analyzes every inspectable file under a root.
type Runner struct {
	fs        afs.Service
	inspector *inspector.Inspector
	keys      *repository.KeyResolver
	logger    *slog.Logger
	workers   int
	cacheSize int

	cache *lru.Cache[uint64, *inspector.FileAnalysis]
}

// New creates a Runner; the zero configuration analyzes with NumCPU workers,
// path-based file keys, and a 512-entry cache.
func New(options ...Option) (*Runner, error) {
	r := &Runner{
		fs:        afs.New(),
		inspector: inspector.NewInspector(nil),
		keys:      repository.NewKeyResolver(false),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:   runtime.NumCPU(),
		cacheSize: defaultCacheSize,
	}
	for _, option := range options {
		option(r)
	}
	cache, err := lru.New[uint64, *inspector.FileAnalysis](r.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	r.cache = cache
	return r, nil
}

// Analyze walks the root, analyzes every inspectable file, and returns the
// results ordered by path. A file that cannot be read or parsed is logged
// and skipped; it never aborts the batch.
func (r *Runner) Analyze(ctx context.Context, root string) ([]*inspector.FileAnalysis, error) {
	paths, err := r.listFiles(ctx, root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSX-bearing files found under %s", root)
	}
	sort.Strings(paths)
	r.logger.Info("starting analysis", "root", root, "files", len(paths), "workers", r.workers)

	results := make([]*inspector.FileAnalysis, len(paths))
	errs := make([]error, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = r.analyzeFile(ctx, paths[idx])
			}
		}()
	}
	for idx := range paths {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	out := make([]*inspector.FileAnalysis, 0, len(paths))
	for idx, analysis := range results {
		if errs[idx] != nil {
			r.logger.Warn("skipping file", "path", paths[idx], "error", errs[idx])
			continue
		}
		out = append(out, analysis)
	}
	return out, nil
}

// AnalyzeFile analyzes a single file through the cache.
func (r *Runner) AnalyzeFile(ctx context.Context, path string) (*inspector.FileAnalysis, error) {
	return r.analyzeFile(ctx, path)
}

func (r *Runner) analyzeFile(ctx context.Context, path string) (*inspector.FileAnalysis, error) {
	src, err := r.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	fileKey := r.keys.Resolve(path)

	sum, hashErr := repository.Hash(append([]byte(fileKey+"\x00"), src...))
	if hashErr == nil {
		if cached, ok := r.cache.Get(sum); ok {
			r.logger.Debug("cache hit", "path", path)
			return cached, nil
		}
	}

	analysis, err := r.inspector.InspectSource(src, fileKey)
	if err != nil {
		return nil, err
	}
	analysis.Path = path
	if hashErr == nil {
		r.cache.Add(sum, analysis)
	}
	r.logger.Debug("analyzed", "path", path, "elements", len(analysis.Elements))
	return analysis, nil
}

func (r *Runner) listFiles(ctx context.Context, root string) ([]string, error) {
	var paths []string
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			if info.Name() == "node_modules" {
				return false, nil
			}
			return true, nil
		}
		path := url.Join(baseURL, parent, info.Name())
		if inspector.InspectableFile(path) {
			paths = append(paths, path)
		}
		return true, nil
	}
	if err := r.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}
