package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/quillfmt/quill/internal/logging"
	"github.com/quillfmt/quill/pkg/formatter"
	"github.com/quillfmt/quill/pkg/fsutil"
)

// Runner orchestrates multi-file formatting with a worker pool.
type Runner struct {
	Formatter *formatter.Formatter
}

// New creates a Runner over the given formatter.
func New(f *formatter.Formatter) *Runner {
	return &Runner{Formatter: f}
}

// Run discovers files under opts.Paths and formats them concurrently.
// Outcomes are re-assembled in discovery order so output is deterministic
// regardless of worker completion order. Respects context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logger := logging.FromContext(ctx)
	logger.Debug("starting format run",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
	)

	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			outcomes[i] = r.processFile(gctx, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}

// processFile reads, formats, and (in write mode) rewrites a single file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	res := r.Formatter.Format(ctx, path, string(data))
	outcome.Result = &res

	if opts.Mode == ModeWrite && res.Changed {
		if err := fsutil.WriteAtomic(ctx, path, []byte(res.Code)); err != nil {
			outcome.Error = fmt.Errorf("write %s: %w", path, err)
			return outcome
		}
		outcome.Written = true
	}

	return outcome
}
