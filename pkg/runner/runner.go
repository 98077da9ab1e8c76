package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/gomdtree/internal/logging"
	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/parser"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// Run discovers files under opts.Paths, parses each concurrently, and
// validates that every tree reproduces its source byte for byte.
// Outcomes come back in deterministic path order regardless of worker
// scheduling. Context cancellation stops the run early.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
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
	logging.FromContext(ctx).Debug("starting workers",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
	)

	cfg := opts.effectiveConfig()
	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, cfg)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		if outcome.Error != nil {
			logging.FromContext(ctx).Debug("file failed",
				logging.FieldPath, outcome.Path,
				logging.FieldError, outcome.Error,
			)
		}
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, cfg *config.Config) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := ParseFile(path, cfg)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ParseFile reads, parses, and validates a single file.
func ParseFile(path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	source := string(data)
	outcome.Bytes = len(source)

	root, reg := parser.Parse(source, cfg)
	if err := syntax.Validate(root, source); err != nil {
		outcome.Error = fmt.Errorf("validate %s: %w", path, err)
		return outcome
	}

	outcome.Tokens = len(root.Tokens())
	outcome.Nodes = len(root.Descendants())
	outcome.Definitions = reg.Len()
	outcome.Footnotes = reg.FootnoteLen()
	return outcome
}
