// Package search drives synthesis: iterative-deepening generation,
// evaluation against the examples, and budget enforcement. Budgets are
// polled between hypotheses only; a primitive invocation is never
// interrupted mid-flight.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/codegen"
	"github.com/gridmind/gridil/internal/evaluator"
	"github.com/gridmind/gridil/internal/generator"
	"github.com/gridmind/gridil/internal/hypothesis"
)

// ErrNoSolution is returned when the depth or time budget is exhausted
// without a passing hypothesis. A normal outcome, not a fault.
var ErrNoSolution = errors.New("search: no solution within budget")

// ErrNoBudget is returned when neither a depth ceiling nor a timeout is
// set; an unsolvable task would then search forever.
var ErrNoBudget = errors.New("search: at least one of MaxDepth and Timeout must be set")

// DefaultProgressInterval is the minimum spacing of progress callbacks
// when Options does not set one.
const DefaultProgressInterval = 500 * time.Millisecond

// Progress is a snapshot of a running search handed to the callback.
type Progress struct {
	Depth    int
	Attempts int
	Elapsed  time.Duration
}

// Options bound and observe a search.
type Options struct {
	// MaxDepth is the deepest hypothesis to try. Zero means unbounded,
	// in which case Timeout must be set.
	MaxDepth int

	// Timeout is the wall-clock budget. Zero means unbounded, in which
	// case MaxDepth must be set.
	Timeout time.Duration

	// Progress, if non-nil, is called with a snapshot at most once per
	// ProgressInterval.
	Progress func(Progress)

	// ProgressInterval is the minimum spacing of Progress calls. Zero
	// means DefaultProgressInterval.
	ProgressInterval time.Duration
}

// Validate checks that the options can terminate a search.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("search: negative MaxDepth %d", o.MaxDepth)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("search: negative Timeout %s", o.Timeout)
	}
	if o.ProgressInterval < 0 {
		return fmt.Errorf("search: negative ProgressInterval %s", o.ProgressInterval)
	}
	if o.MaxDepth == 0 && o.Timeout == 0 {
		return ErrNoBudget
	}
	return nil
}

// Result is a successful search outcome. Attempts counts every hypothesis
// evaluated up to and including the winning one; Elapsed is measured from
// the start of the search.
type Result struct {
	Hypothesis *hypothesis.Hypothesis
	Code       string
	Depth      int
	Attempts   int
	Elapsed    time.Duration
}

// Search looks for the shallowest hypothesis that reproduces every
// example. Depths are exhausted in order, so the returned solution is
// minimal in depth and first in enumeration order among its depth's
// solutions. Budget exhaustion returns ErrNoSolution; context cancellation
// returns the context's error.
func Search(
	ctx context.Context,
	examples []evaluator.Example,
	name string,
	lib catalog.Library,
	consts []catalog.Constant,
	opts Options,
) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cat := catalog.Extract(lib, consts)

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	start := time.Now()
	lastProgress := start
	attempts := 0

	for depth := 1; opts.MaxDepth == 0 || depth <= opts.MaxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Timeout > 0 && time.Since(start) > opts.Timeout {
			return nil, ErrNoSolution
		}

		for h := range generator.AtDepth(depth, cat) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			now := time.Now()
			if opts.Timeout > 0 && now.Sub(start) > opts.Timeout {
				return nil, ErrNoSolution
			}
			if opts.Progress != nil && now.Sub(lastProgress) >= interval {
				opts.Progress(Progress{Depth: depth, Attempts: attempts, Elapsed: now.Sub(start)})
				lastProgress = now
			}

			attempts++
			if evaluator.Evaluate(h, cat, examples) {
				return &Result{
					Hypothesis: h,
					Code:       codegen.Render(h, name),
					Depth:      depth,
					Attempts:   attempts,
					Elapsed:    time.Since(start),
				}, nil
			}
		}
	}

	return nil, ErrNoSolution
}

// Enumerate collects up to maxSolutions passing hypotheses across depths
// 1..maxDepth, in enumeration order. It keeps searching past the first
// success, which surfaces alternative formulations of the same transform.
// Cancellation returns the solutions found so far with the context's
// error.
func Enumerate(
	ctx context.Context,
	examples []evaluator.Example,
	name string,
	lib catalog.Library,
	consts []catalog.Constant,
	maxDepth, maxSolutions int,
) ([]*Result, error) {
	if maxDepth < 1 {
		return nil, fmt.Errorf("search: maxDepth %d, want at least 1", maxDepth)
	}
	if maxSolutions < 1 {
		return nil, fmt.Errorf("search: maxSolutions %d, want at least 1", maxSolutions)
	}

	cat := catalog.Extract(lib, consts)

	start := time.Now()
	attempts := 0
	var results []*Result

	for depth := 1; depth <= maxDepth; depth++ {
		for h := range generator.AtDepth(depth, cat) {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			attempts++
			if !evaluator.Evaluate(h, cat, examples) {
				continue
			}
			results = append(results, &Result{
				Hypothesis: h,
				Code:       codegen.Render(h, name),
				Depth:      depth,
				Attempts:   attempts,
				Elapsed:    time.Since(start),
			})
			if len(results) >= maxSolutions {
				return results, nil
			}
		}
	}

	return results, nil
}
