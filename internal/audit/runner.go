// Package audit runs validators over a section or a whole article and aggregates the result into a report.
package audit

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
)

// DefaultConcurrency bounds how many validators or sections run at once
const DefaultConcurrency = 4

// Options configures a Runner
type Options struct {
	// Validators to run; nil means validators.Default()
	Validators []validators.Validator
	// Tolerance for the article word-count total; 0 means validators.DefaultTolerance
	Tolerance float64
	// Concurrency bounds parallel work; 0 means DefaultConcurrency
	Concurrency int
	Logger      *zerolog.Logger
}

// Runner executes validators. It holds no per-run state and may be reused.
type Runner struct {
	validators  []validators.Validator
	tolerance   float64
	concurrency int
	log         zerolog.Logger
}

// NewRunner creates a Runner from opts
func NewRunner(opts Options) *Runner {
	r := &Runner{
		validators:  opts.Validators,
		tolerance:   opts.Tolerance,
		concurrency: opts.Concurrency,
		log:         zerolog.Nop(),
	}
	if r.validators == nil {
		r.validators = validators.Default()
	}
	if r.tolerance <= 0 {
		r.tolerance = validators.DefaultTolerance
	}
	if r.concurrency <= 0 {
		r.concurrency = DefaultConcurrency
	}
	if opts.Logger != nil {
		r.log = *opts.Logger
	}
	return r
}

// Validators returns the validators this runner uses, in order
func (r *Runner) Validators() []validators.Validator {
	return r.validators
}

// Run applies every validator to content. Validators run concurrently but the
// returned violations keep validator order. A validator that panics is
// skipped and reported; the others still run.
func (r *Runner) Run(ctx context.Context, content string, vctx *types.ValidationContext) ([]types.Violation, []types.SkippedValidator, error) {
	if vctx == nil {
		vctx = &types.ValidationContext{}
	}
	results := make([][]types.Violation, len(r.validators))
	var (
		mu      sync.Mutex
		skipped []types.SkippedValidator
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, v := range r.validators {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			found, skip := r.apply(v, content, vctx)
			if skip != nil {
				mu.Lock()
				skipped = append(skipped, *skip)
				mu.Unlock()
				return nil
			}
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("validation cancelled: %w", err)
	}

	var out []types.Violation
	for _, found := range results {
		out = append(out, found...)
	}
	sortSkipped(skipped, r.validators)
	return out, skipped, nil
}

// apply runs one validator, converting a panic into a skip entry
func (r *Runner) apply(v validators.Validator, content string, vctx *types.ValidationContext) (found []types.Violation, skip *types.SkippedValidator) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn().
				Str("validator", v.Name()).
				Str("section", vctx.SectionKey()).
				Interface("panic", rec).
				Msg("Validator failed, skipping")
			found = nil
			skip = &types.SkippedValidator{
				Validator: v.Name(),
				Section:   vctx.SectionKey(),
				Reason:    fmt.Sprintf("panic: %v", rec),
			}
		}
	}()

	found = v.Validate(content, vctx)
	r.log.Debug().
		Str("validator", v.Name()).
		Str("section", vctx.SectionKey()).
		Int("violations", len(found)).
		Dur("duration", time.Since(start)).
		Msg("Validator finished")
	return found, nil
}

// sortSkipped puts skip entries in validator order so reports are deterministic
func sortSkipped(skipped []types.SkippedValidator, vs []validators.Validator) {
	order := make(map[string]int, len(vs))
	for i, v := range vs {
		order[v.Name()] = i
	}
	sort.SliceStable(skipped, func(i, j int) bool {
		return order[skipped[i].Validator] < order[skipped[j].Validator]
	})
}
