// Package sweep runs every applicable registry check over a catalog and folds
// the results into report rows and a summary.
package sweep

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/harness/pubcheck/internal/catalog"
	"github.com/harness/pubcheck/internal/registry"
)

// Checker runs a single (artifact, target) check. *registry.Registry
// implements it.
type Checker interface {
	Check(ctx context.Context, e catalog.Entry, t catalog.Target) registry.Result
}

// Observer is notified after each check completes. Calls may come from
// several goroutines.
type Observer func(registry.Result)

// Driver runs sweeps.
type Driver struct {
	checker     Checker
	concurrency int
	observe     Observer
}

// Option configures a Driver.
type Option func(*Driver)

// WithConcurrency bounds the number of checks in flight.
func WithConcurrency(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithObserver registers a callback invoked after each check.
func WithObserver(fn Observer) Option {
	return func(d *Driver) { d.observe = fn }
}

// NewDriver creates a Driver running one check at a time unless configured
// otherwise.
func NewDriver(checker Checker, opts ...Option) *Driver {
	d := &Driver{checker: checker, concurrency: 1}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type job struct {
	entry  catalog.Entry
	target catalog.Target
}

// Run checks every artifact of c against its applicable targets. It always
// completes; results come back in catalog order, then target order.
func (d *Driver) Run(ctx context.Context, c catalog.Catalog) Outcome {
	var jobs []job
	for _, e := range c {
		for _, t := range catalog.Targets(e) {
			jobs = append(jobs, job{entry: e, target: t})
		}
	}
	log.Debug().Int("artifacts", len(c)).Int("checks", len(jobs)).Int("concurrency", d.concurrency).
		Msg("Starting publish sweep")

	results := make([]registry.Result, len(jobs))
	g := new(errgroup.Group)
	g.SetLimit(d.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			res := d.checker.Check(ctx, j.entry, j.target)
			results[i] = res
			if d.observe != nil {
				d.observe(res)
			}
			return nil
		})
	}
	// Checks never fail, so Wait only synchronises.
	_ = g.Wait()

	return Outcome{
		Rows:    Rows(c, results),
		Summary: Summarize(results),
	}
}
