package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job pairs one build's resolver with the stats to resolve for it
type Job struct {
	Resolver *Resolver
	Stats    []string
	Options  []Option
}

// ResolveBatch runs one resolve pass per job in parallel, one goroutine
// per job. Submitting a job transfers ownership of its resolver (and the
// store underneath) to the batch until ResolveBatch returns; nothing else
// may touch them in between. Results are indexed like jobs. The first
// failing job cancels the rest.
func ResolveBatch(ctx context.Context, jobs []Job) ([]map[string]*Resolved, error) {
	results := make([]map[string]*Resolved, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resolved, err := job.Resolver.ResolveMany(job.Stats, job.Options...)
			if err != nil {
				return err
			}
			results[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
