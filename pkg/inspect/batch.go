package inspect

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of inspecting one package in a batch. Exactly one
// of Record and Err is set.
type Result struct {
	Name   string
	Record *Record
	Err    error
}

// InspectAll inspects every package in parallel and returns one Result per
// name, in input order. A failing package does not affect the others.
func (i *Inspector) InspectAll(ctx context.Context, names []string) []Result {
	results := make([]Result, len(names))

	g := i.group()
	for idx, name := range names {
		g.Go(func() error {
			rec, err := i.Inspect(ctx, name)
			results[idx] = Result{Name: name, Record: rec, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// InspectAllStrict inspects every package in parallel and fails the whole
// batch if any package fails: the first error is returned and no records
// are. Inspections already running are not cancelled.
func (i *Inspector) InspectAllStrict(ctx context.Context, names []string) ([]*Record, error) {
	records := make([]*Record, len(names))

	g := i.group()
	for idx, name := range names {
		g.Go(func() error {
			rec, err := i.Inspect(ctx, name)
			if err != nil {
				return err
			}
			records[idx] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (i *Inspector) group() *errgroup.Group {
	g := new(errgroup.Group)
	if i.concurrency > 0 {
		g.SetLimit(i.concurrency)
	}
	return g
}

// Failed returns the results whose inspection failed.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Records returns the records of the successful results, in order.
func Records(results []Result) []*Record {
	out := make([]*Record, 0, len(results))
	for _, r := range results {
		if r.Record != nil {
			out = append(out, r.Record)
		}
	}
	return out
}
