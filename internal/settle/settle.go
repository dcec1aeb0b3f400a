// Package settle runs a batch of independent units of work and keeps only the ones that succeed.
package settle

import (
	"context"

	"github.com/alitto/pond/v2"
)

// Outcome is the result of attempting every unit of a batch
type Outcome[R any] struct {
	Succeeded   []R
	FailedCount int
}

// Options tunes a settle run
type Options[T any] struct {
	// Pool runs the units. When nil a pool sized to the batch is created and stopped afterwards.
	Pool pond.Pool
	// OnFailure is called once per failed unit, from the collecting goroutine
	OnFailure func(item T, err error)
}

// All attempts fn for every item concurrently and waits for all of them.
// A unit that returns an error or panics is counted in FailedCount and contributes nothing;
// it never aborts the other units. Succeeded keeps the relative order of items.
func All[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error), opts Options[T]) Outcome[R] {
	if len(items) == 0 {
		return Outcome[R]{Succeeded: []R{}}
	}

	pool := opts.Pool
	if pool == nil {
		pool = pond.NewPool(len(items))
		defer pool.StopAndWait()
	}

	results := make([]R, len(items))
	tasks := make([]pond.Task, len(items))
	for i, item := range items {
		tasks[i] = pool.SubmitErr(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	outcome := Outcome[R]{Succeeded: make([]R, 0, len(items))}
	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			outcome.FailedCount++
			if opts.OnFailure != nil {
				opts.OnFailure(items[i], err)
			}
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, results[i])
	}

	return outcome
}
