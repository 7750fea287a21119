package match

import (
	"context"
	"errors"
	"sync"
)

// Series plays games matches seeded seed, seed+1, ... on up to workers
// goroutines. Results are returned in seed order.
func (r *Runner) Series(ctx context.Context, games int, seed int64, workers int) ([]Result, error) {
	if games <= 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > games {
		workers = games
	}

	results := make([]Result, games)
	errs := make([]error, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = r.Play(ctx, seed+int64(i))
			}
		}()
	}

feed:
	for i := 0; i < games; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return results, err
	}
	return results, nil
}
