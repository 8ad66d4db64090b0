package search

import (
	"context"
	"sync"

	"github.com/san-kum/gbfsviz/internal/grid"
)

// Problem is a single search request.
type Problem struct {
	Name  string
	Grid  *grid.Grid
	Start grid.Cell
	Goal  grid.Cell
}

// RunBatch searches every problem on its own goroutine and returns the
// results in input order. Problems not yet started when ctx is cancelled
// are skipped and ctx.Err() is returned.
func RunBatch(ctx context.Context, problems []Problem) ([]Result, error) {
	results := make([]Result, len(problems))

	var wg sync.WaitGroup
	for i := range problems {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			p := problems[idx]
			results[idx] = Run(p.Grid, p.Start, p.Goal)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
