// Package par holds the fork/collect glue shared by the parallel
// combinators.  Computations are assumed total: they always return, carrying
// any failure inside their return value, so collection waits on completion
// rather than on the context.
package par

import (
	"context"
	"sync"

	"github.com/digitalmonad/fpkit/promise"
)

// All starts every computation on its own goroutine before awaiting any,
// then returns their values in input order.
func All[T any](ctx context.Context, fs []func(context.Context) T) []T {
	ps := make([]*promise.Promise[T], len(fs))
	for i, f := range fs {
		ps[i] = promise.Start(ctx, f)
	}

	out := make([]T, len(fs))
	for i, p := range ps {
		<-p.Done()
		out[i], _ = p.Value()
	}
	return out
}

// AllLimit is All with at most limit computations in flight, served by a
// fixed pool of workers fed element indices.  Panics when limit < 1; a
// limit at or above len(fs) behaves like All.
func AllLimit[T any](ctx context.Context, limit int, fs []func(context.Context) T) []T {
	if limit < 1 {
		panic("par: concurrency limit must be 1 or greater")
	}
	if limit > len(fs) {
		limit = len(fs)
	}

	idxChan := make(chan int)
	out := make([]T, len(fs))

	var wg sync.WaitGroup
	for w := 0; w < limit; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxChan {
				out[i] = fs[i](ctx)
			}
		}()
	}

	for i := range fs {
		idxChan <- i
	}
	close(idxChan)
	wg.Wait()

	return out
}
