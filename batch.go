package mailcheck

import (
	"context"
	"runtime"
	"sync"
)

// Batch validates addresses element-wise and returns one result per input
// in the same order. Items share no state, so the work is distributed
// across GOMAXPROCS workers with no coordination beyond an index channel.
// Cancelling ctx stops submission of remaining items (their slots stay
// false); an item already picked up always runs to completion.
func Batch(ctx context.Context, addresses []string, opts Options) []bool {
	results := make([]bool, len(addresses))
	if len(addresses) == 0 {
		return results
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(addresses) {
		workers = len(addresses)
	}
	if workers <= 1 {
		for i, addr := range addresses {
			if ctx.Err() != nil {
				break
			}
			results[i] = IsValid(addr, opts)
		}
		return results
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i] = IsValid(addresses[i], opts)
			}
		}()
	}

feed:
	for i := range addresses {
		select {
		case <-ctx.Done():
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()
	return results
}
