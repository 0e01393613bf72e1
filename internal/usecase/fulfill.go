package usecase

import "sync"

// fulfillTracker counts in-flight fulfillment goroutines so shutdown and
// tests can wait for them instead of racing.
type fulfillTracker struct {
	wg sync.WaitGroup
}

func newFulfillTracker() *fulfillTracker {
	return &fulfillTracker{}
}

func (t *fulfillTracker) Go(fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		fn()
	}()
}

func (t *fulfillTracker) Wait() {
	t.wg.Wait()
}
