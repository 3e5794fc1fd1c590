package async

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Future is a result slot that is written once and read any number of times.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// NewFuture returns an unresolved future.
func NewFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// Resolve stores the outcome and releases all waiters.
func (f *Future[U]) Resolve(result U, err error) error {
	resolved := false
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
		resolved = true
	})
	if !resolved {
		return ErrAlreadyResolved
	}
	return nil
}

// Done is closed once the future is resolved.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future is resolved.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is like Await but returns ctx.Err() if ctx ends first.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitTimeout is like Await but returns ErrTimeout after d.
func (f *Future[U]) AwaitTimeout(d time.Duration) (U, error) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future is resolved without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in a new goroutine and returns its future.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := NewFuture[U]()

	go func() {
		var zero U
		// Early exit prevents running work nobody waits for
		if err := ctx.Err(); err != nil {
			_ = f.Resolve(zero, err)
			return
		}

		defer func() {
			if r := recover(); r != nil {
				_ = f.Resolve(zero, fmt.Errorf("%w: %v", ErrPanic, r))
			}
		}()

		_ = f.Resolve(fn(ctx, param))
	}()

	return f
}

// WaitAll awaits futures in order and stops at the first error. Results
// gathered so far are returned alongside it.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
