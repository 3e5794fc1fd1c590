// Package async provides a single-assignment result slot and helpers for
// filling it from a worker goroutine.
//
// A Future starts empty. Exactly one Resolve call stores a value and an
// error and wakes every waiter; later calls fail with ErrAlreadyResolved.
// Await blocks until then. AwaitContext and AwaitTimeout give up early
// without affecting the future.
//
//	fut := async.NewFuture[int]()
//	go func() {
//		_ = fut.Resolve(worker(2, 3))
//	}()
//	sum, err := fut.Await()
//
// Async combines both steps: it runs fn in a new goroutine and resolves the
// returned future with its result. A canceled context resolves the future
// with ctx.Err() before fn starts, and a panic in fn is turned into ErrPanic.
package async
