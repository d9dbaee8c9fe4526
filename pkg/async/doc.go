// Package async provides generic helpers for running computations
// asynchronously and waiting for their completion.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller waits with Await or AwaitContext, or polls with IsComplete.
//
//	futures := make([]*async.Future[bool], len(addresses))
//	for i, addr := range addresses {
//	    futures[i] = async.Async(ctx, addr, checker.Check)
//	}
//	for i, f := range futures {
//	    ok, err := f.AwaitContext(ctx) // results consumed in submission order
//	    ...
//	}
//
// If the context is already cancelled when Async is called the function is
// not run and the Future completes with the context error.
package async
