package registry

// Result is the terminal outcome of an asynchronously dispatched
// operation: either a raw payload or an error, never both pending.
type Result struct {
	Payload []byte
	Err     error
}

// Go runs fn on its own goroutine and returns a channel that delivers
// exactly one Result and is then closed. Every failure mode of fn,
// including body-encoding failures, arrives through the channel: a caller
// that receives once always observes a terminal outcome.
//
//	res := <-registry.Go(func() ([]byte, error) {
//		return client.LookupUsers(ctx, []string{"alice"})
//	})
func Go(fn func() ([]byte, error)) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)

		payload, err := fn()
		ch <- Result{Payload: payload, Err: err}
	}()

	return ch
}
