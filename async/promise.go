// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package async

import (
	"context"
	"errors"
	"sync"
)

// ErrNotReady is returned by [Promise.Current] while the Promise has
// not been resolved yet.
var ErrNotReady = errors.New("async: promise is not ready")

// Promise is the eager, heap allocating counterpart of [TaskFunc]: a
// single assignment cell which one goroutine resolves and any number
// of goroutines await. It implements [Task].
//
// A Promise must be created with [NewPromise]. It resolves at most
// once; later calls to Resolve or Reject are ignored.
type Promise[T any] struct {
	done chan struct{}

	once  sync.Once
	value T
	err   error
}

// NewPromise returns an unresolved Promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		done: make(chan struct{}),
	}
}

// Resolve fulfills the Promise with v. Only the first resolution wins.
func (p *Promise[T]) Resolve(v T) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

// Reject resolves the Promise with an infrastructure failure. Domain
// failures should travel inside T instead, as the Err branch of a
// Result. It panics if err is nil, since a nil rejection would be
// indistinguishable from a successful resolution with a zero value.
func (p *Promise[T]) Reject(err error) {
	if err == nil {
		panic("async: promise rejected with nil error")
	}
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await blocks until the Promise is resolved or ctx is done, whichever
// comes first. Cancellation is entirely delegated to ctx: a ctx error
// propagates out unchanged and leaves the Promise untouched for other
// waiters.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Current returns the resolution without blocking. It returns
// [ErrNotReady] while the Promise is still pending.
func (p *Promise[T]) Current() (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
		var zero T
		return zero, ErrNotReady
	}
}
