// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package async applies the Option and Result combinator algebra to
// pending computations, so a railway chain can cross suspension points
// without losing its short-circuit semantics.
//
// # Two pending computation shapes
//
// [Task] is the lazy, allocation avoiding shape: a computation that
// runs when awaited. [Resolved] lifts an already available value into
// a Task with no synchronization machinery at all, which makes Task
// the right choice for hot paths where the value is frequently already
// known.
//
// [Promise] is the eager, heap allocating shape: a channel backed cell
// resolved by one goroutine and awaited by others. A Promise is a
// Task, so both shapes flow through the same combinators with
// identical behavior; choosing between them is purely a performance
// concern.
//
// # Combinator contract
//
// Every combinator awaits its source exactly once. If the source
// resolves to the continue branch (Some/Ok) the callback's Task is
// awaited and its outcome adopted; on the short circuit branch
// (None/Err) the callback is never invoked and the branch propagates,
// already resolved. Steps inside one chain are strictly sequential and
// no combinator spawns goroutines: concurrency belongs to the caller,
// e.g. by resolving Promises from their own goroutines.
//
// Cancellation is wholly delegated to the [context.Context] passed to
// Await. A ctx error propagates out of the chain unchanged, alongside
// a zero container value: None for Options, and for Results the
// poisoned zero value which fails loudly if used.
package async
