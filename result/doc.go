// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package result provides Result[T, E], a container holding either a
// success value (Ok) or a failure value (Err).
//
// Result makes expected failures part of the data flow instead of the
// control flow. A chain of Result returning steps forms a railway: the
// first Err bypasses every later step and propagates unchanged.
//
//	age := ParseAge(input)                  // Result[int, string]
//	rec := result.Bind(age, ValidateRange)  // skipped on Err
//	rec = result.Bind(rec, CreateRecord)    // skipped on Err
//
// # The zero value is poisoned
//
// Go materializes a zero value for any struct that was never assigned,
// and a zero Result would otherwise masquerade as an Err with no
// payload, violating the invariant that an error branch always carries
// one. Result therefore keeps an explicit discriminant which only its
// constructors set: on a zero value [Result.IsOk] and [Result.IsErr]
// both report false, [Result.Deconstruct] degrades to
// (false, zero, zero), and every other operation panics with
// [ErrUninitialized]. Always build Results through [Ok], [Err], [Of],
// [FromSuccess], [FromFailure], [OkOr] or [OkOrElse].
//
// # Error taxonomy
//
// Panics raised by this package signal misuse by the calling code and
// are never meant to be recovered from: [ErrNilError] for constructing
// an Err without a payload, [ErrUninitialized] for operating on a zero
// value, and [BranchError] for unwrapping the branch that is not
// there. Recoverable business failures are the Err branch itself and
// never panic.
//
// # Bridging
//
// [Of] adapts Go's (value, error) convention. [Result.ToOption],
// [Result.ErrToOption], [OkOr] and [OkOrElse] convert between Result
// and [github.com/z5labs/outcome/option.Option].
package result
