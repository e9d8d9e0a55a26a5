// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package outcome provides algebraic value containers for modelling the
// presence or absence of a value and the success or failure of an operation
// without nil checks or sentinel errors sprinkled through calling code.
//
// The module is organized into small, focused packages:
//
//   - [github.com/z5labs/outcome/option]: Option[T], a value that is either
//     present (Some) or absent (None)
//   - [github.com/z5labs/outcome/result]: Result[T, E], an operation outcome
//     that is either a success value (Ok) or a failure value (Err)
//   - [github.com/z5labs/outcome/async]: combinators which apply the same
//     short-circuit chaining across pending computations
//
// This root package only carries [Unit], the zero-information success marker
// shared by the subpackages.
//
// # Chaining
//
// Producers return an Option or Result and callers chain combinators instead
// of branching at every step:
//
//	age := user.ParseAge(input)               // result.Result[int, string]
//	rec := result.Bind(age, user.Validate)    // skipped entirely on Err
//	rec.Match(
//	    func(r user.Record) { fmt.Println("created", r) },
//	    func(e string) { fmt.Println("rejected:", e) },
//	)
//
// Expected failures travel as the Err/None branch; panics are reserved for
// misuse of the API itself, such as unwrapping the wrong branch.
package outcome
