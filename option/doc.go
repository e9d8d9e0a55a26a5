// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package option provides Option[T], a container which either holds
// exactly one non-nil value or nothing at all.
//
// Option replaces nil checks and comma-ok plumbing with explicit,
// composable data flow:
//
//	port := option.FromOk(cfg["port"])
//	n := option.Map(port, strconv.Atoi)
//
// # Combinators
//
//   - [Map], [Bind], [Option.Filter]: transform or chain while None
//     short-circuits without invoking the callback
//   - [Option.Or], [Option.OrElse]: eager and lazy fallbacks
//   - [Option.Tap]: side-effecting inspection that leaves the Option
//     unchanged
//   - [Zip], [ZipWith]: combine two Options, present only if both are
//
// Type-changing combinators are package level functions since Go
// methods cannot introduce type parameters.
//
// # Extraction
//
// Every chain should end in a total extraction: [Option.Get],
// [Option.UnwrapOr], [Option.UnwrapOrElse] or [Option.Match] never
// panic. [Option.Unwrap] and [Option.Expect] panic on None and are
// meant for cases the caller has already proven impossible.
//
// # Bridging
//
// [FromPtr] and [FromOk] adapt Go's two native "possibly absent"
// shapes. [Values] filters a sequence of Options down to the present
// payloads lazily.
package option
