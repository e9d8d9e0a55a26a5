// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package outcome

// Unit is a type with exactly one value. It is used as the success payload
// of a [github.com/z5labs/outcome/result.Result] when an operation has no
// meaningful value to return, the same way "func() error" signals success
// by returning nil.
//
// All Unit values are equal to each other and Unit is comparable, so it can
// be used as a map key.
type Unit struct{}

// String implements the [fmt.Stringer] interface.
func (Unit) String() string {
	return "()"
}
