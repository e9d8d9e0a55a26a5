// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	r := Ok[string](42)
	require.True(t, r.IsOk())
	require.False(t, r.IsErr())

	v, ok := r.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestErr(t *testing.T) {
	t.Run("holds the failure payload", func(t *testing.T) {
		r := Err[int]("boom")
		require.False(t, r.IsOk())
		require.True(t, r.IsErr())

		e, ok := r.GetErr()
		require.True(t, ok)
		require.Equal(t, "boom", e)
	})

	t.Run("panics on nil error interface", func(t *testing.T) {
		var err error
		require.PanicsWithValue(t, ErrNilError, func() {
			Err[int](err)
		})
	})

	t.Run("panics on nil pointer payload", func(t *testing.T) {
		var p *string
		require.PanicsWithValue(t, ErrNilError, func() {
			Err[int](p)
		})
	})
}

func TestResult_ZeroValue(t *testing.T) {
	t.Run("is neither Ok nor Err", func(t *testing.T) {
		var r Result[int, string]
		require.False(t, r.IsOk())
		require.False(t, r.IsErr())
	})

	t.Run("deconstructs gracefully", func(t *testing.T) {
		var r Result[int, string]
		ok, v, e := r.Deconstruct()
		require.False(t, ok)
		require.Zero(t, v)
		require.Zero(t, e)
	})

	t.Run("renders without panicking", func(t *testing.T) {
		var r Result[int, string]
		require.Equal(t, "Result(uninitialized)", r.String())
	})

	t.Run("every payload touching operation panics", func(t *testing.T) {
		var r Result[int, string]

		operations := map[string]func(){
			"IsOkAnd":       func() { r.IsOkAnd(func(int) bool { return true }) },
			"IsErrAnd":      func() { r.IsErrAnd(func(string) bool { return true }) },
			"Contains":      func() { Contains(r, 0) },
			"ContainsErr":   func() { ContainsErr(r, "") },
			"Map":           func() { Map(r, strconv.Itoa) },
			"MapErr":        func() { MapErr(r, func(s string) string { return s }) },
			"Bind":          func() { Bind(r, func(int) Result[int, string] { return r }) },
			"Or":            func() { r.Or(Ok[string](1)) },
			"OrElse":        func() { r.OrElse(func(string) Result[int, string] { return r }) },
			"Tap":           func() { r.Tap(func(int) {}) },
			"TapErr":        func() { r.TapErr(func(string) {}) },
			"Get":           func() { r.Get() },
			"GetErr":        func() { r.GetErr() },
			"TryGet":        func() { r.TryGet() },
			"Unwrap":        func() { r.Unwrap() },
			"UnwrapErr":     func() { r.UnwrapErr() },
			"Expect":        func() { r.Expect("msg") },
			"ExpectErr":     func() { r.ExpectErr("msg") },
			"UnwrapOr":      func() { r.UnwrapOr(0) },
			"UnwrapOrElse":  func() { r.UnwrapOrElse(func(string) int { return 0 }) },
			"Match":         func() { r.Match(func(int) {}, func(string) {}) },
			"MatchValue":    func() { Match(r, strconv.Itoa, func(s string) string { return s }) },
			"MapOr":         func() { MapOr(r, "", strconv.Itoa) },
			"MapOrElse":     func() { MapOrElse(r, func(s string) string { return s }, strconv.Itoa) },
			"Compare":       func() { Compare(r, Ok[string](1)) },
			"CompareSecond": func() { Compare(Ok[string](1), r) },
			"ToOption":      func() { r.ToOption() },
			"ErrToOption":   func() { r.ErrToOption() },
		}

		for name, op := range operations {
			t.Run(name, func(t *testing.T) {
				require.PanicsWithValue(t, ErrUninitialized, op)
			})
		}
	})
}

func TestResult_Equality(t *testing.T) {
	require.Equal(t, Ok[string](1), Ok[string](1))
	require.NotEqual(t, Ok[string](1), Ok[string](2))
	require.Equal(t, Err[int]("x"), Err[int]("x"))
	require.NotEqual(t, Err[int]("x"), Err[int]("y"))

	// Ok and Err are never equal, even when the payloads print identically.
	require.Equal(t, Ok[string]("x").String(), "Ok(x)")
	require.NotEqual(t, Ok[string]("x"), Err[string]("x"))

	// equal containers must be interchangeable as map keys
	m := map[Result[int, string]]int{
		Ok[string](1):  1,
		Err[int]("no"): 2,
	}
	require.Equal(t, 1, m[Ok[string](1)])
	require.Equal(t, 2, m[Err[int]("no")])
}

func TestResult_IsOkAnd(t *testing.T) {
	testCases := []struct {
		name         string
		result       Result[int, string]
		expect       bool
		expectCalled bool
	}{
		{name: "ok satisfying", result: Ok[string](10), expect: true, expectCalled: true},
		{name: "ok not satisfying", result: Ok[string](3), expect: false, expectCalled: true},
		{name: "err short-circuits", result: Err[int]("boom"), expect: false, expectCalled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			got := tc.result.IsOkAnd(func(v int) bool {
				called = true
				return v > 5
			})
			require.Equal(t, tc.expect, got)
			require.Equal(t, tc.expectCalled, called)
		})
	}
}

func TestResult_IsErrAnd(t *testing.T) {
	testCases := []struct {
		name         string
		result       Result[int, string]
		expect       bool
		expectCalled bool
	}{
		{name: "err satisfying", result: Err[int]("boom"), expect: true, expectCalled: true},
		{name: "err not satisfying", result: Err[int]("meh"), expect: false, expectCalled: true},
		{name: "ok short-circuits", result: Ok[string](1), expect: false, expectCalled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			got := tc.result.IsErrAnd(func(e string) bool {
				called = true
				return e == "boom"
			})
			require.Equal(t, tc.expect, got)
			require.Equal(t, tc.expectCalled, called)
		})
	}
}

func TestContains(t *testing.T) {
	require.True(t, Contains(Ok[string](2), 2))
	require.False(t, Contains(Ok[string](2), 3))
	require.False(t, Contains(Err[int]("boom"), 0))
}

func TestContainsErr(t *testing.T) {
	require.True(t, ContainsErr(Err[int]("boom"), "boom"))
	require.False(t, ContainsErr(Err[int]("boom"), "meh"))
	require.False(t, ContainsErr(Ok[string](1), ""))
}

func TestMap(t *testing.T) {
	t.Run("transforms the success value", func(t *testing.T) {
		require.Equal(t, Ok[string]("42"), Map(Ok[string](42), strconv.Itoa))
	})

	t.Run("never calls f on err", func(t *testing.T) {
		called := false
		got := Map(Err[int]("boom"), func(v int) string {
			called = true
			return "unreachable"
		})
		require.Equal(t, Err[string]("boom"), got)
		require.False(t, called)
	})
}

func TestMapErr(t *testing.T) {
	t.Run("transforms the failure payload", func(t *testing.T) {
		got := MapErr(Err[int]("boom"), func(e string) error {
			return errors.New("wrapped: " + e)
		})
		require.True(t, got.IsErr())
		require.EqualError(t, got.UnwrapErr(), "wrapped: boom")
	})

	t.Run("never calls f on ok", func(t *testing.T) {
		called := false
		got := MapErr(Ok[string](1), func(e string) string {
			called = true
			return "unreachable"
		})
		require.Equal(t, Ok[string](1), got)
		require.False(t, called)
	})

	t.Run("rejects a nil replacement payload", func(t *testing.T) {
		require.PanicsWithValue(t, ErrNilError, func() {
			MapErr(Err[int]("boom"), func(string) error { return nil })
		})
	})
}

type record struct {
	age int
}

func parseAge(s string) Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Err[int]("'" + s + "' is not a number")
	}
	return Ok[string](n)
}

func validateRange(age int) Result[int, string] {
	if age < 0 || age > 150 {
		return Err[int](strconv.Itoa(age) + " is out of range")
	}
	return Ok[string](age)
}

func createRecord(age int) Result[record, string] {
	return Ok[string](record{age: age})
}

func TestBind(t *testing.T) {
	t.Run("chains ok steps", func(t *testing.T) {
		got := Bind(Bind(parseAge("42"), validateRange), createRecord)
		require.Equal(t, Ok[string](record{age: 42}), got)
	})

	t.Run("first failure bypasses every later step", func(t *testing.T) {
		validateCalled := false
		createCalled := false

		got := Bind(Bind(parseAge("abc"), func(age int) Result[int, string] {
			validateCalled = true
			return validateRange(age)
		}), func(age int) Result[record, string] {
			createCalled = true
			return createRecord(age)
		})

		require.Equal(t, Err[record]("'abc' is not a number"), got)
		require.False(t, validateCalled)
		require.False(t, createCalled)
	})

	t.Run("is associative", func(t *testing.T) {
		for _, r := range []Result[int, string]{Ok[string](42), Ok[string](200), Err[int]("boom")} {
			left := Bind(Bind(r, validateRange), createRecord)
			right := Bind(r, func(age int) Result[record, string] {
				return Bind(validateRange(age), createRecord)
			})
			require.Equal(t, left, right)
		}
	})
}

func TestResult_Or(t *testing.T) {
	require.Equal(t, Ok[string](1), Ok[string](1).Or(Ok[string](2)))
	require.Equal(t, Ok[string](2), Err[int]("boom").Or(Ok[string](2)))
	require.Equal(t, Err[int]("other"), Err[int]("boom").Or(Err[int]("other")))
}

func TestResult_OrElse(t *testing.T) {
	t.Run("never calls f on ok", func(t *testing.T) {
		called := false
		got := Ok[string](1).OrElse(func(string) Result[int, string] {
			called = true
			return Ok[string](2)
		})
		require.Equal(t, Ok[string](1), got)
		require.False(t, called)
	})

	t.Run("calls f exactly once with the failure payload", func(t *testing.T) {
		calls := 0
		var seen string
		got := Err[int]("boom").OrElse(func(e string) Result[int, string] {
			calls++
			seen = e
			return Ok[string](2)
		})
		require.Equal(t, Ok[string](2), got)
		require.Equal(t, 1, calls)
		require.Equal(t, "boom", seen)
	})
}

func TestResult_Tap(t *testing.T) {
	var seen []int
	got := Ok[string](5).Tap(func(v int) { seen = append(seen, v) })
	require.Equal(t, Ok[string](5), got)
	require.Equal(t, []int{5}, seen)

	called := false
	got = Err[int]("boom").Tap(func(int) { called = true })
	require.Equal(t, Err[int]("boom"), got)
	require.False(t, called)
}

func TestResult_TapErr(t *testing.T) {
	var seen []string
	got := Err[int]("boom").TapErr(func(e string) { seen = append(seen, e) })
	require.Equal(t, Err[int]("boom"), got)
	require.Equal(t, []string{"boom"}, seen)

	called := false
	got = Ok[string](5).TapErr(func(string) { called = true })
	require.Equal(t, Ok[string](5), got)
	require.False(t, called)
}

func TestResult_TryGet(t *testing.T) {
	t.Run("ok zeroes the error slot", func(t *testing.T) {
		v, e, ok := Ok[string](42).TryGet()
		require.True(t, ok)
		require.Equal(t, 42, v)
		require.Zero(t, e)
	})

	t.Run("err zeroes the value slot", func(t *testing.T) {
		v, e, ok := Err[int]("boom").TryGet()
		require.False(t, ok)
		require.Zero(t, v)
		require.Equal(t, "boom", e)
	})
}

func TestResult_Deconstruct(t *testing.T) {
	ok, v, e := Ok[string](42).Deconstruct()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.Zero(t, e)

	ok, v, e = Err[int]("boom").Deconstruct()
	require.False(t, ok)
	require.Zero(t, v)
	require.Equal(t, "boom", e)
}

func TestResult_Unwrap(t *testing.T) {
	require.Equal(t, 42, Ok[string](42).Unwrap())

	require.PanicsWithValue(
		t,
		BranchError{Msg: "result: Unwrap called on Err(boom)"},
		func() { Err[int]("boom").Unwrap() },
	)
}

func TestResult_UnwrapErr(t *testing.T) {
	require.Equal(t, "boom", Err[int]("boom").UnwrapErr())

	require.PanicsWithValue(
		t,
		BranchError{Msg: "result: UnwrapErr called but Result is Ok"},
		func() { Ok[string](42).UnwrapErr() },
	)
}

func TestResult_Expect(t *testing.T) {
	require.Equal(t, 42, Ok[string](42).Expect("should be ok"))

	require.PanicsWithValue(
		t,
		BranchError{Msg: "age lookup failed: Err(boom)"},
		func() { Err[int]("boom").Expect("age lookup failed") },
	)
}

func TestResult_ExpectErr(t *testing.T) {
	require.Equal(t, "boom", Err[int]("boom").ExpectErr("should have failed"))

	require.PanicsWithValue(
		t,
		BranchError{Msg: "should have failed: Result is Ok"},
		func() { Ok[string](42).ExpectErr("should have failed") },
	)
}

func TestResult_UnwrapOr(t *testing.T) {
	require.Equal(t, 1, Ok[string](1).UnwrapOr(9))
	require.Equal(t, 9, Err[int]("boom").UnwrapOr(9))
}

func TestResult_UnwrapOrElse(t *testing.T) {
	called := false
	fallback := func(e string) int {
		called = true
		require.Equal(t, "boom", e)
		return 9
	}

	require.Equal(t, 1, Ok[string](1).UnwrapOrElse(fallback))
	require.False(t, called)
	require.Equal(t, 9, Err[int]("boom").UnwrapOrElse(fallback))
	require.True(t, called)
}

func TestResult_Match(t *testing.T) {
	t.Run("calls okFn on ok", func(t *testing.T) {
		var got int
		Ok[string](3).Match(
			func(v int) { got = v },
			func(string) { t.Fatal("errFn must not be called") },
		)
		require.Equal(t, 3, got)
	})

	t.Run("calls errFn on err", func(t *testing.T) {
		var got string
		Err[int]("boom").Match(
			func(int) { t.Fatal("okFn must not be called") },
			func(e string) { got = e },
		)
		require.Equal(t, "boom", got)
	})
}

func TestMatch(t *testing.T) {
	label := func(r Result[int, string]) string {
		return Match(r,
			func(v int) string { return "ok " + strconv.Itoa(v) },
			func(e string) string { return "err " + e },
		)
	}

	require.Equal(t, "ok 3", label(Ok[string](3)))
	require.Equal(t, "err boom", label(Err[int]("boom")))
}

func TestMapOr(t *testing.T) {
	require.Equal(t, "42", MapOr(Ok[string](42), "n/a", strconv.Itoa))
	require.Equal(t, "n/a", MapOr(Err[int]("boom"), "n/a", strconv.Itoa))
}

func TestMapOrElse(t *testing.T) {
	def := func(e string) string { return "failed: " + e }

	require.Equal(t, "42", MapOrElse(Ok[string](42), def, strconv.Itoa))
	require.Equal(t, "failed: boom", MapOrElse(Err[int]("boom"), def, strconv.Itoa))
}

func TestFlatten(t *testing.T) {
	testCases := []struct {
		name   string
		nested Result[Result[int, string], string]
		expect Result[int, string]
	}{
		{name: "ok of ok", nested: Ok[string](Ok[string](42)), expect: Ok[string](42)},
		{name: "ok of err", nested: Ok[string](Err[int]("inner")), expect: Err[int]("inner")},
		{name: "outer err", nested: Err[Result[int, string]]("outer"), expect: Err[int]("outer")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Flatten(tc.nested))

			// Flatten must agree with Bind(identity).
			viaBind := Bind(tc.nested, func(inner Result[int, string]) Result[int, string] {
				return inner
			})
			require.Equal(t, viaBind, Flatten(tc.nested))
		})
	}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Result[int, string]
		expect int
	}{
		{name: "err before ok", a: Err[int]("z"), b: Ok[string](-100), expect: -1},
		{name: "ok after err", a: Ok[string](-100), b: Err[int]("z"), expect: 1},
		{name: "oks by value", a: Ok[string](1), b: Ok[string](2), expect: -1},
		{name: "equal oks", a: Ok[string](2), b: Ok[string](2), expect: 0},
		{name: "errs by payload", a: Err[int]("a"), b: Err[int]("b"), expect: -1},
		{name: "equal errs", a: Err[int]("a"), b: Err[int]("a"), expect: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Compare(tc.a, tc.b))
		})
	}
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "Ok(42)", Ok[string](42).String())
	require.Equal(t, "Err(boom)", Err[int]("boom").String())
}
