// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package option

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPtr(t *testing.T) {
	t.Run("non-nil pointer", func(t *testing.T) {
		n := 42
		o := FromPtr(&n)
		require.Equal(t, Some(42), o)

		// the pointee is copied at bridge time
		n = 7
		require.Equal(t, Some(42), o)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *int
		require.Equal(t, None[int](), FromPtr(p))
	})
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}

	require.Equal(t, Some(1), FromOk(m["a"], true))

	v, ok := m["b"]
	require.Equal(t, None[int](), FromOk(v, ok))
}

func TestOption_Ptr(t *testing.T) {
	t.Run("some yields a copy", func(t *testing.T) {
		o := Some(42)
		p := o.Ptr()
		require.NotNil(t, p)
		require.Equal(t, 42, *p)

		*p = 7
		require.Equal(t, Some(42), o)
	})

	t.Run("none yields nil", func(t *testing.T) {
		require.Nil(t, None[int]().Ptr())
	})
}

func TestValues(t *testing.T) {
	opts := []Option[int]{Some(1), None[int](), Some(2), None[int](), Some(3)}

	got := slices.Collect(Values(slices.Values(opts)))
	require.Equal(t, []int{1, 2, 3}, got)

	t.Run("is restartable", func(t *testing.T) {
		seq := Values(slices.Values(opts))
		require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
		require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	})

	t.Run("stops when the consumer does", func(t *testing.T) {
		var first []int
		for v := range Values(slices.Values(opts)) {
			first = append(first, v)
			break
		}
		require.Equal(t, []int{1}, first)
	})

	t.Run("all absent", func(t *testing.T) {
		seq := Values(slices.Values([]Option[int]{None[int](), None[int]()}))
		require.Empty(t, slices.Collect(seq))
	})
}

func TestSliceValues(t *testing.T) {
	require.Equal(
		t,
		[]int{1, 2, 3},
		SliceValues([]Option[int]{Some(1), None[int](), Some(2), None[int](), Some(3)}),
	)
	require.Empty(t, SliceValues([]Option[int]{}))
}
