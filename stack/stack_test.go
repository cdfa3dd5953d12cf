package stack

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/containers/core"
)

func TestNewBounded(t *testing.T) {
	for _, c := range []int{0, -1} {
		s, err := NewBounded[int](c)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
		assert.Nil(t, s)
	}

	s, err := NewBounded[int](32)
	require.NoError(t, err)
	assert.Equal(t, 32, s.Cap())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.EmptyValue())
}

func TestBounded_LIFO(t *testing.T) {
	s, err := NewBounded[int](3)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.ErrorIs(t, s.Push(4), core.ErrFull)
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(s.All()))

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	got, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, s.Len())
}

func TestBounded_EmptyValue(t *testing.T) {
	type point struct{ a, b int }

	t.Run("pointers default to nil", func(t *testing.T) {
		s, err := NewBounded[*point](2)
		require.NoError(t, err)

		p := &point{1, 2}
		require.NoError(t, s.Push(p))

		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Same(t, p, got)
		assert.Nil(t, s.elems[0], "popped slot must be reset")

		got, ok = s.Pop()
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("custom sentinel", func(t *testing.T) {
		s, err := NewBounded(4, WithEmptyValue(-1))
		require.NoError(t, err)
		assert.Equal(t, []int{-1, -1, -1, -1}, s.elems)

		require.NoError(t, s.Push(7))
		got, _ := s.Pop()
		assert.Equal(t, 7, got)
		assert.Equal(t, -1, s.elems[0])

		got, ok := s.Peek()
		assert.False(t, ok)
		assert.Equal(t, -1, got)

		got, ok = s.Pop()
		assert.False(t, ok)
		assert.Equal(t, s.EmptyValue(), got)
	})
}

func TestBounded_Clear(t *testing.T) {
	s, err := NewBounded(3, WithEmptyValue("-"))
	require.NoError(t, err)
	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Push("b"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{"-", "-", "-"}, s.elems)
	assert.Empty(t, slices.Collect(s.All()))

	s.Clear()
	require.NoError(t, s.Push("c"))
	top, _ := s.Peek()
	assert.Equal(t, "c", top)
}

func TestBounded_AllEarlyStop(t *testing.T) {
	s, err := NewBounded[int](4)
	require.NoError(t, err)
	for i := range 4 {
		require.NoError(t, s.Push(i))
	}

	var got []int
	for e := range s.All() {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 2}, got)
}

func BenchmarkBounded_PushPop(b *testing.B) {
	b.ReportAllocs()
	s, _ := NewBounded[int](64)
	for i := 0; i < b.N; i++ {
		for j := range 64 {
			_ = s.Push(j)
		}
		for range 64 {
			_, _ = s.Pop()
		}
	}
}
