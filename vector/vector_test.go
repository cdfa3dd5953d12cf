package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/containers/core"
	"github.com/hupe1980/containers/testutil"
)

func TestCopy(t *testing.T) {
	t.Run("dynamic grows to fit", func(t *testing.T) {
		src := newDynamic(t, 8, 1, 2, 3, 4, 5)
		dst := newDynamic(t, 2, 9)

		out, err := Copy[int](dst, src)
		require.NoError(t, err)
		assert.Equal(t, core.Done, out)
		assert.Equal(t, src.Data(), dst.Data())
		assert.Equal(t, 5, dst.Cap())

		// Value copy: later writes to src do not show through.
		require.NoError(t, src.Set(0, 100))
		got, err := dst.At(0)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("larger destination keeps capacity", func(t *testing.T) {
		src := newDynamic(t, 2, 1, 2)
		dst := newDynamic(t, 10, 7, 7, 7, 7)

		_, err := Copy[int](dst, src)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, dst.Data())
		assert.Equal(t, 10, dst.Cap())
	})

	t.Run("round trip", func(t *testing.T) {
		a := newDynamic(t, 4, 3, 1, 4, 1, 5)
		b := newDynamic(t, 1)
		c := newDynamic(t, 1)

		_, err := Copy[int](b, a)
		require.NoError(t, err)
		_, err = Copy[int](c, b)
		require.NoError(t, err)
		assert.Equal(t, a.Data(), c.Data())
	})

	t.Run("into static", func(t *testing.T) {
		src := newDynamic(t, 4, 1, 2, 3)

		dst, err := NewStatic(make([]int, 3))
		require.NoError(t, err)
		_, err = Copy[int](dst, src)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, dst.Data())

		small, err := NewStatic(make([]int, 2))
		require.NoError(t, err)
		_, err = Copy[int](small, src)
		assert.ErrorIs(t, err, core.ErrUnsupported)
		assert.Equal(t, 0, small.Len())
	})

	t.Run("from static", func(t *testing.T) {
		src, err := NewStatic([]int{0, 0, 0})
		require.NoError(t, err)
		_, _ = src.PushBack(8)
		_, _ = src.PushBack(9)

		dst := newDynamic(t, 1)
		_, err = Copy[int](dst, src)
		require.NoError(t, err)
		assert.Equal(t, []int{8, 9}, dst.Data())
	})

	t.Run("not ready", func(t *testing.T) {
		src := newDynamic(t, 4, 1)
		dst := newDynamic(t, 4)
		dst.Free()

		_, err := Copy[int](dst, src)
		assert.ErrorIs(t, err, core.ErrNotReady)

		_, err = Copy[int](src, dst)
		assert.ErrorIs(t, err, core.ErrNotReady)
		assert.Equal(t, []int{1}, src.Data())
	})
}

// TestRandomOperations drives both vector kinds through a random operation
// mix and compares them against a plain slice model.
func TestRandomOperations(t *testing.T) {
	rng := testutil.NewRNG(42)
	values := rng.DistinctUint32s(4096, 1<<20)

	dyn, err := NewDynamic[uint32](1, WithGrowth(3))
	require.NoError(t, err)
	static, err := NewStatic(make([]uint32, 64))
	require.NoError(t, err)

	vectors := map[string]Vector[uint32]{
		"dynamic": dyn,
		"static":  static,
	}

	for name, v := range vectors {
		t.Run(name, func(t *testing.T) {
			var model []uint32
			next := 0

			for step := range 2000 {
				switch op := rng.Intn(4); {
				case op == 0 && v.Len() < v.Cap() || op == 0 && name == "dynamic":
					e := values[next%len(values)]
					next++
					_, err := v.PushBack(e)
					require.NoError(t, err)
					model = append(model, e)

				case op == 1 && len(model) > 0 && (v.Len() < v.Cap() || name == "dynamic"):
					e := values[next%len(values)]
					next++
					i := rng.Intn(len(model))
					_, err := v.PushAt(e, i)
					require.NoError(t, err)
					model = append(model, model[i])
					model[i] = e

				case op == 2:
					out, err := v.PopBack()
					require.NoError(t, err)
					if len(model) == 0 {
						assert.Equal(t, core.WasEmpty, out)
					} else {
						model = model[:len(model)-1]
					}

				case op == 3 && len(model) > 0:
					i := rng.Intn(len(model))
					removed := model[i]
					_, err := v.PopAt(i)
					require.NoError(t, err)
					last := len(model) - 1
					model[i] = model[last]
					model = model[:last]
					assert.False(t, testutil.Bitmap(v.Data()).Contains(removed), "step %d", step)
				}

				require.LessOrEqual(t, v.Len(), v.Cap(), "step %d", step)
				require.Equal(t, len(model), v.Len(), "step %d", step)
			}

			if len(model) > 0 {
				assert.Equal(t, model, v.Data())
			}
			assert.True(t, testutil.SameSet(model, v.Data()))
		})
	}
}
