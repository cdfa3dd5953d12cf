package vector_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/containers/core"
	"github.com/hupe1980/containers/vector"
)

func ExampleNewDynamic() {
	v, err := vector.NewDynamic[int](2, vector.WithGrowth(4))
	if err != nil {
		panic(err)
	}
	defer v.Free()

	for i := range 3 {
		_, _ = v.PushBack(i * 10)
	}

	fmt.Println(v.Data(), v.Len(), v.Cap())
	// Output: [0 10 20] 3 6
}

func ExampleDynamic_PopAt() {
	v, _ := vector.NewDynamic[int](4)
	for _, e := range []int{10, 20, 30, 40} {
		_, _ = v.PushBack(e)
	}

	out, _ := v.PopAt(1)
	fmt.Println(v.Data(), out)
	// Output: [10 40 30] reordered
}

func ExampleNewStatic() {
	var storage [2]string
	v, _ := vector.NewStatic(storage[:])

	_, _ = v.PushBack("a")
	_, _ = v.PushBack("b")
	_, err := v.PushBack("c")
	fmt.Println(errors.Is(err, core.ErrFull))

	_, err = v.Resize(4)
	fmt.Println(errors.Is(err, core.ErrUnsupported))
	// Output:
	// true
	// true
}

func ExampleCopy() {
	src, _ := vector.NewDynamic[int](4)
	for _, e := range []int{1, 2, 3} {
		_, _ = src.PushBack(e)
	}
	dst, _ := vector.NewDynamic[int](1)

	_, _ = vector.Copy[int](dst, src)
	fmt.Println(dst.Data(), dst.Cap())
	// Output: [1 2 3] 3
}
