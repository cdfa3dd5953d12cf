package stack_test

import (
	"fmt"

	"github.com/hupe1980/containers/stack"
)

func ExampleBounded() {
	type pair struct{ a, b int }

	s, err := stack.NewBounded[*pair](32)
	if err != nil {
		panic(err)
	}
	_ = s.Push(&pair{1, 2})
	_ = s.Push(&pair{10, 20})

	for {
		p, ok := s.Pop()
		if !ok {
			fmt.Println("empty")
			break
		}
		fmt.Println(p.a, p.b)
	}
	// Output:
	// 10 20
	// 1 2
	// empty
}
