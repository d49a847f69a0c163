package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/simplex"
)

func ExampleNewGrid() {
	g, err := simplex.NewGrid(3, simplex.Lattice)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("members:", g.Len())
	_ = g.Each(func(i int, c simplex.Composition) error {
		if i < 3 {
			fmt.Println(i, c)
		}
		return nil
	})
	// Output:
	// members: 21
	// 0 A=0, B=0, K=0, M=0, C=0, P=1
	// 1 A=0, B=0, K=0, M=0, C=0.5, P=0.5
	// 2 A=0, B=0, K=0, M=0, C=1, P=0
}
