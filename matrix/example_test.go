package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/matrix"
)

// ExampleFactorize factors a system once and solves it for two right-hand sides.
func ExampleFactorize() {
	A, _ := matrix.NewDenseFrom(2, 2, []float64{
		4, 1,
		1, 3,
	})
	f, err := matrix.Factorize(A)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x1, _ := f.Solve([]float64{1, 2})
	x2, _ := f.Solve([]float64{5, 4})
	fmt.Printf("x1=[%.4f %.4f]\n", x1[0], x1[1])
	fmt.Printf("x2=[%.4f %.4f]\n", x2[0], x2[1])
	// Output:
	// x1=[0.0909 0.6364]
	// x2=[1.0000 1.0000]
}

// ExampleLeastSquares fits y = a + b·x through three points.
func ExampleLeastSquares() {
	A, _ := matrix.NewDenseFrom(3, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
	})
	coef, err := matrix.LeastSquares(A, []float64{1, 3, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("a=%.3f b=%.3f\n", coef[0], coef[1])
	// Output:
	// a=1.000 b=2.000
}
