package spectrum_test

import (
	"fmt"

	"github.com/katalvlaran/pigmentfit/spectrum"
)

// ExampleNewReference normalizes a linear irradiance ramp on a 5-point grid.
func ExampleNewReference() {
	grid, _ := spectrum.GridFromPoints(400, 800, 5)
	ref, err := spectrum.NewReference(grid,
		[]float64{400, 500, 600, 700, 800},
		[]float64{1, 2, 3, 4, 5}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("integral=%.0f\n", ref.Integral())
	fmt.Printf("first=%.6f last=%.6f\n", ref.Normalized()[0], ref.Normalized()[4])
	// Output:
	// integral=1200
	// first=0.000833 last=0.004167
}
