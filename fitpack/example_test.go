package fitpack_test

import (
	"fmt"

	"github.com/katalvlaran/sinspline/fitpack"
)

// ExampleFit interpolates y = x² with a quadratic spline and reads it back
// between the samples.
func ExampleFit() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}

	knots, coefs, err := fitpack.Fit(xs, ys, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := fitpack.Eval(2.5, knots, coefs, 2)
	fmt.Printf("knots=%v\n", knots)
	fmt.Printf("S(2.5)=%.4f\n", v)
	// Output:
	// knots=[0 0 0 1.5 2.5 4 4 4]
	// S(2.5)=6.2500
}
