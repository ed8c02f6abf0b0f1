package hadamard_test

import (
	"fmt"

	"github.com/jbeich/hadamard"
)

// A flat residual block concentrates all of its energy in the DC
// coefficient: 64*C for the 8x8 transform.
func ExampleTransform8x8() {
	src := make([]int16, 64)
	for i := range src {
		src[i] = 5
	}

	coeff := make([]int32, 64)
	hadamard.Transform8x8(src, 8, coeff)

	fmt.Println(coeff[0], hadamard.SumAbs(coeff))
	// Output: 320 320
}

// The composed sizes halve (16x16) and quarter (32x32) the cross-quadrant
// combine, so a constant block scores 128*C at either size.
func ExampleTransform16x16() {
	src := make([]int16, 256)
	for i := range src {
		src[i] = 10
	}

	coeff := make([]int32, 256)
	hadamard.Transform16x16(src, 16, coeff)

	fmt.Println(coeff[0])
	// Output: 1280
}
