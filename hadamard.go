package hadamard

import (
	"sync"

	"github.com/jbeich/hadamard/internal/cpu"
	"github.com/jbeich/hadamard/internal/kernels"
)

// Maximum residual sample magnitude per content bit depth. A residual is a
// difference of two values in [0, 2^depth), so its magnitude is bounded by
// 2^depth - 1. The transform assumes, and does not verify, that inputs
// respect the bound for 12-bit content or below: the first pass sums eight
// samples in int16 arithmetic, and 8*4095 = 32760 is the largest sum the
// narrow width must hold.
const (
	MaxSample8  = 255
	MaxSample10 = 1023
	MaxSample12 = 4095
)

// selected resolves kernel dispatch once per process. Architecture-specific
// kernels slot in through kernels.Select without touching callers.
var selected = sync.OnceValue(func() kernels.Kernels {
	return kernels.Select(cpu.DetectFeatures())
})

// Transform8x8 computes the order-8 Hadamard transform of an 8x8 residual
// block and writes 64 coefficients into coeff in the packed sequency layout.
//
// src holds at least 8 rows of 8 samples at the given stride (stride >= 8);
// coeff holds at least 64 elements and must not alias src. Buffers too small
// to satisfy the contract cause a panic.
func Transform8x8(src []int16, srcStride int, coeff []int32) {
	if !selected().Hadamard8x8(src, srcStride, coeff) {
		panic("hadamard: Transform8x8 buffer contract violated")
	}
}

// Transform16x16 computes the composed 16x16 transform: four 8x8 quadrant
// transforms at coefficient offsets 0, 64, 128 and 192, combined
// cross-quadrant at half scale. Writes 256 coefficients.
//
// Same buffer contract as Transform8x8, over a 16x16 block (stride >= 16).
func Transform16x16(src []int16, srcStride int, coeff []int32) {
	if !selected().Hadamard16x16(src, srcStride, coeff) {
		panic("hadamard: Transform16x16 buffer contract violated")
	}
}

// Transform32x32 computes the composed 32x32 transform: four 16x16 quadrant
// transforms at coefficient offsets 0, 256, 512 and 768, combined
// cross-quadrant at quarter scale. Writes 1024 coefficients.
//
// Same buffer contract as Transform8x8, over a 32x32 block (stride >= 32).
func Transform32x32(src []int16, srcStride int, coeff []int32) {
	if !selected().Hadamard32x32(src, srcStride, coeff) {
		panic("hadamard: Transform32x32 buffer contract violated")
	}
}

// SumAbs folds a coefficient block into a single activity score, the sum of
// absolute coefficient values. The result fits int64 for any block this
// package produces.
func SumAbs(coeff []int32) int64 {
	var sum int64
	for _, c := range coeff {
		if c < 0 {
			c = -c
		}
		sum += int64(c)
	}
	return sum
}
