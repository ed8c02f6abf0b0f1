// Package kernels holds the transform implementations and selects the best
// one for the detected CPU features.
package kernels

import "github.com/jbeich/hadamard/internal/cpu"

// TransformFunc computes one Hadamard transform over a strided int16
// residual block, writing packed int32 coefficients. It reports whether it
// handled the transform; false means a buffer was too small or the stride
// below the block width, and nothing was written.
type TransformFunc func(src []int16, srcStride int, coeff []int32) bool

// Kernels groups the three block sizes for a selected implementation.
type Kernels struct {
	Hadamard8x8   TransformFunc
	Hadamard16x16 TransformFunc
	Hadamard32x32 TransformFunc
}

// Select returns the best available kernels for the detected features.
// The portable kernels are the only implementation today; assembly variants
// would hook in here, gated on features, and must stay bit-exact with the
// portable ones.
func Select(features cpu.Features) Kernels {
	_ = features

	return Kernels{
		Hadamard8x8:   hadamard8x8,
		Hadamard16x16: hadamard16x16,
		Hadamard32x32: hadamard32x32,
	}
}
