package kernels

// hadamard16x16 builds the 16x16 transform from four 8x8 quadrant
// transforms at coefficient offsets 0, 64, 128 and 192, then combines the
// quadrants position-wise at half scale. The halving happens on the
// quadrant sum and difference with an arithmetic shift (floor), before the
// final unscaled add/subtract, so the composed result carries exactly one
// net halving relative to the four raw sub-transforms.
func hadamard16x16(src []int16, srcStride int, coeff []int32) bool {
	if srcStride < 16 || len(src) < 15*srcStride+16 || len(coeff) < 256 {
		return false
	}

	// Quadrant geometry in the source block: top-left, top-right,
	// bottom-left, bottom-right.
	hadamard8x8(src, srcStride, coeff[0:64])
	hadamard8x8(src[8:], srcStride, coeff[64:128])
	hadamard8x8(src[8*srcStride:], srcStride, coeff[128:192])
	hadamard8x8(src[8*srcStride+8:], srcStride, coeff[192:256])

	for i := 0; i < 64; i++ {
		a0 := coeff[i]
		a1 := coeff[64+i]
		a2 := coeff[128+i]
		a3 := coeff[192+i]

		b0 := (a0 + a1) >> 1
		b1 := (a0 - a1) >> 1
		b2 := (a2 + a3) >> 1
		b3 := (a2 - a3) >> 1

		coeff[i] = b0 + b2
		coeff[64+i] = b1 + b3
		coeff[128+i] = b0 - b2
		coeff[192+i] = b1 - b3
	}

	return true
}

// hadamard32x32 recurses into hadamard16x16 per quadrant (offsets 0, 256,
// 512, 768) and combines at quarter scale: the shift by 2 is applied to the
// quadrant sums and differences before any further addition, which keeps
// every accumulator inside int32 across the full 8->16->32 recursion for
// inputs within the 12-bit bound.
func hadamard32x32(src []int16, srcStride int, coeff []int32) bool {
	if srcStride < 32 || len(src) < 31*srcStride+32 || len(coeff) < 1024 {
		return false
	}

	hadamard16x16(src, srcStride, coeff[0:256])
	hadamard16x16(src[16:], srcStride, coeff[256:512])
	hadamard16x16(src[16*srcStride:], srcStride, coeff[512:768])
	hadamard16x16(src[16*srcStride+16:], srcStride, coeff[768:1024])

	for i := 0; i < 256; i++ {
		a0 := coeff[i]
		a1 := coeff[256+i]
		a2 := coeff[512+i]
		a3 := coeff[768+i]

		b0 := (a0 + a1) >> 2
		b1 := (a0 - a1) >> 2
		b2 := (a2 + a3) >> 2
		b3 := (a2 - a3) >> 2

		coeff[i] = b0 + b2
		coeff[256+i] = b1 + b3
		coeff[512+i] = b0 - b2
		coeff[768+i] = b1 - b3
	}

	return true
}
