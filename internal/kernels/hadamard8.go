package kernels

// hadamard8x8 computes the order-8 Hadamard transform of an 8x8 block in
// two passes of the same three-stage butterfly network.
//
// The vertical pass runs in int16: with samples bounded by 12-bit content
// (|x| <= 4095) a column sum reaches at most 8*4095 = 32760, which still
// fits. The horizontal pass widens to int32 before combining, because its
// inputs already grew by up to 8x.
//
// Both passes write their eight results through the same fixed sequency
// permutation. Positions 1 and 2 carry two and one sign changes
// respectively (swapped relative to strict sequency order); the table is
// load-bearing and must not be "corrected".
//
// Output layout: the coefficient for vertical index p and horizontal index
// m lands at 32*(p>>2) + 4*m + (p&3), i.e. two 32-element halves each laid
// out as an 8x4 row-major tile. This matches the layout the composed sizes
// and downstream consumers expect.
func hadamard8x8(src []int16, srcStride int, coeff []int32) bool {
	if srcStride < 8 || len(src) < 7*srcStride+8 || len(coeff) < 64 {
		return false
	}

	// Intermediate block, already transposed: row p holds the vertical
	// sequency-p coefficient of every column.
	var mid [8][8]int16

	for j := 0; j < 8; j++ {
		a0 := src[0*srcStride+j]
		a1 := src[1*srcStride+j]
		a2 := src[2*srcStride+j]
		a3 := src[3*srcStride+j]
		a4 := src[4*srcStride+j]
		a5 := src[5*srcStride+j]
		a6 := src[6*srcStride+j]
		a7 := src[7*srcStride+j]

		b0 := a0 + a1
		b1 := a0 - a1
		b2 := a2 + a3
		b3 := a2 - a3
		b4 := a4 + a5
		b5 := a4 - a5
		b6 := a6 + a7
		b7 := a6 - a7

		c0 := b0 + b2
		c2 := b0 - b2
		c1 := b1 + b3
		c3 := b1 - b3
		c4 := b4 + b6
		c6 := b4 - b6
		c5 := b5 + b7
		c7 := b5 - b7

		mid[0][j] = c0 + c4
		mid[1][j] = c2 - c6
		mid[2][j] = c0 - c4
		mid[3][j] = c2 + c6
		mid[4][j] = c3 + c7
		mid[5][j] = c3 - c7
		mid[6][j] = c1 - c5
		mid[7][j] = c1 + c5
	}

	out := coeff[:64]

	for p := 0; p < 8; p++ {
		// Explicit widening: the pass-1/pass-2 boundary is where the
		// arithmetic moves from int16 to int32.
		a0 := int32(mid[p][0])
		a1 := int32(mid[p][1])
		a2 := int32(mid[p][2])
		a3 := int32(mid[p][3])
		a4 := int32(mid[p][4])
		a5 := int32(mid[p][5])
		a6 := int32(mid[p][6])
		a7 := int32(mid[p][7])

		b0 := a0 + a1
		b1 := a0 - a1
		b2 := a2 + a3
		b3 := a2 - a3
		b4 := a4 + a5
		b5 := a4 - a5
		b6 := a6 + a7
		b7 := a6 - a7

		c0 := b0 + b2
		c2 := b0 - b2
		c1 := b1 + b3
		c3 := b1 - b3
		c4 := b4 + b6
		c6 := b4 - b6
		c5 := b5 + b7
		c7 := b5 - b7

		base := (p>>2)*32 + (p & 3)
		out[base+0] = c0 + c4
		out[base+4] = c2 - c6
		out[base+8] = c0 - c4
		out[base+12] = c2 + c6
		out[base+16] = c3 + c7
		out[base+20] = c3 - c7
		out[base+24] = c1 - c5
		out[base+28] = c1 + c5
	}

	return true
}
