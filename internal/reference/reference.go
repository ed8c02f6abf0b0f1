// Package reference provides a straightforward scalar implementation of
// the Hadamard transform family. It is the correctness oracle: optimized
// kernels must match it bit-exactly for all valid inputs.
//
// Unlike the production kernels it performs every stage in int32, so a
// divergence between the two also flags a narrow-width overflow in the
// optimized path.
package reference

// butterfly8 applies the three-stage order-8 butterfly network and returns
// the results in the fixed sequency output permutation.
func butterfly8(a [8]int32) [8]int32 {
	b0 := a[0] + a[1]
	b1 := a[0] - a[1]
	b2 := a[2] + a[3]
	b3 := a[2] - a[3]
	b4 := a[4] + a[5]
	b5 := a[4] - a[5]
	b6 := a[6] + a[7]
	b7 := a[6] - a[7]

	c0 := b0 + b2
	c2 := b0 - b2
	c1 := b1 + b3
	c3 := b1 - b3
	c4 := b4 + b6
	c6 := b4 - b6
	c5 := b5 + b7
	c7 := b5 - b7

	return [8]int32{
		c0 + c4,
		c2 - c6,
		c0 - c4,
		c2 + c6,
		c3 + c7,
		c3 - c7,
		c1 - c5,
		c1 + c5,
	}
}

// Basis8 returns the order-8 basis matrix in the output permutation: row k
// is the +/-1 pattern a unit impulse at input position i contributes to
// output k. Derived by feeding unit vectors through the butterfly network.
func Basis8() [8][8]int32 {
	var basis [8][8]int32
	for i := 0; i < 8; i++ {
		var unit [8]int32
		unit[i] = 1
		out := butterfly8(unit)
		for k := 0; k < 8; k++ {
			basis[k][i] = out[k]
		}
	}
	return basis
}

// Hadamard8x8 computes the 8x8 transform: vertical butterflies per column,
// horizontal butterflies per intermediate row, output packed as two
// 32-element halves of 8x4 row-major tiles.
func Hadamard8x8(src []int16, srcStride int, coeff []int32) {
	var mid [8][8]int32

	for j := 0; j < 8; j++ {
		var col [8]int32
		for i := 0; i < 8; i++ {
			col[i] = int32(src[i*srcStride+j])
		}
		out := butterfly8(col)
		for p := 0; p < 8; p++ {
			mid[p][j] = out[p]
		}
	}

	for p := 0; p < 8; p++ {
		out := butterfly8(mid[p])
		base := (p>>2)*32 + (p & 3)
		for m := 0; m < 8; m++ {
			coeff[base+4*m] = out[m]
		}
	}
}

// Hadamard16x16 composes four quadrant Hadamard8x8 results with the
// half-scale cross-quadrant combine.
func Hadamard16x16(src []int16, srcStride int, coeff []int32) {
	Hadamard8x8(src, srcStride, coeff[0:64])
	Hadamard8x8(src[8:], srcStride, coeff[64:128])
	Hadamard8x8(src[8*srcStride:], srcStride, coeff[128:192])
	Hadamard8x8(src[8*srcStride+8:], srcStride, coeff[192:256])

	combineQuadrants(coeff, 64, 1)
}

// Hadamard32x32 composes four quadrant Hadamard16x16 results with the
// quarter-scale cross-quadrant combine.
func Hadamard32x32(src []int16, srcStride int, coeff []int32) {
	Hadamard16x16(src, srcStride, coeff[0:256])
	Hadamard16x16(src[16:], srcStride, coeff[256:512])
	Hadamard16x16(src[16*srcStride:], srcStride, coeff[512:768])
	Hadamard16x16(src[16*srcStride+16:], srcStride, coeff[768:1024])

	combineQuadrants(coeff, 256, 2)
}

// combineQuadrants rewrites the four quadrant sub-blocks of size
// quadrantLen in place. The shift is arithmetic, so odd negative sums round
// toward negative infinity; that floor semantic is part of the contract.
func combineQuadrants(coeff []int32, quadrantLen int, shift uint) {
	for i := 0; i < quadrantLen; i++ {
		a0 := coeff[i]
		a1 := coeff[quadrantLen+i]
		a2 := coeff[2*quadrantLen+i]
		a3 := coeff[3*quadrantLen+i]

		b0 := (a0 + a1) >> shift
		b1 := (a0 - a1) >> shift
		b2 := (a2 + a3) >> shift
		b3 := (a2 - a3) >> shift

		coeff[i] = b0 + b2
		coeff[quadrantLen+i] = b1 + b3
		coeff[2*quadrantLen+i] = b0 - b2
		coeff[3*quadrantLen+i] = b1 - b3
	}
}
