package reference

import "testing"

// signChanges counts sign transitions along a basis row.
func signChanges(row [8]int32) int {
	changes := 0
	for i := 1; i < 8; i++ {
		if row[i] != row[i-1] {
			changes++
		}
	}
	return changes
}

// TestBasisSequencyOrder pins the output permutation: positions 1 and 2 are
// swapped relative to strict sequency order, every other position k carries
// exactly k sign changes.
func TestBasisSequencyOrder(t *testing.T) {
	t.Parallel()

	basis := Basis8()
	wantChanges := [8]int{0, 2, 1, 3, 4, 5, 6, 7}

	for k, row := range basis {
		for i, v := range row {
			if v != 1 && v != -1 {
				t.Fatalf("basis[%d][%d] = %d, want +1 or -1", k, i, v)
			}
		}
		if got := signChanges(row); got != wantChanges[k] {
			t.Errorf("basis row %d has %d sign changes, want %d", k, got, wantChanges[k])
		}
		if row[0] != 1 {
			t.Errorf("basis row %d starts with %d, want +1", k, row[0])
		}
	}
}

// TestBasisOrthogonality: distinct rows of an order-8 Hadamard matrix are
// orthogonal and each row has squared norm 8.
func TestBasisOrthogonality(t *testing.T) {
	t.Parallel()

	basis := Basis8()

	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			var dot int32
			for i := 0; i < 8; i++ {
				dot += basis[a][i] * basis[b][i]
			}

			want := int32(0)
			if a == b {
				want = 8
			}
			if dot != want {
				t.Errorf("basis rows %d x %d: dot = %d, want %d", a, b, dot, want)
			}
		}
	}
}

func TestReferenceDC(t *testing.T) {
	t.Parallel()

	src := make([]int16, 64)
	for i := range src {
		src[i] = 5
	}

	coeff := make([]int32, 64)
	Hadamard8x8(src, 8, coeff)

	if coeff[0] != 320 {
		t.Errorf("coeff[0] = %d, want 320", coeff[0])
	}
	for i := 1; i < 64; i++ {
		if coeff[i] != 0 {
			t.Fatalf("coeff[%d] = %d, want 0", i, coeff[i])
		}
	}
}
