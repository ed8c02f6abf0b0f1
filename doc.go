// Package hadamard implements the integer Hadamard transform family used by
// block-based video encoders to estimate residual activity: an 8x8 base
// kernel with sequency-ordered output, recursively composed into 16x16 and
// 32x32 variants.
//
// The transform is an unnormalized approximation intended purely as a
// relative ranking signal. It is not invertible and not energy-preserving
// across composition levels; the typical consumer folds the coefficient
// block into a single scalar with SumAbs and compares scores across
// candidate blocks or modes.
//
// All three entry points are pure functions over caller-owned buffers:
// input is a strided int16 residual block (source minus prediction), output
// is a densely packed int32 coefficient block of exactly N*N elements.
// Invocations on disjoint buffers are safe to run concurrently.
//
// Results are bit-exact across platforms. The 16x16 combine halves with an
// arithmetic (floor) shift and the 32x32 combine quarters the same way, so
// a constant block C produces coefficient 64*C at position 0 for the 8x8
// transform and 128*C for both larger sizes.
package hadamard
