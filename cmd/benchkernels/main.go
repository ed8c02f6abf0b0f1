// Command benchkernels times the selected Hadamard kernels against the
// scalar reference implementation and reports ns/op per block size.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/jbeich/hadamard/internal/cpu"
	"github.com/jbeich/hadamard/internal/kernels"
	"github.com/jbeich/hadamard/internal/reference"
)

type implementation struct {
	name string
	run  func(src []int16, stride int, coeff []int32)
}

func main() {
	var (
		sizeList = flag.String("sizes", "8,16,32", "comma-separated block sizes")
		iters    = flag.Int("iters", 100000, "benchmark iterations")
		warmup   = flag.Int("warmup", 1000, "warmup iterations")
		seed     = flag.Int64("seed", 1, "rng seed")
		verify   = flag.Bool("verify", true, "check kernels against the reference before timing")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	features := cpu.DetectFeatures()
	selected := kernels.Select(features)
	fmt.Printf("arch=%s iters=%d warmup=%d\n", features.Architecture, *iters, *warmup)
	fmt.Printf("%8s  %12s  %12s\n", "size", "impl", "ns/op")

	rnd := rand.New(rand.NewSource(*seed))

	for _, n := range sizes {
		impls, ok := implementationsFor(selected, n)
		if !ok {
			fmt.Printf("%8d  unsupported block size\n", n)
			continue
		}

		src := make([]int16, n*n)
		for i := range src {
			src[i] = int16(rnd.Intn(2*4095+1) - 4095)
		}
		coeff := make([]int32, n*n)

		if *verify && !verifyAgainstReference(impls, src, n, coeff) {
			fmt.Printf("%8d  kernels diverge from reference, skipping\n", n)
			continue
		}

		for _, impl := range impls {
			for i := 0; i < *warmup; i++ {
				impl.run(src, n, coeff)
			}

			runtime.GC()

			start := time.Now()
			for i := 0; i < *iters; i++ {
				impl.run(src, n, coeff)
			}
			elapsed := time.Since(start)

			fmt.Printf("%8d  %12s  %12.1f\n", n, impl.name,
				float64(elapsed.Nanoseconds())/float64(*iters))
		}
	}
}

func implementationsFor(selected kernels.Kernels, n int) ([]implementation, bool) {
	wrap := func(fn kernels.TransformFunc) func([]int16, int, []int32) {
		return func(src []int16, stride int, coeff []int32) {
			fn(src, stride, coeff)
		}
	}

	switch n {
	case 8:
		return []implementation{
			{"selected", wrap(selected.Hadamard8x8)},
			{"reference", reference.Hadamard8x8},
		}, true
	case 16:
		return []implementation{
			{"selected", wrap(selected.Hadamard16x16)},
			{"reference", reference.Hadamard16x16},
		}, true
	case 32:
		return []implementation{
			{"selected", wrap(selected.Hadamard32x32)},
			{"reference", reference.Hadamard32x32},
		}, true
	default:
		return nil, false
	}
}

func verifyAgainstReference(impls []implementation, src []int16, n int, scratch []int32) bool {
	want := make([]int32, n*n)
	impls[len(impls)-1].run(src, n, want)

	for _, impl := range impls[:len(impls)-1] {
		impl.run(src, n, scratch)
		for i := range scratch {
			if scratch[i] != want[i] {
				return false
			}
		}
	}

	return true
}

func parseSizes(list string) []int {
	var sizes []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}
		sizes = append(sizes, n)
	}
	return sizes
}
