//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on ARM64 systems.
// Advanced SIMD (NEON) is architecturally mandatory on AArch64, but the
// flag is still read from the kernel-provided capability bits.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD || runtime.GOOS == "darwin",
		Architecture: runtime.GOARCH,
	}
}
