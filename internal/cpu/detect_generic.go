//go:build !amd64 && !arm64 && !386

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for platforms without SIMD detection
// support. Kernel selection degrades to the portable implementations.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
