// Package cpu detects the processor features relevant to kernel selection.
package cpu

// Features describes CPU capabilities relevant to transform kernel
// selection.
type Features struct {
	HasSSE2      bool
	HasSSE3      bool
	HasSSSE3     bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return detectFeaturesImpl()
}
