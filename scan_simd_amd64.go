//go:build amd64

package squirreljson

import "github.com/klauspost/cpuid/v2"

// vectorBlockSizeAMD64 matches the teacher's AVX2 lane width
// (simdjson_amd64.go's stage1 block size): 32 bytes per classification
// pass.
const vectorBlockSizeAMD64 = 32

func hasVectorSupport() bool       { return cpuid.CPU.Has(cpuid.AVX2) }
func vectorBlockSize() int         { return vectorBlockSizeAMD64 }
func vectorizationThreshold() int  { return vectorBlockSizeAMD64 * 5 }
