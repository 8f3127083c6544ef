//go:build arm64

package squirreljson

import "github.com/klauspost/cpuid/v2"

// vectorBlockSizeARM64 matches a single NEON register: 8 bytes per
// classification pass when built for the 64-bit half-width tbl idiom
// spec.md §4.2 calls out for NEON.
const vectorBlockSizeARM64 = 8

func hasVectorSupport() bool      { return cpuid.CPU.Has(cpuid.ASIMD) }
func vectorBlockSize() int        { return vectorBlockSizeARM64 }
func vectorizationThreshold() int { return vectorBlockSizeARM64 * 5 }
