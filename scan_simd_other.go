//go:build !amd64 && !arm64

package squirreljson

// hasVectorSupport is always false on architectures with no classified
// vector width; the scalar scanner handles the entire input.
func hasVectorSupport() bool      { return false }
func vectorBlockSize() int        { return 1 }
func vectorizationThreshold() int { return 1<<31 - 1 }
