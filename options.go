package squirreljson

// Default working-set sizes for a fresh (non-reused) scan. Chosen to
// cover a typical small-to-medium API payload without growing, the same
// rationale the teacher's options.go uses for its own tape/string-buffer
// defaults.
const (
	DefaultOffsetsCapacity = 48
	DefaultStackCapacity   = 6
)

type scanConfig struct {
	offsetsCapacity int
	stackCapacity   int
	hashAlg         HashAlgorithm
}

func defaultScanConfig() scanConfig {
	return scanConfig{
		offsetsCapacity: DefaultOffsetsCapacity,
		stackCapacity:   DefaultStackCapacity,
		hashAlg:         HashXXH3,
	}
}

// ScanOption configures a single call to ScanTrusted or
// ScanTrustedAttach.
type ScanOption func(*scanConfig)

// WithOffsetsCapacity pre-sizes the offset table for a fresh scan
// (ignored when attaching a DetachedDocument whose offsets slice already
// has capacity).
func WithOffsetsCapacity(n int) ScanOption {
	return func(c *scanConfig) { c.offsetsCapacity = n }
}

// WithStackCapacity pre-sizes the container nesting stack for a fresh
// scan (ignored when attaching a DetachedDocument whose stack slice
// already has capacity).
func WithStackCapacity(n int) ScanOption {
	return func(c *scanConfig) { c.stackCapacity = n }
}

// WithHashAlgorithm selects the hash AttachValidated will later check
// input against. It only affects the Document this scan produces.
func WithHashAlgorithm(alg HashAlgorithm) ScanOption {
	return func(c *scanConfig) { c.hashAlg = alg }
}
