package squirreljson

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// HashAlgorithm selects how AttachValidated fingerprints an input buffer
// before trusting a cached OffsetTable against it (SPEC_FULL.md
// "Supplemented features" #1, resolving spec.md §9's open question about
// safe re-attach).
type HashAlgorithm uint8

const (
	// HashXXH3 is the default: fast, good distribution, not intended to
	// resist a deliberately crafted collision.
	HashXXH3 HashAlgorithm = iota
	// HashBlake2b trades speed for a cryptographic hash function, for
	// callers re-attaching offsets sourced from a cache they do not fully
	// trust. Only the first 64 bits of the BLAKE2b-512 digest are kept,
	// so the recorded fingerprint is no wider than xxh3's.
	HashBlake2b
)

func hashInput(alg HashAlgorithm, input []byte) uint64 {
	switch alg {
	case HashBlake2b:
		sum := blake2b.Sum512(input)
		return binary.LittleEndian.Uint64(sum[:8])
	default:
		return xxh3.Hash(input)
	}
}

// ErrHashMismatch is returned by AttachValidated when the input does not
// match the hash recorded for an OffsetTable at scan time.
var ErrHashMismatch = errors.New("squirreljson: input does not match the offset table's recorded hash")

// AttachUnchecked pairs an OffsetTable with input without verifying that
// input is the same buffer (or even the same bytes) the table was
// scanned from. Misuse corrupts every Slice the table hands out; callers
// that cannot independently guarantee input is unchanged should use
// AttachValidated instead.
func (t OffsetTable) AttachUnchecked(input []byte) *Document {
	return &Document{input: input, offsets: t}
}

// AttachValidated pairs an OffsetTable with input only if input hashes
// to the value recorded when the table was produced, using whichever
// HashAlgorithm the originating scan was configured with.
func (t OffsetTable) AttachValidated(input []byte) (*Document, error) {
	if hashInput(t.hashAlg, input) != t.inputHash {
		return nil, fmt.Errorf("attaching offsets to input: %w", ErrHashMismatch)
	}
	return &Document{input: input, offsets: t}, nil
}
