// Package digest computes the 16-byte content digest used by sifs to
// dedup whole file payloads. The sifs data model only needs the
// contract from spec: deterministic, collision-resistant byte-sequence
// to fixed-width digest. We ground it on BLAKE2b-128, truncated by the
// hash itself (not by slicing a wider digest) via blake2b.New(size,
// key).
package digest

import (
	"golang.org/x/crypto/blake2b"
)

// ByteLen is the width in bytes of a Digest. It must match
// sifs.DigestByteLen.
const ByteLen = 16

// Digest is a fixed-width content digest.
type Digest [ByteLen]byte

// Sum returns the Digest of data.
func Sum(data []byte) Digest {
	h, err := blake2b.New(ByteLen, nil)
	if err != nil {
		// blake2b.New only errors for an invalid size or a too-long key;
		// both are compile-time-fixed here, so this can't happen.
		panic(err)
	}
	h.Write(data)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}
