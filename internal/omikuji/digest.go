// Package omikuji decodes a deterministic fortune from the SHA-256 digest
// of a (year, user) seed pair.
package omikuji

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Salt namespaces this tool's hash usage so the same (year, user) pair
// hashed by an unrelated system can never collide with a fortune seed.
// Changing it changes every fortune ever drawn; treat it as frozen.
const Salt = "sha-omikuji-2026"

// Digest is the 256-bit hash a fortune is decoded from. It is an opaque
// bit-addressable buffer: fields index into it by absolute bit position,
// big-endian, most significant bit first within each byte.
type Digest [32]byte

// SeedString builds the canonical seed string hashed by Derive.
func SeedString(year uint32, user string) string {
	return fmt.Sprintf("%d-%s-%s", year, user, Salt)
}

// Derive hashes the (year, user) seed pair into a Digest. Any year and any
// user string, including empty, are valid; Derive cannot fail.
func Derive(year uint32, user string) Digest {
	return Digest(sha256.Sum256([]byte(SeedString(year, user))))
}

// Hex returns the digest as a 64-character lowercase hex string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// ReadBits reads n consecutive bits starting at absolute bit offset start,
// most significant bit first, assembled so the last bit read lands in bit 0
// of the result. Bits addressed past the end of the digest contribute
// nothing — the read silently shortens instead of failing. The field
// catalog never reaches past the end (TestCatalogWithinDigest pins this),
// so the lenient path only matters for ad-hoc reads.
func (d Digest) ReadBits(start, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		bit := start + i
		byteIdx := bit / 8
		if byteIdx >= len(d) {
			continue
		}
		shift := 7 - bit%8
		v = v<<1 | uint64(d[byteIdx]>>shift&1)
	}
	return v
}
