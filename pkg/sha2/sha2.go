// Package sha2 implements the SHA-2 family of cryptographic hash
// functions defined in FIPS 180-4: SHA-256, SHA-224, SHA-512, SHA-384,
// SHA-512/224 and SHA-512/256.
//
// Each function is a one-shot computation over a byte slice and returns
// the digest as a lowercase hex string. Input is binary-safe: a message
// may contain zero bytes, and a nil slice is the empty message. All
// functions are pure, keep no state between calls, and are safe to call
// concurrently.
package sha2

import (
	"encoding/hex"
	"errors"
	"math"
)

// Digest lengths in bytes (FIPS 180-4 Section 1, Figure 1). Hex output
// is twice as many characters.
const (
	SHA256Size     = 32
	SHA224Size     = 28
	SHA512Size     = 64
	SHA384Size     = 48
	SHA512_224Size = 28
	SHA512_256Size = 32
)

// Block sizes in bytes for the two engine families.
const (
	// BlockSize256 is the block size of SHA-256 and SHA-224.
	BlockSize256 = 64

	// BlockSize512 is the block size of SHA-512, SHA-384 and the
	// SHA-512/t variants.
	BlockSize512 = 128
)

// maxMessageBytes is the longest message this package accepts: the
// padding encodes the message length in bits in a 64-bit field, so the
// byte length must not exceed (2^64-1)/8.
const maxMessageBytes = math.MaxUint64 / 8

// Errors reported by Sum and the per-variant functions.
var (
	// ErrMessageTooLong means the message's bit length would not fit the
	// 64-bit length field used in padding. The length is never silently
	// truncated or wrapped.
	ErrMessageTooLong = errors.New("sha2: message exceeds 2^64-1 bits")

	// ErrUnknownVariant means Sum was called with a Variant that is not
	// in the catalog.
	ErrUnknownVariant = errors.New("sha2: unknown variant")
)

// Variant identifies one member of the SHA-2 family.
type Variant int

// The six catalogued variants.
const (
	VariantSHA256 Variant = iota
	VariantSHA224
	VariantSHA512
	VariantSHA384
	VariantSHA512_224
	VariantSHA512_256

	numVariants
)

// variantSpec binds a variant to its engine family, initial hash vector
// and truncation length. Exactly one of iv32/iv64 is set; which one
// selects the engine.
type variantSpec struct {
	name string
	size int // digest length in bytes after truncation
	iv32 *[8]uint32
	iv64 *[8]uint64
}

// catalog is the fixed variant table (FIPS 180-4 Sections 5.3 and 6).
// Every variant of a family shares its engine; only the initial vector
// and the truncation length differ.
var catalog = [numVariants]variantSpec{
	VariantSHA256:     {name: "SHA-256", size: SHA256Size, iv32: &ivSHA256},
	VariantSHA224:     {name: "SHA-224", size: SHA224Size, iv32: &ivSHA224},
	VariantSHA512:     {name: "SHA-512", size: SHA512Size, iv64: &ivSHA512},
	VariantSHA384:     {name: "SHA-384", size: SHA384Size, iv64: &ivSHA384},
	VariantSHA512_224: {name: "SHA-512/224", size: SHA512_224Size, iv64: &ivSHA512_224},
	VariantSHA512_256: {name: "SHA-512/256", size: SHA512_256Size, iv64: &ivSHA512_256},
}

// valid reports whether v names a catalogued variant.
func (v Variant) valid() bool {
	return v >= 0 && v < numVariants
}

// String returns the variant's standard name, e.g. "SHA-512/256".
func (v Variant) String() string {
	if !v.valid() {
		return "unknown"
	}
	return catalog[v].name
}

// Size returns the variant's digest length in bytes, or 0 for an unknown
// variant.
func (v Variant) Size() int {
	if !v.valid() {
		return 0
	}
	return catalog[v].size
}

// HexLength returns the length of the variant's hex-encoded digest.
func (v Variant) HexLength() int {
	return 2 * v.Size()
}

// checkMessageLength rejects messages whose bit length would overflow
// the padding length field. It takes the length rather than the message
// so the boundary is testable directly.
func checkMessageLength(n uint64) error {
	if n > maxMessageBytes {
		return ErrMessageTooLong
	}
	return nil
}

// Sum computes the digest of message under the given variant and returns
// it as a lowercase hex string of exactly v.HexLength() characters.
//
// Truncated variants keep the leading bytes of the family's full-width
// digest; the trailing bytes are cut.
func Sum(v Variant, message []byte) (string, error) {
	if !v.valid() {
		return "", ErrUnknownVariant
	}
	if err := checkMessageLength(uint64(len(message))); err != nil {
		return "", err
	}

	vs := &catalog[v]
	var raw []byte
	if vs.iv32 != nil {
		raw = engine256.sum(message, vs.iv32)
	} else {
		raw = engine512.sum(message, vs.iv64)
	}
	return hex.EncodeToString(raw[:vs.size]), nil
}

// SHA256 computes the SHA-256 digest of message as 64 hex characters.
func SHA256(message []byte) (string, error) {
	return Sum(VariantSHA256, message)
}

// SHA224 computes the SHA-224 digest of message as 56 hex characters.
func SHA224(message []byte) (string, error) {
	return Sum(VariantSHA224, message)
}

// SHA512 computes the SHA-512 digest of message as 128 hex characters.
func SHA512(message []byte) (string, error) {
	return Sum(VariantSHA512, message)
}

// SHA384 computes the SHA-384 digest of message as 96 hex characters.
func SHA384(message []byte) (string, error) {
	return Sum(VariantSHA384, message)
}

// SHA512_224 computes the SHA-512/224 digest of message as 56 hex
// characters.
func SHA512_224(message []byte) (string, error) {
	return Sum(VariantSHA512_224, message)
}

// SHA512_256 computes the SHA-512/256 digest of message as 64 hex
// characters.
func SHA512_256(message []byte) (string, error) {
	return Sum(VariantSHA512_256, message)
}
