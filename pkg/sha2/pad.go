// Merkle–Damgård message padding (FIPS 180-4 Section 5.1).

package sha2

import "encoding/binary"

// pad returns message extended to a multiple of blockSize: the original
// bytes, a single 0x80 byte, zero fill, and the message length in bits as
// a big-endian integer in the trailing length field. lengthSize is the
// size of that field (8 bytes for the 64-byte-block family, 16 for the
// 128-byte-block family, per FIPS 180-4 Sections 5.1.1 and 5.1.2).
//
// The length is written into the final 8 bytes. Messages longer than
// maxMessageBytes are rejected before padding, so when the field is 16
// bytes its upper half is always zero and the zero fill supplies it.
//
// The result is always at least one block and never aliases message.
func pad(message []byte, blockSize, lengthSize int) []byte {
	total := len(message) + 1 + lengthSize
	paddedLen := (total + blockSize - 1) / blockSize * blockSize

	out := make([]byte, paddedLen)
	copy(out, message)
	out[len(message)] = 0x80
	binary.BigEndian.PutUint64(out[paddedLen-8:], uint64(len(message))*8)
	return out
}
