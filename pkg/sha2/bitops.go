// Word-level logical functions for the SHA-2 family (FIPS 180-4
// Section 4.1). All of them are generic over the word width; the two
// compression engines instantiate them for uint32 and uint64.

package sha2

// word constrains the engine's lane type to the two SHA-2 word widths.
type word interface {
	~uint32 | ~uint64
}

// wordBits reports the width of T in bits (32 or 64).
func wordBits[T word]() uint {
	// A shift of 32 zeroes a uint32 but not a uint64. The shift is
	// split in two so vet accepts it for the 32-bit instantiation.
	if ^T(0)>>16>>16 == 0 {
		return 32
	}
	return 64
}

// rotr rotates x right by n bits. n must be in (0, width).
func rotr[T word](x T, n uint) T {
	return x>>n | x<<(wordBits[T]()-n)
}

// shr shifts x right by n bits, filling with zeros.
func shr[T word](x T, n uint) T {
	return x >> n
}

// ch is the "choose" function: for each bit, x selects between y and z.
func ch[T word](x, y, z T) T {
	return (x & y) ^ (^x & z)
}

// maj is the "majority" function: each result bit is the majority vote
// of the corresponding bits of x, y and z.
func maj[T word](x, y, z T) T {
	return (x & y) ^ (x & z) ^ (y & z)
}

// bigSigma is the Σ function used in the round function: the XOR of
// three right-rotations of x. The rotation amounts differ per family
// and per position (Σ0 vs Σ1).
func bigSigma[T word](x T, r0, r1, r2 uint) T {
	return rotr(x, r0) ^ rotr(x, r1) ^ rotr(x, r2)
}

// smallSigma is the σ function used in schedule expansion: the XOR of
// two right-rotations and one right-shift of x.
func smallSigma[T word](x T, r0, r1, s uint) T {
	return rotr(x, r0) ^ rotr(x, r1) ^ shr(x, s)
}
