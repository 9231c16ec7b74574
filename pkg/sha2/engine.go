// Block parsing, message-schedule expansion and the compression rounds
// (FIPS 180-4 Section 6). One generic engine serves both families; the
// two instances below differ only in word width, block size, round count,
// round-constant table and sigma rotation amounts.

package sha2

// engine is the block-consuming state machine for one SHA-2 family.
// Instances are read-only after construction and safe for concurrent use.
type engine[T word] struct {
	blockSize  int // bytes per block
	lengthSize int // bytes reserved for the padding length field
	rounds     int // schedule length and round count
	k          []T // round constants

	// Rotation amounts for the Σ functions and rotation/shift amounts
	// for the σ functions (the third σ entry is a plain right shift).
	bigS0, bigS1     [3]uint
	smallS0, smallS1 [3]uint
}

// engine256 processes 64-byte blocks of 32-bit words over 64 rounds.
// It serves SHA-256 and SHA-224 (FIPS 180-4 Section 6.2).
var engine256 = &engine[uint32]{
	blockSize:  BlockSize256,
	lengthSize: 8,
	rounds:     64,
	k:          k256[:],
	bigS0:      [3]uint{2, 13, 22},
	bigS1:      [3]uint{6, 11, 25},
	smallS0:    [3]uint{7, 18, 3},
	smallS1:    [3]uint{17, 19, 10},
}

// engine512 processes 128-byte blocks of 64-bit words over 80 rounds.
// It serves SHA-512, SHA-384, SHA-512/224 and SHA-512/256
// (FIPS 180-4 Section 6.4).
var engine512 = &engine[uint64]{
	blockSize:  BlockSize512,
	lengthSize: 16,
	rounds:     80,
	k:          k512[:],
	bigS0:      [3]uint{28, 34, 39},
	bigS1:      [3]uint{14, 18, 41},
	smallS0:    [3]uint{1, 8, 7},
	smallS1:    [3]uint{19, 61, 6},
}

// parseBlock assembles one block into its 16 big-endian words. Bytes are
// combined with explicit shifts so the host byte order never leaks in.
func parseBlock[T word](block []byte) [16]T {
	wordSize := int(wordBits[T]() / 8)

	var words [16]T
	for i := range words {
		var w T
		for _, b := range block[i*wordSize : (i+1)*wordSize] {
			w = w<<8 | T(b)
		}
		words[i] = w
	}
	return words
}

// compress folds one parsed block into state: schedule expansion
// (FIPS 180-4 Section 6.2.2/6.4.2 step 1), the round function (step 3)
// and the final state addition (step 4). All arithmetic is modulo the
// word size.
func (en *engine[T]) compress(state *[8]T, block [16]T) {
	w := make([]T, en.rounds)
	copy(w, block[:])
	for i := 16; i < en.rounds; i++ {
		w[i] = smallSigma(w[i-2], en.smallS1[0], en.smallS1[1], en.smallS1[2]) +
			w[i-7] +
			smallSigma(w[i-15], en.smallS0[0], en.smallS0[1], en.smallS0[2]) +
			w[i-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < en.rounds; i++ {
		t1 := h + bigSigma(e, en.bigS1[0], en.bigS1[1], en.bigS1[2]) +
			ch(e, f, g) + en.k[i] + w[i]
		t2 := bigSigma(a, en.bigS0[0], en.bigS0[1], en.bigS0[2]) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// sum runs the whole pipeline for one message: pad, parse, compress each
// block in order with the state chained across blocks, then serialize the
// final state big-endian. The result is the family's full-width digest;
// the caller applies any per-variant truncation.
func (en *engine[T]) sum(message []byte, iv *[8]T) []byte {
	padded := pad(message, en.blockSize, en.lengthSize)

	state := *iv
	for off := 0; off < len(padded); off += en.blockSize {
		en.compress(&state, parseBlock[T](padded[off:off+en.blockSize]))
	}
	return serializeState(&state)
}

// serializeState writes the 8 state words big-endian, most significant
// byte first within each word.
func serializeState[T word](state *[8]T) []byte {
	wordSize := int(wordBits[T]() / 8)

	out := make([]byte, 0, 8*wordSize)
	for _, v := range state {
		for shift := (wordSize - 1) * 8; shift >= 0; shift -= 8 {
			out = append(out, byte(v>>uint(shift)))
		}
	}
	return out
}
