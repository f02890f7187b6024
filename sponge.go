package keccak

import "encoding/binary"

// sponge absorbs in, applies multi-rate padding with the given domain suffix
// and squeezes len(out) bytes into out. rate is in bytes and must be in
// [1, 200]; callers validate it.
func sponge(rate int, suffix byte, in, out []byte) {
	var state [200]byte

	// Absorb full blocks.
	for len(in) >= rate {
		xorIn(&state, in[:rate])
		keccakF1600(&state)
		in = in[rate:]
	}

	// Absorb the trailing partial block, then pad10*1.
	xorIn(&state, in)
	b := len(in)
	state[b] ^= suffix
	if suffix&0x80 != 0 && b == rate-1 {
		// The suffix already occupies the last byte's high bit.
		keccakF1600(&state)
	}
	state[rate-1] ^= 0x80
	keccakF1600(&state)

	// Squeeze.
	for {
		n := copy(out, state[:rate])
		out = out[n:]
		if len(out) == 0 {
			break
		}
		keccakF1600(&state)
	}
	clear(state[:])
}

// xorIn XORs data into the beginning of state, a lane at a time where
// possible.
func xorIn(state *[200]byte, data []byte) {
	n := len(data) >> 3
	for i := 0; i < n; i++ {
		lane := state[8*i:]
		binary.LittleEndian.PutUint64(lane, binary.LittleEndian.Uint64(lane)^binary.LittleEndian.Uint64(data[8*i:]))
	}
	// Remaining bytes (< 8).
	for i := n << 3; i < len(data); i++ {
		state[i] ^= data[i]
	}
}
