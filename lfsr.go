package keccak

// rounds is the number of rounds of Keccak-f[1600].
const rounds = 24

// roundConstants holds the ι constants for all 24 rounds. Each permutation
// call restarts the generator from 0x01, so the sequence is the same on every
// call and is computed once.
var roundConstants = func() (rc [rounds]uint64) {
	r := byte(0x01)
	for i := range rc {
		rc[i] = roundConstant(&r)
	}
	return rc
}()

// lfsr86540 steps the 8-bit LFSR x^8+x^6+x^5+x^4+1 and returns its output bit.
func lfsr86540(r *byte) uint64 {
	*r = *r<<1 ^ (*r>>7)*0x71
	return uint64(*r&2) >> 1
}

// roundConstant consumes 7 bits from the LFSR. Bit j lands at lane bit
// position 2^j - 1.
func roundConstant(r *byte) uint64 {
	var rc uint64
	for j := 0; j < 7; j++ {
		rc |= lfsr86540(r) << ((1 << j) - 1)
	}
	return rc
}
