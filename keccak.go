// Package keccak implements the Keccak sponge construction over the
// Keccak-f[1600] permutation, specialized to Keccak-256 as used by Ethereum.
//
// Keccak-256 pads with domain suffix 0x01, not the 0x06 of final SHA-3, so
// its digests differ from crypto/sha3.Sum256. The permutation is the portable
// reference form: lanes are read little-endian from a 200-byte state and the
// round constants come from the 8-bit LFSR of the Keccak reference.
//
// Every call owns its state, so hashes may run concurrently without
// coordination.
package keccak

const (
	// rate is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate = 136

	// Size is the length of a Keccak-256 digest in bytes.
	Size = 32
)

// Sum256 computes the Keccak-256 hash of data.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	sponge(rate, Keccak256.Suffix, data, out[:])
	return out
}

// Hash returns outLen bytes of Keccak-256 sponge output for data. Outputs
// longer than one block are extended by further squeezing, and the first 32
// bytes always equal Sum256(data). It panics if outLen is negative.
func Hash(data []byte, outLen int) []byte {
	if outLen < 0 {
		panic("keccak: negative output length")
	}
	out := make([]byte, outLen)
	sponge(rate, Keccak256.Suffix, data, out)
	return out
}
