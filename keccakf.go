package keccak

import (
	"encoding/binary"
	"math/bits"
)

// laneIndex returns the index of lane (x, y) in the 5x5 grid.
func laneIndex(x, y int) int { return x + 5*y }

// laneOffset returns the byte offset of lane (x, y) in the 200-byte state.
func laneOffset(x, y int) int { return 8 * laneIndex(x, y) }

// loadLanes reads the 25 little-endian lanes of the state.
func loadLanes(a *[25]uint64, s *[200]byte) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[laneIndex(x, y)] = binary.LittleEndian.Uint64(s[laneOffset(x, y):])
		}
	}
}

// storeLanes writes the 25 lanes back into the state.
func storeLanes(s *[200]byte, a *[25]uint64) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			binary.LittleEndian.PutUint64(s[laneOffset(x, y):], a[laneIndex(x, y)])
		}
	}
}

// keccakF1600 applies the Keccak-f[1600] permutation to the state in place.
func keccakF1600(s *[200]byte) {
	var a [25]uint64
	loadLanes(&a, s)
	for round := 0; round < rounds; round++ {
		theta(&a)
		rhoPi(&a)
		chi(&a)
		iotaStep(&a, round)
	}
	storeLanes(s, &a)
}

// theta XORs every lane with the parities of its two neighbouring columns.
// All parities are taken before any lane is written.
func theta(a *[25]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[laneIndex(x, y)] ^= d
		}
	}
}

// rhoPi rotates and moves the 24 lanes other than (0,0) in a single walk
// starting at (1,0). The lane read at step t is rotated by the t-th
// triangular number and written to (y, 2x+3y).
func rhoPi(a *[25]uint64) {
	x, y := 1, 0
	carried := a[laneIndex(x, y)]
	r := 0
	for t := 0; t < 24; t++ {
		r += t + 1
		x, y = y, (2*x+3*y)%5
		i := laneIndex(x, y)
		carried, a[i] = a[i], bits.RotateLeft64(carried, r%64)
	}
}

// chi mixes each row nonlinearly using a copy of the row.
func chi(a *[25]uint64) {
	var row [5]uint64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			row[x] = a[laneIndex(x, y)]
		}
		for x := 0; x < 5; x++ {
			a[laneIndex(x, y)] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
		}
	}
}

// iotaStep injects the round constant into lane (0,0).
func iotaStep(a *[25]uint64, round int) {
	a[0] ^= roundConstants[round]
}
