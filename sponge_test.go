package keccak

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"
)

func testInput(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*31 + 5)
	}
	return data
}

// Reference squeeze: pad the message by hand and permute block by block.
func manualSponge(rate int, suffix byte, in []byte, outLen int, extraPermute bool) []byte {
	var s [200]byte
	for len(in) >= rate {
		xorIn(&s, in[:rate])
		keccakF1600(&s)
		in = in[rate:]
	}
	xorIn(&s, in)
	s[len(in)] ^= suffix
	if extraPermute {
		keccakF1600(&s)
	}
	s[rate-1] ^= 0x80
	keccakF1600(&s)

	var out []byte
	for {
		n := min(outLen-len(out), rate)
		out = append(out, s[:n]...)
		if len(out) == outLen {
			return out
		}
		keccakF1600(&s)
	}
}

func TestSpongeMatchesSHA3(t *testing.T) {
	// Final SHA-3 differs from Keccak-256 only in the suffix.
	for _, n := range []int{0, 1, rate - 1, rate, rate + 1, 10 * rate} {
		data := testInput(n)
		got, err := Params{Rate: 1088, Capacity: 512, Suffix: 0x06, OutputLen: 32}.Sum(data)
		if err != nil {
			t.Fatal(err)
		}
		if want := sha3.Sum256(data); !bytes.Equal(got, want[:]) {
			t.Errorf("len=%d\ngot:  %x\nwant: %x", n, got, want)
		}
	}
}

func TestSpongeLongOutput(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		ref    func(out, data []byte)
	}{
		{"rate168", Params{Rate: 1344, Capacity: 256, Suffix: 0x1f, OutputLen: 3 * 168}, sha3.ShakeSum128},
		{"rate136", Params{Rate: 1088, Capacity: 512, Suffix: 0x1f, OutputLen: 3*136 + 7}, sha3.ShakeSum256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 200, 1000} {
				data := testInput(n)
				got, err := tt.params.Sum(data)
				if err != nil {
					t.Fatal(err)
				}
				want := make([]byte, tt.params.OutputLen)
				tt.ref(want, data)
				if !bytes.Equal(got, want) {
					t.Errorf("len=%d\ngot:  %x\nwant: %x", n, got, want)
				}
			}
		})
	}
}

func TestSpongeSqueezeBlocks(t *testing.T) {
	data := []byte("Hello, Ethereum!")
	got := Hash(data, 3*rate)
	want := manualSponge(rate, 0x01, data, 3*rate, false)
	if !bytes.Equal(got, want) {
		t.Fatalf("3R output differs from block-by-block squeeze")
	}
	// Each block is distinct.
	if bytes.Equal(got[:rate], got[rate:2*rate]) || bytes.Equal(got[rate:2*rate], got[2*rate:]) {
		t.Fatal("squeezed blocks repeat")
	}
}

func TestSpongePadding(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		suffix  byte
		permute bool
	}{
		{"empty", 0, 0x01, false},
		{"suffix on last byte", rate - 1, 0x01, false},
		{"high suffix on last byte", rate - 1, 0x80, true},
		{"high suffix before last byte", rate - 2, 0x80, false},
		{"high suffix after full block", rate, 0x80, false},
		{"wide suffix on last byte", rate - 1, 0x06, false},
		{"high suffix on last byte of second block", 2*rate - 1, 0x8f, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testInput(tt.n)
			got := make([]byte, 64)
			sponge(rate, tt.suffix, data, got)
			want := manualSponge(rate, tt.suffix, data, 64, tt.permute)
			if !bytes.Equal(got, want) {
				t.Errorf("\ngot:  %x\nwant: %x", got, want)
			}
		})
	}
}

func TestSpongeZeroOutput(t *testing.T) {
	out, err := Params{Rate: 1088, Capacity: 512, Suffix: 0x01}.Sum([]byte("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}

func TestXorIn(t *testing.T) {
	var s [200]byte
	for i := range s {
		s[i] = 0xaa
	}
	data := testInput(19)
	xorIn(&s, data)
	for i := range s {
		want := byte(0xaa)
		if i < len(data) {
			want ^= data[i]
		}
		if s[i] != want {
			t.Fatalf("byte %d = %#02x, want %#02x", i, s[i], want)
		}
	}
}
