package keccak

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// stateBits is the width of the Keccak-f[1600] state.
const stateBits = 1600

var (
	// ErrInvalidParams is wrapped by every parameter validation error.
	ErrInvalidParams = errors.New("keccak: invalid sponge parameters")

	// ErrRateAlignment reports a rate that is not a positive multiple of 8 bits.
	ErrRateAlignment = fmt.Errorf("%w: rate must be a positive multiple of 8 bits", ErrInvalidParams)
	// ErrStateWidth reports a rate and capacity that do not add up to 1600 bits.
	ErrStateWidth = fmt.Errorf("%w: rate + capacity must equal %d bits", ErrInvalidParams, stateBits)
	// ErrSuffix reports a domain suffix with no bits set.
	ErrSuffix = fmt.Errorf("%w: suffix must carry at least the first padding bit", ErrInvalidParams)
	// ErrOutputLength reports a negative output length.
	ErrOutputLength = fmt.Errorf("%w: output length must not be negative", ErrInvalidParams)
)

// Params configures the general sponge construction.
type Params struct {
	Rate      int  // bits absorbed and squeezed per block
	Capacity  int  // bits never exposed to input or output
	Suffix    byte // domain separation bits followed by the first padding bit
	OutputLen int  // output bytes
}

// Keccak256 is the Keccak-256 profile used by Ethereum: rate 1088, capacity
// 512, suffix 0x01 and a 32-byte digest.
var Keccak256 = Params{
	Rate:      1088,
	Capacity:  512,
	Suffix:    0x01,
	OutputLen: 32,
}

// RateBytes returns the block size in bytes.
func (p Params) RateBytes() int {
	return p.Rate / 8
}

// Validate reports every problem with p. The returned error matches
// ErrInvalidParams and the specific sentinel of each violation under
// errors.Is.
func (p Params) Validate() error {
	var merr *multierror.Error
	if p.Rate <= 0 || p.Rate%8 != 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w (rate %d)", ErrRateAlignment, p.Rate))
	}
	if p.Capacity < 0 || p.Rate+p.Capacity != stateBits {
		merr = multierror.Append(merr, fmt.Errorf("%w (rate %d, capacity %d)", ErrStateWidth, p.Rate, p.Capacity))
	}
	if p.Suffix == 0 {
		merr = multierror.Append(merr, ErrSuffix)
	}
	if p.OutputLen < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w (%d)", ErrOutputLength, p.OutputLen))
	}
	return merr.ErrorOrNil()
}

// Sum validates p and returns OutputLen bytes of sponge output for data.
// No hashing happens when the parameters are rejected.
func (p Params) Sum(data []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, p.OutputLen)
	sponge(p.RateBytes(), p.Suffix, data, out)
	return out, nil
}
