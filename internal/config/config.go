// Package config loads TOML hashing profiles for the keccak command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Giulio2002/keccak"
)

// Output encodings.
const (
	EncodingHex = "hex"
	EncodingRaw = "raw"
)

// ErrEncoding reports an output encoding other than hex or raw.
var ErrEncoding = errors.New("config: unknown output encoding")

// Config is the on-disk form of a hashing profile.
type Config struct {
	Profile Profile `toml:"profile"`
	Output  Output  `toml:"output"`
}

// Profile holds the sponge parameters. Rate and capacity are in bits, length
// in bytes.
type Profile struct {
	Rate     int   `toml:"rate"`
	Capacity int   `toml:"capacity"`
	Suffix   uint8 `toml:"suffix"`
	Length   int   `toml:"length"`
}

// Output controls how digests are printed.
type Output struct {
	Encoding string `toml:"encoding"`
	Prefix   bool   `toml:"prefix"`
}

// Default returns the Keccak-256 profile with hex output.
func Default() *Config {
	return &Config{
		Profile: Profile{
			Rate:     keccak.Keccak256.Rate,
			Capacity: keccak.Keccak256.Capacity,
			Suffix:   keccak.Keccak256.Suffix,
			Length:   keccak.Keccak256.OutputLen,
		},
		Output: Output{Encoding: EncodingHex},
	}
}

// Load reads the file at path over the defaults. Keys the profile format
// does not know are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Params converts the profile into sponge parameters and validates them.
func (c *Config) Params() (keccak.Params, error) {
	p := keccak.Params{
		Rate:      c.Profile.Rate,
		Capacity:  c.Profile.Capacity,
		Suffix:    c.Profile.Suffix,
		OutputLen: c.Profile.Length,
	}
	if err := p.Validate(); err != nil {
		return keccak.Params{}, err
	}
	return p, nil
}

// Validate checks the sponge parameters and the output encoding.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	switch c.Output.Encoding {
	case EncodingHex, EncodingRaw:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrEncoding, c.Output.Encoding)
	}
}

// IsKeccak256 reports whether the profile is exactly Keccak-256.
func (c *Config) IsKeccak256() bool {
	p := c.Profile
	k := keccak.Keccak256
	return p.Rate == k.Rate && p.Capacity == k.Capacity && p.Suffix == k.Suffix && p.Length == k.OutputLen
}
