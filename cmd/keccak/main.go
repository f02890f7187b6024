// Command keccak prints Keccak-256 digests of its arguments, files or stdin.
//
//	keccak "Hello, Ethereum!"
//	echo -n abc | keccak --prefix
//	keccak --hex-input 0x616263 --length 64
//	keccak --config shake128.toml --raw -f blob.bin > digest.bin
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/Giulio2002/keccak"
	"github.com/Giulio2002/keccak/internal/config"
	"github.com/Giulio2002/keccak/internal/log"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.buildDate=`date -u +%d/%m/%Y@%H:%M:%S` -X main.gitCommit=`git rev-parse HEAD`"
var (
	gitCommit = "none"
	buildDate = "unknown"
)

const version = "0.1.0"

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "TOML file with the sponge profile and output settings",
}

var lengthFlag = &cli.IntFlag{
	Name:    "length",
	Aliases: []string{"n"},
	Usage:   "output length in bytes (overrides the profile)",
}

var rawFlag = &cli.BoolFlag{
	Name:  "raw",
	Usage: "write raw digest bytes instead of hex lines",
}

var prefixFlag = &cli.BoolFlag{
	Name:  "prefix",
	Usage: "prefix hex digests with 0x",
}

var hexInputFlag = &cli.BoolFlag{
	Name:    "hex-input",
	Aliases: []string{"x"},
	Usage:   "decode arguments as hex (0x prefix optional)",
}

var fileFlag = &cli.StringSliceFlag{
	Name:    "file",
	Aliases: []string{"f"},
	Usage:   "hash the contents of `FILE`; may be repeated",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "log debug information to stderr",
}

var jsonLogFlag = &cli.BoolFlag{
	Name:  "json-log",
	Usage: "log in JSON instead of console format",
}

type input struct {
	name string
	data []byte
}

func newApp() *cli.App {
	app := &cli.App{
		Name:      "keccak",
		Version:   version,
		Usage:     "compute Keccak-256 (or another Keccak sponge profile) digests",
		ArgsUsage: "[input ...]",
		Flags: []cli.Flag{
			configFlag, lengthFlag, rawFlag, prefixFlag, hexInputFlag, fileFlag,
			verboseFlag, jsonLogFlag,
		},
		Action: hashAction,
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(c.App.Writer, "keccak %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	return app
}

func hashAction(c *cli.Context) error {
	level := log.DefaultLevel
	if c.Bool(verboseFlag.Name) {
		level = log.DebugLevel
	}
	logger := log.New(zapcore.AddSync(c.App.ErrWriter), level, c.Bool(jsonLogFlag.Name)).Named("keccak")
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	logger.Debugw("profile", "rate", params.Rate, "capacity", params.Capacity,
		"suffix", fmt.Sprintf("%#02x", params.Suffix), "length", params.OutputLen,
		"keccak256", cfg.IsKeccak256())

	inputs, err := readInputs(c)
	if err != nil {
		return err
	}

	for _, in := range inputs {
		digest, err := sum(cfg, params, in.data)
		if err != nil {
			return err
		}
		logger.Debugw("hashed", "input", in.name, "bytes", len(in.data))
		if err := writeDigest(c.App.Writer, cfg.Output, digest); err != nil {
			return fmt.Errorf("failed to write digest: %w", err)
		}
	}
	return nil
}

// loadConfig applies command-line overrides on top of the profile file, or
// on top of Keccak-256 when no file is given.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if c.IsSet(configFlag.Name) {
		var err error
		if cfg, err = config.Load(c.String(configFlag.Name)); err != nil {
			return nil, err
		}
	}
	if c.IsSet(lengthFlag.Name) {
		cfg.Profile.Length = c.Int(lengthFlag.Name)
	}
	if c.Bool(rawFlag.Name) {
		cfg.Output.Encoding = config.EncodingRaw
	}
	if c.Bool(prefixFlag.Name) {
		cfg.Output.Prefix = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInputs(c *cli.Context) ([]input, error) {
	var inputs []input
	for _, arg := range c.Args().Slice() {
		data := []byte(arg)
		if c.Bool(hexInputFlag.Name) {
			var err error
			if data, err = hex.DecodeString(strings.TrimPrefix(arg, "0x")); err != nil {
				return nil, fmt.Errorf("failed to decode hex input %q: %w", arg, err)
			}
		}
		inputs = append(inputs, input{name: "arg", data: data})
	}
	for _, path := range c.StringSlice(fileFlag.Name) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		inputs = append(inputs, input{name: path, data: data})
	}
	if len(inputs) == 0 {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = append(inputs, input{name: "stdin", data: data})
	}
	return inputs, nil
}

func sum(cfg *config.Config, params keccak.Params, data []byte) ([]byte, error) {
	if cfg.IsKeccak256() {
		d := keccak.Sum256(data)
		return d[:], nil
	}
	return params.Sum(data)
}

func writeDigest(w io.Writer, out config.Output, digest []byte) error {
	if out.Encoding == config.EncodingRaw {
		_, err := w.Write(digest)
		return err
	}
	prefix := ""
	if out.Prefix {
		prefix = "0x"
	}
	_, err := fmt.Fprintln(w, prefix+hex.EncodeToString(digest))
	return err
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.New(nil, log.ErrorLevel, false).Fatalw("", "binary", "keccak", "err", err)
	}
}
