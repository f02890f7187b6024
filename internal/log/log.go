// Package log is the structured logger used by the keccak command. It wraps a
// sugared zap logger; the hashing library itself never logs.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the leveled, key-value logger handed to command code.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	Fatalw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
	Sync() error
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// DefaultLevel is the level used by the command unless --verbose is given.
var DefaultLevel = WarnLevel

// New returns a logger writing entries at or above level to output.
// A nil output logs to stderr so that stdout stays reserved for digests.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	if output == nil {
		output = zapcore.Lock(os.Stderr)
	}
	encoder := consoleEncoder()
	if isJSON {
		encoder = jsonEncoder()
	}
	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &log{zap.New(core, zap.WithCaller(true)).Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &log{zap.NewNop().Sugar()}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func jsonEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(encoderConfig())
}

func consoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(encoderConfig())
}
