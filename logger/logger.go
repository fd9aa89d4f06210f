package logger

import (
	"os"

	"go.uber.org/zap"
)

// DebugEnvKey enables the default development logger when set
const DebugEnvKey = "STRUCTWALK_DEBUG"

type (
	//Logger defines structured logging used by the traversal engine
	Logger interface {
		Debug(msg string, fields ...Field)
		Info(msg string, fields ...Field)
		Warn(msg string, fields ...Field)
		Error(msg string, fields ...Field)
	}

	//Field represents a key-value pair for structured logging
	Field struct {
		Key   string
		Value interface{}
	}

	nopLogger struct{}
)

// F creates a field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func (n *nopLogger) Debug(string, ...Field) {}
func (n *nopLogger) Info(string, ...Field)  {}
func (n *nopLogger) Warn(string, ...Field)  {}
func (n *nopLogger) Error(string, ...Field) {}

var nop Logger = &nopLogger{}

// Nop returns a logger discarding every entry
func Nop() Logger {
	return nop
}

// Default returns a zap development logger if STRUCTWALK_DEBUG is set, otherwise a no-op logger
func Default() Logger {
	if os.Getenv(DebugEnvKey) == "" {
		return nop
	}
	zLogger, err := zap.NewDevelopment()
	if err != nil {
		return nop
	}
	return NewZap(zLogger)
}
