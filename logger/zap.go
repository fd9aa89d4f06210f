package logger

import "go.uber.org/zap"

// Zap adapts *zap.Logger to Logger
type Zap struct {
	logger *zap.Logger
}

func (z *Zap) Debug(msg string, fields ...Field) {
	z.logger.Debug(msg, zapFields(fields)...)
}

func (z *Zap) Info(msg string, fields ...Field) {
	z.logger.Info(msg, zapFields(fields)...)
}

func (z *Zap) Warn(msg string, fields ...Field) {
	z.logger.Warn(msg, zapFields(fields)...)
}

func (z *Zap) Error(msg string, fields ...Field) {
	z.logger.Error(msg, zapFields(fields)...)
}

// Unwrap returns the underlying zap logger
func (z *Zap) Unwrap() *zap.Logger {
	return z.logger
}

func zapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		switch actual := field.Value.(type) {
		case error:
			result = append(result, zap.NamedError(field.Key, actual))
		case string:
			result = append(result, zap.String(field.Key, actual))
		case int:
			result = append(result, zap.Int(field.Key, actual))
		case bool:
			result = append(result, zap.Bool(field.Key, actual))
		case fmtStringer:
			result = append(result, zap.Stringer(field.Key, actual))
		default:
			result = append(result, zap.Any(field.Key, actual))
		}
	}
	return result
}

type fmtStringer interface {
	String() string
}

// NewZap creates a zap backed logger, nil logger results in a no-op logger
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		return nop
	}
	return &Zap{logger: logger}
}
