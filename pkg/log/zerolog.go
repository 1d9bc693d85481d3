package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to the Logger interface.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog returns an adapter logging to stderr with console formatting.
func NewZerolog() *Zerolog {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return &Zerolog{logger: zerolog.New(output).With().Timestamp().Logger()}
}

// WrapZerolog returns an adapter around an existing zerolog.Logger.
func WrapZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

// Unwrap returns the underlying zerolog.Logger.
func (z *Zerolog) Unwrap() zerolog.Logger { return z.logger }

func (z *Zerolog) Debug(msg string, fields ...Field) { emit(z.logger.Debug(), msg, fields) }
func (z *Zerolog) Info(msg string, fields ...Field)  { emit(z.logger.Info(), msg, fields) }
func (z *Zerolog) Warn(msg string, fields ...Field)  { emit(z.logger.Warn(), msg, fields) }
func (z *Zerolog) Error(msg string, fields ...Field) { emit(z.logger.Error(), msg, fields) }

func emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.Err(v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}
