// Package log defines the structured logging surface used across uireplay.
// The library logs through the small Logger interface so embedders can plug
// in their own backend; the default adapter wraps zerolog.
package log

// Logger provides leveled, structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates an error field with key "error".
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Any creates a field holding an arbitrary value.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Noop discards all log messages. It is the default for library users who
// do not configure logging.
type Noop struct{}

func (Noop) Debug(msg string, fields ...Field) {}
func (Noop) Info(msg string, fields ...Field)  {}
func (Noop) Warn(msg string, fields ...Field)  {}
func (Noop) Error(msg string, fields ...Field) {}
