// Package timestamp provides fixed-point nanosecond time types.
//
// A [Timestamp] is a single int64 counting nanoseconds since the Unix epoch
// in UTC; a [Delta] is the signed difference of two timestamps. Keeping time
// as one integer gives cheap comparison and arithmetic, a fixed-width binary
// form, and no timezone ambiguity. Convert to [time.Time] only at the edges,
// for display or external APIs.
//
// The representable calendar range is bounded by int64 nanoseconds:
// roughly 1677-09-21 through 2262-04-11. Conversions that would leave that
// range return [ErrOverflow] instead of truncating.
package timestamp

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Timestamp is a point in time as nanoseconds since the Unix epoch, UTC.
// The zero value is the epoch itself. Timestamps are totally ordered by
// the underlying integer.
type Timestamp int64

// Conversion factors between nanoseconds and coarser units.
const (
	NanosPerMicro  int64 = 1_000
	NanosPerMilli  int64 = NanosPerMicro * 1_000
	NanosPerSecond int64 = NanosPerMilli * 1_000
	NanosPerMinute int64 = NanosPerSecond * 60
	NanosPerHour   int64 = NanosPerMinute * 60
	NanosPerDay    int64 = NanosPerHour * 24
)

// FromNanos returns the timestamp for a raw nanosecond count.
func FromNanos(nanos int64) Timestamp { return Timestamp(nanos) }

// Unchecked constructors. The multiply is not overflow-checked; the caller
// guarantees the input is small enough. Use the Checked variants otherwise.

// FromMicros converts microseconds since the epoch without overflow checks.
func FromMicros(micros int64) Timestamp { return Timestamp(micros * NanosPerMicro) }

// FromMillis converts milliseconds since the epoch without overflow checks.
func FromMillis(millis int64) Timestamp { return Timestamp(millis * NanosPerMilli) }

// FromSecs converts seconds since the epoch without overflow checks.
func FromSecs(secs int64) Timestamp { return Timestamp(secs * NanosPerSecond) }

// FromMinutes converts minutes since the epoch without overflow checks.
func FromMinutes(minutes int64) Timestamp { return Timestamp(minutes * NanosPerMinute) }

// FromHours converts hours since the epoch without overflow checks.
func FromHours(hours int64) Timestamp { return Timestamp(hours * NanosPerHour) }

// FromDays converts days since the epoch without overflow checks.
func FromDays(days int64) Timestamp { return Timestamp(days * NanosPerDay) }

// FromMicrosChecked converts microseconds since the epoch, returning
// ErrOverflow when the value does not fit in int64 nanoseconds.
func FromMicrosChecked(micros int64) (Timestamp, error) {
	n, err := mulChecked(micros, NanosPerMicro, "microseconds")
	return Timestamp(n), err
}

// FromMillisChecked converts milliseconds since the epoch with overflow checks.
func FromMillisChecked(millis int64) (Timestamp, error) {
	n, err := mulChecked(millis, NanosPerMilli, "milliseconds")
	return Timestamp(n), err
}

// FromSecsChecked converts seconds since the epoch with overflow checks.
func FromSecsChecked(secs int64) (Timestamp, error) {
	n, err := mulChecked(secs, NanosPerSecond, "seconds")
	return Timestamp(n), err
}

// FromMinutesChecked converts minutes since the epoch with overflow checks.
func FromMinutesChecked(minutes int64) (Timestamp, error) {
	n, err := mulChecked(minutes, NanosPerMinute, "minutes")
	return Timestamp(n), err
}

// FromHoursChecked converts hours since the epoch with overflow checks.
func FromHoursChecked(hours int64) (Timestamp, error) {
	n, err := mulChecked(hours, NanosPerHour, "hours")
	return Timestamp(n), err
}

// FromDaysChecked converts days since the epoch with overflow checks.
func FromDaysChecked(days int64) (Timestamp, error) {
	n, err := mulChecked(days, NanosPerDay, "days")
	return Timestamp(n), err
}

// mulChecked multiplies a by b, reporting ErrOverflow when the product
// leaves the int64 range.
func mulChecked(a, b int64, unit string) (int64, error) {
	if a > 0 && a > math.MaxInt64/b {
		return 0, fmt.Errorf("%s conversion: %w", unit, ErrOverflow)
	}
	if a < 0 && a < math.MinInt64/b {
		return 0, fmt.Errorf("%s conversion: %w", unit, ErrOverflow)
	}
	return a * b, nil
}

// Nanos returns the timestamp as nanoseconds since the epoch.
func (t Timestamp) Nanos() int64 { return int64(t) }

// Micros returns the timestamp as whole microseconds since the epoch.
func (t Timestamp) Micros() int64 { return int64(t) / NanosPerMicro }

// Millis returns the timestamp as whole milliseconds since the epoch.
func (t Timestamp) Millis() int64 { return int64(t) / NanosPerMilli }

// Secs returns the timestamp as whole seconds since the epoch.
func (t Timestamp) Secs() int64 { return int64(t) / NanosPerSecond }

// Minutes returns the timestamp as whole minutes since the epoch.
func (t Timestamp) Minutes() int64 { return int64(t) / NanosPerMinute }

// Hours returns the timestamp as whole hours since the epoch.
func (t Timestamp) Hours() int64 { return int64(t) / NanosPerHour }

// Days returns the timestamp as whole days since the epoch.
func (t Timestamp) Days() int64 { return int64(t) / NanosPerDay }

// Add returns the timestamp shifted by d.
func (t Timestamp) Add(d Delta) Timestamp { return t + Timestamp(d) }

// Sub returns the signed duration t - u.
func (t Timestamp) Sub(u Timestamp) Delta { return Delta(t - u) }

// Before reports whether t is strictly earlier than u.
func (t Timestamp) Before(u Timestamp) bool { return t < u }

// After reports whether t is strictly later than u.
func (t Timestamp) After(u Timestamp) bool { return t > u }

// UTC returns the timestamp as a time.Time in UTC.
func (t Timestamp) UTC() time.Time { return time.Unix(0, int64(t)).UTC() }

// RFC3339 formats the timestamp per RFC 3339 with nanosecond precision.
func (t Timestamp) RFC3339() string { return t.UTC().Format(time.RFC3339Nano) }

// RFC2822 formats the timestamp per RFC 2822.
func (t Timestamp) RFC2822() string { return t.UTC().Format(rfc2822Layout) }

// String returns the raw nanosecond count in decimal.
func (t Timestamp) String() string { return fmt.Sprintf("%d", int64(t)) }

// rfc2822Layout matches RFC 2822 date-time, e.g.
// "Wed, 14 Jan 1970 00:04:16 +0000".
const rfc2822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"

// minTime and maxTime bound the calendar range representable as int64
// nanoseconds since the epoch.
var (
	minTime = time.Unix(0, math.MinInt64).UTC()
	maxTime = time.Unix(0, math.MaxInt64).UTC()
)

// FromTime converts a time.Time, returning ErrOverflow when the instant
// falls outside the int64 nanosecond range (before ~1677 or after ~2262).
func FromTime(tt time.Time) (Timestamp, error) {
	if tt.Before(minTime) || tt.After(maxTime) {
		return 0, fmt.Errorf("time %s out of int64 nanosecond range: %w", tt, ErrOverflow)
	}
	return Timestamp(tt.UnixNano()), nil
}

// ParseRFC3339 parses an RFC 3339 date-time into a timestamp.
// Malformed input yields ErrParse wrapping the parser diagnostic; a
// well-formed date outside the representable range yields ErrOverflow.
func ParseRFC3339(s string) (Timestamp, error) {
	tt, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromTime(tt)
}

// ParseRFC2822 parses an RFC 2822 date-time into a timestamp.
func ParseRFC2822(s string) (Timestamp, error) {
	tt, err := time.Parse(rfc2822Layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromTime(tt)
}

// MarshalBinary encodes the timestamp as its raw 8-byte little-endian
// nanosecond count. The encoding is exactly reversible for every value.
func (t Timestamp) MarshalBinary() ([]byte, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(int64(t)))
	return b, nil
}

// UnmarshalBinary decodes an 8-byte little-endian nanosecond count.
func (t *Timestamp) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: expected 8, got %d", ErrBinaryLength, len(data))
	}
	*t = Timestamp(int64(binary.LittleEndian.Uint64(data)))
	return nil
}
