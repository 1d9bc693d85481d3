package timestamp

import "fmt"

// Delta is a signed duration in nanoseconds. Subtracting two Timestamps
// yields a Delta; a Delta may be negative.
type Delta int64

// DeltaNanos returns the delta for a raw nanosecond count.
func DeltaNanos(nanos int64) Delta { return Delta(nanos) }

// DeltaMicros converts microseconds without overflow checks.
func DeltaMicros(micros int64) Delta { return Delta(micros * NanosPerMicro) }

// DeltaMillis converts milliseconds without overflow checks.
func DeltaMillis(millis int64) Delta { return Delta(millis * NanosPerMilli) }

// DeltaSecs converts seconds without overflow checks.
func DeltaSecs(secs int64) Delta { return Delta(secs * NanosPerSecond) }

// DeltaMinutes converts minutes without overflow checks.
func DeltaMinutes(minutes int64) Delta { return Delta(minutes * NanosPerMinute) }

// DeltaHours converts hours without overflow checks.
func DeltaHours(hours int64) Delta { return Delta(hours * NanosPerHour) }

// DeltaDays converts days without overflow checks.
func DeltaDays(days int64) Delta { return Delta(days * NanosPerDay) }

// DeltaMicrosChecked converts microseconds, returning ErrOverflow when the
// value does not fit in int64 nanoseconds.
func DeltaMicrosChecked(micros int64) (Delta, error) {
	n, err := mulChecked(micros, NanosPerMicro, "microseconds")
	return Delta(n), err
}

// DeltaMillisChecked converts milliseconds with overflow checks.
func DeltaMillisChecked(millis int64) (Delta, error) {
	n, err := mulChecked(millis, NanosPerMilli, "milliseconds")
	return Delta(n), err
}

// DeltaSecsChecked converts seconds with overflow checks.
func DeltaSecsChecked(secs int64) (Delta, error) {
	n, err := mulChecked(secs, NanosPerSecond, "seconds")
	return Delta(n), err
}

// DeltaMinutesChecked converts minutes with overflow checks.
func DeltaMinutesChecked(minutes int64) (Delta, error) {
	n, err := mulChecked(minutes, NanosPerMinute, "minutes")
	return Delta(n), err
}

// DeltaHoursChecked converts hours with overflow checks.
func DeltaHoursChecked(hours int64) (Delta, error) {
	n, err := mulChecked(hours, NanosPerHour, "hours")
	return Delta(n), err
}

// DeltaDaysChecked converts days with overflow checks.
func DeltaDaysChecked(days int64) (Delta, error) {
	n, err := mulChecked(days, NanosPerDay, "days")
	return Delta(n), err
}

// Nanos returns the delta as nanoseconds.
func (d Delta) Nanos() int64 { return int64(d) }

// Micros returns the delta as whole microseconds.
func (d Delta) Micros() int64 { return int64(d) / NanosPerMicro }

// Millis returns the delta as whole milliseconds.
func (d Delta) Millis() int64 { return int64(d) / NanosPerMilli }

// Secs returns the delta as whole seconds.
func (d Delta) Secs() int64 { return int64(d) / NanosPerSecond }

// Minutes returns the delta as whole minutes.
func (d Delta) Minutes() int64 { return int64(d) / NanosPerMinute }

// Hours returns the delta as whole hours.
func (d Delta) Hours() int64 { return int64(d) / NanosPerHour }

// Days returns the delta as whole days.
func (d Delta) Days() int64 { return int64(d) / NanosPerDay }

// Add returns d + e.
func (d Delta) Add(e Delta) Delta { return d + e }

// Sub returns d - e.
func (d Delta) Sub(e Delta) Delta { return d - e }

// String formats the delta as a nanosecond count, e.g. "1500ns".
func (d Delta) String() string { return fmt.Sprintf("%dns", int64(d)) }
