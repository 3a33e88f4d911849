package timespan

import "math"

// Unit conversion constants.
const (
	nanosPerMicro = 1_000
	nanosPerMilli = 1_000_000
	nanosPerSec   = 1_000_000_000

	microsPerSec = 1_000_000
	millisPerSec = 1_000

	secsPerMinute = 60
	secsPerHour   = 3_600
	secsPerDay    = 86_400
	secsPerWeek   = 604_800
)

// Duration is a signed span of time with nanosecond precision.
//
// The zero value is a zero-length duration and is ready to use. Durations are
// immutable values; every operation returns a new Duration. Two Durations are
// equal (==) exactly when they represent the same span of time, because the
// stored pair is always normalized.
type Duration struct {
	// secs is the number of whole stored seconds. It carries the sign of the
	// duration, with a one-second borrow for values in (-1s, 0s).
	secs int64

	// nanos is the sub-second offset, always in [0, nanosPerSec).
	nanos int32
}

var (
	// Zero is the zero-length duration.
	Zero = Duration{}

	// Min is the minimum representable duration: math.MinInt64 milliseconds.
	// Subtracting any positive duration from it overflows.
	Min = Duration{
		secs:  math.MinInt64/millisPerSec - 1,
		nanos: nanosPerSec + int32(math.MinInt64%millisPerSec)*nanosPerMilli,
	}

	// Max is the maximum representable duration: math.MaxInt64 milliseconds.
	// Adding any positive duration to it overflows.
	Max = Duration{
		secs:  math.MaxInt64 / millisPerSec,
		nanos: int32(math.MaxInt64%millisPerSec) * nanosPerMilli,
	}
)

// Weeks returns a Duration of n weeks (n * 604800 seconds).
// It panics when the result is out of bounds.
func Weeks(n int64) Duration {
	secs, ok := mulInt64(n, secsPerWeek)
	if !ok {
		panic("timespan: Weeks out of bounds")
	}
	return Seconds(secs)
}

// Days returns a Duration of n days (n * 86400 seconds).
// It panics when the result is out of bounds.
func Days(n int64) Duration {
	secs, ok := mulInt64(n, secsPerDay)
	if !ok {
		panic("timespan: Days out of bounds")
	}
	return Seconds(secs)
}

// Hours returns a Duration of n hours (n * 3600 seconds).
// It panics when the result is out of bounds.
func Hours(n int64) Duration {
	secs, ok := mulInt64(n, secsPerHour)
	if !ok {
		panic("timespan: Hours out of bounds")
	}
	return Seconds(secs)
}

// Minutes returns a Duration of n minutes (n * 60 seconds).
// It panics when the result is out of bounds.
func Minutes(n int64) Duration {
	secs, ok := mulInt64(n, secsPerMinute)
	if !ok {
		panic("timespan: Minutes out of bounds")
	}
	return Seconds(secs)
}

// Seconds returns a Duration of n seconds.
// It panics when n is outside [Min, Max].
func Seconds(n int64) Duration {
	d := Duration{secs: n}
	if d.Cmp(Min) < 0 || d.Cmp(Max) > 0 {
		panic("timespan: Seconds out of bounds")
	}
	return d
}

// Milliseconds returns a Duration of n milliseconds.
// The full int64 range is accepted.
func Milliseconds(n int64) Duration {
	secs, millis := divModFloor(n, millisPerSec)
	return Duration{secs: secs, nanos: int32(millis) * nanosPerMilli}
}

// Microseconds returns a Duration of n microseconds.
// The full int64 range is accepted.
func Microseconds(n int64) Duration {
	secs, micros := divModFloor(n, microsPerSec)
	return Duration{secs: secs, nanos: int32(micros) * nanosPerMicro}
}

// Nanoseconds returns a Duration of n nanoseconds.
// The full int64 range is accepted.
func Nanoseconds(n int64) Duration {
	secs, nanos := divModFloor(n, nanosPerSec)
	return Duration{secs: secs, nanos: int32(nanos)}
}

// logicalSeconds returns the sign-correct whole-second count, undoing the
// one-second borrow for values in (-1s, 0s). Every accessor and arithmetic
// routine that needs the sign goes through logicalSeconds/logicalNanos
// rather than re-deriving the borrow rule.
func (d Duration) logicalSeconds() int64 {
	if d.secs < 0 && d.nanos > 0 {
		return d.secs + 1
	}
	return d.secs
}

// logicalNanos returns the sign-correct sub-second remainder, in
// (-nanosPerSec, nanosPerSec). logicalSeconds()*nanosPerSec + logicalNanos()
// is the true total nanosecond count whenever that count is representable.
func (d Duration) logicalNanos() int32 {
	if d.secs < 0 && d.nanos > 0 {
		return d.nanos - nanosPerSec
	}
	return d.nanos
}

// WholeWeeks returns the total number of whole weeks in the duration,
// truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.WholeSeconds() / secsPerWeek
}

// WholeDays returns the total number of whole days in the duration,
// truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.WholeSeconds() / secsPerDay
}

// WholeHours returns the total number of whole hours in the duration,
// truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.WholeSeconds() / secsPerHour
}

// WholeMinutes returns the total number of whole minutes in the duration,
// truncated toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.WholeSeconds() / secsPerMinute
}

// WholeSeconds returns the total number of whole seconds in the duration.
func (d Duration) WholeSeconds() int64 {
	return d.logicalSeconds()
}

// SubsecNanos returns the signed nanosecond remainder past the whole seconds,
// in (-1e9, 1e9). WholeSeconds()*1e9 + SubsecNanos() is the total nanosecond
// count of the duration whenever that count fits in an int64.
func (d Duration) SubsecNanos() int32 {
	return d.logicalNanos()
}

// WholeMilliseconds returns the total number of whole milliseconds in the
// duration, truncated toward zero. It cannot overflow: every in-range
// duration fits in int64 milliseconds.
func (d Duration) WholeMilliseconds() int64 {
	return d.WholeSeconds()*millisPerSec + int64(d.logicalNanos()/nanosPerMilli)
}

// WholeMicroseconds returns the total number of whole microseconds in the
// duration, truncated toward zero. ok is false when the count exceeds the
// int64 range in either direction.
func (d Duration) WholeMicroseconds() (micros int64, ok bool) {
	secsPart, ok := mulInt64(d.WholeSeconds(), microsPerSec)
	if !ok {
		return 0, false
	}
	return addInt64(secsPart, int64(d.logicalNanos()/nanosPerMicro))
}

// WholeNanoseconds returns the total number of nanoseconds in the duration.
// ok is false when the count exceeds the int64 range in either direction.
func (d Duration) WholeNanoseconds() (nanos int64, ok bool) {
	secsPart, ok := mulInt64(d.WholeSeconds(), nanosPerSec)
	if !ok {
		return 0, false
	}
	return addInt64(secsPart, int64(d.logicalNanos()))
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// Cmp compares d and o, returning -1 when d < o, 0 when d == o, and +1 when
// d > o. The comparison is lexicographic on the normalized (secs, nanos)
// pair, which matches the order of the represented time spans.
func (d Duration) Cmp(o Duration) int {
	switch {
	case d.secs < o.secs:
		return -1
	case d.secs > o.secs:
		return 1
	case d.nanos < o.nanos:
		return -1
	case d.nanos > o.nanos:
		return 1
	}
	return 0
}

// divModFloor returns the floored quotient and non-negative remainder of
// a / b. b must be positive. Unlike Go's truncating division, the remainder
// is never negative, which is what keeps the nanos field in [0, 1e9) for
// negative inputs.
func divModFloor(a, b int64) (quo, rem int64) {
	quo = a / b
	rem = a % b
	if rem < 0 {
		quo--
		rem += b
	}
	return quo, rem
}

// mulInt64 returns a * b and whether the product fits in an int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// addInt64 returns a + b and whether the sum fits in an int64.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// subInt64 returns a - b and whether the difference fits in an int64.
func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}
