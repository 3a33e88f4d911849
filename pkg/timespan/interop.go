package timespan

import (
	"errors"
	"time"
)

// ErrOutOfRange reports that a duration value cannot be represented by the
// target type of a conversion.
var ErrOutOfRange = errors.New("timespan: duration value out of range for the target type")

// UnsignedDuration is an unsigned wall-clock span: a non-negative number of
// whole seconds plus a sub-second nanosecond offset. It mirrors the
// (seconds, nanos) shape used by wall-clock duration types in other
// ecosystems, which cannot express negative spans.
type UnsignedDuration struct {
	Secs  uint64
	Nanos uint32
}

// FromUnsigned converts an unsigned wall-clock span to a Duration.
//
// It returns ErrOutOfRange when u's whole-second count exceeds Max's, or when
// the value still exceeds Max once the sub-second part is included. A Nanos
// field of 1e9 or more is folded into the seconds before the checks.
func FromUnsigned(u UnsignedDuration) (Duration, error) {
	if u.Secs > uint64(Max.secs) {
		return Duration{}, ErrOutOfRange
	}
	// Safe: u.Secs fits well below int64 range here, and the nanos carry
	// adds at most 4 seconds.
	d := Duration{
		secs:  int64(u.Secs) + int64(u.Nanos/nanosPerSec),
		nanos: int32(u.Nanos % nanosPerSec),
	}
	if d.Cmp(Max) > 0 {
		return Duration{}, ErrOutOfRange
	}
	return d, nil
}

// Unsigned converts the duration to an unsigned wall-clock span.
//
// It returns ErrOutOfRange for every negative duration, however small the
// magnitude: the unsigned representation has no sign.
func (d Duration) Unsigned() (UnsignedDuration, error) {
	if d.secs < 0 {
		return UnsignedDuration{}, ErrOutOfRange
	}
	return UnsignedDuration{Secs: uint64(d.secs), Nanos: uint32(d.nanos)}, nil
}

// FromStd converts a time.Duration to a Duration. Every time.Duration is in
// range, so the conversion is total.
func FromStd(sd time.Duration) Duration {
	return Nanoseconds(int64(sd))
}

// Std converts the duration to a time.Duration. It returns ErrOutOfRange
// when the total nanosecond count overflows time.Duration's int64 range.
func (d Duration) Std() (time.Duration, error) {
	nanos, ok := d.WholeNanoseconds()
	if !ok {
		return 0, ErrOutOfRange
	}
	return time.Duration(nanos), nil
}
