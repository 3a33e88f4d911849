package timespan

// Add returns d + o using plain wrapping arithmetic.
//
// Add performs no range validation: on overflow it silently wraps or produces
// a value outside [Min, Max]. Use CheckedAdd when the inputs are not known to
// be safe.
func (d Duration) Add(o Duration) Duration {
	secs := d.secs + o.secs
	nanos := d.nanos + o.nanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		secs++
	}
	return Duration{secs: secs, nanos: nanos}
}

// Sub returns d - o using plain wrapping arithmetic.
//
// Like Add, Sub performs no range validation. Use CheckedSub when the inputs
// are not known to be safe.
func (d Duration) Sub(o Duration) Duration {
	secs := d.secs - o.secs
	nanos := d.nanos - o.nanos
	if nanos < 0 {
		nanos += nanosPerSec
		secs--
	}
	return Duration{secs: secs, nanos: nanos}
}

// CheckedAdd returns d + o. ok is false when the seconds addition overflows
// int64 or the result falls outside [Min, Max]; it never panics.
func (d Duration) CheckedAdd(o Duration) (sum Duration, ok bool) {
	secs, ok := addInt64(d.secs, o.secs)
	if !ok {
		return Duration{}, false
	}
	// Both nanos fields are in [0, 1e9), so the sum is below 2e9 and at most
	// one carry is needed.
	nanos := d.nanos + o.nanos
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		if secs, ok = addInt64(secs, 1); !ok {
			return Duration{}, false
		}
	}
	sum = Duration{secs: secs, nanos: nanos}
	if sum.Cmp(Min) < 0 || sum.Cmp(Max) > 0 {
		return Duration{}, false
	}
	return sum, true
}

// CheckedSub returns d - o. ok is false when the seconds subtraction
// overflows int64 or the result falls outside [Min, Max]; it never panics.
func (d Duration) CheckedSub(o Duration) (diff Duration, ok bool) {
	secs, ok := subInt64(d.secs, o.secs)
	if !ok {
		return Duration{}, false
	}
	nanos := d.nanos - o.nanos
	if nanos < 0 {
		nanos += nanosPerSec
		if secs, ok = subInt64(secs, 1); !ok {
			return Duration{}, false
		}
	}
	diff = Duration{secs: secs, nanos: nanos}
	if diff.Cmp(Min) < 0 || diff.Cmp(Max) > 0 {
		return Duration{}, false
	}
	return diff, true
}

// Neg returns -d. When a sub-second part is present the seconds field takes
// an extra borrow so that the nanos field stays in [0, 1e9).
func (d Duration) Neg() Duration {
	if d.nanos == 0 {
		return Duration{secs: -d.secs}
	}
	return Duration{secs: -d.secs - 1, nanos: nanosPerSec - d.nanos}
}

// Abs returns the duration as a non-negative value.
func (d Duration) Abs() Duration {
	if d.secs < 0 && d.nanos != 0 {
		return Duration{secs: -(d.secs + 1), nanos: nanosPerSec - d.nanos}
	}
	if d.secs < 0 {
		return Duration{secs: -d.secs}
	}
	return d
}

// Mul returns d * k using plain wrapping arithmetic on the seconds field.
// The sub-second product is redistributed with floored division so the
// result stays normalized; extreme inputs may overflow silently.
func (d Duration) Mul(k int32) Duration {
	total := int64(d.nanos) * int64(k)
	extraSecs, nanos := divModFloor(total, nanosPerSec)
	return Duration{secs: d.secs*int64(k) + extraSecs, nanos: int32(nanos)}
}

// Div returns d / k, within one nanosecond of the truncated true quotient.
// The seconds and sub-second parts are divided independently; the truncation
// remainder of the seconds division is converted to nanoseconds and
// recombined, with a one second carry when the combined sub-second value
// leaves [0, 1e9). For negative durations with a sub-second part the two
// divisions round in different directions, so the result can be one
// nanosecond below the truncated quotient. Division by zero panics.
func (d Duration) Div(k int32) Duration {
	secs := d.secs / int64(k)
	carry := d.secs - secs*int64(k)
	extraNanos := carry * nanosPerSec / int64(k)
	nanos := d.nanos/k + int32(extraNanos)
	if nanos >= nanosPerSec {
		nanos -= nanosPerSec
		secs++
	}
	if nanos < 0 {
		nanos += nanosPerSec
		secs--
	}
	return Duration{secs: secs, nanos: nanos}
}

// Sum folds ds with Add, starting from Zero. It inherits Add's unchecked
// overflow behavior.
func Sum(ds ...Duration) Duration {
	acc := Zero
	for _, d := range ds {
		acc = acc.Add(d)
	}
	return acc
}
