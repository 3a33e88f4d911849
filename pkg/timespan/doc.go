// Package timespan implements a signed span of time with nanosecond precision.
//
// Unlike time.Duration, which is a single 64-bit nanosecond count limited to
// roughly ±292 years, a timespan.Duration is a (seconds, nanoseconds) pair that
// covers ±math.MaxInt64 milliseconds while still resolving individual
// nanoseconds.
//
// # Representation
//
// A Duration stores whole seconds as a signed 64-bit integer and the
// sub-second part as a nanosecond offset that is always in [0, 1e9). The sign
// of the value is carried entirely by the seconds field; values strictly
// between -1s and 0s borrow from the seconds field, e.g. -0.3s is stored as
// (-1s, 700ms). Callers never see the raw pair: accessors such as
// WholeSeconds and SubsecNanos return the sign-correct logical decomposition.
//
// # Arithmetic
//
// Two arithmetic surfaces exist:
//
//   - Add, Sub, Neg, Abs, Mul, Div: total operations that use ordinary
//     wrapping integer arithmetic. On overflow they silently produce a
//     wrapped or out-of-range value. Fast path, caller-validated.
//   - CheckedAdd, CheckedSub: detect 64-bit overflow and results outside
//     [Min, Max], reporting failure through an ok bool.
//
// The unit constructors (Weeks, Days, Hours, Minutes, Seconds) panic when the
// requested value cannot be represented; they are intended for in-range
// literals. Milliseconds, Microseconds and Nanoseconds accept the full int64
// range and never panic.
//
// # Encoding
//
// Durations render as ISO 8601 (for example "P7DT6.543S") via String and
// MarshalText, and encode to JSON, CBOR and YAML as the normalized
// (secs, nanos) pair. Parsing duration text is out of scope; decoding accepts
// only the structured pair form.
package timespan
