package timespan

import (
	"fmt"
	"strings"
)

// String renders the duration in the ISO 8601 duration format, e.g. "PT0S",
// "P42D", "-P1DT1S", "PT0.042S".
//
// A leading '-' is emitted when the duration is negative; the day and time
// components are computed from the absolute value. The day component appears
// only when nonzero; the time component appears when the seconds remainder or
// sub-second part is nonzero, or unconditionally when there is no day
// component (a zero duration renders as "PT0S", never "P"). The fractional
// part uses the narrowest of 3, 6 or 9 digits that represents the value
// exactly.
func (d Duration) String() string {
	abs, sign := d, ""
	if d.secs < 0 {
		abs, sign = d.Neg(), "-"
	}
	days := abs.secs / secsPerDay
	secs := abs.secs - days*secsPerDay
	hasDate := days != 0
	hasTime := secs != 0 || abs.nanos != 0 || !hasDate

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('P')
	if hasDate {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hasTime {
		switch {
		case abs.nanos == 0:
			fmt.Fprintf(&b, "T%dS", secs)
		case abs.nanos%nanosPerMilli == 0:
			fmt.Fprintf(&b, "T%d.%03dS", secs, abs.nanos/nanosPerMilli)
		case abs.nanos%nanosPerMicro == 0:
			fmt.Fprintf(&b, "T%d.%06dS", secs, abs.nanos/nanosPerMicro)
		default:
			fmt.Fprintf(&b, "T%d.%09dS", secs, abs.nanos)
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the String form.
//
// There is no UnmarshalText: duration text is render-only, and decoding
// accepts only the structured (secs, nanos) pair.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
