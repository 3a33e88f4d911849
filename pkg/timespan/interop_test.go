package timespan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekit-go/timekit/pkg/timespan"
)

func TestUnsigned(t *testing.T) {
	tests := []struct {
		d    timespan.Duration
		want timespan.UnsignedDuration
	}{
		{timespan.Seconds(1), timespan.UnsignedDuration{Secs: 1}},
		{timespan.Seconds(86401), timespan.UnsignedDuration{Secs: 86401}},
		{timespan.Milliseconds(123), timespan.UnsignedDuration{Nanos: 123_000_000}},
		{timespan.Milliseconds(123765), timespan.UnsignedDuration{Secs: 123, Nanos: 765_000_000}},
		{timespan.Nanoseconds(777), timespan.UnsignedDuration{Nanos: 777}},
		{timespan.Max, timespan.UnsignedDuration{Secs: 9223372036854775, Nanos: 807_000_000}},
	}

	for _, tt := range tests {
		got, err := tt.d.Unsigned()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestUnsignedRejectsNegative(t *testing.T) {
	for _, d := range []timespan.Duration{
		timespan.Seconds(-1),
		timespan.Milliseconds(-1),
		timespan.Nanoseconds(-1),
		timespan.Min,
	} {
		_, err := d.Unsigned()
		assert.ErrorIs(t, err, timespan.ErrOutOfRange, "Unsigned of %v", d)
	}
}

func TestFromUnsigned(t *testing.T) {
	tests := []struct {
		u    timespan.UnsignedDuration
		want timespan.Duration
	}{
		{timespan.UnsignedDuration{Secs: 1}, timespan.Seconds(1)},
		{timespan.UnsignedDuration{Secs: 86401}, timespan.Seconds(86401)},
		{timespan.UnsignedDuration{Nanos: 123_000_000}, timespan.Milliseconds(123)},
		{timespan.UnsignedDuration{Secs: 123, Nanos: 765_000_000}, timespan.Milliseconds(123765)},
		{timespan.UnsignedDuration{Nanos: 777}, timespan.Nanoseconds(777)},
		{timespan.UnsignedDuration{Secs: 9223372036854775, Nanos: 807_000_000}, timespan.Max},
		// A nanos field of 1e9 or more folds into the seconds.
		{timespan.UnsignedDuration{Secs: 1, Nanos: 2_500_000_000}, timespan.Milliseconds(3500)},
	}

	for _, tt := range tests {
		got, err := timespan.FromUnsigned(tt.u)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromUnsignedRejectsOverflow(t *testing.T) {
	_, err := timespan.FromUnsigned(timespan.UnsignedDuration{Secs: 9223372036854776})
	assert.ErrorIs(t, err, timespan.ErrOutOfRange)

	_, err = timespan.FromUnsigned(timespan.UnsignedDuration{Secs: 9223372036854775, Nanos: 807_000_001})
	assert.ErrorIs(t, err, timespan.ErrOutOfRange)

	_, err = timespan.FromUnsigned(timespan.UnsignedDuration{Secs: ^uint64(0)})
	assert.ErrorIs(t, err, timespan.ErrOutOfRange)
}

func TestUnsignedRoundTrip(t *testing.T) {
	for _, d := range sampleDurations() {
		if d.Cmp(timespan.Zero) < 0 {
			continue
		}
		u, err := d.Unsigned()
		require.NoError(t, err)
		back, err := timespan.FromUnsigned(u)
		require.NoError(t, err)
		assert.Equal(t, d, back, "round trip of %v", d)
	}
}

func TestStd(t *testing.T) {
	got, err := timespan.Seconds(1).Std()
	require.NoError(t, err)
	assert.Equal(t, time.Second, got)

	got, err = timespan.Milliseconds(-1500).Std()
	require.NoError(t, err)
	assert.Equal(t, -1500*time.Millisecond, got)

	_, err = timespan.Max.Std()
	assert.ErrorIs(t, err, timespan.ErrOutOfRange)
	_, err = timespan.Min.Std()
	assert.ErrorIs(t, err, timespan.ErrOutOfRange)
}

func TestFromStd(t *testing.T) {
	assert.Equal(t, timespan.Nanoseconds(1), timespan.FromStd(time.Nanosecond))
	assert.Equal(t, timespan.Seconds(3600), timespan.FromStd(time.Hour))
	assert.Equal(t, timespan.Milliseconds(-300), timespan.FromStd(-300*time.Millisecond))

	for _, sd := range []time.Duration{0, time.Nanosecond, -time.Nanosecond, 90 * time.Minute, -26 * time.Hour} {
		d := timespan.FromStd(sd)
		back, err := d.Std()
		require.NoError(t, err)
		assert.Equal(t, sd, back, "round trip of %v", sd)
	}
}
