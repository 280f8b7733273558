package codec

import (
	"fmt"
	"time"

	"github.com/amp-labs/amp-ranges/errors"
)

// Time maps instants onto whole multiples of a resolution since the Unix epoch.
// Two instants in the same resolution window share a key, and the stored value
// is the start of that window in UTC. The zero Time has one-second resolution
// and is the same kind as Seconds.
type Time struct {
	// resolution is zero for one-second codecs so that every one-second Time
	// compares equal.
	resolution time.Duration
}

var (
	// Seconds is the Time codec at one-second resolution.
	Seconds = Time{}

	// Days is the Time codec at one-day resolution, with days starting at
	// midnight UTC.
	Days = Time{resolution: 24 * time.Hour} //nolint:mnd
)

// NewTime returns a Time codec with the given resolution.
func NewTime(resolution time.Duration) (Time, error) {
	if resolution <= 0 {
		return Time{}, fmt.Errorf("%w: time resolution must be positive, got %s",
			errors.ErrInvalidArgument, resolution)
	}

	if resolution == time.Second {
		return Seconds, nil
	}

	return Time{resolution: resolution}, nil
}

// Resolution returns the width of one key step.
func (c Time) Resolution() time.Duration {
	if c.resolution <= 0 {
		return time.Second
	}

	return c.resolution
}

// Encode returns the index of the resolution window holding value.
func (c Time) Encode(value time.Time) int64 {
	res := c.Resolution()

	// Whole-second resolutions work on Unix seconds, which stay in range for
	// every year a time.Time can hold.
	if res%time.Second == 0 {
		return floorDiv(value.Unix(), int64(res/time.Second))
	}

	return floorDiv(value.UnixNano(), int64(res))
}

// Decode returns the start of the key's window in UTC.
func (c Time) Decode(key int64) time.Time {
	res := c.Resolution()

	if res%time.Second == 0 {
		return time.Unix(key*int64(res/time.Second), 0).UTC()
	}

	return time.Unix(0, key*int64(res)).UTC()
}

// Normalize truncates value to the start of its window in UTC.
func (c Time) Normalize(value time.Time) time.Time {
	return c.Decode(c.Encode(value))
}

// floorDiv divides rounding toward negative infinity, so instants before the
// epoch land in the window that starts at or before them.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
