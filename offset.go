package temporal

/*
offset.go implements UtcOffset, a fixed displacement from UTC.
*/

/*
UtcOffset is a signed displacement from UTC of less than 24 hours,
held as hours, minutes and seconds. All three components share one
sign, or are zero. The zero value is [UTC].
*/
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = UtcOffset{}

/*
OffsetFromHMS returns a [UtcOffset] of the given components. A
*[ComponentRange] error is returned if |hours| > 23, |minutes| > 59 or
|seconds| > 59.

Sign normalization: the minor components always take the sign of the
largest nonzero component before them. OffsetFromHMS(-5, 30, 0) is
therefore -05:30:00, not -04:30:00. Callers wanting a strict check
should compare the result of [UtcOffset.AsHMS] against their inputs.
*/
func OffsetFromHMS(hours, minutes, seconds int8) (UtcOffset, error) {
	if err := ensureRange("hours", int64(hours), -23, 23); err != nil {
		return UtcOffset{}, err
	}
	if err := ensureRange("minutes", int64(minutes), -59, 59); err != nil {
		return UtcOffset{}, err
	}
	if err := ensureRange("seconds", int64(seconds), -59, 59); err != nil {
		return UtcOffset{}, err
	}

	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		minutes = -minutes
	}
	if (hours > 0 && seconds < 0) || (hours < 0 && seconds > 0) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		seconds = -seconds
	}
	return UtcOffset{hours, minutes, seconds}, nil
}

/*
OffsetFromWholeSeconds returns a [UtcOffset] of s seconds east of UTC.
A *[ComponentRange] error is returned if |s| is a full day or more.
*/
func OffsetFromWholeSeconds(s int32) (UtcOffset, error) {
	if err := ensureRange("seconds", int64(s), -(secondsPerDay - 1), secondsPerDay-1); err != nil {
		return UtcOffset{}, err
	}
	return UtcOffset{
		hours:   int8(s / secondsPerHour),
		minutes: int8((s / secondsPerMinute) % 60),
		seconds: int8(s % 60),
	}, nil
}

// AsHMS returns the hours, minutes and seconds of the receiver.
func (r UtcOffset) AsHMS() (int8, int8, int8) { return r.hours, r.minutes, r.seconds }

// WholeHours returns the whole hours of the receiver, truncated toward zero.
func (r UtcOffset) WholeHours() int8 { return r.hours }

// WholeMinutes returns the receiver in whole minutes.
func (r UtcOffset) WholeMinutes() int16 { return int16(r.hours)*60 + int16(r.minutes) }

// MinutesPastHour returns the minutes component, -59 through 59.
func (r UtcOffset) MinutesPastHour() int8 { return r.minutes }

// WholeSeconds returns the receiver in seconds.
func (r UtcOffset) WholeSeconds() int32 {
	return int32(r.hours)*secondsPerHour + int32(r.minutes)*secondsPerMinute + int32(r.seconds)
}

// SecondsPastMinute returns the seconds component, -59 through 59.
func (r UtcOffset) SecondsPastMinute() int8 { return r.seconds }

func (r UtcOffset) IsUTC() bool { return r == UTC }

func (r UtcOffset) IsPositive() bool { return r.hours > 0 || r.minutes > 0 || r.seconds > 0 }

func (r UtcOffset) IsNegative() bool { return r.hours < 0 || r.minutes < 0 || r.seconds < 0 }

/*
Neg returns the receiver with the sign of every component flipped.
This always succeeds, as the range is symmetric.
*/
func (r UtcOffset) Neg() UtcOffset { return UtcOffset{-r.hours, -r.minutes, -r.seconds} }

/*
Compare returns -1, 0 or 1 as the receiver lies west of, at, or east
of o.
*/
func (r UtcOffset) Compare(o UtcOffset) int {
	a, b := r.WholeSeconds(), o.WholeSeconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// duration returns the receiver as a Duration east of UTC.
func (r UtcOffset) duration() Duration { return Seconds(int64(r.WholeSeconds())) }
