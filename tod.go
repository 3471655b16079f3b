package temporal

/*
tod.go implements Time, a clock time of day with no date or offset.
*/

/*
Time is a time of day with nanosecond precision. Arithmetic wraps at
midnight; see [Time.AdjustingAdd] for the form reporting day carry.

The zero value is [Midnight].
*/
type Time struct {
	hour       uint8  // 0..=23
	minute     uint8  // 0..=59
	second     uint8  // 0..=59
	nanosecond uint32 // 0..=999_999_999
}

// Midnight is 00:00:00, the first instant of any day.
var Midnight = Time{}

/*
TimeFromHMS returns the [Time] of the given hour, minute and second,
or a *[ComponentRange] error.
*/
func TimeFromHMS(hour, minute, second uint8) (Time, error) {
	return TimeFromHMSNano(hour, minute, second, 0)
}

// TimeFromHMSMilli is [TimeFromHMS] with milliseconds (0 through 999).
func TimeFromHMSMilli(hour, minute, second uint8, milli uint16) (Time, error) {
	if err := ensureRange("millisecond", int64(milli), 0, 999); err != nil {
		return Time{}, err
	}
	return TimeFromHMSNano(hour, minute, second, uint32(milli)*nanosPerMilli)
}

// TimeFromHMSMicro is [TimeFromHMS] with microseconds (0 through 999_999).
func TimeFromHMSMicro(hour, minute, second uint8, micro uint32) (Time, error) {
	if err := ensureRange("microsecond", int64(micro), 0, 999_999); err != nil {
		return Time{}, err
	}
	return TimeFromHMSNano(hour, minute, second, micro*nanosPerMicro)
}

// TimeFromHMSNano is [TimeFromHMS] with nanoseconds (0 through 999_999_999).
func TimeFromHMSNano(hour, minute, second uint8, nano uint32) (Time, error) {
	if err := ensureRange("hour", int64(hour), 0, 23); err != nil {
		return Time{}, err
	}
	if err := ensureRange("minute", int64(minute), 0, 59); err != nil {
		return Time{}, err
	}
	if err := ensureRange("second", int64(second), 0, 59); err != nil {
		return Time{}, err
	}
	if err := ensureRange("nanosecond", int64(nano), 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	return Time{hour, minute, second, nano}, nil
}

func (r Time) Hour() uint8   { return r.hour }
func (r Time) Minute() uint8 { return r.minute }
func (r Time) Second() uint8 { return r.second }

func (r Time) Millisecond() uint16 { return uint16(r.nanosecond / nanosPerMilli) }
func (r Time) Microsecond() uint32 { return r.nanosecond / nanosPerMicro }
func (r Time) Nanosecond() uint32  { return r.nanosecond }

// AsHMS returns the hour, minute and second of the receiver.
func (r Time) AsHMS() (uint8, uint8, uint8) { return r.hour, r.minute, r.second }

// AsHMSMilli returns the hour, minute, second and millisecond of the receiver.
func (r Time) AsHMSMilli() (uint8, uint8, uint8, uint16) {
	return r.hour, r.minute, r.second, r.Millisecond()
}

// AsHMSMicro returns the hour, minute, second and microsecond of the receiver.
func (r Time) AsHMSMicro() (uint8, uint8, uint8, uint32) {
	return r.hour, r.minute, r.second, r.Microsecond()
}

// AsHMSNano returns the hour, minute, second and nanosecond of the receiver.
func (r Time) AsHMSNano() (uint8, uint8, uint8, uint32) {
	return r.hour, r.minute, r.second, r.nanosecond
}

func (r Time) nanosOfDay() int64 {
	secs := int64(r.hour)*secondsPerHour + int64(r.minute)*secondsPerMinute + int64(r.second)
	return secs*nanosPerSecond + int64(r.nanosecond)
}

// timeOfNanos expects 0 <= n < nanosPerDay.
func timeOfNanos(n int64) Time {
	secs := n / nanosPerSecond
	return Time{
		hour:       uint8(secs / secondsPerHour),
		minute:     uint8((secs / secondsPerMinute) % 60),
		second:     uint8(secs % 60),
		nanosecond: uint32(n % nanosPerSecond),
	}
}

/*
AdjustingAdd returns the receiver advanced by d, wrapped into a single
day, along with the signed number of days by which a paired [Date] must
shift. The day count is the whole days of d plus any carry across
midnight:

	t, _ := TimeFromHMS(23, 59, 59)
	t, days := t.AdjustingAdd(Seconds(2)) // 00:00:01, +1
*/
func (r Time) AdjustingAdd(d Duration) (Time, int64) {
	days := d.WholeDays()
	rem := (d.seconds%secondsPerDay)*nanosPerSecond + int64(d.nanoseconds)
	total := r.nanosOfDay() + rem
	return timeOfNanos(floorMod(total, nanosPerDay)), days + floorDiv(total, nanosPerDay)
}

/*
AdjustingSub returns the receiver moved back by d, wrapped into a single
day, along with the signed day shift for a paired [Date]. It is the
inverse of [Time.AdjustingAdd].
*/
func (r Time) AdjustingSub(d Duration) (Time, int64) {
	days := -d.WholeDays()
	rem := (d.seconds%secondsPerDay)*nanosPerSecond + int64(d.nanoseconds)
	total := r.nanosOfDay() - rem
	return timeOfNanos(floorMod(total, nanosPerDay)), days + floorDiv(total, nanosPerDay)
}

// Add returns the receiver advanced by d, wrapping at midnight.
func (r Time) Add(d Duration) Time {
	t, _ := r.AdjustingAdd(d)
	return t
}

// Sub returns the receiver moved back by d, wrapping at midnight.
func (r Time) Sub(d Duration) Time {
	t, _ := r.AdjustingSub(d)
	return t
}

/*
Diff returns the signed span from other to the receiver, both taken
within the same day.
*/
func (r Time) Diff(other Time) Duration { return Nanoseconds(r.nanosOfDay() - other.nanosOfDay()) }

func (r Time) Compare(other Time) int {
	a, b := r.nanosOfDay(), other.nanosOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Time) Before(other Time) bool { return r.Compare(other) < 0 }
func (r Time) After(other Time) bool  { return r.Compare(other) > 0 }

/*
ReplaceHour returns a copy of the receiver with the hour replaced, or a
*[ComponentRange] error if hour exceeds 23.
*/
func (r Time) ReplaceHour(hour uint8) (Time, error) {
	return TimeFromHMSNano(hour, r.minute, r.second, r.nanosecond)
}

// ReplaceMinute returns a copy of the receiver with the minute replaced.
func (r Time) ReplaceMinute(minute uint8) (Time, error) {
	return TimeFromHMSNano(r.hour, minute, r.second, r.nanosecond)
}

// ReplaceSecond returns a copy of the receiver with the second replaced.
func (r Time) ReplaceSecond(second uint8) (Time, error) {
	return TimeFromHMSNano(r.hour, r.minute, second, r.nanosecond)
}

/*
ReplaceMillisecond returns a copy of the receiver with the subsecond
part replaced by milli milliseconds.
*/
func (r Time) ReplaceMillisecond(milli uint16) (Time, error) {
	return TimeFromHMSMilli(r.hour, r.minute, r.second, milli)
}

// ReplaceMicrosecond replaces the subsecond part with micro microseconds.
func (r Time) ReplaceMicrosecond(micro uint32) (Time, error) {
	return TimeFromHMSMicro(r.hour, r.minute, r.second, micro)
}

// ReplaceNanosecond replaces the subsecond part with nano nanoseconds.
func (r Time) ReplaceNanosecond(nano uint32) (Time, error) {
	return TimeFromHMSNano(r.hour, r.minute, r.second, nano)
}
