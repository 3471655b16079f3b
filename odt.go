package temporal

/*
odt.go implements OffsetDateTime, a UTC instant paired with a display offset.
*/

import (
	"math"
	"math/big"
	"time"
)

/*
OffsetDateTime is a complete instant in time. It stores the instant as a
UTC [PrimitiveDateTime] together with the [UtcOffset] in which its fields
are presented. Changing the offset through [OffsetDateTime.ToOffset]
never moves the instant.

The local fields always lie within [MinPrimitiveDateTime] and
[MaxPrimitiveDateTime], so the text form of every value parses back. The
stored UTC instant may fall up to one day beyond those bounds, as with
9999-12-31T23:00:00-05:00.

Equality through == compares both the instant and the offset; use
[OffsetDateTime.Equal] to compare instants alone.
*/
type OffsetDateTime struct {
	utc    PrimitiveDateTime // always UTC; local fields in range
	offset UtcOffset
}

// UnixEpoch is 1970-01-01T00:00:00Z.
var UnixEpoch = Date{unixEpochDays}.Midnight().AssumeUTC()

func minUnixTimestamp() int64 { return (int64(MinDate.value) - unixEpochDays) * secondsPerDay }

func maxUnixTimestamp() int64 {
	return (int64(MaxDate.value)-unixEpochDays)*secondsPerDay + secondsPerDay - 1
}

/*
FromUnixTimestamp returns the [OffsetDateTime] in [UTC] which is ts
seconds after 1970-01-01T00:00:00Z, ignoring leap seconds as POSIX time
does. A *[ComponentRange] error is returned if the result falls outside
the supported years.
*/
func FromUnixTimestamp(ts int64) (OffsetDateTime, error) {
	if err := ensureRange("timestamp", ts, minUnixTimestamp(), maxUnixTimestamp()); err != nil {
		return OffsetDateTime{}, err
	}
	days := floorDiv(ts, secondsPerDay)
	secs := floorMod(ts, secondsPerDay)
	return OffsetDateTime{
		utc: PrimitiveDateTime{
			date: Date{int32(unixEpochDays + days)},
			time: timeOfNanos(secs * nanosPerSecond),
		},
	}, nil
}

/*
FromUnixTimestampNanos is like [FromUnixTimestamp] for a nanosecond
count. The *[ComponentRange] error, if any, reports the timestamp in
whole seconds.
*/
func FromUnixTimestampNanos(ns *big.Int) (OffsetDateTime, error) {
	if ns == nil {
		return OffsetDateTime{}, conversionErrorf("nil nanosecond count: ", ErrConversionRange)
	}

	// Euclidean division: the remainder is never negative
	secs, rem := new(big.Int).DivMod(ns, bigNanosPerSecond, new(big.Int))
	if !secs.IsInt64() {
		val := int64(math.MinInt64)
		if secs.Sign() > 0 {
			val = math.MaxInt64
		}
		return OffsetDateTime{}, newComponentRange("timestamp",
			minUnixTimestamp(), maxUnixTimestamp(), val, false)
	}

	odt, err := FromUnixTimestamp(secs.Int64())
	if err == nil {
		odt.utc.time.nanosecond = uint32(rem.Int64())
	}
	return odt, err
}

/*
FromTime converts a [time.Time] into an [OffsetDateTime], keeping its
instant and its zone offset at that instant. A *[ComponentRange] error
is returned if the local year of t is not supported.
*/
func FromTime(t time.Time) (OffsetDateTime, error) {
	_, secs := t.Zone()
	offset, err := OffsetFromWholeSeconds(int32(secs))
	if err != nil {
		return OffsetDateTime{}, err
	}
	year, month, day := t.Date()
	if err = ensureRange("year", int64(year), int64(MinYear), int64(MaxYear)); err != nil {
		return OffsetDateTime{}, err
	}
	date, err := DateFromCalendar(int32(year), Month(month), uint8(day))
	if err != nil {
		return OffsetDateTime{}, err
	}
	tod, err := TimeFromHMSNano(uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()), uint32(t.Nanosecond()))
	if err != nil {
		return OffsetDateTime{}, err
	}
	return date.WithTime(tod).AssumeOffset(offset), nil
}

/*
ToTime returns the receiver as a [time.Time]. The location is [time.UTC]
for a zero offset and an unnamed fixed zone otherwise.
*/
func (r OffsetDateTime) ToTime() time.Time {
	t := time.Unix(r.UnixTimestamp(), int64(r.utc.time.nanosecond))
	if r.offset.IsUTC() {
		return t.UTC()
	}
	return t.In(time.FixedZone("", int(r.offset.WholeSeconds())))
}

// UnixTimestamp returns the POSIX seconds of the instant; the offset has no effect.
func (r OffsetDateTime) UnixTimestamp() int64 {
	days := int64(r.utc.date.value) - unixEpochDays
	return days*secondsPerDay + r.utc.time.nanosOfDay()/nanosPerSecond
}

// UnixTimestampNanos returns the POSIX nanoseconds of the instant.
func (r OffsetDateTime) UnixTimestampNanos() *big.Int {
	n := new(big.Int).Mul(newBigInt(r.UnixTimestamp()), bigNanosPerSecond)
	return n.Add(n, newBigInt(int64(r.utc.time.nanosecond)))
}

func (r OffsetDateTime) Offset() UtcOffset { return r.offset }

// UTCDateTime returns the instant as a UTC [PrimitiveDateTime].
func (r OffsetDateTime) UTCDateTime() PrimitiveDateTime { return r.utc }

// Local returns the fields of the receiver as seen in its own offset.
func (r OffsetDateTime) Local() PrimitiveDateTime { return r.utc.UTCToOffset(r.offset) }

func (r OffsetDateTime) Date() Date          { return r.Local().date }
func (r OffsetDateTime) Time() Time          { return r.Local().time }
func (r OffsetDateTime) Year() int32         { return r.Date().Year() }
func (r OffsetDateTime) Month() Month        { return r.Date().Month() }
func (r OffsetDateTime) Day() uint8          { return r.Date().Day() }
func (r OffsetDateTime) Ordinal() uint16     { return r.Date().Ordinal() }
func (r OffsetDateTime) ISOWeek() uint8      { return r.Date().ISOWeek() }
func (r OffsetDateTime) Weekday() Weekday    { return r.Date().Weekday() }
func (r OffsetDateTime) ToJulianDay() int32  { return r.Date().ToJulianDay() }
func (r OffsetDateTime) Hour() uint8         { return r.Time().hour }
func (r OffsetDateTime) Minute() uint8       { return r.Time().minute }
func (r OffsetDateTime) Second() uint8       { return r.Time().second }
func (r OffsetDateTime) Millisecond() uint16 { return r.Time().Millisecond() }
func (r OffsetDateTime) Microsecond() uint32 { return r.Time().Microsecond() }
func (r OffsetDateTime) Nanosecond() uint32  { return r.utc.time.nanosecond }

// ToCalendarDate returns the local year, month and day of the receiver.
func (r OffsetDateTime) ToCalendarDate() (int32, Month, uint8) { return r.Date().ToCalendarDate() }

/*
ToOffset returns the same instant presented in offset o. Only the
field decomposition changes:

	odt.ToOffset(o).UnixTimestamp() == odt.UnixTimestamp()

It panics if the local fields in o fall outside the supported range,
which happens only within a day of [MinDate] or [MaxDate]. See
[OffsetDateTime.CheckedToOffset].
*/
func (r OffsetDateTime) ToOffset(o UtcOffset) OffsetDateTime {
	out, ok := r.CheckedToOffset(o)
	if !ok {
		panic("temporal: local datetime out of valid range")
	}
	return out
}

/*
CheckedToOffset is like [OffsetDateTime.ToOffset], but returns false
rather than panicking when the local fields in o are not representable.
*/
func (r OffsetDateTime) CheckedToOffset(o UtcOffset) (OffsetDateTime, bool) {
	out := OffsetDateTime{utc: r.utc, offset: o}
	if !out.Local().inRange() {
		debugArith(r, o)
		return OffsetDateTime{}, false
	}
	return out, true
}

// presentIn is CheckedToOffset reporting the out of range local year.
func (r OffsetDateTime) presentIn(o UtcOffset) (OffsetDateTime, error) {
	out, ok := r.CheckedToOffset(o)
	if !ok {
		year := OffsetDateTime{utc: r.utc, offset: o}.Local().Year()
		return OffsetDateTime{}, newComponentRange("year", int64(MinYear), int64(MaxYear), int64(year), true)
	}
	return out, nil
}

/*
ReplaceOffset returns the receiver with its offset swapped for o. The
UTC instant is kept, so this is equivalent to [OffsetDateTime.ToOffset],
and it panics likewise. To keep the local fields and move the instant
instead, use:

	odt.Local().AssumeOffset(o)
*/
func (r OffsetDateTime) ReplaceOffset(o UtcOffset) OffsetDateTime { return r.ToOffset(o) }

/*
ReplaceDate returns the receiver with its local date swapped for d. The
local time and offset are kept, so the instant moves.
*/
func (r OffsetDateTime) ReplaceDate(d Date) OffsetDateTime {
	return r.Local().ReplaceDate(d).AssumeOffset(r.offset)
}

// ReplaceTime returns the receiver with its local time swapped for t.
func (r OffsetDateTime) ReplaceTime(t Time) OffsetDateTime {
	return r.Local().ReplaceTime(t).AssumeOffset(r.offset)
}

// ReplaceDateTime returns the receiver with its local fields swapped for pdt.
func (r OffsetDateTime) ReplaceDateTime(pdt PrimitiveDateTime) OffsetDateTime {
	return pdt.AssumeOffset(r.offset)
}

/*
CheckedAdd returns the receiver advanced by d, or false if the local
fields leave the supported range. The offset is kept.
*/
func (r OffsetDateTime) CheckedAdd(d Duration) (OffsetDateTime, bool) {
	local, ok := r.Local().CheckedAdd(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return local.AssumeOffset(r.offset), true
}

// CheckedSub returns the receiver moved back by d, or false out of range.
func (r OffsetDateTime) CheckedSub(d Duration) (OffsetDateTime, bool) {
	local, ok := r.Local().CheckedSub(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	return local.AssumeOffset(r.offset), true
}

/*
SaturatingAdd is like [OffsetDateTime.CheckedAdd], but clamps the local
fields to [MinPrimitiveDateTime] or [MaxPrimitiveDateTime].
*/
func (r OffsetDateTime) SaturatingAdd(d Duration) OffsetDateTime {
	return r.Local().SaturatingAdd(d).AssumeOffset(r.offset)
}

// SaturatingSub is like [OffsetDateTime.CheckedSub], but clamps the local fields.
func (r OffsetDateTime) SaturatingSub(d Duration) OffsetDateTime {
	return r.Local().SaturatingSub(d).AssumeOffset(r.offset)
}

// Add is the fatal form of [OffsetDateTime.CheckedAdd].
func (r OffsetDateTime) Add(d Duration) OffsetDateTime {
	return r.Local().Add(d).AssumeOffset(r.offset)
}

// Sub is the fatal form of [OffsetDateTime.CheckedSub].
func (r OffsetDateTime) Sub(d Duration) OffsetDateTime {
	return r.Local().Sub(d).AssumeOffset(r.offset)
}

// Diff returns the span between the instants of other and the receiver.
func (r OffsetDateTime) Diff(other OffsetDateTime) Duration { return r.utc.Diff(other.utc) }

// Compare orders by instant, ignoring offsets.
func (r OffsetDateTime) Compare(other OffsetDateTime) int { return r.utc.Compare(other.utc) }

func (r OffsetDateTime) Before(other OffsetDateTime) bool { return r.Compare(other) < 0 }
func (r OffsetDateTime) After(other OffsetDateTime) bool  { return r.Compare(other) > 0 }
func (r OffsetDateTime) Equal(other OffsetDateTime) bool  { return r.utc == other.utc }
