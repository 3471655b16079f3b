package temporal

/*
pdt.go implements PrimitiveDateTime, a Date and Time with no offset.
*/

/*
PrimitiveDateTime combines a [Date] and a [Time] without any UTC offset.
Its meaning is defined by the observer until paired with a [UtcOffset]
through [PrimitiveDateTime.AssumeOffset].
*/
type PrimitiveDateTime struct {
	date Date
	time Time
}

var (
	// MinPrimitiveDateTime is midnight at the start of MinDate.
	MinPrimitiveDateTime = PrimitiveDateTime{date: MinDate}

	// MaxPrimitiveDateTime is the last nanosecond of MaxDate.
	MaxPrimitiveDateTime = PrimitiveDateTime{
		date: MaxDate,
		time: Time{23, 59, 59, nanosPerSecond - 1},
	}
)

/*
NewPrimitiveDateTime returns a [PrimitiveDateTime] of date and t. This
cannot fail, as both inputs are already valid.
*/
func NewPrimitiveDateTime(date Date, t Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: t}
}

func (r PrimitiveDateTime) Date() Date { return r.date }
func (r PrimitiveDateTime) Time() Time { return r.time }

func (r PrimitiveDateTime) Year() int32         { return r.date.Year() }
func (r PrimitiveDateTime) Month() Month        { return r.date.Month() }
func (r PrimitiveDateTime) Day() uint8          { return r.date.Day() }
func (r PrimitiveDateTime) Ordinal() uint16     { return r.date.Ordinal() }
func (r PrimitiveDateTime) ISOWeek() uint8      { return r.date.ISOWeek() }
func (r PrimitiveDateTime) Weekday() Weekday    { return r.date.Weekday() }
func (r PrimitiveDateTime) ToJulianDay() int32  { return r.date.ToJulianDay() }
func (r PrimitiveDateTime) Hour() uint8         { return r.time.hour }
func (r PrimitiveDateTime) Minute() uint8       { return r.time.minute }
func (r PrimitiveDateTime) Second() uint8       { return r.time.second }
func (r PrimitiveDateTime) Millisecond() uint16 { return r.time.Millisecond() }
func (r PrimitiveDateTime) Microsecond() uint32 { return r.time.Microsecond() }
func (r PrimitiveDateTime) Nanosecond() uint32  { return r.time.nanosecond }

// ToCalendarDate returns the year, month and day of the receiver.
func (r PrimitiveDateTime) ToCalendarDate() (int32, Month, uint8) { return r.date.ToCalendarDate() }

/*
CheckedAdd returns the receiver advanced by d, or false if the result
falls outside [MinPrimitiveDateTime]..[MaxPrimitiveDateTime]. The
time-of-day carry is applied to the date.
*/
func (r PrimitiveDateTime) CheckedAdd(d Duration) (PrimitiveDateTime, bool) {
	t, days := r.time.AdjustingAdd(d)
	date, ok := r.date.shiftDays(days)
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date, t}, true
}

// CheckedSub returns the receiver moved back by d, or false out of range.
func (r PrimitiveDateTime) CheckedSub(d Duration) (PrimitiveDateTime, bool) {
	t, days := r.time.AdjustingSub(d)
	date, ok := r.date.shiftDays(days)
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date, t}, true
}

/*
SaturatingAdd is like [PrimitiveDateTime.CheckedAdd], but clamps to
[MinPrimitiveDateTime] or [MaxPrimitiveDateTime] rather than failing.
*/
func (r PrimitiveDateTime) SaturatingAdd(d Duration) PrimitiveDateTime {
	if out, ok := r.CheckedAdd(d); ok {
		return out
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MinPrimitiveDateTime
	}
	return MaxPrimitiveDateTime
}

// SaturatingSub is like [PrimitiveDateTime.CheckedSub], but clamps.
func (r PrimitiveDateTime) SaturatingSub(d Duration) PrimitiveDateTime {
	if out, ok := r.CheckedSub(d); ok {
		return out
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MaxPrimitiveDateTime
	}
	return MinPrimitiveDateTime
}

// Add is the fatal form of [PrimitiveDateTime.CheckedAdd].
func (r PrimitiveDateTime) Add(d Duration) PrimitiveDateTime {
	out, ok := r.CheckedAdd(d)
	if !ok {
		panic("temporal: resulting value is out of range")
	}
	return out
}

// Sub is the fatal form of [PrimitiveDateTime.CheckedSub].
func (r PrimitiveDateTime) Sub(d Duration) PrimitiveDateTime {
	out, ok := r.CheckedSub(d)
	if !ok {
		panic("temporal: resulting value is out of range")
	}
	return out
}

// Diff returns the span from other to the receiver.
func (r PrimitiveDateTime) Diff(other PrimitiveDateTime) Duration {
	days := int64(r.date.value) - int64(other.date.value)
	return Seconds(days * secondsPerDay).Add(r.time.Diff(other.time))
}

func (r PrimitiveDateTime) Compare(other PrimitiveDateTime) int {
	if c := r.date.Compare(other.date); c != 0 {
		return c
	}
	return r.time.Compare(other.time)
}

func (r PrimitiveDateTime) inRange() bool {
	return inRange(r.date.value, MinDate.value, MaxDate.value)
}

func (r PrimitiveDateTime) Before(other PrimitiveDateTime) bool { return r.Compare(other) < 0 }
func (r PrimitiveDateTime) After(other PrimitiveDateTime) bool  { return r.Compare(other) > 0 }

// ReplaceDate returns the receiver with its date swapped for date.
func (r PrimitiveDateTime) ReplaceDate(date Date) PrimitiveDateTime {
	return PrimitiveDateTime{date, r.time}
}

// ReplaceTime returns the receiver with its time swapped for t.
func (r PrimitiveDateTime) ReplaceTime(t Time) PrimitiveDateTime {
	return PrimitiveDateTime{r.date, t}
}

func (r PrimitiveDateTime) ReplaceYear(year int32) (PrimitiveDateTime, error) {
	d, err := r.date.ReplaceYear(year)
	return r.withDate(d, err)
}

func (r PrimitiveDateTime) ReplaceMonth(month Month) (PrimitiveDateTime, error) {
	d, err := r.date.ReplaceMonth(month)
	return r.withDate(d, err)
}

func (r PrimitiveDateTime) ReplaceDay(day uint8) (PrimitiveDateTime, error) {
	d, err := r.date.ReplaceDay(day)
	return r.withDate(d, err)
}

func (r PrimitiveDateTime) ReplaceHour(hour uint8) (PrimitiveDateTime, error) {
	return r.date.withTime(r.time.ReplaceHour(hour))
}

func (r PrimitiveDateTime) ReplaceMinute(minute uint8) (PrimitiveDateTime, error) {
	return r.date.withTime(r.time.ReplaceMinute(minute))
}

func (r PrimitiveDateTime) ReplaceSecond(second uint8) (PrimitiveDateTime, error) {
	return r.date.withTime(r.time.ReplaceSecond(second))
}

func (r PrimitiveDateTime) ReplaceNanosecond(nano uint32) (PrimitiveDateTime, error) {
	return r.date.withTime(r.time.ReplaceNanosecond(nano))
}

func (r PrimitiveDateTime) withDate(d Date, err error) (PrimitiveDateTime, error) {
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return PrimitiveDateTime{d, r.time}, nil
}

// AssumeUTC returns the receiver as an [OffsetDateTime] in [UTC].
func (r PrimitiveDateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: r, offset: UTC}
}

/*
AssumeOffset returns an [OffsetDateTime] treating the fields of the
receiver as already expressed in offset o. The stored instant is the
receiver less o:

	pdt.AssumeOffset(+02:00) // 12:00 local is 10:00 UTC
*/
func (r PrimitiveDateTime) AssumeOffset(o UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: r.OffsetToUTC(o), offset: o}
}

/*
OffsetToUTC shifts the fields of the receiver, taken as local time in
offset o, to UTC. This is a field level shift: the result carries no
offset of its own. The date is carried without a range check, so the
result may lie one day beyond [MinDate] or [MaxDate].
*/
func (r PrimitiveDateTime) OffsetToUTC(o UtcOffset) PrimitiveDateTime {
	return r.shiftSeconds(-int64(o.WholeSeconds()))
}

/*
UTCToOffset shifts the fields of the receiver, taken as UTC, into local
time at offset o. It is the inverse of [PrimitiveDateTime.OffsetToUTC].
*/
func (r PrimitiveDateTime) UTCToOffset(o UtcOffset) PrimitiveDateTime {
	return r.shiftSeconds(int64(o.WholeSeconds()))
}

// shiftSeconds moves the receiver by less than one day in either direction.
func (r PrimitiveDateTime) shiftSeconds(secs int64) PrimitiveDateTime {
	total := r.time.nanosOfDay() + secs*nanosPerSecond
	return PrimitiveDateTime{
		date: Date{r.date.value + int32(floorDiv(total, nanosPerDay))},
		time: timeOfNanos(floorMod(total, nanosPerDay)),
	}
}
