package temporal

/*
date.go implements Date, a day of the proleptic Gregorian calendar.
*/

import "math"

/*
Date is a day in the proleptic Gregorian calendar, stored as a linear
day count. The supported years are [MinYear] through [MaxYear].

The zero value is 0000-03-01; use one of the constructors such as
[DateFromCalendar] to obtain a meaningful Date.
*/
type Date struct {
	value int32 // days since 0000-03-01
}

var (
	// MinDate is the earliest supported Date, January 1st of MinYear.
	MinDate = Date{int32(daysFromCivil(MinYear, January, 1))}

	// MaxDate is the latest supported Date, December 31st of MaxYear.
	MaxDate = Date{int32(daysFromCivil(MaxYear, December, 31))}
)

/*
DateFromCalendar returns the [Date] of the given year, month and day.

A *[ComponentRange] error is returned if year is outside the supported
range, if month is invalid, or if day does not exist in that month of
that year. February 29th exists only in leap years.
*/
func DateFromCalendar(year int32, month Month, day uint8) (Date, error) {
	if err := ensureYear(year); err != nil {
		return Date{}, err
	}
	if err := ensureRange("month", int64(month), 1, 12); err != nil {
		return Date{}, err
	}
	if err := ensureRangeCond("day", int64(day), 1, int64(DaysInYearMonth(year, month))); err != nil {
		return Date{}, err
	}
	return Date{int32(daysFromCivil(year, month, day))}, nil
}

/*
DateFromOrdinal returns the [Date] of the given year and day of the year
(1 through 365, or 366 in leap years).
*/
func DateFromOrdinal(year int32, ordinal uint16) (Date, error) {
	if err := ensureYear(year); err != nil {
		return Date{}, err
	}
	if err := ensureRangeCond("ordinal", int64(ordinal), 1, int64(DaysInYear(year))); err != nil {
		return Date{}, err
	}
	m, d := monthDayOf(year, ordinal)
	return Date{int32(daysFromCivil(year, m, d))}, nil
}

/*
DateFromISOWeek returns the [Date] of the given ISO 8601 week date. The
week must exist within the ISO year: 1 through 52, or 53 for long years.
Note the ISO year may differ from the calendar year of the result near
year boundaries.
*/
func DateFromISOWeek(year int32, week uint8, weekday Weekday) (Date, error) {
	if err := ensureYear(year); err != nil {
		return Date{}, err
	}
	if err := ensureRangeCond("week", int64(week), 1, int64(WeeksInYear(year))); err != nil {
		return Date{}, err
	}
	if err := ensureRange("weekday", int64(weekday), int64(Monday), int64(Sunday)); err != nil {
		return Date{}, err
	}

	// week one is the week holding January 4th
	jan4 := daysFromCivil(year, January, 4)
	monday := jan4 - int64(weekdayOfDays(jan4).NumberDaysFromMonday())
	v := monday + int64(week-1)*7 + int64(weekday.NumberDaysFromMonday())

	if !inRange(v, int64(MinDate.value), int64(MaxDate.value)) {
		return Date{}, newComponentRange("year", int64(MinYear), int64(MaxYear), int64(year), true)
	}
	return Date{int32(v)}, nil
}

/*
DateFromJulianDay returns the [Date] of the given Julian day number.
Day 0 is November 24th, 4714 BCE (proleptic Gregorian), and day
2_451_545 is 2000-01-01.
*/
func DateFromJulianDay(jd int32) (Date, error) {
	if err := ensureRange("julian_day", int64(jd),
		int64(MinDate.ToJulianDay()), int64(MaxDate.ToJulianDay())); err != nil {
		return Date{}, err
	}
	return Date{jd - julianDayOffset}, nil
}

func ensureYear(year int32) error {
	return ensureRange("year", int64(year), int64(MinYear), int64(MaxYear))
}

// ToJulianDay returns the Julian day number of the receiver.
func (r Date) ToJulianDay() int32 { return r.value + julianDayOffset }

/*
ToCalendarDate returns the year, month and day of the receiver.
*/
func (r Date) ToCalendarDate() (int32, Month, uint8) { return civilFromDays(int64(r.value)) }

func (r Date) Year() int32 {
	y, _, _ := r.ToCalendarDate()
	return y
}

func (r Date) Month() Month {
	_, m, _ := r.ToCalendarDate()
	return m
}

func (r Date) Day() uint8 {
	_, _, d := r.ToCalendarDate()
	return d
}

/*
ToOrdinalDate returns the year and day of the year of the receiver.
*/
func (r Date) ToOrdinalDate() (int32, uint16) {
	y, m, d := r.ToCalendarDate()
	return y, ordinalOf(y, m, d)
}

// Ordinal returns the day of the year, 1 through 366.
func (r Date) Ordinal() uint16 {
	_, o := r.ToOrdinalDate()
	return o
}

/*
ToISOWeekDate returns the ISO 8601 year, week and weekday of the
receiver. The ISO year differs from the calendar year for a few days
around January 1st.
*/
func (r Date) ToISOWeekDate() (int32, uint8, Weekday) {
	year, ordinal := r.ToOrdinalDate()
	wd := r.Weekday()

	switch week := (int(ordinal) + 10 - int(wd.NumberFromMonday())) / 7; {
	case week == 0:
		return year - 1, WeeksInYear(year - 1), wd
	case week == 53 && WeeksInYear(year) == 52:
		return year + 1, 1, wd
	default:
		return year, uint8(week), wd
	}
}

// ISOWeek returns the ISO 8601 week number, 1 through 53.
func (r Date) ISOWeek() uint8 {
	_, w, _ := r.ToISOWeekDate()
	return w
}

/*
SundayBasedWeek returns the week number where week 1 begins on the
first Sunday of the year. Days before it fall in week 0.
*/
func (r Date) SundayBasedWeek() uint8 {
	return uint8((int(r.Ordinal()) - int(r.Weekday().NumberDaysFromSunday()) + 6) / 7)
}

/*
MondayBasedWeek returns the week number where week 1 begins on the
first Monday of the year. Days before it fall in week 0.
*/
func (r Date) MondayBasedWeek() uint8 {
	return uint8((int(r.Ordinal()) - int(r.Weekday().NumberDaysFromMonday()) + 6) / 7)
}

// Weekday returns the day of the week of the receiver.
func (r Date) Weekday() Weekday { return weekdayOfDays(int64(r.value)) }

/*
NextDay returns the day after the receiver, or false if the receiver is
[MaxDate].
*/
func (r Date) NextDay() (Date, bool) {
	if r.value >= MaxDate.value {
		return Date{}, false
	}
	return Date{r.value + 1}, true
}

/*
PreviousDay returns the day before the receiver, or false if the receiver
is [MinDate].
*/
func (r Date) PreviousDay() (Date, bool) {
	if r.value <= MinDate.value {
		return Date{}, false
	}
	return Date{r.value - 1}, true
}

/*
CheckedAdd returns the receiver advanced by the whole days of d, or
false if the result falls outside [MinDate]..[MaxDate].

Only whole days count: any sub-day remainder of d is truncated toward
zero and ignored. Adding 23 hours leaves the Date unchanged, and adding
-36 hours moves it back by exactly one day.
*/
func (r Date) CheckedAdd(d Duration) (Date, bool) {
	return r.shiftDays(d.WholeDays())
}

/*
CheckedSub returns the receiver moved back by the whole days of d. The
sub-day remainder is truncated as with [Date.CheckedAdd].
*/
func (r Date) CheckedSub(d Duration) (Date, bool) {
	days := d.WholeDays()
	if days == math.MinInt64 {
		return Date{}, false
	}
	return r.shiftDays(-days)
}

func (r Date) shiftDays(days int64) (Date, bool) {
	if days < math.MinInt32 || days > math.MaxInt32 {
		return Date{}, false
	}
	v := int64(r.value) + days
	if !inRange(v, int64(MinDate.value), int64(MaxDate.value)) {
		return Date{}, false
	}
	return Date{int32(v)}, true
}

/*
SaturatingAdd is like [Date.CheckedAdd], but clamps to [MinDate] or
[MaxDate] rather than failing.
*/
func (r Date) SaturatingAdd(d Duration) Date {
	if out, ok := r.CheckedAdd(d); ok {
		return out
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MinDate
	}
	return MaxDate
}

// SaturatingSub is like [Date.CheckedSub], but clamps rather than failing.
func (r Date) SaturatingSub(d Duration) Date {
	if out, ok := r.CheckedSub(d); ok {
		return out
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MaxDate
	}
	return MinDate
}

// Add is the fatal form of [Date.CheckedAdd]; it panics out of range.
func (r Date) Add(d Duration) Date {
	out, ok := r.CheckedAdd(d)
	if !ok {
		panic("temporal: resulting value is out of range")
	}
	return out
}

// Sub is the fatal form of [Date.CheckedSub]; it panics out of range.
func (r Date) Sub(d Duration) Date {
	out, ok := r.CheckedSub(d)
	if !ok {
		panic("temporal: resulting value is out of range")
	}
	return out
}

// Diff returns the whole days from other to the receiver as a Duration.
func (r Date) Diff(other Date) Duration { return Days(int64(r.value) - int64(other.value)) }

func (r Date) Compare(other Date) int {
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	}
	return 0
}

func (r Date) Before(other Date) bool { return r.value < other.value }
func (r Date) After(other Date) bool  { return r.value > other.value }

/*
ReplaceYear returns the receiver moved to year, keeping month and day.
February 29th fails with a *[ComponentRange] error for a common year.
*/
func (r Date) ReplaceYear(year int32) (Date, error) {
	_, m, d := r.ToCalendarDate()
	return DateFromCalendar(year, m, d)
}

// ReplaceMonth returns the receiver moved to month, keeping year and day.
func (r Date) ReplaceMonth(month Month) (Date, error) {
	y, _, d := r.ToCalendarDate()
	return DateFromCalendar(y, month, d)
}

// ReplaceDay returns the receiver moved to day, keeping year and month.
func (r Date) ReplaceDay(day uint8) (Date, error) {
	y, m, _ := r.ToCalendarDate()
	return DateFromCalendar(y, m, day)
}

// Midnight returns the receiver at 00:00:00.
func (r Date) Midnight() PrimitiveDateTime { return PrimitiveDateTime{date: r} }

// WithTime returns the receiver at the given time of day.
func (r Date) WithTime(t Time) PrimitiveDateTime { return PrimitiveDateTime{date: r, time: t} }

/*
WithHMS returns the receiver at the given hour, minute and second, or
a *[ComponentRange] error.
*/
func (r Date) WithHMS(hour, minute, second uint8) (PrimitiveDateTime, error) {
	return r.withTime(TimeFromHMS(hour, minute, second))
}

// WithHMSMilli is [Date.WithHMS] with milliseconds.
func (r Date) WithHMSMilli(hour, minute, second uint8, milli uint16) (PrimitiveDateTime, error) {
	return r.withTime(TimeFromHMSMilli(hour, minute, second, milli))
}

// WithHMSMicro is [Date.WithHMS] with microseconds.
func (r Date) WithHMSMicro(hour, minute, second uint8, micro uint32) (PrimitiveDateTime, error) {
	return r.withTime(TimeFromHMSMicro(hour, minute, second, micro))
}

// WithHMSNano is [Date.WithHMS] with nanoseconds.
func (r Date) WithHMSNano(hour, minute, second uint8, nano uint32) (PrimitiveDateTime, error) {
	return r.withTime(TimeFromHMSNano(hour, minute, second, nano))
}

func (r Date) withTime(t Time, err error) (PrimitiveDateTime, error) {
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return PrimitiveDateTime{date: r, time: t}, nil
}
