package temporal

/*
cal.go contains proleptic Gregorian calendar arithmetic shared by
Date, PrimitiveDateTime and OffsetDateTime.
*/

const (
	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	nanosPerMicro  = 1_000

	secondsPerMinute = 60
	secondsPerHour   = 3_600
	secondsPerDay    = 86_400
	secondsPerWeek   = 604_800

	nanosPerDay int64 = secondsPerDay * nanosPerSecond
)

const (
	// days in a 400 year Gregorian cycle
	daysPerEra = 146_097

	// Julian day number of 0000-03-01, the zero of Date.value
	julianDayOffset = 1_721_120

	// days from 0000-03-01 through 1970-01-01
	unixEpochDays = 719_468
)

// cumulative days through the start of each month; common then leap.
var daysCumulative = [2][13]uint16{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

/*
IsLeapYear returns true if year is a leap year in the proleptic
Gregorian calendar.
*/
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInYear returns 366 for leap years and 365 otherwise.
*/
func DaysInYear(year int32) uint16 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

/*
DaysInYearMonth returns the number of days in month during year. An
invalid month yields zero.
*/
func DaysInYearMonth(year int32, month Month) uint8 {
	if !month.valid() {
		return 0
	}
	tbl := daysCumulative[leapIndex(year)]
	return uint8(tbl[month] - tbl[month-1])
}

/*
WeeksInYear returns the number of ISO 8601 weeks (52 or 53) in year.
*/
func WeeksInYear(year int32) uint8 {
	// A year has 53 ISO weeks when it begins on a Thursday, or when
	// it is a leap year beginning on a Wednesday.
	p := func(y int64) int64 {
		return floorMod(y+floorDiv(y, 4)-floorDiv(y, 100)+floorDiv(y, 400), 7)
	}
	if p(int64(year)) == 4 || p(int64(year)-1) == 3 {
		return 53
	}
	return 52
}

func leapIndex(year int32) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

/*
daysFromCivil returns the number of days from 0000-03-01 through
the given calendar date. Inputs are assumed valid.
*/
func daysFromCivil(year int32, month Month, day uint8) int64 {
	y := int64(year)
	if month <= February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400                     // [0, 399]
	mp := (int64(month) + 9) % 12          // March is zero
	doy := (153*mp+2)/5 + int64(day) - 1   // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*daysPerEra + doe
}

/*
civilFromDays is the inverse of daysFromCivil.
*/
func civilFromDays(v int64) (year int32, month Month, day uint8) {
	era := floorDiv(v, daysPerEra)
	doe := v - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int32(y), Month(m), uint8(d)
}

// ordinalOf returns the day of the year for a valid calendar date.
func ordinalOf(year int32, month Month, day uint8) uint16 {
	return daysCumulative[leapIndex(year)][month-1] + uint16(day)
}

// monthDayOf is the inverse of ordinalOf.
func monthDayOf(year int32, ordinal uint16) (Month, uint8) {
	tbl := daysCumulative[leapIndex(year)]
	m := December
	for m > January && ordinal <= tbl[m-1] {
		m--
	}
	return m, uint8(ordinal - tbl[m-1])
}

// weekdayOfDays returns the weekday of a Date.value; 0000-03-01 was a Wednesday.
func weekdayOfDays(v int64) Weekday {
	return Weekday(floorMod(v+int64(Wednesday), 7))
}
