package temporal

/*
text.go implements the fixed ISO 8601 text forms of every value type,
along with their parsers and encoding.TextMarshaler support. JSON
encoding rides on the latter.
*/

import (
	"fmt"
	"time"
)

func (r Date) String() string {
	y, m, d := r.ToCalendarDate()
	bld := newStrBuilder()
	bld.WriteString(yearString(y))
	bld.WriteByte('-')
	bld.WriteString(padInt(int64(m), 2))
	bld.WriteByte('-')
	bld.WriteString(padInt(int64(d), 2))
	return bld.String()
}

// years outside 0..9999 carry a sign; years beyond 9999 use six digits.
func yearString(y int32) string {
	switch {
	case y > 9999:
		return "+" + padInt(int64(y), 6)
	case y < -9999:
		return "-" + padInt(-int64(y), 6)
	case y < 0:
		return "-" + padInt(-int64(y), 4)
	}
	return padInt(int64(y), 4)
}

func (r Time) String() string {
	bld := newStrBuilder()
	bld.WriteString(padInt(int64(r.hour), 2))
	bld.WriteByte(':')
	bld.WriteString(padInt(int64(r.minute), 2))
	bld.WriteByte(':')
	bld.WriteString(padInt(int64(r.second), 2))
	bld.WriteString(fracString(r.nanosecond))
	return bld.String()
}

// fracString renders nanos as a decimal fraction without trailing zeros.
func fracString(nanos uint32) string {
	if nanos == 0 {
		return ""
	}
	return "." + trimR(padInt(int64(nanos), 9), "0")
}

func (r PrimitiveDateTime) String() string { return r.date.String() + "T" + r.time.String() }

/*
String returns the receiver as "+HH:MM", or "+HH:MM:SS" when the seconds
component is nonzero. [UTC] renders as "+00:00".
*/
func (r UtcOffset) String() string {
	sign := "+"
	if r.IsNegative() {
		sign = "-"
	}
	s := sign + padInt(int64(absInt(r.hours)), 2) + ":" + padInt(int64(absInt(r.minutes)), 2)
	if r.seconds != 0 {
		s += ":" + padInt(int64(absInt(r.seconds)), 2)
	}
	return s
}

/*
String returns the local fields and offset of the receiver in RFC 3339
form, e.g.: "2024-02-29T13:45:00.5+05:30". A UTC offset renders as "Z".
*/
func (r OffsetDateTime) String() string {
	off := "Z"
	if !r.offset.IsUTC() {
		off = r.offset.String()
	}
	return r.Local().String() + off
}

/*
String returns the receiver as an ISO 8601 duration, such as "P1DT2H3M4.5S"
or "-PT0.25S". Days are the largest unit, as weeks and days are the only
date units of fixed length. A zero Duration renders as "PT0S".
*/
func (r Duration) String() string {
	if r.IsZero() {
		return "PT0S"
	}

	mag := uint64(r.seconds)
	if r.seconds < 0 {
		mag = uint64(-(r.seconds + 1)) + 1
	}
	nanos := uint32(absInt(r.nanoseconds))
	days := mag / secondsPerDay
	hours := (mag % secondsPerDay) / secondsPerHour
	minutes := (mag % secondsPerHour) / secondsPerMinute
	secs := mag % secondsPerMinute

	bld := newStrBuilder()
	if r.IsNegative() {
		bld.WriteByte('-')
	}
	bld.WriteByte('P')
	if days > 0 {
		bld.WriteString(fmtUint(days, 10) + "D")
	}
	if hours > 0 || minutes > 0 || secs > 0 || nanos > 0 {
		bld.WriteByte('T')
	}
	if hours > 0 {
		bld.WriteString(fmtUint(hours, 10) + "H")
	}
	if minutes > 0 {
		bld.WriteString(fmtUint(minutes, 10) + "M")
	}
	if secs > 0 || nanos > 0 {
		bld.WriteString(fmtUint(secs, 10) + fracString(nanos) + "S")
	}
	return bld.String()
}

/*
textOf extracts the text of a parser input. Accepted are string and
[]byte.
*/
func textOf(kind string, x any) (string, error) {
	switch tv := x.(type) {
	case string:
		return tv, nil
	case []byte:
		return string(tv), nil
	}
	return "", parseErrorf("cannot parse ", kind, " from ", typeName(x), ": ", errUnsupportedValue)
}

func typeName(x any) string { return replaceAll(fmt.Sprintf("%T", x), "temporal.", "") }

/*
parseText runs parse over the text of x, then applies any constraints
to the result. The zero value of T is returned alongside any error.
*/
func parseText[T any](kind string, x any, parse func(string) (T, error), cs []Constraint[T]) (v T, err error) {
	exit := debugPath(kind, x)
	defer func() { exit(v, err) }()

	var zero T
	var s string
	if s, err = textOf(kind, x); err != nil {
		return
	}
	if v, err = parse(s); err != nil {
		v, err = zero, parseWrap(kind, s, err)
		return
	}
	if err = ConstraintGroup[T](cs).Constrain(v); err != nil {
		v = zero
	}
	return
}

/*
ParseDate returns the [Date] read from x, which must be a string or
[]byte of the form "YYYY-MM-DD". Years outside 0000 through 9999 carry
an explicit sign and may have up to six digits, e.g.: "-0044-03-15".

Any constraints provided are evaluated in order against the result.
*/
func ParseDate(x any, constraints ...Constraint[Date]) (Date, error) {
	return parseText("date", x, parseDate, constraints)
}

func parseDate(s string) (Date, error) {
	var neg, signed bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg, signed = s[0] == '-', true
		s = s[1:]
	}

	i := stridxb(s, '-')
	if i < 0 || len(s)-i != 6 || s[i+3] != '-' {
		return Date{}, errMalformed
	}
	if (!signed && i != 4) || (signed && (i < 4 || i > 6)) {
		return Date{}, errMalformed
	}

	y, ok1 := parseDigits(s[:i], i)
	m, ok2 := parseDigits(s[i+1:i+3], 2)
	d, ok3 := parseDigits(s[i+4:], 2)
	if !(ok1 && ok2 && ok3) {
		return Date{}, errMalformed
	}
	if neg {
		y = -y
	}
	return DateFromCalendar(int32(y), Month(m), uint8(d))
}

/*
ParseTime returns the [Time] read from x, a string or []byte of the form
"HH:MM:SS" with an optional fraction of up to nine digits.
*/
func ParseTime(x any, constraints ...Constraint[Time]) (Time, error) {
	return parseText("time", x, parseTime, constraints)
}

func parseTime(s string) (Time, error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return Time{}, errMalformed
	}
	h, ok1 := parseDigits(s[0:2], 2)
	m, ok2 := parseDigits(s[3:5], 2)
	sec, ok3 := parseDigits(s[6:8], 2)
	if !(ok1 && ok2 && ok3) {
		return Time{}, errMalformed
	}
	nanos, err := parseFraction(s[8:])
	if err != nil {
		return Time{}, err
	}
	return TimeFromHMSNano(uint8(h), uint8(m), uint8(sec), nanos)
}

// parseFraction reads an optional ".f" of one to nine digits as nanoseconds.
func parseFraction(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if (s[0] != '.' && s[0] != ',') || len(s) < 2 || len(s) > 10 {
		return 0, errMalformed
	}
	digits := s[1:]
	v, ok := parseDigits(digits, len(digits))
	if !ok {
		return 0, errMalformed
	}
	for i := len(digits); i < 9; i++ {
		v *= 10
	}
	return uint32(v), nil
}

/*
ParsePrimitiveDateTime returns the [PrimitiveDateTime] read from x, of
the form "<date>T<time>" as accepted by [ParseDate] and [ParseTime].
*/
func ParsePrimitiveDateTime(x any, constraints ...Constraint[PrimitiveDateTime]) (PrimitiveDateTime, error) {
	return parseText("date-time", x, parsePrimitiveDateTime, constraints)
}

func parsePrimitiveDateTime(s string) (PrimitiveDateTime, error) {
	i := stridxany(s, "Tt ")
	if i < 0 {
		return PrimitiveDateTime{}, errMalformed
	}
	d, err := parseDate(s[:i])
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	t, err := parseTime(s[i+1:])
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return PrimitiveDateTime{d, t}, nil
}

/*
ParseOffset returns the [UtcOffset] read from x: "Z", or a sign followed
by "HH", "HH:MM" or "HH:MM:SS".
*/
func ParseOffset(x any, constraints ...Constraint[UtcOffset]) (UtcOffset, error) {
	return parseText("offset", x, parseOffset, constraints)
}

func parseOffset(s string) (UtcOffset, error) {
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return UtcOffset{}, errMalformed
	}
	neg := s[0] == '-'

	var parts [3]int64
	fields := split(s[1:], ":")
	if len(fields) > 3 {
		return UtcOffset{}, errMalformed
	}
	for i, f := range fields {
		v, ok := parseDigits(f, 2)
		if !ok {
			return UtcOffset{}, errMalformed
		}
		if neg {
			v = -v
		}
		parts[i] = v
	}
	return OffsetFromHMS(int8(parts[0]), int8(parts[1]), int8(parts[2]))
}

/*
ParseOffsetDateTime returns the [OffsetDateTime] read from x. In
addition to RFC 3339 text such as "1985-04-12T23:20:50.52Z" as a string
or []byte, a [time.Time] is accepted and converted with [FromTime].
*/
func ParseOffsetDateTime(x any, constraints ...Constraint[OffsetDateTime]) (OffsetDateTime, error) {
	if t, ok := x.(time.Time); ok {
		odt, err := FromTime(t)
		if err == nil {
			err = ConstraintGroup[OffsetDateTime](constraints).Constrain(odt)
		}
		if err != nil {
			return OffsetDateTime{}, err
		}
		return odt, nil
	}
	return parseText("offset date-time", x, parseOffsetDateTime, constraints)
}

func parseOffsetDateTime(s string) (OffsetDateTime, error) {
	t := stridxany(s, "Tt ")
	if t < 0 {
		return OffsetDateTime{}, errMalformed
	}
	i := stridxany(s[t:], "Zz+-")
	if i < 0 {
		return OffsetDateTime{}, errMalformed
	}
	i += t

	pdt, err := parsePrimitiveDateTime(s[:i])
	if err != nil {
		return OffsetDateTime{}, err
	}
	off, err := parseOffset(s[i:])
	if err != nil {
		return OffsetDateTime{}, err
	}
	return pdt.AssumeOffset(off), nil
}

/*
ParseDuration returns the [Duration] read from x. Text takes the ISO 8601
form "[-]PnWnDTnHnMn.nS" in which every designator is optional but their
order is fixed, and only seconds may bear a fraction. Years and months
are rejected as they have no fixed length.

A [time.Duration] is also accepted and converted with [DurationFromStd].
*/
func ParseDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	if td, ok := x.(time.Duration); ok {
		d := DurationFromStd(td)
		if err := ConstraintGroup[Duration](constraints).Constrain(d); err != nil {
			return Duration{}, err
		}
		return d, nil
	}
	return parseText("duration", x, parseDuration, constraints)
}

type durationUnit struct {
	designator byte
	seconds    int64
	fraction   bool
}

var (
	dateUnits = []durationUnit{{'W', secondsPerWeek, false}, {'D', secondsPerDay, false}}
	timeUnits = []durationUnit{
		{'H', secondsPerHour, false},
		{'M', secondsPerMinute, false},
		{'S', 1, true},
	}
)

func parseDuration(s string) (Duration, error) {
	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) < 2 || (s[0] != 'P' && s[0] != 'p') {
		return Duration{}, errMalformed
	}
	s = uc(s[1:])

	datePart, timePart := s, ""
	if i := stridxb(s, 'T'); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
		if timePart == "" {
			return Duration{}, errMalformed
		}
	}

	var acc Duration
	var err error
	if acc, err = accumulateDuration(acc, datePart, dateUnits, neg); err == nil {
		acc, err = accumulateDuration(acc, timePart, timeUnits, neg)
	}
	return acc, err
}

/*
accumulateDuration adds (or, when neg is set, subtracts) each component
of part to acc. Subtracting component by component keeps [MinDuration]
reachable.
*/
func accumulateDuration(acc Duration, part string, units []durationUnit, neg bool) (Duration, error) {
	next := 0
	for part != "" {
		i := stridxany(part, "WDHMSY")
		if i <= 0 {
			return Duration{}, errMalformed
		}
		num, des := part[:i], part[i]
		part = part[i+1:]

		if des == 'Y' || (des == 'M' && units[0].designator == 'W') {
			return Duration{}, errCalendarUnits
		}

		u := -1
		for j := next; j < len(units); j++ {
			if units[j].designator == des {
				u = j
				break
			}
		}
		if u < 0 {
			return Duration{}, errUnitOrder
		}
		next = u + 1

		var frac string
		if k := stridxany(num, ".,"); k >= 0 {
			if !units[u].fraction || part != "" {
				return Duration{}, errMalformed
			}
			num, frac = num[:k], num[k:]
		}
		n, err := pint(num, 10, 64)
		if err != nil || n < 0 || hasPfx(num, "+") {
			return Duration{}, errMalformed
		}
		nanos, err := parseFraction(frac)
		if err != nil {
			return Duration{}, err
		}

		secs, ok := mul64(n, units[u].seconds)
		if !ok {
			return Duration{}, ErrConversionRange
		}
		component := Duration{secs, int32(nanos)}
		if neg {
			acc, ok = acc.CheckedSub(component)
		} else {
			acc, ok = acc.CheckedAdd(component)
		}
		if !ok {
			return Duration{}, ErrConversionRange
		}
	}
	return acc, nil
}

func (r Date) MarshalText() ([]byte, error)              { return []byte(r.String()), nil }
func (r Time) MarshalText() ([]byte, error)              { return []byte(r.String()), nil }
func (r PrimitiveDateTime) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r UtcOffset) MarshalText() ([]byte, error)         { return []byte(r.String()), nil }
func (r OffsetDateTime) MarshalText() ([]byte, error)    { return []byte(r.String()), nil }
func (r Duration) MarshalText() ([]byte, error)          { return []byte(r.String()), nil }

func (r *Date) UnmarshalText(b []byte) (err error) {
	*r, err = ParseDate(b)
	return
}

func (r *Time) UnmarshalText(b []byte) (err error) {
	*r, err = ParseTime(b)
	return
}

func (r *PrimitiveDateTime) UnmarshalText(b []byte) (err error) {
	*r, err = ParsePrimitiveDateTime(b)
	return
}

func (r *UtcOffset) UnmarshalText(b []byte) (err error) {
	*r, err = ParseOffset(b)
	return
}

func (r *OffsetDateTime) UnmarshalText(b []byte) (err error) {
	*r, err = ParseOffsetDateTime(b)
	return
}

func (r *Duration) UnmarshalText(b []byte) (err error) {
	*r, err = ParseDuration(b)
	return
}
