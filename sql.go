package temporal

/*
sql.go implements database/sql/driver.Valuer and database/sql.Scanner so
that value types may be stored in and read from SQL columns.
*/

import (
	"database/sql/driver"
	"time"
)

/*
Value implements [driver.Valuer]. Dates are stored as "YYYY-MM-DD" text.
*/
func (r Date) Value() (driver.Value, error) { return r.String(), nil }

// Value implements [driver.Valuer], storing "HH:MM:SS[.f]" text.
func (r Time) Value() (driver.Value, error) { return r.String(), nil }

// Value implements [driver.Valuer], storing "<date>T<time>" text.
func (r PrimitiveDateTime) Value() (driver.Value, error) { return r.String(), nil }

/*
Value implements [driver.Valuer]. The RFC 3339 text form is stored so
that the offset survives the round trip.
*/
func (r OffsetDateTime) Value() (driver.Value, error) { return r.String(), nil }

/*
Value implements [driver.Valuer]. Durations are stored as integer
nanoseconds where they fit in an int64 (about ±292 years), and as ISO
8601 text otherwise.
*/
func (r Duration) Value() (driver.Value, error) {
	if ns, err := r.Std(); err == nil {
		return int64(ns), nil
	}
	return r.String(), nil
}

/*
Scan implements [sql.Scanner]. Accepted sources are text, as written by
[Date.Value], and [time.Time], whose own calendar date is kept.
*/
func (r *Date) Scan(src any) (err error) {
	debugCodec("scan", "date", src)
	switch tv := src.(type) {
	case time.Time:
		var odt OffsetDateTime
		if odt, err = FromTime(tv); err == nil {
			*r = odt.Date()
		}
	case string, []byte:
		*r, err = ParseDate(tv)
	default:
		err = scanErr("date", src)
	}
	return
}

// Scan implements [sql.Scanner] for text and [time.Time] sources.
func (r *Time) Scan(src any) (err error) {
	debugCodec("scan", "time", src)
	switch tv := src.(type) {
	case time.Time:
		var odt OffsetDateTime
		if odt, err = FromTime(tv); err == nil {
			*r = odt.Time()
		}
	case string, []byte:
		*r, err = ParseTime(tv)
	default:
		err = scanErr("time", src)
	}
	return
}

// Scan implements [sql.Scanner] for text and [time.Time] sources.
func (r *PrimitiveDateTime) Scan(src any) (err error) {
	debugCodec("scan", "date-time", src)
	switch tv := src.(type) {
	case time.Time:
		var odt OffsetDateTime
		if odt, err = FromTime(tv); err == nil {
			*r = odt.Local()
		}
	case string, []byte:
		*r, err = ParsePrimitiveDateTime(tv)
	default:
		err = scanErr("date-time", src)
	}
	return
}

/*
Scan implements [sql.Scanner]. Besides text and [time.Time], an int64
source is read as POSIX seconds.
*/
func (r *OffsetDateTime) Scan(src any) (err error) {
	debugCodec("scan", "offset date-time", src)
	switch tv := src.(type) {
	case time.Time, string, []byte:
		*r, err = ParseOffsetDateTime(tv)
	case int64:
		*r, err = FromUnixTimestamp(tv)
	default:
		err = scanErr("offset date-time", src)
	}
	return
}

/*
Scan implements [sql.Scanner]. An int64 source is read as nanoseconds
and text as ISO 8601.
*/
func (r *Duration) Scan(src any) (err error) {
	debugCodec("scan", "duration", src)
	switch tv := src.(type) {
	case int64:
		*r = Nanoseconds(tv)
	case string, []byte:
		*r, err = ParseDuration(tv)
	default:
		err = scanErr("duration", src)
	}
	return
}

func scanErr(kind string, src any) error {
	if src == nil {
		return parseErrorf("cannot scan NULL into ", kind)
	}
	return parseErrorf("cannot scan ", kind, " from ", typeName(src), ": ", errUnsupportedValue)
}
