package temporal

/*
Month is a month of the proleptic Gregorian calendar. January is 1.
*/
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

/*
MonthOf returns the [Month] numbered n (1 through 12), or a
*[ComponentRange] error.
*/
func MonthOf(n uint8) (Month, error) {
	if err := ensureRange("month", int64(n), 1, 12); err != nil {
		return 0, err
	}
	return Month(n), nil
}

/*
String returns the English name of the receiver instance.
*/
func (r Month) String() string {
	if r.valid() {
		return monthNames[r-1]
	}
	return "%!Month(" + itoa(int(r)) + ")"
}

func (r Month) valid() bool { return January <= r && r <= December }

/*
Next returns the following month, wrapping December to January.
*/
func (r Month) Next() Month {
	if r == December {
		return January
	}
	return r + 1
}

/*
Previous returns the preceding month, wrapping January to December.
*/
func (r Month) Previous() Month {
	if r == January {
		return December
	}
	return r - 1
}

/*
Length returns the number of days in the receiver during year.
*/
func (r Month) Length(year int32) uint8 { return DaysInYearMonth(year, r) }
