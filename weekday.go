package temporal

/*
Weekday is a day of the week. Weeks begin on Monday, per ISO 8601.
*/
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (r Weekday) String() string {
	if r <= Sunday {
		return weekdayNames[r]
	}
	return "%!Weekday(" + itoa(int(r)) + ")"
}

// Next returns the following day, wrapping Sunday to Monday.
func (r Weekday) Next() Weekday { return (r + 1) % 7 }

// Previous returns the preceding day, wrapping Monday to Sunday.
func (r Weekday) Previous() Weekday { return (r + 6) % 7 }

// NumberFromMonday returns 1 for Monday through 7 for Sunday.
func (r Weekday) NumberFromMonday() uint8 { return uint8(r) + 1 }

// NumberFromSunday returns 1 for Sunday through 7 for Saturday.
func (r Weekday) NumberFromSunday() uint8 { return r.NumberDaysFromSunday() + 1 }

// NumberDaysFromMonday returns 0 for Monday through 6 for Sunday.
func (r Weekday) NumberDaysFromMonday() uint8 { return uint8(r) }

// NumberDaysFromSunday returns 0 for Sunday through 6 for Saturday.
func (r Weekday) NumberDaysFromSunday() uint8 { return uint8((r + 1) % 7) }
