package temporal

import "fmt"

func ExampleParseDuration() {
	d, err := ParseDuration("P1DT2H30M")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.WholeHours(), d)
	// Output: 26 P1DT2H30M
}

func ExampleDate_ToISOWeekDate() {
	d, _ := DateFromCalendar(2021, January, 3)
	year, week, weekday := d.ToISOWeekDate()
	fmt.Println(year, week, weekday)
	// Output: 2020 53 Sunday
}

func ExampleOffsetDateTime_ToOffset() {
	odt, _ := ParseOffsetDateTime("2024-02-29T13:45:00+05:30")
	utc := odt.ToOffset(UTC)
	fmt.Println(utc)
	fmt.Println(utc.UnixTimestamp() == odt.UnixTimestamp())
	// Output:
	// 2024-02-29T08:15:00Z
	// true
}

func ExampleTime_AdjustingAdd() {
	t, _ := TimeFromHMS(23, 0, 0)
	t, days := t.AdjustingAdd(Hours(2))
	fmt.Println(t, days)
	// Output: 01:00:00 1
}

func ExampleParseTime_constrained() {
	open, _ := TimeFromHMS(9, 0, 0)
	closed, _ := TimeFromHMS(17, 0, 0)
	office := TimeWindowConstraint(open, closed)
	_, err := ParseTime("18:30:00", office)
	fmt.Println(err != nil)
	// Output: true
}
