package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPDT(t *testing.T, s string) PrimitiveDateTime {
	t.Helper()
	pdt, err := ParsePrimitiveDateTime(s)
	if err != nil {
		t.Fatalf("%s failed [%s]: %v", t.Name(), s, err)
	}
	return pdt
}

func TestPrimitiveDateTime_accessors(t *testing.T) {
	pdt := NewPrimitiveDateTime(mustDate(t, 2024, February, 29), mustTime(t, 13, 45, 7, 250_000_000))

	y, m, d := pdt.ToCalendarDate()
	assert.Equal(t, int32(2024), y)
	assert.Equal(t, February, m)
	assert.Equal(t, uint8(29), d)
	assert.Equal(t, int32(2024), pdt.Year())
	assert.Equal(t, February, pdt.Month())
	assert.Equal(t, uint8(29), pdt.Day())
	assert.Equal(t, uint16(60), pdt.Ordinal())
	assert.Equal(t, uint8(9), pdt.ISOWeek())
	assert.Equal(t, Thursday, pdt.Weekday())
	assert.Equal(t, uint8(13), pdt.Hour())
	assert.Equal(t, uint8(45), pdt.Minute())
	assert.Equal(t, uint8(7), pdt.Second())
	assert.Equal(t, uint16(250), pdt.Millisecond())
	assert.Equal(t, uint32(250_000), pdt.Microsecond())
	assert.Equal(t, uint32(250_000_000), pdt.Nanosecond())
	assert.Equal(t, pdt.Date().ToJulianDay(), pdt.ToJulianDay())
}

func TestPrimitiveDateTime_arithmetic(t *testing.T) {
	pdt := mustPDT(t, "2021-12-31T23:00:00")

	assert.Equal(t, mustPDT(t, "2022-01-01T01:00:00"), pdt.Add(Hours(2)))
	assert.Equal(t, mustPDT(t, "2021-12-30T23:00:00"), pdt.Sub(Day))
	assert.Equal(t, mustPDT(t, "2021-12-31T22:59:59.5"), pdt.Add(Milliseconds(-500)))
	assert.Equal(t, Hours(2), pdt.Add(Hours(2)).Diff(pdt))
	assert.Equal(t, Days(-365).Add(Hours(-1)),
		mustPDT(t, "2020-12-31T22:00:00").Diff(pdt))

	_, ok := MaxPrimitiveDateTime.CheckedAdd(Nanosecond)
	assert.False(t, ok)
	_, ok = MinPrimitiveDateTime.CheckedSub(Nanosecond)
	assert.False(t, ok)
	_, ok = pdt.CheckedAdd(MaxDuration)
	assert.False(t, ok)

	assert.Equal(t, MaxPrimitiveDateTime, pdt.SaturatingAdd(MaxDuration))
	assert.Equal(t, MinPrimitiveDateTime, pdt.SaturatingAdd(MinDuration))
	assert.Equal(t, MinPrimitiveDateTime, pdt.SaturatingSub(MaxDuration))
	assert.Equal(t, MaxPrimitiveDateTime, pdt.SaturatingSub(MinDuration))
	assert.Panics(t, func() { MaxPrimitiveDateTime.Add(Nanosecond) })
	assert.Panics(t, func() { MinPrimitiveDateTime.Sub(Nanosecond) })

	assert.True(t, pdt.Before(pdt.Add(Nanosecond)))
	assert.True(t, pdt.After(pdt.Sub(Nanosecond)))
	assert.Equal(t, 0, pdt.Compare(pdt))
}

func TestPrimitiveDateTime_saturatingInverse(t *testing.T) {
	starts := []PrimitiveDateTime{
		mustPDT(t, "2021-12-31T23:00:00"),
		mustPDT(t, "1970-01-01T00:00:00"),
		mustPDT(t, "0000-03-01T12:34:56.789"),
		MinPrimitiveDateTime.Add(Hours(12)),
		MaxPrimitiveDateTime.Sub(Hours(12)),
	}
	spans := []Duration{
		Nanosecond,
		Milliseconds(-1500),
		Hours(11),
		Days(-1),
		Weeks(52).Add(Seconds(1)),
	}
	for i, start := range starts {
		for j, d := range spans {
			fwd, ok := start.CheckedAdd(d)
			if !ok {
				continue
			}
			if back := fwd.SaturatingSub(d); back != start {
				t.Fatalf("%s[%d,%d] failed: %s + %s - %s = %s", t.Name(), i, j, start, d, d, back)
			}
			if diff := fwd.Diff(start); diff != d {
				t.Fatalf("%s[%d,%d] failed: diff %s, want %s", t.Name(), i, j, diff, d)
			}
		}
	}
}

func TestPrimitiveDateTime_replace(t *testing.T) {
	pdt := mustPDT(t, "2020-02-29T08:15:00")

	_, err := pdt.ReplaceYear(2019)
	assert.ErrorIs(t, err, &ComponentRange{Name: "day"})

	got, err := pdt.ReplaceMonth(March)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-03-29T08:15:00"), got)

	got, err = pdt.ReplaceDay(1)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-02-01T08:15:00"), got)

	got, err = pdt.ReplaceHour(20)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-02-29T20:15:00"), got)

	got, err = pdt.ReplaceMinute(0)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-02-29T08:00:00"), got)

	got, err = pdt.ReplaceSecond(30)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-02-29T08:15:30"), got)

	got, err = pdt.ReplaceNanosecond(1)
	require.NoError(t, err)
	assert.Equal(t, mustPDT(t, "2020-02-29T08:15:00.000000001"), got)

	_, err = pdt.ReplaceSecond(60)
	assert.ErrorIs(t, err, &ComponentRange{Name: "second"})

	assert.Equal(t, mustPDT(t, "2021-01-01T08:15:00"), pdt.ReplaceDate(mustDate(t, 2021, January, 1)))
	assert.Equal(t, mustPDT(t, "2020-02-29T00:00:00"), pdt.ReplaceTime(Midnight))
}

func TestPrimitiveDateTime_offsets(t *testing.T) {
	pdt := mustPDT(t, "2021-06-15T12:00:00")
	plus2, _ := OffsetFromHMS(2, 0, 0)
	minus930, _ := OffsetFromHMS(-9, -30, 0)

	odt := pdt.AssumeOffset(plus2)
	assert.Equal(t, mustPDT(t, "2021-06-15T10:00:00"), odt.UTCDateTime())
	assert.Equal(t, pdt, odt.Local())
	assert.Equal(t, plus2, odt.Offset())

	assert.Equal(t, pdt, pdt.AssumeUTC().UTCDateTime())
	assert.True(t, pdt.AssumeUTC().Offset().IsUTC())

	late := mustPDT(t, "2021-12-31T20:00:00")
	assert.Equal(t, mustPDT(t, "2022-01-01T05:30:00"), late.OffsetToUTC(minus930))
	assert.Equal(t, mustPDT(t, "2021-12-31T10:30:00"), late.UTCToOffset(minus930))

	for _, o := range []UtcOffset{UTC, plus2, minus930} {
		if back := late.OffsetToUTC(o).UTCToOffset(o); back != late {
			t.Fatalf("%s failed [%s]: got %s", t.Name(), o, back)
		}
	}

	// the shift is not range checked
	beyond := MaxPrimitiveDateTime.OffsetToUTC(minus930)
	assert.Equal(t, MaxDate.value+1, beyond.Date().value)
}
