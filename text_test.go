package temporal

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_String(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want string
	}{
		{"2024-02-29", "2024-02-29"},
		{"0000-03-01", "0000-03-01"},
		{"-0044-03-15", "-0044-03-15"},
		{"+2024-02-29", "2024-02-29"},
		{"0001-01-01", "0001-01-01"},
	} {
		d, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if got := d.String(); got != tc.want {
			t.Fatalf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
	}
	assert.Equal(t, int32(-44), mustDate(t, -44, March, 15).Year())
	if MaxYear == 9999 {
		assert.Equal(t, "-9999-01-01", MinDate.String())
		assert.Equal(t, "9999-12-31", MaxDate.String())
	}
	assert.Equal(t, "+012345", yearString(12_345))
	assert.Equal(t, "-012345", yearString(-12_345))
}

func TestParseDate_errors(t *testing.T) {
	_, err := ParseDate("2021-02-29")
	var cr *ComponentRange
	require.True(t, errors.As(err, &cr))
	assert.Equal(t, "day", cr.Name)
	assert.Contains(t, err.Error(), "PARSE ERROR")
	assert.Contains(t, err.Error(), `"2021-02-29"`)

	for idx, in := range []string{
		"",
		"2021-1-01",
		"21-01-01",
		"2021/01/01",
		"2021-01-0a",
		"02021-01-01",
		"+0202101-01-01",
	} {
		if _, err = ParseDate(in); !errors.Is(err, errMalformed) {
			t.Fatalf("%s[%d] failed: want malformed error for %q, got %v", t.Name(), idx, in, err)
		}
	}

	_, err = ParseDate(42)
	assert.ErrorIs(t, err, errUnsupportedValue)
	assert.Contains(t, err.Error(), "int")

	if MaxYear == 9999 {
		_, err = ParseDate("+10000-01-01")
		assert.ErrorIs(t, err, &ComponentRange{Name: "year"})
	}
}

func TestParseTime(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want Time
	}{
		{"00:00:00", Midnight},
		{"23:59:59.999999999", Time{23, 59, 59, 999_999_999}},
		{"12:30:00,5", Time{12, 30, 0, 500_000_000}},
		{"01:02:03.000004", Time{1, 2, 3, 4_000}},
	} {
		got, err := ParseTime([]byte(tc.in))
		if err != nil || got != tc.want {
			t.Fatalf("%s[%d] failed: want %s, got %s (%v)", t.Name(), idx, tc.want, got, err)
		}
	}

	assert.Equal(t, "12:30:00.5", Time{12, 30, 0, 500_000_000}.String())
	assert.Equal(t, "01:02:03.000004", Time{1, 2, 3, 4_000}.String())

	_, err := ParseTime("24:00:00")
	assert.ErrorIs(t, err, &ComponentRange{Name: "hour"})
	for _, in := range []string{"12:00", "12:00:00.", "12:00:00.1234567890", "1200:00:0", "12:00:00Z"} {
		_, err = ParseTime(in)
		assert.ErrorIs(t, err, errMalformed, in)
	}
}

func TestParsePrimitiveDateTime(t *testing.T) {
	want := NewPrimitiveDateTime(mustDate(t, 2021, June, 15), mustTime(t, 8, 30, 0, 0))
	for _, in := range []string{"2021-06-15T08:30:00", "2021-06-15t08:30:00", "2021-06-15 08:30:00"} {
		got, err := ParsePrimitiveDateTime(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	assert.Equal(t, "2021-06-15T08:30:00", want.String())

	_, err := ParsePrimitiveDateTime("2021-06-15")
	assert.ErrorIs(t, err, errMalformed)
	_, err = ParsePrimitiveDateTime("2021-06-31T08:30:00")
	assert.ErrorIs(t, err, &ComponentRange{Name: "day"})
}

func TestParseOffset(t *testing.T) {
	for idx, tc := range []struct {
		in      string
		secs    int32
		display string
	}{
		{"Z", 0, "+00:00"},
		{"z", 0, "+00:00"},
		{"+00:00", 0, "+00:00"},
		{"+05", 18_000, "+05:00"},
		{"-09:30", -34_200, "-09:30"},
		{"+05:30:15", 19_815, "+05:30:15"},
		{"-00:00:05", -5, "-00:00:05"},
		{"+23:59:59", 86_399, "+23:59:59"},
	} {
		o, err := ParseOffset(tc.in)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if o.WholeSeconds() != tc.secs || o.String() != tc.display {
			t.Fatalf("%s[%d] failed: want %d (%s), got %d (%s)",
				t.Name(), idx, tc.secs, tc.display, o.WholeSeconds(), o)
		}
	}

	_, err := ParseOffset("+24:00")
	assert.ErrorIs(t, err, &ComponentRange{Name: "hours"})
	for _, in := range []string{"05:00", "+5", "+05:00:00:00", "+05-00", "UTC"} {
		_, err = ParseOffset(in)
		assert.ErrorIs(t, err, errMalformed, in)
	}
}

func TestParseOffsetDateTime(t *testing.T) {
	for idx, tc := range []struct {
		in, want string
		unix     int64
	}{
		{"1985-04-12T23:20:50.52Z", "1985-04-12T23:20:50.52Z", 482_196_050},
		{"1985-04-12t23:20:50.52z", "1985-04-12T23:20:50.52Z", 482_196_050},
		{"1996-12-19T16:39:57-08:00", "1996-12-19T16:39:57-08:00", 851_042_397},
		{"1970-01-01 00:00:00+00:00", "1970-01-01T00:00:00Z", 0},
		{"-0044-03-15T12:00:00+01:00", "-0044-03-15T12:00:00+01:00", -63_549_320_400},
	} {
		odt, err := ParseOffsetDateTime(tc.in)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if odt.String() != tc.want || odt.UnixTimestamp() != tc.unix {
			t.Fatalf("%s[%d] failed: want %s (%d), got %s (%d)",
				t.Name(), idx, tc.want, tc.unix, odt, odt.UnixTimestamp())
		}
	}

	std := time.Date(2001, time.September, 9, 1, 46, 40, 0, time.UTC)
	odt, err := ParseOffsetDateTime(std)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), odt.UnixTimestamp())

	for _, in := range []string{"1985-04-12T23:20:50", "1985-04-12", "1985-04-12T23:20:50+0500"} {
		_, err = ParseOffsetDateTime(in)
		assert.ErrorIs(t, err, errMalformed, in)
	}
}

func TestDuration_String(t *testing.T) {
	for idx, tc := range []struct {
		d    Duration
		want string
	}{
		{ZeroDuration, "PT0S"},
		{Days(1).Add(Hours(2)).Add(Minutes(3)).Add(Milliseconds(4_500)), "P1DT2H3M4.5S"},
		{Milliseconds(-250), "-PT0.25S"},
		{Days(14), "P14D"},
		{Hours(-36), "-P1DT12H"},
		{Nanosecond, "PT0.000000001S"},
		{Seconds(60), "PT1M"},
		{MaxDuration, "P106751991167300DT15H30M7.999999999S"},
		{MinDuration, "-P106751991167300DT15H30M8.999999999S"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Fatalf("%s[%d] failed: want %q, got %q", t.Name(), idx, tc.want, got)
		}
		back, err := ParseDuration(tc.want)
		if err != nil || back != tc.d {
			t.Fatalf("%s[%d] failed: reparse gave %s, %v", t.Name(), idx, back, err)
		}
	}
}

func TestParseDuration(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		want Duration
	}{
		{"P2W", Weeks(2)},
		{"P1W2D", Days(9)},
		{"PT1.5S", Milliseconds(1_500)},
		{"PT0,5S", Milliseconds(500)},
		{"-P1DT1H", Hours(-25)},
		{"+PT90M", Minutes(90)},
		{"pt1h", Hour},
		{"PT36H", Hours(36)},
	} {
		got, err := ParseDuration(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("%s[%d] failed: want %s, got %s (%v)", t.Name(), idx, tc.want, got, err)
		}
	}

	got, err := ParseDuration(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, Milliseconds(1_500), got)

	for idx, tc := range []struct {
		in   string
		want error
	}{
		{"P1Y", errCalendarUnits},
		{"P1M", errCalendarUnits},
		{"PT1S1M", errUnitOrder},
		{"P1D2W", errUnitOrder},
		{"PT1H1H", errUnitOrder},
		{"PT1.5M", errMalformed},
		{"PT1.5S2S", errMalformed},
		{"P", errMalformed},
		{"PT", errMalformed},
		{"P1DT", errMalformed},
		{"PT-1S", errMalformed},
		{"1D", errMalformed},
		{"P1H", errUnitOrder},
		{"P999999999999999W", ErrConversionRange},
		{"PT99999999999999999999S", errMalformed},
		{"PT9223372036854775807H", ErrConversionRange},
		{"P106751991167301D", ErrConversionRange},
	} {
		if _, err = ParseDuration(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s[%d] failed: %q want %v, got %v", t.Name(), idx, tc.in, tc.want, err)
		}
	}
}

func TestTextCodec_json(t *testing.T) {
	type record struct {
		Day     Date              `json:"day"`
		At      Time              `json:"at"`
		Local   PrimitiveDateTime `json:"local"`
		Zone    UtcOffset         `json:"zone"`
		Instant OffsetDateTime    `json:"instant"`
		Span    Duration          `json:"span"`
	}

	in := record{
		Day:     mustDate(t, 2024, February, 29),
		At:      mustTime(t, 13, 45, 0, 500_000_000),
		Local:   mustPDT(t, "2024-02-29T13:45:00"),
		Zone:    UtcOffset{5, 30, 0},
		Instant: mustODT(t, "2024-02-29T13:45:00.5+05:30"),
		Span:    Days(1).Add(Milliseconds(1_500)),
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"day": "2024-02-29",
		"at": "13:45:00.5",
		"local": "2024-02-29T13:45:00",
		"zone": "+05:30",
		"instant": "2024-02-29T13:45:00.5+05:30",
		"span": "P1DT1.5S"
	}`, string(b))

	var out record
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(
		Date{}, Time{}, PrimitiveDateTime{}, UtcOffset{}, OffsetDateTime{}, Duration{},
	)); diff != "" {
		t.Fatalf("%s failed: round trip mismatch (-want +got):\n%s", t.Name(), diff)
	}

	err = json.Unmarshal([]byte(`{"day":"2021-02-29"}`), &out)
	assert.ErrorIs(t, err, &ComponentRange{Name: "day"})
}
