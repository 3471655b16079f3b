package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, h, m, s uint8, ns uint32) Time {
	t.Helper()
	tm, err := TimeFromHMSNano(h, m, s, ns)
	if err != nil {
		t.Fatalf("%s failed [%02d:%02d:%02d.%09d]: %v", t.Name(), h, m, s, ns, err)
	}
	return tm
}

func TestTimeFromHMS(t *testing.T) {
	tm, err := TimeFromHMSMilli(13, 45, 30, 125)
	require.NoError(t, err)
	h, m, s, ms := tm.AsHMSMilli()
	assert.Equal(t, []any{uint8(13), uint8(45), uint8(30), uint16(125)}, []any{h, m, s, ms})
	assert.Equal(t, uint32(125_000), tm.Microsecond())
	assert.Equal(t, uint32(125_000_000), tm.Nanosecond())

	tm, err = TimeFromHMSMicro(0, 0, 0, 999_999)
	require.NoError(t, err)
	_, _, _, us := tm.AsHMSMicro()
	assert.Equal(t, uint32(999_999), us)

	for idx, tc := range []struct {
		build func() (Time, error)
		name  string
	}{
		{func() (Time, error) { return TimeFromHMS(24, 0, 0) }, "hour"},
		{func() (Time, error) { return TimeFromHMS(0, 60, 0) }, "minute"},
		{func() (Time, error) { return TimeFromHMS(0, 0, 60) }, "second"},
		{func() (Time, error) { return TimeFromHMSMilli(0, 0, 0, 1_000) }, "millisecond"},
		{func() (Time, error) { return TimeFromHMSMicro(0, 0, 0, 1_000_000) }, "microsecond"},
		{func() (Time, error) { return TimeFromHMSNano(0, 0, 0, 1_000_000_000) }, "nanosecond"},
	} {
		if _, err = tc.build(); !assert.ErrorIs(t, err, &ComponentRange{Name: tc.name}) {
			t.Fatalf("%s[%d] failed: want %s range error", t.Name(), idx, tc.name)
		}
	}
}

func TestTime_adjusting(t *testing.T) {
	late := mustTime(t, 23, 59, 59, 0)

	got, days := late.AdjustingAdd(Seconds(2))
	assert.Equal(t, mustTime(t, 0, 0, 1, 0), got)
	assert.Equal(t, int64(1), days)

	got, days = Midnight.AdjustingSub(Nanosecond)
	assert.Equal(t, mustTime(t, 23, 59, 59, 999_999_999), got)
	assert.Equal(t, int64(-1), days)

	one := mustTime(t, 1, 0, 0, 0)
	got, days = one.AdjustingAdd(Hours(-25))
	assert.Equal(t, Midnight, got)
	assert.Equal(t, int64(-1), days)

	got, days = one.AdjustingAdd(Days(3).Add(Hours(23)))
	assert.Equal(t, Midnight, got)
	assert.Equal(t, int64(4), days)

	assert.Equal(t, mustTime(t, 2, 0, 0, 0), one.Add(Hours(25)))
	assert.Equal(t, mustTime(t, 23, 0, 0, 0), one.Sub(Hours(2)))

	for idx, d := range []Duration{
		Nanosecond,
		Milliseconds(-1500),
		Hours(47),
		Days(-400).Add(Seconds(-3_599)),
		MaxDuration,
		MinDuration,
	} {
		fwd, n1 := late.AdjustingAdd(d)
		back, n2 := fwd.AdjustingSub(d)
		if back != late || n1+n2 != 0 {
			t.Fatalf("%s[%d] failed: %s +/- %s gave %s with %d days", t.Name(), idx, late, d, back, n1+n2)
		}
	}
}

func TestTime_compare(t *testing.T) {
	noon := mustTime(t, 12, 0, 0, 0)
	later := mustTime(t, 13, 30, 0, 0)

	assert.Equal(t, Minutes(-90), noon.Diff(later))
	assert.Equal(t, Minutes(90), later.Diff(noon))
	assert.True(t, noon.Before(later))
	assert.True(t, later.After(noon))
	assert.Equal(t, 0, noon.Compare(noon))
	assert.Equal(t, -1, Midnight.Compare(mustTime(t, 0, 0, 0, 1)))
}

func TestTime_replace(t *testing.T) {
	tm := mustTime(t, 10, 20, 30, 123_456_789)

	got, err := tm.ReplaceHour(23)
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 23, 20, 30, 123_456_789), got)

	got, err = tm.ReplaceMinute(0)
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 10, 0, 30, 123_456_789), got)

	got, err = tm.ReplaceSecond(59)
	require.NoError(t, err)
	assert.Equal(t, uint8(59), got.Second())

	got, err = tm.ReplaceMillisecond(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7_000_000), got.Nanosecond())

	got, err = tm.ReplaceMicrosecond(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7_000), got.Nanosecond())

	got, err = tm.ReplaceNanosecond(7)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got.Nanosecond())

	_, err = tm.ReplaceHour(24)
	assert.ErrorIs(t, err, &ComponentRange{Name: "hour"})
	_, err = tm.ReplaceMinute(60)
	assert.ErrorIs(t, err, &ComponentRange{Name: "minute"})
}
