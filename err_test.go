package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentRange(t *testing.T) {
	for idx, tc := range []struct {
		err  *ComponentRange
		want string
	}{
		{
			err:  &ComponentRange{Name: "hours", Minimum: -25, Maximum: 25, Value: 26},
			want: "COMPONENT RANGE ERROR: hours must be in the range -25..=25 (got 26)",
		},
		{
			err:  &ComponentRange{Name: "day", Minimum: 1, Maximum: 28, Value: 29, Conditional: true},
			want: "COMPONENT RANGE ERROR: day must be in the range 1..=28, given values of other parameters (got 29)",
		},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}

	err := ensureRange("minute", 60, 0, 59)
	assert.ErrorIs(t, err, &ComponentRange{Name: "minute"})
	assert.NotErrorIs(t, err, &ComponentRange{Name: "second"})
	assert.NoError(t, ensureRange("minute", 59, 0, 59))
	assert.NoError(t, ensureRangeCond("day", 1, 1, 31))

	var cr *ComponentRange
	require.ErrorAs(t, ensureRangeCond("day", 0, 1, 31), &cr)
	assert.True(t, cr.Conditional)
	assert.Equal(t, int64(0), cr.Value)
}

func TestErrorWrappers(t *testing.T) {
	cause := errors.New("cause")
	for idx, tc := range []struct {
		err  error
		want string
	}{
		{offsetErrorf("zone ", "Mars/Olympus", ": ", cause), "INDETERMINATE OFFSET: zone Mars/Olympus: cause"},
		{conversionErrorf("seconds ", int64(-1)), "CONVERSION RANGE ERROR: seconds -1"},
		{parseErrorf("bad ", 3, " fields"), "PARSE ERROR: bad 3 fields"},
		{constraintViolationf("weekday ", Saturday), "CONSTRAINT VIOLATION: weekday Saturday"},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}

	assert.ErrorIs(t, offsetErrorf("x"), ErrIndeterminateOffset)
	assert.NotErrorIs(t, offsetErrorf("x"), ErrConversionRange)
	assert.ErrorIs(t, conversionErrorf("x"), ErrConversionRange)
	assert.NotErrorIs(t, parseErrorf("x"), ErrConversionRange)

	// causes remain reachable through the wrappers
	assert.ErrorIs(t, offsetErrorf("zone: ", cause), cause)
	assert.ErrorIs(t, conversionErrorf(errNaNSeconds), errNaNSeconds)
	assert.ErrorIs(t, parseErrorf(errMalformed, " and ", errUnitOrder), errUnitOrder)
}

func TestMkerrf(t *testing.T) {
	assert.Nil(t, mkerrf())

	plain := mkerrf("a", 1, int64(2), March, 2.5)
	assert.EqualError(t, plain, "a12March2.5")
	_, isWrap := plain.(wrapErr)
	assert.False(t, isWrap)

	a, b := errors.New("a"), errors.New("b")
	joined := mkerrf(a, "; ", b)
	assert.EqualError(t, joined, "a; b")
	assert.ErrorIs(t, joined, a)
	assert.ErrorIs(t, joined, b)
	assert.Len(t, joined.(wrapErr).Unwrap(), 2)
}

func TestParseWrap(t *testing.T) {
	_, err := ParseTime("24:00:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `PARSE ERROR: invalid time "24:00:00": COMPONENT RANGE ERROR: hour`)

	var cr *ComponentRange
	require.ErrorAs(t, err, &cr)
	assert.Equal(t, int64(24), cr.Value)

	err = parseWrap("date", "x", errMalformed)
	assert.ErrorIs(t, err, errMalformed)
	assert.EqualError(t, err, `PARSE ERROR: invalid date "x": malformed text`)
}
