package temporal

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"fmt"
)

/*
ComponentRange describes a constructor or replacement input which fell
outside of its legal bounds. Instances are always returned by pointer
and may be recovered from wrapped errors via [errors.As].
*/
type ComponentRange struct {
	// Name of the offending component, e.g.: "day" or "hours".
	Name string

	// Minimum and Maximum describe the inclusive legal range.
	Minimum int64
	Maximum int64

	// Value is the value which was actually provided.
	Value int64

	// Conditional is true when the range depends upon the values
	// of other parameters (e.g.: the maximum day of a month).
	Conditional bool
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *ComponentRange) Error() string {
	bld := newStrBuilder()
	bld.WriteString("COMPONENT RANGE ERROR: ")
	bld.WriteString(r.Name + " must be in the range ")
	bld.WriteString(fmtInt(r.Minimum, 10) + "..=" + fmtInt(r.Maximum, 10))
	if r.Conditional {
		bld.WriteString(", given values of other parameters")
	}
	bld.WriteString(" (got " + fmtInt(r.Value, 10) + ")")
	return bld.String()
}

/*
Is returns true if target is also a *[ComponentRange] bearing the
same component name, allowing comparisons such as:

	errors.Is(err, &ComponentRange{Name: "day"})
*/
func (r *ComponentRange) Is(target error) bool {
	t, ok := target.(*ComponentRange)
	return ok && t.Name == r.Name
}

func newComponentRange(name string, lo, hi, val int64, conditional bool) *ComponentRange {
	err := &ComponentRange{
		Name:        name,
		Minimum:     lo,
		Maximum:     hi,
		Value:       val,
		Conditional: conditional,
	}
	debugRange(err)
	return err
}

// ensureRange returns a *ComponentRange if v falls outside lo..=hi.
func ensureRange(name string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return newComponentRange(name, lo, hi, v, false)
	}
	return nil
}

// ensureRangeCond is ensureRange for bounds derived from other inputs.
func ensureRangeCond(name string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return newComponentRange(name, lo, hi, v, true)
	}
	return nil
}

/*
types which implement the error interface.
*/
type (
	offsetErr     struct{ e error }
	conversionErr struct{ e error }
	parseErr      struct{ e error }
	constraintErr struct{ e error }
)

func (r offsetErr) Error() string     { return `INDETERMINATE OFFSET: ` + r.e.Error() }
func (r conversionErr) Error() string { return `CONVERSION RANGE ERROR: ` + r.e.Error() }
func (r parseErr) Error() string      { return `PARSE ERROR: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }

func (r offsetErr) Unwrap() error     { return r.e }
func (r conversionErr) Unwrap() error { return r.e }
func (r parseErr) Unwrap() error      { return r.e }
func (r constraintErr) Unwrap() error { return r.e }

var (
	errIndeterminate    = mkerr("local offset could not be determined")
	errConversionRange  = mkerr("value is outside of the representable range")
	errNegativeStd      = mkerr("negative duration cannot be represented as an unsigned span")
	errNaNSeconds       = mkerr("seconds value is NaN")
	errUnsupportedUUID  = mkerr("UUID version carries no timestamp")
	errNilMessage       = mkerr("nil protobuf message")
	errEmptyText        = mkerr("empty input")
	errNonScalarYAML    = mkerr("expected a scalar node")
	errUnsupportedValue = mkerr("unsupported source type")
	errMalformed        = mkerr("malformed text")
	errUnitOrder        = mkerr("duration designators out of order or repeated")
	errCalendarUnits    = mkerr("years and months have no fixed length")
)

/*
ErrIndeterminateOffset is returned when the host cannot supply a local
UTC offset, for instance due to a missing time zone database.
*/
var ErrIndeterminateOffset error = offsetErr{errIndeterminate}

/*
ErrConversionRange is returned when a value cannot be converted into (or
out of) a representation because it does not fit, such as a negative
[Duration] passed to [Duration.AbsStd] or a NaN float.
*/
var ErrConversionRange error = conversionErr{errConversionRange}

func (r conversionErr) Is(target error) bool { return target == ErrConversionRange }
func (r offsetErr) Is(target error) bool     { return target == ErrIndeterminateOffset }

func offsetErrorf(m ...any) error     { return offsetErr{mkerrf(m...)} }
func conversionErrorf(m ...any) error { return conversionErr{mkerrf(m...)} }
func parseErrorf(m ...any) error      { return parseErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error {
	err := constraintErr{mkerrf(m...)}
	debugConstraint(err)
	return err
}

// parseWrap keeps a *ComponentRange reachable through errors.As while
// labelling the failing input.
func parseWrap(kind, input string, err error) error {
	return parseErr{fmt.Errorf("invalid %s %q: %w", kind, input, err)}
}

/*
mkerrf concatenates parts into a single error. Error values among the
parts are wrapped rather than flattened.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	var wrapped []error
	bld := newStrBuilder()
	for _, p := range parts {
		switch tv := p.(type) {
		case string:
			bld.WriteString(tv)
		case error:
			bld.WriteString(tv.Error())
			wrapped = append(wrapped, tv)
		case int:
			bld.WriteString(itoa(tv))
		case int64:
			bld.WriteString(fmtInt(tv, 10))
		case fmt.Stringer:
			bld.WriteString(tv.String())
		default:
			bld.WriteString(fmt.Sprint(tv))
		}
	}

	msg := bld.String()
	if len(wrapped) == 0 {
		return errors.New(msg)
	}
	return wrapErr{msg: msg, errs: wrapped}
}

type wrapErr struct {
	msg  string
	errs []error
}

func (r wrapErr) Error() string   { return r.msg }
func (r wrapErr) Unwrap() []error { return r.errs }
