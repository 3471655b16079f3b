package temporal

/*
constr.go contains constraint and constraint group components which
may be supplied to the Parse* functions, or evaluated directly.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

/*
Temporal is a calendar-bearing interface qualified by instances of the
following types:

  - [Date]
  - [PrimitiveDateTime]
  - [OffsetDateTime]

Note that [Time] and [Duration] do not qualify this interface.
*/
type Temporal interface {
	ToJulianDay() int32
	Weekday() Weekday
	String() string
}

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}
	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T,
e.g.: a [Constraint] of [Date] applied to the date of an [OffsetDateTime].
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

// PropertyConstraint returns a Constraint that applies a user-defined check function.
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) error {
		for _, c := range cs {
			if c(x) == nil {
				return nil
			}
		}
		return constraintViolationf("union failed all ", len(cs), " constraints")
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(cs) && err == nil; i++ {
			err = cs[i](x)
		}
		return
	}
}

/*
DateRangeConstraint returns a [Constraint] requiring a [Date] within
min..=max.
*/
func DateRangeConstraint(min, max Date) Constraint[Date] {
	return func(val Date) error {
		if val.Before(min) || val.After(max) {
			return constraintViolationf("date ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
DayRangeConstraint returns a [Constraint] requiring a [Temporal] whose
calendar day lies within the days of min and max. Only the day counts;
the time of day is ignored.
*/
func DayRangeConstraint[T Temporal](min, max T) Constraint[T] {
	return func(val T) error {
		jd := val.ToJulianDay()
		if jd < min.ToJulianDay() || jd > max.ToJulianDay() {
			return constraintViolationf("day of ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

// DurationRangeConstraint returns a Constraint for Duration values to ensure that the given value
// is not less than min and not greater than max.
func DurationRangeConstraint(min, max Duration) Constraint[Duration] {
	return func(val Duration) error {
		if val.Lt(min) || max.Lt(val) {
			return constraintViolationf("duration ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

/*
WeekdayConstraint returns a [Constraint] requiring a [Temporal] which
falls upon one of the allowed weekdays.
*/
func WeekdayConstraint[T Temporal](allowed ...Weekday) Constraint[T] {
	var set uint8
	for _, wd := range allowed {
		set |= 1 << wd
	}
	return func(val T) error {
		if wd := val.Weekday(); set&(1<<wd) == 0 {
			return constraintViolationf(val.String(), " falls on a ", wd, ", which is not allowed")
		}
		return nil
	}
}

/*
TimeWindowConstraint returns a [Constraint] requiring a [Time] within
start..=end. A window whose start follows its end wraps past midnight:
22:00 through 06:00 admits 23:30 but not 12:00.
*/
func TimeWindowConstraint(start, end Time) Constraint[Time] {
	return func(val Time) error {
		var ok bool
		if start.After(end) {
			ok = !val.Before(start) || !val.After(end)
		} else {
			ok = !val.Before(start) && !val.After(end)
		}
		if !ok {
			return constraintViolationf("time ", val.String(), " is outside of the window [",
				start.String(), ", ", end.String(), "]")
		}
		return nil
	}
}

/*
OffsetRangeConstraint returns a [Constraint] requiring a [UtcOffset]
within min..=max, west to east.
*/
func OffsetRangeConstraint(min, max UtcOffset) Constraint[UtcOffset] {
	return func(val UtcOffset) error {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			return constraintViolationf("offset ", val.String(), " is not in the allowed range [",
				min.String(), ", ", max.String(), "]")
		}
		return nil
	}
}

// RecurrenceConstraint returns a Constraint for instants that must fall within a recurring window.
// period is the recurrence period (e.g., one day) counted from the Unix epoch; windowStart and
// windowEnd represent the allowable offset within each period.
func RecurrenceConstraint(period, windowStart, windowEnd Duration) Constraint[OffsetDateTime] {
	p := period.WholeNanoseconds()
	lo, hi := windowStart.WholeNanoseconds(), windowEnd.WholeNanoseconds()
	return func(val OffsetDateTime) error {
		if p.Sign() <= 0 {
			return constraintViolationf("recurrence period ", period.String(), " is not positive")
		}
		// Euclidean modulus: never negative, even before 1970
		rem := new(big.Int).Mod(val.UnixTimestampNanos(), p)
		if rem.Cmp(lo) < 0 || rem.Cmp(hi) > 0 {
			return constraintViolationf(val.String(), " is not within the recurrence window [",
				windowStart.String(), ", ", windowEnd.String(), "] of every ", period.String())
		}
		return nil
	}
}
