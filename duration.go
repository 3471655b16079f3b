package temporal

/*
duration.go implements the signed, nanosecond-precision Duration type.
*/

import (
	"math"
	"math/big"
	"time"
)

/*
Duration is a signed span of time with nanosecond precision.

Internally a Duration holds whole seconds plus a subsecond nanosecond
remainder. Both components always share the sign of the Duration itself,
or the remainder is zero. The zero value is a zero-length span.

Arithmetic is offered in three explicitly named families:

  - Checked (e.g.: [Duration.CheckedAdd]) returns false on overflow
  - Saturating (e.g.: [Duration.SaturatingAdd]) clamps to [MinDuration] or [MaxDuration]
  - Fatal (e.g.: [Duration.Add]) panics on overflow
*/
type Duration struct {
	seconds     int64
	nanoseconds int32 // -999_999_999..=999_999_999, same sign as seconds
}

var (
	ZeroDuration = Duration{}
	Nanosecond   = Duration{0, 1}
	Microsecond  = Duration{0, nanosPerMicro}
	Millisecond  = Duration{0, nanosPerMilli}
	Second       = Duration{1, 0}
	Minute       = Duration{secondsPerMinute, 0}
	Hour         = Duration{secondsPerHour, 0}
	Day          = Duration{secondsPerDay, 0}
	Week         = Duration{secondsPerWeek, 0}

	// MinDuration is the most negative representable Duration.
	MinDuration = Duration{math.MinInt64, -999_999_999}

	// MaxDuration is the most positive representable Duration.
	MaxDuration = Duration{math.MaxInt64, 999_999_999}
)

/*
NewDuration returns a Duration of the given seconds and nanoseconds.
The nanoseconds may exceed one second and may disagree in sign with
seconds; the result is normalized either way.

This function panics if normalization overflows the seconds component.
Use [NewDurationUnchecked] only with inputs that are already normalized.
*/
func NewDuration(seconds int64, nanoseconds int32) Duration {
	d, ok := normalizeDuration(seconds, int64(nanoseconds))
	if !ok {
		panic("temporal: overflow constructing Duration")
	}
	return d
}

/*
NewDurationUnchecked returns a Duration holding seconds and nanoseconds
verbatim. No validation is performed: if the nanoseconds fall outside
one second, or disagree in sign with seconds, every subsequent operation
on the result is undefined.
*/
func NewDurationUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

func normalizeDuration(seconds, nanos int64) (Duration, bool) {
	seconds, ok := add64(seconds, nanos/nanosPerSecond)
	if !ok {
		return Duration{}, false
	}
	nanos %= nanosPerSecond

	if seconds > 0 && nanos < 0 {
		seconds--
		nanos += nanosPerSecond
	} else if seconds < 0 && nanos > 0 {
		seconds++
		nanos -= nanosPerSecond
	}
	return Duration{seconds, int32(nanos)}, true
}

// Seconds returns a Duration of s whole seconds.
func Seconds(s int64) Duration { return Duration{seconds: s} }

/*
Minutes returns a Duration of m minutes, panicking if the result is not
representable. See [TryMinutes] for a non-panicking alternative.
*/
func Minutes(m int64) Duration { return mustScale(m, secondsPerMinute, "minutes") }

// Hours returns a Duration of h hours; panics on overflow.
func Hours(h int64) Duration { return mustScale(h, secondsPerHour, "hours") }

// Days returns a Duration of d days; panics on overflow.
func Days(d int64) Duration { return mustScale(d, secondsPerDay, "days") }

// Weeks returns a Duration of w weeks; panics on overflow.
func Weeks(w int64) Duration { return mustScale(w, secondsPerWeek, "weeks") }

/*
TryMinutes returns a Duration of m minutes, or an error wrapping
[ErrConversionRange] if the result is not representable.
*/
func TryMinutes(m int64) (Duration, error) { return tryScale(m, secondsPerMinute, "minutes") }

// TryHours is the fallible form of [Hours].
func TryHours(h int64) (Duration, error) { return tryScale(h, secondsPerHour, "hours") }

// TryDays is the fallible form of [Days].
func TryDays(d int64) (Duration, error) { return tryScale(d, secondsPerDay, "days") }

// TryWeeks is the fallible form of [Weeks].
func TryWeeks(w int64) (Duration, error) { return tryScale(w, secondsPerWeek, "weeks") }

func tryScale(n, unit int64, name string) (Duration, error) {
	s, ok := mul64(n, unit)
	if !ok {
		debugArith(name, n)
		return Duration{}, conversionErrorf(name, " value ", n, " overflows Duration: ", ErrConversionRange)
	}
	return Duration{seconds: s}, nil
}

func mustScale(n, unit int64, name string) Duration {
	d, err := tryScale(n, unit, name)
	if err != nil {
		panic("temporal: overflow in Duration from " + name)
	}
	return d
}

// Milliseconds returns a Duration of ms milliseconds.
func Milliseconds(ms int64) Duration {
	return Duration{ms / 1_000, int32(ms%1_000) * nanosPerMilli}
}

// Microseconds returns a Duration of us microseconds.
func Microseconds(us int64) Duration {
	return Duration{us / 1_000_000, int32(us%1_000_000) * nanosPerMicro}
}

// Nanoseconds returns a Duration of ns nanoseconds.
func Nanoseconds(ns int64) Duration {
	return Duration{ns / nanosPerSecond, int32(ns % nanosPerSecond)}
}

/*
NanosecondsBig returns a Duration of n nanoseconds. An error wrapping
[ErrConversionRange] is returned if n is nil or the number of whole
seconds does not fit in an int64.
*/
func NanosecondsBig(n *big.Int) (Duration, error) {
	if n == nil {
		return Duration{}, conversionErrorf("nil nanosecond count: ", ErrConversionRange)
	}
	q, r := new(big.Int).QuoRem(n, bigNanosPerSecond, new(big.Int))
	if !q.IsInt64() {
		debugArith(n)
		return Duration{}, conversionErrorf("nanosecond count ", n.String(), " overflows Duration: ", ErrConversionRange)
	}
	return Duration{q.Int64(), int32(r.Int64())}, nil
}

/*
SecondsFloat64 returns a Duration approximating f seconds, rounded to
the nearest nanosecond. An error wrapping [ErrConversionRange] is
returned if f is NaN or out of range.
*/
func SecondsFloat64(f float64) (Duration, error) {
	if math.IsNaN(f) {
		return Duration{}, conversionErrorf(errNaNSeconds, ": ", ErrConversionRange)
	}
	if f >= 0x1p63 || f < -0x1p63 {
		debugArith(f)
		return Duration{}, conversionErrorf("seconds value ", fmtFloat(f, 'g', -1, 64),
			" overflows Duration: ", ErrConversionRange)
	}

	whole := math.Trunc(f)
	nanos := int64(math.Round((f - whole) * nanosPerSecond))
	d, ok := normalizeDuration(int64(whole), nanos)
	if !ok {
		return Duration{}, conversionErrorf("seconds value ", fmtFloat(f, 'g', -1, 64),
			" overflows Duration: ", ErrConversionRange)
	}
	return d, nil
}

// SecondsFloat32 is the float32 form of [SecondsFloat64].
func SecondsFloat32(f float32) (Duration, error) { return SecondsFloat64(float64(f)) }

/*
SaturatingSecondsFloat64 is like [SecondsFloat64] except that values
beyond the representable range clamp to [MinDuration] or [MaxDuration],
and NaN yields [ZeroDuration].
*/
func SaturatingSecondsFloat64(f float64) Duration {
	switch {
	case math.IsNaN(f):
		return ZeroDuration
	case f >= 0x1p63:
		return MaxDuration
	case f < -0x1p63:
		return MinDuration
	}
	d, err := SecondsFloat64(f)
	if err != nil {
		// only reachable through rounding carry at the upper edge
		return MaxDuration
	}
	return d
}

// SaturatingSecondsFloat32 is the float32 form of [SaturatingSecondsFloat64].
func SaturatingSecondsFloat32(f float32) Duration { return SaturatingSecondsFloat64(float64(f)) }

/*
DurationFromStd converts a [time.Duration] into a Duration. This never
fails, as every [time.Duration] is representable.
*/
func DurationFromStd(d time.Duration) Duration { return Nanoseconds(int64(d)) }

/*
Std returns the receiver as a [time.Duration], or an error wrapping
[ErrConversionRange] if it exceeds roughly 292 years in either direction.
*/
func (r Duration) Std() (time.Duration, error) {
	ns, ok := mul64(r.seconds, nanosPerSecond)
	if ok {
		ns, ok = add64(ns, int64(r.nanoseconds))
	}
	if !ok {
		return 0, conversionErrorf("duration ", r.String(), " exceeds time.Duration: ", ErrConversionRange)
	}
	return time.Duration(ns), nil
}

/*
AbsStd returns the magnitude of the receiver as a [time.Duration]. An
error wrapping [ErrConversionRange] is returned if the receiver is
negative, or if it is too large for [time.Duration].
*/
func (r Duration) AbsStd() (time.Duration, error) {
	if r.IsNegative() {
		return 0, conversionErrorf(errNegativeStd, ": ", ErrConversionRange)
	}
	return r.Std()
}

/*
Abs returns the magnitude of the receiver. Any Duration of
[math.MinInt64] whole seconds, including NewDuration(math.MinInt64, 0),
has a magnitude beyond [MaxDuration] and saturates to it.
*/
func (r Duration) Abs() Duration {
	if r.seconds == math.MinInt64 {
		debugArith(r)
		return MaxDuration
	}
	return Duration{absInt(r.seconds), absInt(r.nanoseconds)}
}

func (r Duration) IsZero() bool     { return r.seconds == 0 && r.nanoseconds == 0 }
func (r Duration) IsNegative() bool { return r.seconds < 0 || r.nanoseconds < 0 }
func (r Duration) IsPositive() bool { return r.seconds > 0 || r.nanoseconds > 0 }

/*
Compare returns -1, 0 or 1 if the receiver is less than, equal to or
greater than d.
*/
func (r Duration) Compare(d Duration) int {
	switch {
	case r.seconds < d.seconds:
		return -1
	case r.seconds > d.seconds:
		return 1
	case r.nanoseconds < d.nanoseconds:
		return -1
	case r.nanoseconds > d.nanoseconds:
		return 1
	}
	return 0
}

// Lt returns true if the receiver is shorter than d.
func (r Duration) Lt(d Duration) bool { return r.Compare(d) < 0 }

// WholeWeeks returns the number of whole weeks, truncated toward zero.
func (r Duration) WholeWeeks() int64 { return r.seconds / secondsPerWeek }

// WholeDays returns the number of whole days, truncated toward zero.
func (r Duration) WholeDays() int64 { return r.seconds / secondsPerDay }

// WholeHours returns the number of whole hours, truncated toward zero.
func (r Duration) WholeHours() int64 { return r.seconds / secondsPerHour }

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (r Duration) WholeMinutes() int64 { return r.seconds / secondsPerMinute }

// WholeSeconds returns the number of whole seconds, truncated toward zero.
func (r Duration) WholeSeconds() int64 { return r.seconds }

/*
WholeMilliseconds returns the number of whole milliseconds, truncated
toward zero. A [big.Int] is returned as the count may exceed an int64.
*/
func (r Duration) WholeMilliseconds() *big.Int {
	return r.scaled(bigSecondsPerMilli, int64(r.nanoseconds)/nanosPerMilli)
}

// WholeMicroseconds returns the number of whole microseconds.
func (r Duration) WholeMicroseconds() *big.Int {
	return r.scaled(bigSecondsPerMicro, int64(r.nanoseconds)/nanosPerMicro)
}

// WholeNanoseconds returns the total number of nanoseconds.
func (r Duration) WholeNanoseconds() *big.Int {
	return r.scaled(bigNanosPerSecond, int64(r.nanoseconds))
}

func (r Duration) scaled(unit *big.Int, sub int64) *big.Int {
	n := new(big.Int).Mul(newBigInt(r.seconds), unit)
	return n.Add(n, newBigInt(sub))
}

// SubsecMilliseconds returns the subsecond remainder in milliseconds.
func (r Duration) SubsecMilliseconds() int16 { return int16(r.nanoseconds / nanosPerMilli) }

// SubsecMicroseconds returns the subsecond remainder in microseconds.
func (r Duration) SubsecMicroseconds() int32 { return r.nanoseconds / nanosPerMicro }

// SubsecNanoseconds returns the subsecond remainder in nanoseconds.
func (r Duration) SubsecNanoseconds() int32 { return r.nanoseconds }

// AsSecondsFloat64 returns the receiver as fractional seconds.
func (r Duration) AsSecondsFloat64() float64 {
	return float64(r.seconds) + float64(r.nanoseconds)/nanosPerSecond
}

// AsSecondsFloat32 returns the receiver as fractional seconds.
func (r Duration) AsSecondsFloat32() float32 { return float32(r.AsSecondsFloat64()) }

/*
Ratio returns the receiver divided by d as a float64.
*/
func (r Duration) Ratio(d Duration) float64 { return r.AsSecondsFloat64() / d.AsSecondsFloat64() }

/*
CheckedAdd returns the sum of the receiver and d, or false if the sum
overflows.
*/
func (r Duration) CheckedAdd(d Duration) (Duration, bool) {
	secs, ok := add64(r.seconds, d.seconds)
	if !ok {
		return Duration{}, false
	}
	nanos := r.nanoseconds + d.nanoseconds

	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		secs, ok = add64(secs, 1)
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		secs, ok = add64(secs, -1)
	}
	if !ok {
		return Duration{}, false
	}
	return Duration{secs, nanos}, true
}

/*
CheckedSub returns the receiver less d, or false on overflow.
*/
func (r Duration) CheckedSub(d Duration) (Duration, bool) {
	secs, ok := sub64(r.seconds, d.seconds)
	if !ok {
		return Duration{}, false
	}
	nanos := r.nanoseconds - d.nanoseconds

	if nanos >= nanosPerSecond || (secs < 0 && nanos > 0) {
		nanos -= nanosPerSecond
		secs, ok = add64(secs, 1)
	} else if nanos <= -nanosPerSecond || (secs > 0 && nanos < 0) {
		nanos += nanosPerSecond
		secs, ok = add64(secs, -1)
	}
	if !ok {
		return Duration{}, false
	}
	return Duration{secs, nanos}, true
}

/*
CheckedMul returns the receiver multiplied by n, or false on overflow.
*/
func (r Duration) CheckedMul(n int32) (Duration, bool) {
	totalNanos := int64(r.nanoseconds) * int64(n)
	extra := totalNanos / nanosPerSecond
	nanos := int32(totalNanos % nanosPerSecond)

	secs, ok := mul64(r.seconds, int64(n))
	if ok {
		secs, ok = add64(secs, extra)
	}
	if !ok {
		return Duration{}, false
	}
	return Duration{secs, nanos}, true
}

/*
CheckedDiv returns the receiver divided by n, truncated toward zero at
nanosecond precision. False is returned if n is zero or the quotient
overflows.
*/
func (r Duration) CheckedDiv(n int32) (Duration, bool) {
	if n == 0 || (n == -1 && r.seconds == math.MinInt64) {
		return Duration{}, false
	}
	secs := r.seconds / int64(n)
	carry := r.seconds - secs*int64(n)
	extra := carry * nanosPerSecond / int64(n)
	nanos := int64(r.nanoseconds)/int64(n) + extra
	return normalizeDuration(secs, nanos)
}

// CheckedNeg returns the negation of the receiver, or false for [MinDuration].
func (r Duration) CheckedNeg() (Duration, bool) {
	if r.seconds == math.MinInt64 {
		return Duration{}, false
	}
	return Duration{-r.seconds, -r.nanoseconds}, true
}

/*
SaturatingAdd returns the sum of the receiver and d, clamped to
[MinDuration] or [MaxDuration].
*/
func (r Duration) SaturatingAdd(d Duration) Duration {
	if sum, ok := r.CheckedAdd(d); ok {
		return sum
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MinDuration
	}
	return MaxDuration
}

// SaturatingSub returns the receiver less d, clamped on overflow.
func (r Duration) SaturatingSub(d Duration) Duration {
	if diff, ok := r.CheckedSub(d); ok {
		return diff
	}
	debugArith(r, d)
	if d.IsNegative() {
		return MaxDuration
	}
	return MinDuration
}

// SaturatingMul returns the receiver multiplied by n, clamped on overflow.
func (r Duration) SaturatingMul(n int32) Duration {
	if prod, ok := r.CheckedMul(n); ok {
		return prod
	}
	debugArith(r, n)
	if r.IsNegative() != (n < 0) {
		return MinDuration
	}
	return MaxDuration
}

/*
Add returns the sum of the receiver and d. It panics on overflow; see
[Duration.CheckedAdd] and [Duration.SaturatingAdd].
*/
func (r Duration) Add(d Duration) Duration {
	sum, ok := r.CheckedAdd(d)
	if !ok {
		panic("temporal: overflow when adding durations")
	}
	return sum
}

// Sub returns the receiver less d. It panics on overflow.
func (r Duration) Sub(d Duration) Duration {
	diff, ok := r.CheckedSub(d)
	if !ok {
		panic("temporal: overflow when subtracting durations")
	}
	return diff
}

// Mul returns the receiver multiplied by n. It panics on overflow.
func (r Duration) Mul(n int32) Duration {
	prod, ok := r.CheckedMul(n)
	if !ok {
		panic("temporal: overflow when multiplying duration")
	}
	return prod
}

// Div returns the receiver divided by n. It panics if n is zero or on overflow.
func (r Duration) Div(n int32) Duration {
	if n == 0 {
		panic("temporal: attempt to divide duration by zero")
	}
	quo, ok := r.CheckedDiv(n)
	if !ok {
		panic("temporal: overflow when dividing duration")
	}
	return quo
}

/*
MulFloat64 returns the receiver multiplied by f. It panics if the
product is NaN or not representable.
*/
func (r Duration) MulFloat64(f float64) Duration {
	d, err := SecondsFloat64(r.AsSecondsFloat64() * f)
	if err != nil {
		panic("temporal: " + err.Error())
	}
	return d
}

// DivFloat64 returns the receiver divided by f. It panics like [Duration.MulFloat64].
func (r Duration) DivFloat64(f float64) Duration {
	d, err := SecondsFloat64(r.AsSecondsFloat64() / f)
	if err != nil {
		panic("temporal: " + err.Error())
	}
	return d
}

// Neg returns the negation of the receiver. It panics for [MinDuration].
func (r Duration) Neg() Duration {
	neg, ok := r.CheckedNeg()
	if !ok {
		panic("temporal: overflow when negating duration")
	}
	return neg
}

/*
AddAssign sets the receiver to the sum of itself and d, panicking on
overflow exactly as [Duration.Add].
*/
func (r *Duration) AddAssign(d Duration) { *r = r.Add(d) }

// SubAssign is the in-place form of [Duration.Sub].
func (r *Duration) SubAssign(d Duration) { *r = r.Sub(d) }

// MulAssign is the in-place form of [Duration.Mul].
func (r *Duration) MulAssign(n int32) { *r = r.Mul(n) }

// DivAssign is the in-place form of [Duration.Div].
func (r *Duration) DivAssign(n int32) { *r = r.Div(n) }

// MulAssignFloat64 is the in-place form of [Duration.MulFloat64].
func (r *Duration) MulAssignFloat64(f float64) { *r = r.MulFloat64(f) }

// DivAssignFloat64 is the in-place form of [Duration.DivFloat64].
func (r *Duration) DivAssignFloat64(f float64) { *r = r.DivFloat64(f) }

/*
SumDurations returns the sum of all durations. It panics on overflow.
*/
func SumDurations(durations ...Duration) (sum Duration) {
	for _, d := range durations {
		sum = sum.Add(d)
	}
	return
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}
