package temporal

/*
host.go contains the host capabilities consulted for the current
instant and for local offsets. Both are injected through Host rather
than read from hidden globals.
*/

import (
	"errors"
	"time"
)

/*
Clock supplies the current instant. Implementations must be safe for
concurrent use.
*/
type Clock interface {
	NowUTC() OffsetDateTime
}

/*
OffsetSource supplies the local [UtcOffset] in effect at an instant.
Implementations unable to do so return an error matching
[ErrIndeterminateOffset].
*/
type OffsetSource interface {
	OffsetAt(OffsetDateTime) (UtcOffset, error)
}

/*
SystemClock reads the host wall clock. It panics if the host reports an
instant outside the supported years, which no sane host does.
*/
type SystemClock struct{}

func (SystemClock) NowUTC() OffsetDateTime {
	now, err := FromTime(time.Now().UTC())
	if err != nil {
		panic("temporal: host clock out of range: " + err.Error())
	}
	return now
}

/*
FixedClock always reports the instant At, in [UTC]. It is intended for
tests and for replaying recorded events. At must be representable in
UTC, or NowUTC panics as [OffsetDateTime.ToOffset] does.
*/
type FixedClock struct {
	At OffsetDateTime
}

func (r FixedClock) NowUTC() OffsetDateTime { return r.At.ToOffset(UTC) }

/*
SystemOffsets reports offsets from the process local zone, [time.Local].
*/
type SystemOffsets struct{}

func (SystemOffsets) OffsetAt(at OffsetDateTime) (UtcOffset, error) {
	return offsetIn(time.Local, at)
}

// FixedOffsets reports Offset for every instant.
type FixedOffsets struct {
	Offset UtcOffset
}

func (r FixedOffsets) OffsetAt(_ OffsetDateTime) (UtcOffset, error) { return r.Offset, nil }

func offsetIn(loc *time.Location, at OffsetDateTime) (UtcOffset, error) {
	if loc == nil {
		return UtcOffset{}, offsetErrorf("nil location: ", ErrIndeterminateOffset)
	}
	_, secs := at.ToTime().In(loc).Zone()
	off, err := OffsetFromWholeSeconds(int32(secs))
	if err != nil {
		return UtcOffset{}, offsetErrorf(loc.String(), ": ", err, ": ", ErrIndeterminateOffset)
	}
	return off, nil
}

/*
Host pairs a [Clock] with an [OffsetSource]. A nil Clock falls back to
[SystemClock], and a nil Offsets falls back to [SystemOffsets].
*/
type Host struct {
	Clock   Clock
	Offsets OffsetSource
}

/*
DefaultHost is consulted by the package-level [NowUTC], [NowLocal],
[LocalOffsetAt] and [CurrentLocalOffset] functions.
*/
var DefaultHost = Host{Clock: SystemClock{}, Offsets: SystemOffsets{}}

func (r Host) clock() Clock {
	if r.Clock == nil {
		return SystemClock{}
	}
	return r.Clock
}

func (r Host) offsets() OffsetSource {
	if r.Offsets == nil {
		return SystemOffsets{}
	}
	return r.Offsets
}

// NowUTC returns the current instant in [UTC].
func (r Host) NowUTC() OffsetDateTime {
	now := r.clock().NowUTC()
	debugHost("now", now)
	return now
}

/*
LocalOffsetAt returns the local offset in effect at the given instant.
Errors returned by the [OffsetSource] are wrapped so that they always
match [ErrIndeterminateOffset].
*/
func (r Host) LocalOffsetAt(at OffsetDateTime) (off UtcOffset, err error) {
	if off, err = r.offsets().OffsetAt(at); err != nil {
		if !errors.Is(err, ErrIndeterminateOffset) {
			err = offsetErrorf(err, ": ", ErrIndeterminateOffset)
		}
		off = UtcOffset{}
	}
	debugHost("offset", at, off, err)
	return
}

// CurrentLocalOffset returns the local offset in effect now.
func (r Host) CurrentLocalOffset() (UtcOffset, error) { return r.LocalOffsetAt(r.NowUTC()) }

/*
NowLocal returns the current instant presented in the local offset.
*/
func (r Host) NowLocal() (OffsetDateTime, error) {
	now := r.NowUTC()
	off, err := r.LocalOffsetAt(now)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return now.presentIn(off)
}

// NowUTC returns the current instant in [UTC] according to [DefaultHost].
func NowUTC() OffsetDateTime { return DefaultHost.NowUTC() }

// NowLocal is [Host.NowLocal] against [DefaultHost].
func NowLocal() (OffsetDateTime, error) { return DefaultHost.NowLocal() }

// LocalOffsetAt is [Host.LocalOffsetAt] against [DefaultHost].
func LocalOffsetAt(at OffsetDateTime) (UtcOffset, error) { return DefaultHost.LocalOffsetAt(at) }

// CurrentLocalOffset is [Host.CurrentLocalOffset] against [DefaultHost].
func CurrentLocalOffset() (UtcOffset, error) { return DefaultHost.CurrentLocalOffset() }
