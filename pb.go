package temporal

/*
pb.go contains conversions to and from the protobuf well-known
Timestamp and Duration messages.
*/

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*
ToTimestamp returns the instant of the receiver as a [timestamppb.Timestamp].
The offset is not carried. An error wrapping [ErrConversionRange] is
returned for instants before 0001-01-01 or after 9999-12-31, which the
message cannot hold.
*/
func (r OffsetDateTime) ToTimestamp() (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{
		Seconds: r.UnixTimestamp(),
		Nanos:   int32(r.utc.time.nanosecond),
	}
	if err := ts.CheckValid(); err != nil {
		return nil, conversionErrorf(err, ": ", ErrConversionRange)
	}
	debugCodec("timestamp", r)
	return ts, nil
}

/*
FromTimestamp returns the instant of ts in [UTC]. Invalid or nil
messages are rejected.
*/
func FromTimestamp(ts *timestamppb.Timestamp) (OffsetDateTime, error) {
	if ts == nil {
		return OffsetDateTime{}, conversionErrorf(errNilMessage, ": ", ErrConversionRange)
	}
	if err := ts.CheckValid(); err != nil {
		return OffsetDateTime{}, conversionErrorf(err, ": ", ErrConversionRange)
	}
	odt, err := FromUnixTimestamp(ts.GetSeconds())
	if err == nil {
		odt.utc.time.nanosecond = uint32(ts.GetNanos())
	}
	return odt, err
}

/*
ToProto returns the receiver as a [durationpb.Duration]. The message is
limited to roughly ±10,000 years; an error wrapping [ErrConversionRange]
is returned beyond that.
*/
func (r Duration) ToProto() (*durationpb.Duration, error) {
	pd := &durationpb.Duration{Seconds: r.seconds, Nanos: r.nanoseconds}
	if err := pd.CheckValid(); err != nil {
		return nil, conversionErrorf(err, ": ", ErrConversionRange)
	}
	return pd, nil
}

/*
DurationFromProto returns the [Duration] of pd. Invalid or nil messages
are rejected.
*/
func DurationFromProto(pd *durationpb.Duration) (Duration, error) {
	if pd == nil {
		return Duration{}, conversionErrorf(errNilMessage, ": ", ErrConversionRange)
	}
	if err := pd.CheckValid(); err != nil {
		return Duration{}, conversionErrorf(err, ": ", ErrConversionRange)
	}
	return Duration{pd.GetSeconds(), pd.GetNanos()}, nil
}
