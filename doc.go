/*
Package temporal implements calendar and clock value types for the
proleptic Gregorian calendar: [Duration], [UtcOffset], [Date], [Time],
[PrimitiveDateTime] and [OffsetDateTime].

All types are immutable values, comparable with ==, and safe for
concurrent use. Arithmetic comes in three explicitly named families:

  - CheckedAdd, CheckedSub, et al., which return false on overflow
  - SaturatingAdd, SaturatingSub, et al., which clamp to the supported range
  - Add, Sub, et al., which panic on overflow

Fallible constructors return a *[ComponentRange] error naming the field
which was out of bounds.

# Host access

Only [NowUTC], [NowLocal], [LocalOffsetAt] and [CurrentLocalOffset]
consult the host, and they do so through [DefaultHost]. Callers wanting
deterministic behavior construct a [Host] with a [FixedClock] and a
[FixedOffsets] or [ZoneOffsets] source instead.

# Build tags

  - temporal_large_dates widens the supported years from ±9999 to ±999,999
  - temporal_debug enables [Tracer] records, see [EnableDebug] and [EnvDebugVar]
*/
package temporal
