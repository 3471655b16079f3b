package temporal

/*
uuid.go extracts the creation instant embedded within time-based UUIDs.
*/

import (
	"encoding/binary"

	"github.com/google/uuid"
)

/*
FromUUID returns the instant, in [UTC], embedded within u. Versions 1
and 6 hold 100 nanosecond ticks since 1582-10-15, and version 7 holds
Unix milliseconds. Any other version yields an error wrapping
[ErrConversionRange], including version 2, whose low time bits are
overwritten by a local domain identifier.
*/
func FromUUID(u uuid.UUID) (OffsetDateTime, error) {
	switch v := u.Version(); v {
	case 1, 6, 7:
		ts := u.Time()
		if v == 6 {
			ts = v6Time(u)
		}
		sec, nsec := ts.UnixTime()
		if nsec < 0 {
			// truncated division before 1970
			sec, nsec = sec-1, nsec+nanosPerSecond
		}
		odt, err := FromUnixTimestamp(sec)
		if err != nil {
			return OffsetDateTime{}, err
		}
		odt.utc.time.nanosecond = uint32(nsec)
		debugCodec("uuid", v, odt)
		return odt, nil
	default:
		return OffsetDateTime{}, conversionErrorf("version ", int(v), " ", errUnsupportedUUID, ": ", ErrConversionRange)
	}
}

// v6Time reads the 60 bit timestamp of a version 6 UUID, most significant bits first.
func v6Time(u uuid.UUID) uuid.Time {
	high := int64(binary.BigEndian.Uint32(u[0:4]))
	mid := int64(binary.BigEndian.Uint16(u[4:6]))
	low := int64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
	return uuid.Time(high<<28 | mid<<12 | low)
}
