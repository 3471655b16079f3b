package temporal

/*
zone.go contains an OffsetSource backed by the IANA time zone database.
*/

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

/*
ZoneDB loads and caches [time.Location] values by IANA name. Concurrent
first loads of one name share a single read of the zone database.

The zero value is ready for use.
*/
type ZoneDB struct {
	cache sync.Map // name -> *time.Location
	group singleflight.Group

	// Load, if non-nil, replaces time.LoadLocation.
	Load func(name string) (*time.Location, error)
}

var defaultZones = new(ZoneDB)

/*
Location returns the [time.Location] of the named zone, loading it on
first use. Failures are not cached.
*/
func (r *ZoneDB) Location(name string) (*time.Location, error) {
	if loc, ok := r.cache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	v, err, shared := r.group.Do(name, func() (any, error) {
		load := r.Load
		if load == nil {
			load = time.LoadLocation
		}
		loc, err := load(name)
		if err != nil {
			return nil, err
		}
		r.cache.Store(name, loc)
		return loc, nil
	})
	debugZone(name, shared, err)
	if err != nil {
		return nil, offsetErrorf("zone ", name, ": ", err, ": ", ErrIndeterminateOffset)
	}
	return v.(*time.Location), nil
}

/*
Offsets returns a [ZoneOffsets] for the named zone which loads through
the receiver.
*/
func (r *ZoneDB) Offsets(name string) ZoneOffsets { return ZoneOffsets{Name: name, db: r} }

/*
ZoneOffsets is an [OffsetSource] reporting the offset of an IANA zone,
such as "Europe/Paris", at each instant. Daylight saving transitions are
honored. An unknown zone yields an error matching [ErrIndeterminateOffset].
*/
type ZoneOffsets struct {
	Name string
	db   *ZoneDB
}

// ZoneOffsetsFor returns a [ZoneOffsets] using the package zone cache.
func ZoneOffsetsFor(name string) ZoneOffsets { return defaultZones.Offsets(name) }

func (r ZoneOffsets) OffsetAt(at OffsetDateTime) (UtcOffset, error) {
	db := r.db
	if db == nil {
		db = defaultZones
	}
	loc, err := db.Location(r.Name)
	if err != nil {
		return UtcOffset{}, err
	}
	return offsetIn(loc, at)
}

/*
InZone returns the receiver presented in the offset the named zone
observes at that instant. A *[ComponentRange] error is returned if the
local fields in that offset are not representable.
*/
func (r OffsetDateTime) InZone(name string) (OffsetDateTime, error) {
	off, err := ZoneOffsetsFor(name).OffsetAt(r)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return r.presentIn(off)
}
