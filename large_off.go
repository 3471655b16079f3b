//go:build !temporal_large_dates

package temporal

/*
MinYear and MaxYear define the inclusive range of representable years.
Build with "-tags temporal_large_dates" to expand the range to ±999,999.
*/
const (
	MinYear int32 = -9999
	MaxYear int32 = 9999
)
