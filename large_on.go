//go:build temporal_large_dates

package temporal

/*
MinYear and MaxYear define the inclusive range of representable years.
This build was produced with "-tags temporal_large_dates".
*/
const (
	MinYear int32 = -999_999
	MaxYear int32 = 999_999
)
