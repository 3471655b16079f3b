package temporal

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                    = errors.New
	itoa       func(int) string                      = strconv.Itoa
	atoi       func(string) (int, error)             = strconv.Atoi
	fmtInt     func(int64, int) string               = strconv.FormatInt
	fmtUint    func(uint64, int) string              = strconv.FormatUint
	fmtFloat   func(float64, byte, int, int) string  = strconv.FormatFloat
	pint       func(string, int, int) (int64, error) = strconv.ParseInt
	lc         func(string) string                   = strings.ToLower
	uc         func(string) string                   = strings.ToUpper
	split      func(string, string) []string         = strings.Split
	join       func([]string, string) string         = strings.Join
	stridxb    func(string, byte) int                = strings.IndexByte
	stridxany  func(string, string) int              = strings.IndexAny
	lidx       func(string, string) int              = strings.LastIndex
	replaceAll func(string, string, string) string   = strings.ReplaceAll
	hasPfx     func(string, string) bool             = strings.HasPrefix
	trimS      func(string) string                   = strings.TrimSpace
	trimR      func(string, string) string           = strings.TrimRight
	strrpt     func(string, int) string              = strings.Repeat
	newBigInt  func(int64) *big.Int                  = big.NewInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
floorDiv returns a/b rounded toward negative infinity.
*/
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

/*
floorMod returns the remainder of floorDiv, always sharing the sign of b.
*/
func floorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func absInt[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func inRange[T constraints.Integer](v, lo, hi T) bool { return lo <= v && v <= hi }

// zero-padded decimal rendering of a non-negative value.
func padInt(v int64, width int) string {
	s := fmtInt(v, 10)
	if len(s) < width {
		s = strrpt("0", width-len(s)) + s
	}
	return s
}

// parseDigits reads an unsigned decimal of exactly n digits.
func parseDigits(s string, n int) (v int64, ok bool) {
	if len(s) != n {
		return
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int64(c-'0')
	}
	return v, true
}

var (
	bigNanosPerSecond  = newBigInt(nanosPerSecond)
	bigSecondsPerMilli = newBigInt(1_000)
	bigSecondsPerMicro = newBigInt(1_000_000)
)
