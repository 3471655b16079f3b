package temporal

import "sync/atomic"

/*
levels is a bitmask of enabled [EventType] values. The zero value has
no levels enabled. Instances are safe for concurrent use.
*/
type levels struct {
	v atomic.Uint32
}

func newLevels(x ...any) *levels {
	l := new(levels)
	l.shift(x...)
	return l
}

func (r *levels) mask() uint16 { return uint16(r.v.Load()) }

// shift enables each level in x, which may be EventType, int or name.
func (r *levels) shift(x ...any) {
	for _, xi := range x {
		if X, ok := levelValue(xi); ok {
			if X == int(EventAll) {
				r.v.Store(uint32(EventAll))
				continue
			}
			for {
				old := r.v.Load()
				if r.v.CompareAndSwap(old, old|uint32(X)) {
					break
				}
			}
		}
	}
}

// unshift disables each level in x.
func (r *levels) unshift(x ...any) {
	for _, xi := range x {
		if X, ok := levelValue(xi); ok {
			if X == int(EventAll) {
				r.v.Store(0)
				continue
			}
			for {
				old := r.v.Load()
				if r.v.CompareAndSwap(old, old&^uint32(X)) {
					break
				}
			}
		}
	}
}

func (r *levels) positive(ev EventType) bool {
	return ev != EventNone && r.mask()&uint16(ev) != 0
}

// enabled returns the names of all active levels.
func (r *levels) enabled() (names []string) {
	m := r.mask()
	switch m {
	case 0:
		return []string{"none"}
	case uint16(EventAll):
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		d := 1 << i
		if m&uint16(d) != 0 {
			if n, ok := eventNames[d]; ok {
				names = append(names, n)
			} else {
				names = append(names, itoa(d))
			}
		}
	}
	return
}

func levelValue(x any) (v int, ok bool) {
	switch tv := x.(type) {
	case EventType:
		v = int(tv)
	case int:
		v = tv
	case uint16:
		v = int(tv)
	case string:
		v = -1
		for k, name := range eventNames {
			if name == lc(trimS(tv)) {
				v = k
				break
			}
		}
	default:
		return 0, false
	}
	ok = 0 <= v && v <= int(EventAll)
	return
}
