//go:build !temporal_debug

package temporal

func debugInfo(_ ...any)                {}
func debugRange(_ ...any)               {}
func debugArith(_ ...any)               {}
func debugHost(_ ...any)                {}
func debugZone(_ ...any)                {}
func debugConstraint(_ ...any)          {}
func debugCodec(_ ...any)               {}
func debugPath(_ ...any) func(_ ...any) { return func(_ ...any) {} }
