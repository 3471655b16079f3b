//go:build temporal_debug

package temporal

import (
	"os"
	"runtime"
	"time"
)

func debugEvent(level EventType, args ...any) {
	t := currentTracer()

	lt, ok := t.(levelTracer)
	if ok && !(lt.Enabled(level) || lt.Enabled(EventAll)) {
		return
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: callerName(),
	}
	if !ok || lt.Enabled(EventIO) || level&^coreTracerMask != 0 {
		if len(args) == 0 {
			args = []any{"no values"}
		}
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func callerName() string {
	// skip: runtime.Callers, callerName, debugEvent
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := fr.Function
		if i := lidx(name, ".func"); i >= 0 {
			name = name[:i]
		}
		if i := lidx(name, "."); i >= 0 && !hasPfx(name[i+1:], "debug") {
			return name
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugRange(args ...any)      { debugEvent(EventRange, args...) }
func debugArith(args ...any)      { debugEvent(EventArith, args...) }
func debugHost(args ...any)       { debugEvent(EventHost, args...) }
func debugZone(args ...any)       { debugEvent(EventZone, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugCodec(args ...any)      { debugEvent(EventCodec, args...) }

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		sp := split(evar, ",")
		var vars []any
		for i := 0; i < len(sp); i++ {
			if n, err := atoi(trimS(sp[i])); err != nil {
				vars = append(vars, sp[i])
			} else if n <= int(EventAll) {
				if n < 0 {
					vars = []any{int(EventAll)}
					break
				}
				vars = append(vars, n)
			}
		}

		dt := NewDefaultTracer(os.Stderr)
		dt.ll.shift(vars...)
		EnableDebug(dt)
		debugInfo("levels: " + join(dt.ll.enabled(), `,`))
	}
}
