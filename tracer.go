package temporal

/*
tracer.go contains the Tracer interface and its stock qualifiers.
Records are only produced when this package was built with the
"-tags temporal_debug" flag; see trc_on.go.
*/

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke use of the [DefaultTracer] at init time.
The value is a comma-delimited list of [EventType] names (e.g.:
"range,arith") or integers.

Only honored when built with "-tags temporal_debug".
*/
const EnvDebugVar = "TEMPORAL_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit, Range, et al.
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter and interim events: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer] and [ZapTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.
*/
func EnableDebug(t Tracer) {
	if t == nil {
		t = &discardTracer{}
	}
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

func currentTracer() Tracer {
	tmu.RLock()
	defer tmu.RUnlock()
	return tracer
}

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

/*
DefaultTracer is the package-level [Tracer] implementation, which
writes one line per record to an [io.Writer].
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll *levels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written. Any levels provided are
enabled immediately.
*/
func NewDefaultTracer(writer io.Writer, lvls ...EventType) *DefaultTracer {
	dt := &DefaultTracer{w: writer, ll: newLevels()}
	for _, l := range lvls {
		dt.ll.shift(l)
	}
	return dt
}

/*
EnableLevel adds [EventType] ev to the collection of levels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.shift(ev) }

/*
DisableLevel removes [EventType] ev from the collection of levels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.unshift(ev) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool { return r.ll.positive(e) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	// drop if any bit in rec.Type isn't enabled
	if !r.ll.positive(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.write(ts+" → "+fn+"(", rec.Args, ")\n")
	case EventExit:
		r.write(ts+" ← "+fn+" => ", rec.Ret, "\n")
	default:
		r.write(ts+"     • "+fn+" ["+rec.Type.String()+"]: ", rec.Args, "\n")
	}
}

func (r *DefaultTracer) write(head string, args []any, tail string) {
	bld := newStrBuilder()
	bld.WriteString(head)
	for i, a := range args {
		if i > 0 {
			bld.WriteString(", ")
		}
		bld.WriteString(fmtArg(a))
	}
	bld.WriteString(tail)
	io.WriteString(r.w, bld.String())
}

/*
ZapTracer adapts [TraceRecord] instances onto a [zap.Logger]. Enter
and exit records are logged at debug level, range and arithmetic
events at warn level and all others at info level.
*/
type ZapTracer struct {
	log *zap.Logger
	ll  *levels
}

/*
NewZapTracer returns an instance of *[ZapTracer] wrapping logger. A
nil logger is replaced with [zap.NewNop]. Any levels provided are
enabled immediately.
*/
func NewZapTracer(logger *zap.Logger, lvls ...EventType) *ZapTracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	zt := &ZapTracer{log: logger.Named("temporal"), ll: newLevels()}
	for _, l := range lvls {
		zt.ll.shift(l)
	}
	return zt
}

/*
EnableLevel adds [EventType] ev to the receiver's active levels.
*/
func (r *ZapTracer) EnableLevel(ev EventType) { r.ll.shift(ev) }

/*
DisableLevel removes [EventType] ev from the receiver's active levels.
*/
func (r *ZapTracer) DisableLevel(ev EventType) { r.ll.unshift(ev) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *ZapTracer) Enabled(e EventType) bool { return r.ll.positive(e) }

/*
Trace logs rec through the wrapped [zap.Logger].
*/
func (r *ZapTracer) Trace(rec TraceRecord) {
	if !r.ll.positive(rec.Type) {
		return
	}

	lvl := zapcore.InfoLevel
	switch {
	case rec.Type&(EventEnter|EventExit) != 0:
		lvl = zapcore.DebugLevel
	case rec.Type&(EventRange|EventArith) != 0:
		lvl = zapcore.WarnLevel
	}

	ce := r.log.Check(lvl, trimFuncName(rec.Func))
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.Stringer("event", rec.Type),
		zap.Time("at", rec.Time),
	}
	if len(rec.Args) > 0 {
		fields = append(fields, zap.Strings("args", fmtArgs(rec.Args)))
	}
	for _, ret := range rec.Ret {
		if err, ok := ret.(error); ok && err != nil {
			fields = append(fields, zap.Error(err))
		}
	}
	if len(rec.Ret) > 0 {
		fields = append(fields, zap.Strings("ret", fmtArgs(rec.Ret)))
	}
	ce.Write(fields...)
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return replaceAll(full, "go-temporal.", "")
}

func fmtArgs(args []any) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmtArg(a)
	}
	return out
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case error:
		s = "error: " + v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return
}
