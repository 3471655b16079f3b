package temporal

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags temporal_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that events are only emitted if/when this package was run or
built with the "-tags temporal_debug" flag. Otherwise, registered
tracers never receive records.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Called-function begin
	EventInfo                             //     2: Interim function event
	EventExit                             //     4: Called function exit
	EventIO                               //     8: Called function inputs/outputs
	EventRange                            //    16: Component range failures
	EventArith                            //    32: Overflow, saturation and carry
	EventHost                             //    64: Clock and local offset queries
	EventZone                             //   128: Zone database loads
	EventConstraint                       //   256: Constraint ops
	EventCodec                            //   512: Text, YAML, SQL and protobuf conversions
	_                                     //  1024: unassigned
	_                                     //  2048: unassigned
	_                                     //  4096: unassigned
	_                                     //  8192: unassigned
	_                                     // 16384: unassigned
	_                                     // 32768: unassigned
)

var eventNames = map[int]string{
	int(EventAll):        "all",
	int(EventNone):       "none",
	int(EventEnter):      "enter",
	int(EventInfo):       "info",
	int(EventExit):       "exit",
	int(EventIO):         "io",
	int(EventRange):      "range",
	int(EventArith):      "arith",
	int(EventHost):       "host",
	int(EventZone):       "zone",
	int(EventConstraint): "constraint",
	int(EventCodec):      "codec",
}

/*
String returns the lowercase name of the receiver, or the decimal
value if it is not a single named event.
*/
func (r EventType) String() string {
	if n, ok := eventNames[int(r)]; ok {
		return n
	}
	return itoa(int(r))
}
