package dtparse

/*
evt.go contains the EventType constants and Tracer registration used for
debugging. Events are only emitted when this package was built with the
"-tags dtparse_debug" flag; otherwise a registered Tracer never fires.
*/

import (
	"sync"
	"time"
)

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.
*/
type EventType uint16

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events
)

const (
	EventEnter      EventType = 1 << iota //    1: Called-function begin
	EventInfo                             //    2: Interim function event
	EventExit                             //    4: Called function exit
	EventIO                               //    8: Called function inputs/outputs
	EventField                            //   16: Component field parsed
	EventBuild                            //   32: Composite assembly
	EventGrammar                          //   64: Grammar derivation
	EventAdapter                          //  128: time.Time conversion
	EventConstraint                       //  256: Constraint evaluation
	EventDuration                         //  512: Duration and period parsing
)

var eventNames = map[EventType]string{
	EventNone:       "none",
	EventAll:        "all",
	EventEnter:      "enter",
	EventInfo:       "info",
	EventExit:       "exit",
	EventIO:         "io",
	EventField:      "field",
	EventBuild:      "build",
	EventGrammar:    "grammar",
	EventAdapter:    "adapter",
	EventConstraint: "constraint",
	EventDuration:   "duration",
}

/*
String returns the lowercase name of a single [EventType], or the
pipe-delimited names of each bit set within a combined value.
*/
func (r EventType) String() string {
	if name, ok := eventNames[r]; ok {
		return name
	}
	var names []string
	for i := 0; i < 16; i++ {
		if bit := EventType(1 << i); r&bit != 0 {
			if name, ok := eventNames[bit]; ok {
				names = append(names, name)
			} else {
				names = append(names, itoa(int(bit)))
			}
		}
	}
	return join(names, "|")
}

/*
ParseEventTypes returns the combined [EventType] named by the comma
delimited list s, alongside an error if any name is unknown. Integer
values are accepted as well; any negative integer selects [EventAll].
*/
func ParseEventTypes(s string) (ev EventType, err error) {
	for _, name := range split(s, ",") {
		if name = lc(trimS(name)); name == "" {
			continue
		}
		if n, aerr := atoi(name); aerr == nil {
			if n < 0 || n > int(EventAll) {
				return EventAll, nil
			}
			ev |= EventType(n)
			continue
		}
		var found bool
		for k, v := range eventNames {
			if v == name {
				ev |= k
				found = true
				break
			}
		}
		if !found {
			return EventNone, mkerr("unknown event type " + name)
		}
	}
	return
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit or a domain event
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter and domain events: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer] in debug builds.
*/
type Tracer interface {
	Trace(TraceRecord)
}

/*
LevelTracer is qualified by any [Tracer] which filters the events it
accepts. Events rejected by Enabled are never assembled.
*/
type LevelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

Without the "dtparse_debug" build tag, registration succeeds but no
events are emitted.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	if t == nil {
		t = discardTracer{}
	}
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() { EnableDebug(nil) }

var (
	tmu    sync.RWMutex
	tracer Tracer = discardTracer{}
)

type discardTracer struct{}

func (discardTracer) Trace(_ TraceRecord)      {}
func (discardTracer) Enabled(_ EventType) bool { return false }

func currentTracer() Tracer {
	tmu.RLock()
	defer tmu.RUnlock()
	return tracer
}
