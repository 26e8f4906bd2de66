//go:build dtparse_debug

package dtparse

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "DTPARSE_DEBUG"

/*
DebugBuild returns true, as this package was built with the
"dtparse_debug" tag.
*/
func DebugBuild() bool { return true }

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(ev) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(ev) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool { return r.ll.positive(e) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
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
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	io.WriteString(r.w, b.String())
}

func trimFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimPrefix(full, "go-dtparse.")
}

func debugEvent(level EventType, args ...any) {
	t := currentTracer()
	if lt, ok := t.(LevelTracer); ok && !lt.Enabled(level) {
		return
	}

	fn := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	if i := strings.Index(fn, ".func"); i > 0 {
		fn = fn[:i]
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
	}
	if len(args) == 0 {
		args = []any{"no values"}
	}
	if level == EventExit {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugIO(args ...any)         { debugEvent(EventIO, args...) }
func debugField(args ...any)      { debugEvent(EventField, args...) }
func debugBuild(args ...any)      { debugEvent(EventBuild, args...) }
func debugGrammar(args ...any)    { debugEvent(EventGrammar, args...) }
func debugAdapter(args ...any)    { debugEvent(EventAdapter, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugDuration(args ...any)   { debugEvent(EventDuration, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...string) labeledItem {
	return labeledItem{V: value, L: join(labels, ` `)}
}

func (r labeledItem) String() string {
	l := "<No label>"
	if r.L != "" {
		l = r.L
	}
	if err, is := r.V.(error); is || r.V == nil {
		if err == nil {
			return l + ":<Nil error>"
		}
		return l + ":" + err.Error()
	}
	return l + ":" + fmtArg(r.V)
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case string:
		s = v
	case int:
		s = itoa(v)
	case bool:
		s = bool2str(v)
	case []byte:
		s = snippet(v, 32)
	case labeledItem:
		s = v.String()
	case Element:
		s = v.Kind().String() + "(" + v.String() + ")"
	case Grammar:
		s = "grammar(" + v.String() + ")"
	case ParserState:
		s = v.String()
	case error:
		s = v.Error()
	case interface{ String() string }:
		s = v.String()
	case nil:
		s = "<nil>"
	default:
		s = "<Unidentified>"
	}
	return
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}

	ll := newLoglevels()
	for _, name := range split(evar, ",") {
		ll.Shift(trimS(name))
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.ll = ll
	EnableDebug(dt)
	debugInfo(newLItem(join(ll.enabled(), `,`), "loglevels"))
}
