package dtparse

import (
	"sync"
	"testing"
)

// recorder is a Tracer which retains every record it is handed.
type recorder struct {
	mu   sync.Mutex
	recs []TraceRecord
}

func (r *recorder) Trace(rec TraceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
}

func (r *recorder) count(ev EventType) (n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recs {
		if rec.Type == ev {
			n++
		}
	}
	return
}

func TestEventType_String(t *testing.T) {
	for idx, test := range []struct {
		ev   EventType
		want string
	}{
		{EventNone, "none"},
		{EventAll, "all"},
		{EventField, "field"},
		{EventDuration, "duration"},
		{EventField | EventBuild, "field|build"},
		{EventEnter | EventType(1<<12), "enter|4096"},
	} {
		if got := test.ev.String(); got != test.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, test.want, got)
		}
	}
}

func TestParseEventTypes(t *testing.T) {
	for idx, test := range []struct {
		in   string
		want EventType
		err  bool
	}{
		{in: "", want: EventNone},
		{in: "field", want: EventField},
		{in: "Field, BUILD ,grammar", want: EventField | EventBuild | EventGrammar},
		{in: "16,32", want: EventField | EventBuild},
		{in: "all", want: EventAll},
		{in: "-1", want: EventAll},
		{in: "70000", want: EventAll},
		{in: "none,adapter", want: EventAdapter},
		{in: "field,bogus", err: true},
	} {
		got, err := ParseEventTypes(test.in)
		if (err != nil) != test.err || (!test.err && got != test.want) {
			t.Errorf("%s[%d] failed: %q: got (%s, %v)", t.Name(), idx, test.in, got, err)
		}
	}
}

func TestEnableDebug(t *testing.T) {
	t.Cleanup(DisableDebug)

	rec := new(recorder)
	EnableDebug(rec)
	if currentTracer() != Tracer(rec) {
		t.Errorf("%s failed: tracer not registered", t.Name())
	}

	DisableDebug()
	if _, ok := currentTracer().(discardTracer); !ok {
		t.Errorf("%s failed: tracer not discarded", t.Name())
	}

	EnableDebug(nil)
	if lt, ok := currentTracer().(LevelTracer); !ok || lt.Enabled(EventAll) {
		t.Errorf("%s failed: nil tracer not replaced by a silent one", t.Name())
	}
}
