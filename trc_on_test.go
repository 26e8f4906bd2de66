//go:build dtparse_debug

package dtparse

import (
	"errors"
	"strings"
	"testing"
)

func TestDebugBuild(t *testing.T) {
	if !DebugBuild() {
		t.Errorf("%s failed: debug build not reported", t.Name())
	}
}

func TestTracer_events(t *testing.T) {
	t.Cleanup(DisableDebug)

	rec := new(recorder)
	EnableDebug(rec)
	if _, err := ParseRFC3339Date("2023-09-17"); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	if n := rec.count(EventField); n != 3 {
		t.Errorf("%s failed: want 3 field events, got %d", t.Name(), n)
	}
	if n := rec.count(EventGrammar); n != 1 {
		t.Errorf("%s failed: want 1 grammar event, got %d", t.Name(), n)
	}

	var found bool
	for _, r := range rec.recs {
		if r.Type == EventBuild && strings.HasSuffix(r.Func, "BuildDate") {
			found = true
		}
	}
	if !found {
		t.Errorf("%s failed: no build event from BuildDate", t.Name())
	}

	if _, err := ParsePeriod("P1D"); err != nil || rec.count(EventDuration) != 1 {
		t.Errorf("%s failed: duration event missing: %v", t.Name(), err)
	}
}

func TestDefaultTracer(t *testing.T) {
	t.Cleanup(DisableDebug)

	var buf strings.Builder
	dt := NewDefaultTracer(&buf)
	dt.EnableLevel(EventField)
	EnableDebug(dt)

	if _, err := ParseRFC3339Date("2023-09-17"); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	out := buf.String()
	if !strings.Contains(out, "[field]: year(2023)") || !strings.Contains(out, "day(17)") {
		t.Errorf("%s failed: unexpected trace output:\n%s", t.Name(), out)
	}
	if strings.Contains(out, "[build]") {
		t.Errorf("%s failed: disabled level written:\n%s", t.Name(), out)
	}

	buf.Reset()
	dt.DisableLevel(EventField)
	if dt.Enabled(EventField) {
		t.Errorf("%s failed: level not disabled", t.Name())
	}

	dt.EnableLevel(EventEnter | EventExit)
	dt.Trace(TraceRecord{Type: EventEnter, Func: "x/go-dtparse.F", Args: []any{1, true, []byte("ab")}})
	dt.Trace(TraceRecord{Type: EventExit, Func: "x/go-dtparse.F", Ret: []any{nil}})
	out = buf.String()
	if !strings.Contains(out, `→ F(1, true, "ab")`) || !strings.Contains(out, "← F => <nil>") {
		t.Errorf("%s failed: unexpected path output:\n%s", t.Name(), out)
	}

	done := debugPath("in")
	done("out")
}

func TestLoglevels(t *testing.T) {
	var bits loglevels
	bits.Shift(EventField)
	if bits.Int() != 0 || bits.Positive(EventField) {
		t.Errorf("%s failed: nil loglevels mutated", t.Name())
	}

	bits = newLoglevels()
	bits.Shift("field,build", 1, uint16(EventGrammar))
	if bits.Int() != int(EventField|EventBuild|EventEnter|EventGrammar) {
		t.Errorf("%s failed: got %d", t.Name(), bits.Int())
	}
	bits.Unshift(EventEnter, "bogus", 3.14)
	if !bits.Positive("build") || bits.Positive(EventEnter) || bits.Positive(EventNone) {
		t.Errorf("%s failed: unexpected levels %v", t.Name(), bits.enabled())
	}
	if got := strings.Join(bits.enabled(), ","); got != "field,build,grammar" {
		t.Errorf("%s failed: got %s", t.Name(), got)
	}

	bits.Shift(-1)
	if got := bits.enabled(); len(got) != 1 || got[0] != "all" {
		t.Errorf("%s failed: got %v", t.Name(), got)
	}
	bits.Unshift(EventAll)
	if got := bits.enabled(); got[0] != "none" {
		t.Errorf("%s failed: got %v", t.Name(), got)
	}
}

func TestLabeledItem(t *testing.T) {
	for idx, test := range []struct {
		item labeledItem
		want string
	}{
		{newLItem(nil, "err"), "err:<Nil error>"},
		{newLItem(errors.New("boom")), "<No label>:boom"},
		{newLItem(ISO8601(), "new", "parser"), "new parser:grammar(iso8601)"},
		{newLItem(StateFailed, "state"), "state:failed"},
		{newLItem(struct{}{}, "x"), "x:<Unidentified>"},
	} {
		if got := test.item.String(); got != test.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, test.want, got)
		}
	}
}
