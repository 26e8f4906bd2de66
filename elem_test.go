package dtparse

import (
	"errors"
	"testing"
)

func TestElementKind_String(t *testing.T) {
	for idx, test := range []struct {
		k    ElementKind
		want string
	}{
		{KindYear, "year"},
		{KindNanosecond, "nanosecond"},
		{KindTimeshift, "timeshift"},
		{KindInvalid, "invalid"},
		{ElementKind(200), "invalid"},
	} {
		if got := test.k.String(); got != test.want {
			t.Errorf("%s[%d] failed: want %s, got %s", t.Name(), idx, test.want, got)
		}
	}
}

func TestQueue(t *testing.T) {
	var q queue
	d, _ := NewDay(17)
	m, _ := NewMonth(9)

	if err := q.push(m); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	_ = q.push(d)

	if els := q.slice(); len(els) != 2 || els[0] != Element(m) {
		t.Errorf("%s failed: unexpected slice %v", t.Name(), els)
	}

	if got, err := expect[Month](&q, KindMonth); err != nil || got != m {
		t.Errorf("%s failed: got (%v, %v)", t.Name(), got, err)
	}

	var ae AssemblyError
	if _, err := expect[Year](&q, KindYear); !errors.As(err, &ae) ||
		ae.Err != ErrUnexpectedElement || ae.Got != Element(d) {
		t.Errorf("%s failed: want unexpected element, got %v", t.Name(), err)
	}

	if _, err := expect[Day](&q, KindDay); !errors.Is(err, ErrInsufficientElements) {
		t.Errorf("%s failed: want insufficient elements, got %v", t.Name(), err)
	}
}

func TestQueue_full(t *testing.T) {
	var q queue
	s, _ := NewSecond(0)
	for i := 0; i < maxElements; i++ {
		if err := q.push(s); err != nil {
			t.Fatalf("%s failed: push %d: %v", t.Name(), i, err)
		}
	}
	if err := q.push(s); !errors.Is(err, ErrQueueFull) {
		t.Errorf("%s failed: want queue full, got %v", t.Name(), err)
	}

	q.reset()
	if q.len() != 0 {
		t.Errorf("%s failed: reset left %d elements", t.Name(), q.len())
	}
}
