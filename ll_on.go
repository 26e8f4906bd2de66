//go:build dtparse_debug

package dtparse

/*
loglevels is the bitmask of [EventType] values accepted by the
[DefaultTracer].
*/
type loglevels struct {
	v *uint16
}

func newLoglevels() (bv loglevels) {
	bv.v = new(uint16)
	return
}

func (r loglevels) enabled() (names []string) {
	switch r.Int() {
	case 0:
		return []string{"none"}
	case int(EventAll):
		return []string{"all"}
	}

	for i := 0; i < 16; i++ {
		if d := EventType(1 << i); r.positive(d) {
			names = append(names, d.String())
		}
	}
	return
}

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(*r.v)
	}
	return
}

/*
Shift enables each of x, which may be an [EventType], an int, or an
event name.
*/
func (r *loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if ev, ok := toEventType(xi); ok && r.v != nil {
			*r.v |= uint16(ev)
		}
	}
	return *r
}

func (r *loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if ev, ok := toEventType(xi); ok && r.v != nil {
			*r.v &^= uint16(ev)
		}
	}
	return *r
}

func (r loglevels) Positive(x any) bool {
	ev, ok := toEventType(x)
	return ok && r.positive(ev)
}

func (r loglevels) positive(ev EventType) bool {
	return r.v != nil && ev != EventNone && EventType(*r.v)&ev == ev
}

func toEventType(x any) (EventType, bool) {
	switch tv := x.(type) {
	case EventType:
		return tv, true
	case int:
		if tv < 0 {
			return EventAll, true
		}
		if tv <= int(EventAll) {
			return EventType(tv), true
		}
	case uint16:
		return EventType(tv), true
	case string:
		if ev, err := ParseEventTypes(tv); err == nil {
			return ev, true
		}
	}
	return EventNone, false
}
