package dtparse

/*
elem.go contains the tagged element type produced by the [Parser] and
consumed by its build methods, along with the bounded queue which
transports elements between the two.
*/

/*
ElementKind identifies the component held by an [Element].
*/
type ElementKind uint8

const (
	KindInvalid ElementKind = iota
	KindYear
	KindMonth
	KindDay
	KindHour
	KindMinute
	KindSecond
	KindNanosecond
	KindTimeshift
)

var kindNames = [...]string{
	KindInvalid:    "invalid",
	KindYear:       "year",
	KindMonth:      "month",
	KindDay:        "day",
	KindHour:       "hour",
	KindMinute:     "minute",
	KindSecond:     "second",
	KindNanosecond: "nanosecond",
	KindTimeshift:  "timeshift",
}

/*
String returns the lowercase name of the receiver instance.
*/
func (r ElementKind) String() string {
	if int(r) < len(kindNames) {
		return kindNames[r]
	}
	return kindNames[KindInvalid]
}

/*
Element is qualified by the closed set of parsed values:

  - [Year]
  - [Month]
  - [Day]
  - [Hour]
  - [Minute]
  - [Second]
  - [Nanosecond]
  - [Timeshift]

Instances of this interface are only ever created through the validating
constructors of the above types, or by a [Parser].
*/
type Element interface {
	Kind() ElementKind
	String() string
	isElement()
}

// maxElements is the element count of the richest composite,
// [PreciseShiftedDateTime].
const maxElements = 8

type queue struct {
	e       [maxElements]Element
	head, n int
}

func (r *queue) push(e Element) error {
	if r.head+r.n >= maxElements {
		return AssemblyError{Err: ErrQueueFull, Expected: e.Kind()}
	}
	r.e[r.head+r.n] = e
	r.n++
	return nil
}

func (r *queue) pop() (e Element, ok bool) {
	if r.n == 0 {
		return
	}
	e, ok = r.e[r.head], true
	r.e[r.head] = nil
	r.head++
	r.n--
	return
}

func (r *queue) reset() { *r = queue{} }

func (r *queue) len() int { return r.n }

func (r *queue) slice() []Element {
	out := make([]Element, r.n)
	copy(out, r.e[r.head:r.head+r.n])
	return out
}

/*
expect pops the front element of q and asserts it is of kind, holding
a value of type T. This is the only means by which build methods read
the queue.
*/
func expect[T Element](q *queue, kind ElementKind) (v T, err error) {
	e, ok := q.pop()
	if !ok {
		err = AssemblyError{Err: ErrInsufficientElements, Expected: kind}
		return
	}
	if v, ok = e.(T); !ok || e.Kind() != kind {
		err = AssemblyError{Err: ErrUnexpectedElement, Expected: kind, Got: e}
	}
	return
}
