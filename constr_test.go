package dtparse

import (
	"errors"
	"fmt"
	"testing"
)

/*
This example demonstrates a business rule expressed as a
[PropertyConstraint] and combined with a [BetweenConstraint] through
[Intersection].
*/
func ExampleIntersection() {
	lo, _ := ParseRFC3339Date("2023-01-01")
	hi, _ := ParseRFC3339Date("2023-12-31")

	notFirst := PropertyConstraint(func(d LocalDate) error {
		if d.Day().Int() == 1 {
			return errors.New("first of the month is reserved")
		}
		return nil
	})
	rule := Intersection(BetweenConstraint(lo, hi), notFirst)

	for _, s := range []string{"2023-09-17", "2023-09-01", "2024-09-17"} {
		_, err := ParseRFC3339Date(s, rule)
		fmt.Printf("%s: %v\n", s, err)
	}
	// Output:
	// 2023-09-17: <nil>
	// 2023-09-01: first of the month is reserved
	// 2024-09-17: 2024-09-17 is not in allowed range [2023-01-01, 2023-12-31]
}

func TestConstraintGroup(t *testing.T) {
	var calls []string
	mk := func(name string, fail bool) Constraint[int] {
		return func(int) error {
			calls = append(calls, name)
			if fail {
				return errors.New(name)
			}
			return nil
		}
	}

	group := ConstraintGroup[int]{mk("a", false), nil, mk("b", true), mk("c", false)}
	if err := group.Constrain(1); err == nil || err.Error() != "b" {
		t.Errorf("%s failed: want b, got %v", t.Name(), err)
	}
	if fmt.Sprint(calls) != "[a b]" {
		t.Errorf("%s failed: evaluation order %v", t.Name(), calls)
	}

	if err := (ConstraintGroup[int]{}).Constrain(1); err != nil {
		t.Errorf("%s failed: empty group: %v", t.Name(), err)
	}
}

func TestRangeConstraint(t *testing.T) {
	c := RangeConstraint(int64(1), int64(12))
	for idx, test := range []struct {
		v  int64
		ok bool
	}{
		{1, true}, {12, true}, {0, false}, {13, false},
	} {
		if err := c(test.v); (err == nil) != test.ok || (err != nil && !errors.Is(err, ErrOutOfRange)) {
			t.Errorf("%s[%d] failed: %d: %v", t.Name(), idx, test.v, err)
		}
	}

	if err := RangeConstraint("a", "c")("d"); err == nil {
		t.Errorf("%s failed: string range", t.Name())
	}
}

func TestUnion(t *testing.T) {
	even := PropertyConstraint(func(v int) error {
		if v%2 != 0 {
			return errors.New("odd")
		}
		return nil
	})
	small := RangeConstraint(0, 9)
	u := Union(even, small)

	for idx, test := range []struct {
		v  int
		ok bool
	}{
		{3, true}, {40, true}, {41, false},
	} {
		if err := u(test.v); (err == nil) != test.ok {
			t.Errorf("%s[%d] failed: %d: %v", t.Name(), idx, test.v, err)
		}
	}
	if err := u(41); err.Error() != "union failed all 2 constraints" {
		t.Errorf("%s failed: got %v", t.Name(), err)
	}
}

func TestLiftConstraint(t *testing.T) {
	noLeap := LiftConstraint(func(pt PreciseLocalTime) int { return pt.Second().Int() },
		RangeConstraint(0, 59))

	for idx, test := range []struct {
		in string
		ok bool
	}{
		{"23:59:59", true},
		{"23:59:60", false},
	} {
		if _, err := ParseRFC3339Time(test.in, noLeap); (err == nil) != test.ok {
			t.Errorf("%s[%d] failed: %s: %v", t.Name(), idx, test.in, err)
		}
	}
}
