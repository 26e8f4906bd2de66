package dtparse

/*
constr.go contains constraint and constraint group components which
serve to restrict the values accepted by the convenience parsers and
to enforce the closed ranges of component values.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
Ordinal is qualified by any type which can be compared against another
instance of the same type, such as the composite date and time types.
*/
type Ordinal[T any] interface {
	Compare(T) int
	String() string
}

/*
BetweenConstraint returns an instance of [Constraint] that checks whether
a value lies within the closed interval [min, max].
*/
func BetweenConstraint[T Ordinal[T]](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val.Compare(min) < 0 || val.Compare(max) > 0 {
			err = mkerr(val.String() + " is not in allowed range [" +
				min.String() + ", " + max.String() + "]")
		}
		return
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = ErrOutOfRange
		}
		return
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined check
function. That function should return nil if the property is satisfied or
an error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied.
*/
func Union[T any](cs ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(cs) && !passed; i++ {
			passed = cs[i](x) == nil
		}

		if !passed {
			err = mkerr("union failed all " + itoa(len(cs)) + " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied.
*/
func Intersection[T any](cs ...Constraint[T]) Constraint[T] {
	return ConstraintGroup[T](cs).Constrain
}
