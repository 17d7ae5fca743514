// rules/predicates.go
package rules

import (
	"cmp"
	"slices"
	"strings"
)

/*
 * Predicate constructors.
 *
 * Ready-made Conditions for the comparisons rules are usually built from.
 * Each constructor captures its operand by value at construction time.
 *
 * Operators:
 *   - Equal/NotEqual: comparable equality
 *   - GreaterThan/AtLeast/LessThan/AtMost/Between: cmp.Ordered comparison
 *   - OneOf: membership with equality semantics
 *   - HasPrefix/HasSuffix: string prefix/suffix matching
 *
 * Field lifts a Condition over a projected value of the input, so
 * Field(Customer.Ref, GreaterThan(10)) tests the ref of a customer.
 */

// Equal matches inputs equal to want.
func Equal[T comparable](want T) Condition[T] {
	return func(v T) bool { return v == want }
}

// NotEqual matches inputs different from want.
func NotEqual[T comparable](want T) Condition[T] {
	return func(v T) bool { return v != want }
}

// GreaterThan matches inputs strictly greater than bound.
func GreaterThan[T cmp.Ordered](bound T) Condition[T] {
	return func(v T) bool { return cmp.Compare(v, bound) > 0 }
}

// AtLeast matches inputs greater than or equal to bound.
func AtLeast[T cmp.Ordered](bound T) Condition[T] {
	return func(v T) bool { return cmp.Compare(v, bound) >= 0 }
}

// LessThan matches inputs strictly less than bound.
func LessThan[T cmp.Ordered](bound T) Condition[T] {
	return func(v T) bool { return cmp.Compare(v, bound) < 0 }
}

// AtMost matches inputs less than or equal to bound.
func AtMost[T cmp.Ordered](bound T) Condition[T] {
	return func(v T) bool { return cmp.Compare(v, bound) <= 0 }
}

// Between matches inputs in the closed range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Condition[T] {
	return func(v T) bool {
		return cmp.Compare(v, lo) >= 0 && cmp.Compare(v, hi) <= 0
	}
}

// OneOf matches inputs equal to any of values. The values are copied.
func OneOf[T comparable](values ...T) Condition[T] {
	set := slices.Clone(values)
	return func(v T) bool { return slices.Contains(set, v) }
}

// HasPrefix matches strings starting with prefix.
func HasPrefix(prefix string) Condition[string] {
	return func(v string) bool { return strings.HasPrefix(v, prefix) }
}

// HasSuffix matches strings ending with suffix.
func HasSuffix(suffix string) Condition[string] {
	return func(v string) bool { return strings.HasSuffix(v, suffix) }
}

// Field tests cond against the value get extracts from the input.
func Field[T, F any](get func(T) F, cond Condition[F]) Condition[T] {
	mustNotBeNil(get == nil, "field", ErrNilFieldAccessor)
	mustNotBeNil(cond == nil, "field", ErrNilCondition)
	return func(v T) bool { return cond(get(v)) }
}
