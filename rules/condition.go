// rules/condition.go
package rules

/*
 * Condition algebra.
 *
 * A Condition is a single-argument boolean predicate. And/Or/Not return a new
 * Condition wrapping the receiver; nothing is mutated in place, so a Condition
 * captured by a Rule stays fixed.
 *
 * Short-circuit semantics:
 *   - And: right-hand side evaluated only when the left-hand side is true
 *   - Or: right-hand side evaluated only when the left-hand side is false
 *
 * Composition is strictly left-to-right in call order. There is no operator
 * precedence: p.And(q).Or(r) is (p AND q) OR r, and Not negates everything
 * accumulated so far.
 */

// Condition is a boolean-valued function of the input.
type Condition[T any] func(T) bool

// Always returns a Condition matching every input (neutral element for And).
func Always[T any]() Condition[T] {
	return func(T) bool { return true }
}

// Never returns a Condition matching no input (neutral element for Or).
func Never[T any]() Condition[T] {
	return func(T) bool { return false }
}

// Test reports whether v satisfies the condition.
func (c Condition[T]) Test(v T) bool {
	return c(v)
}

// And returns c AND other, short-circuiting on a false c.
func (c Condition[T]) And(other Condition[T]) Condition[T] {
	mustNotBeNil(other == nil, "and", ErrNilCondition)
	return func(v T) bool {
		return c(v) && other(v)
	}
}

// Or returns c OR other, short-circuiting on a true c.
func (c Condition[T]) Or(other Condition[T]) Condition[T] {
	mustNotBeNil(other == nil, "or", ErrNilCondition)
	return func(v T) bool {
		return c(v) || other(v)
	}
}

// Not returns the negation of c.
func (c Condition[T]) Not() Condition[T] {
	return func(v T) bool {
		return !c(v)
	}
}
