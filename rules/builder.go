// rules/builder.go
package rules

/*
 * Rule builder.
 *
 * Builder accumulates exactly one Condition and finalizes it into a Rule.
 *
 * Lifecycle:
 *   1. Construct with NewMatchAllBuilder (top-level) or NewMatchNoneBuilder
 *   2. Narrow the condition with And/Or/Not/When (mutates the receiver)
 *   3. Finalize with Then/ThenValue/ThenInContext
 *
 * Start condition: a top-level builder starts from "matches everything" so an
 * untouched builder matches every input. When hands its callback a builder
 * starting from "matches nothing" so an Or-chain begins from an empty
 * disjunction. The zero Builder behaves like NewMatchAllBuilder.
 *
 * Finalization snapshots the current condition value. Combinators applied to
 * the builder afterwards do not change Rules it already produced.
 *
 * Not negates the whole accumulated expression, not the last clause:
 *
 *	NewMatchAllBuilder[int, string]().And(a).Or(b).Not()  // !((true && a) || b)
 *
 * Builders are not safe for concurrent mutation.
 */

// Builder accumulates a Condition over T and builds Rules producing R.
type Builder[T, R any] struct {
	cond Condition[T]
}

// NewMatchAllBuilder returns a builder whose initial condition matches every input.
func NewMatchAllBuilder[T, R any]() *Builder[T, R] {
	return &Builder[T, R]{cond: Always[T]()}
}

// NewMatchNoneBuilder returns a builder whose initial condition matches no input.
func NewMatchNoneBuilder[T, R any]() *Builder[T, R] {
	return &Builder[T, R]{cond: Never[T]()}
}

// Condition returns the currently accumulated condition.
func (b *Builder[T, R]) Condition() Condition[T] {
	if b.cond == nil {
		return Always[T]()
	}
	return b.cond
}

// And replaces the condition with (current AND cond).
func (b *Builder[T, R]) And(cond Condition[T]) *Builder[T, R] {
	b.cond = b.Condition().And(cond)
	return b
}

// Or replaces the condition with (current OR cond).
func (b *Builder[T, R]) Or(cond Condition[T]) *Builder[T, R] {
	b.cond = b.Condition().Or(cond)
	return b
}

// Not negates the entire accumulated condition.
func (b *Builder[T, R]) Not() *Builder[T, R] {
	b.cond = b.Condition().Not()
	return b
}

// When builds a sub-expression on a fresh match-none builder and ANDs its
// final condition into b. It is the fluent form of b AND (x OR y ...):
//
//	rules.NewMatchAllBuilder[int, string]().
//		And(isEven).
//		When(func(sb *rules.Builder[int, string]) *rules.Builder[int, string] {
//			return sb.Or(rules.GreaterThan(10)).Or(rules.LessThan(0))
//		}).
//		ThenValue("hit")
func (b *Builder[T, R]) When(sub func(*Builder[T, R]) *Builder[T, R]) *Builder[T, R] {
	mustNotBeNil(sub == nil, "when", ErrNilSubBuilder)
	sb := sub(NewMatchNoneBuilder[T, R]())
	mustNotBeNil(sb == nil, "when", ErrNilSubBuilder)
	return b.And(sb.Condition())
}

// Then builds a Rule returning values when the condition holds.
//
// values is not copied: mutating its elements after the Rule is built is
// visible to later matches, and callers of Match share the backing array.
func (b *Builder[T, R]) Then(values []R) Rule[T, R] {
	return b.ThenInContext(func(T) []R { return values })
}

// ThenValue builds a Rule returning a one-element slice holding value when the
// condition holds. Every match returns a fresh slice.
func (b *Builder[T, R]) ThenValue(value R) Rule[T, R] {
	return b.ThenInContext(func(T) []R { return []R{value} })
}

// ThenInContext builds a Rule returning factory(input) when the condition
// holds. The factory is never called for non-matching inputs.
func (b *Builder[T, R]) ThenInContext(factory func(T) []R) Rule[T, R] {
	mustNotBeNil(factory == nil, "then in context", ErrNilValueFactory)
	return gate(b.Condition(), factory)
}
