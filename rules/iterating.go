// rules/iterating.go
package rules

import (
	"iter"
	"slices"
)

/*
 * Iterating rule builder.
 *
 * Fans one input out into a lazy sequence of sub-items, produces outputs per
 * sub-item and flattens them into the Rule's result.
 *
 * Two-stage DSL:
 *   1. ForEachMatching(b, streamFactory) -> PartialMatcher
 *   2. PartialMatcher.ThenReturn/ThenReturnValues/ThenReturnSingle -> Rule
 *
 * Go methods cannot declare type parameters, so the sub-item type U is bound
 * by the package functions ForEachMatching and ForEachMatchingDo rather than
 * by methods on IteratingBuilder.
 *
 * Ordering: outputs follow sub-item iteration order, and within a sub-item the
 * order its supplier yields. The stream factory runs only for inputs matching
 * the builder's condition; the sequence is fully consumed by Match.
 */

// IteratingBuilder is a Builder whose Rules can fan out over sub-items.
// Its combinators return *IteratingBuilder so chains keep access to
// ForEachMatching.
type IteratingBuilder[T, R any] struct {
	Builder[T, R]
}

// NewMatchAllIteratingBuilder returns an iterating builder matching every input.
func NewMatchAllIteratingBuilder[T, R any]() *IteratingBuilder[T, R] {
	return &IteratingBuilder[T, R]{Builder: Builder[T, R]{cond: Always[T]()}}
}

// NewMatchNoneIteratingBuilder returns an iterating builder matching no input.
func NewMatchNoneIteratingBuilder[T, R any]() *IteratingBuilder[T, R] {
	return &IteratingBuilder[T, R]{Builder: Builder[T, R]{cond: Never[T]()}}
}

// And replaces the condition with (current AND cond).
func (b *IteratingBuilder[T, R]) And(cond Condition[T]) *IteratingBuilder[T, R] {
	b.Builder.And(cond)
	return b
}

// Or replaces the condition with (current OR cond).
func (b *IteratingBuilder[T, R]) Or(cond Condition[T]) *IteratingBuilder[T, R] {
	b.Builder.Or(cond)
	return b
}

// Not negates the entire accumulated condition.
func (b *IteratingBuilder[T, R]) Not() *IteratingBuilder[T, R] {
	b.Builder.Not()
	return b
}

// When builds a sub-expression on a fresh match-none iterating builder and
// ANDs its final condition into b.
func (b *IteratingBuilder[T, R]) When(sub func(*IteratingBuilder[T, R]) *IteratingBuilder[T, R]) *IteratingBuilder[T, R] {
	mustNotBeNil(sub == nil, "when", ErrNilSubBuilder)
	sb := sub(NewMatchNoneIteratingBuilder[T, R]())
	mustNotBeNil(sb == nil, "when", ErrNilSubBuilder)
	return b.And(sb.Condition())
}

// PartialMatcher holds the first stage of ForEachMatching. Its only
// operations complete the Rule.
type PartialMatcher[T, R, U any] struct {
	builder       *IteratingBuilder[T, R]
	streamFactory func(T) iter.Seq[U]
}

// ForEachMatching starts a fan-out Rule: streamFactory derives the sub-items of
// a matching input. Complete it with one of the PartialMatcher methods.
func ForEachMatching[T, R, U any](b *IteratingBuilder[T, R], streamFactory func(T) iter.Seq[U]) PartialMatcher[T, R, U] {
	mustNotBeNil(streamFactory == nil, "for each matching", ErrNilStreamFactory)
	return PartialMatcher[T, R, U]{builder: b, streamFactory: streamFactory}
}

// ThenReturn completes the Rule: each sub-item yields zero or more outputs.
func (p PartialMatcher[T, R, U]) ThenReturn(valueSupplier func(U) iter.Seq[R]) Rule[T, R] {
	return ForEachMatchingDo(p.builder, p.streamFactory, valueSupplier)
}

// ThenReturnValues completes the Rule: every sub-item contributes values.
// values is not copied.
func (p PartialMatcher[T, R, U]) ThenReturnValues(values []R) Rule[T, R] {
	return p.ThenReturn(func(U) iter.Seq[R] { return slices.Values(values) })
}

// ThenReturnSingle completes the Rule: each sub-item maps to exactly one output.
func (p PartialMatcher[T, R, U]) ThenReturnSingle(valueSupplier func(U) R) Rule[T, R] {
	mustNotBeNil(valueSupplier == nil, "then return single", ErrNilValueSupplier)
	return p.ThenReturn(func(u U) iter.Seq[R] {
		return func(yield func(R) bool) {
			yield(valueSupplier(u))
		}
	})
}

// ForEachMatchingDo builds a Rule that, for a matching input, derives its
// sub-items with streamFactory, applies valueSupplier to each and flattens the
// results in order.
func ForEachMatchingDo[T, R, U any](b *IteratingBuilder[T, R], streamFactory func(T) iter.Seq[U], valueSupplier func(U) iter.Seq[R]) Rule[T, R] {
	mustNotBeNil(streamFactory == nil, "for each matching", ErrNilStreamFactory)
	mustNotBeNil(valueSupplier == nil, "then return", ErrNilValueSupplier)
	return b.ThenInContext(func(input T) []R {
		var out []R
		for u := range streamFactory(input) {
			out = slices.AppendSeq(out, valueSupplier(u))
		}
		return out
	})
}
