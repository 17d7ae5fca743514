// rules/rule.go
package rules

// Rule maps an input to the output items it produces. A Rule is immutable once
// built; it is gated by the condition its builder held at finalization.
type Rule[T, R any] func(T) []R

// Match returns the output items for input, or an empty (nil) slice when the
// rule's condition does not hold. Panics raised by the rule's condition or
// value functions propagate to the caller.
func (r Rule[T, R]) Match(input T) []R {
	return r(input)
}

// gate builds the Rule underlying every terminal builder call: factory runs
// only when cond holds.
func gate[T, R any](cond Condition[T], factory func(T) []R) Rule[T, R] {
	return func(input T) []R {
		if !cond(input) {
			return nil
		}
		return factory(input)
	}
}
