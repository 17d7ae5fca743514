// Package rules composes predicates into Rules: functions from an input to the
// output items it produces when a boolean Condition holds.
//
// A Rule is built fluently and then held and invoked by the caller:
//
//	isEven := func(n int) bool { return n%2 == 0 }
//
//	rule := rules.NewMatchAllBuilder[int, string]().
//		And(isEven).
//		When(func(sb *rules.Builder[int, string]) *rules.Builder[int, string] {
//			return sb.Or(rules.GreaterThan(10)).Or(rules.LessThan(0))
//		}).
//		ThenValue("even and out of range")
//
//	rule.Match(12) // ["even and out of range"]
//	rule.Match(4)  // []
//
// The package performs no locking, logging or validation beyond rejecting nil
// functions at build time.
package rules
