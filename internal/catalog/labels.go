// internal/catalog/labels.go
package catalog

import (
	"iter"
	"slices"
	"strings"

	"github.com/solatis/rulebuilders/internal/types"
	"github.com/solatis/rulebuilders/rules"
)

/*
 * Customer labelling and selection rules.
 *
 * Labeler holds a fixed list of Rules over types.Customer and concatenates
 * their outputs in rule order:
 *   - ref:even / ref:odd (one builder finalized twice, negated in between)
 *   - entity:<code> per distinct legal entity code (iterating builder)
 *   - name:<last name> computed from the input (ThenInContext)
 *
 * Filter builds a selection Rule from CLI options. Legal entity alternatives
 * are grouped with When so they combine as range AND (e1 OR e2 ...).
 */

// Labeler computes labels for a customer from a fixed rule list.
type Labeler struct {
	rules []rules.Rule[types.Customer, string]
}

// NewLabeler builds the standard customer labelling rules.
func NewLabeler() *Labeler {
	parity := rules.NewMatchAllBuilder[types.Customer, string]().
		And(rules.Field(customerRef, isEven))
	even := parity.ThenValue("ref:even")
	odd := parity.Not().ThenValue("ref:odd")

	entities := rules.ForEachMatching(
		rules.NewMatchAllIteratingBuilder[types.Customer, string]().
			And(func(c types.Customer) bool { return len(c.LegalEntityCodes) > 0 }),
		distinctCodes,
	).ThenReturnSingle(func(code string) string { return "entity:" + code })

	name := rules.NewMatchAllBuilder[types.Customer, string]().
		And(rules.Field(customerLastName, rules.NotEqual(""))).
		ThenInContext(func(c types.Customer) []string {
			return []string{"name:" + strings.ToLower(c.LastName)}
		})

	return &Labeler{rules: []rules.Rule[types.Customer, string]{even, odd, entities, name}}
}

// Labels returns the labels every rule produces for c, in rule order.
func (l *Labeler) Labels(c types.Customer) []string {
	var out []string
	for _, r := range l.rules {
		out = append(out, r.Match(c)...)
	}
	return out
}

// FilterOptions select customers. Zero values leave a criterion unset.
type FilterOptions struct {
	MinRef          types.CustomerRef
	MaxRef          types.CustomerRef
	LegalEntities   []string // customer must carry at least one
	FirstNamePrefix string
	Invert          bool // negate the whole selection
}

// Filter builds a Rule returning its input customer when it satisfies opts.
func Filter(opts FilterOptions) rules.Rule[types.Customer, types.Customer] {
	b := rules.NewMatchAllBuilder[types.Customer, types.Customer]()

	if opts.MinRef > 0 {
		b.And(rules.Field(customerRef, rules.AtLeast(opts.MinRef)))
	}
	if opts.MaxRef > 0 {
		b.And(rules.Field(customerRef, rules.AtMost(opts.MaxRef)))
	}
	if opts.FirstNamePrefix != "" {
		b.And(rules.Field(customerFirstName, rules.HasPrefix(opts.FirstNamePrefix)))
	}
	if len(opts.LegalEntities) > 0 {
		entities := slices.Clone(opts.LegalEntities)
		b.When(func(sb *rules.Builder[types.Customer, types.Customer]) *rules.Builder[types.Customer, types.Customer] {
			for _, e := range entities {
				sb.Or(hasLegalEntity(e))
			}
			return sb
		})
	}
	if opts.Invert {
		b.Not()
	}

	return b.ThenInContext(func(c types.Customer) []types.Customer {
		return []types.Customer{c}
	})
}

// Select applies rule to each customer and collects the outputs in order.
func Select(customers []types.Customer, rule rules.Rule[types.Customer, types.Customer]) []types.Customer {
	var out []types.Customer
	for _, c := range customers {
		out = append(out, rule.Match(c)...)
	}
	return out
}

func customerRef(c types.Customer) types.CustomerRef { return c.ID }
func customerFirstName(c types.Customer) string       { return c.FirstName }
func customerLastName(c types.Customer) string        { return c.LastName }

func isEven(ref types.CustomerRef) bool { return ref%2 == 0 }

func hasLegalEntity(code string) rules.Condition[types.Customer] {
	return func(c types.Customer) bool {
		return slices.Contains(c.LegalEntityCodes, code)
	}
}

// distinctCodes yields each legal entity code once, in first-seen order.
func distinctCodes(c types.Customer) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{}, len(c.LegalEntityCodes))
		for _, code := range c.LegalEntityCodes {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			if !yield(code) {
				return
			}
		}
	}
}
