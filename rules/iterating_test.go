// rules/iterating_test.go
package rules

import (
	"errors"
	"iter"
	"reflect"
	"slices"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// order is a fan-out fixture: an input carrying sub-items.
type order struct {
	ID    int
	Items []int
}

func items(o order) iter.Seq[int] { return slices.Values(o.Items) }

func TestForEachMatchingDo_FlattensInOrder(t *testing.T) {
	rule := ForEachMatchingDo(
		NewMatchAllIteratingBuilder[order, int](),
		items,
		func(n int) iter.Seq[int] { return slices.Values([]int{n, n * 10}) },
	)

	got := rule.Match(order{ID: 1, Items: []int{1, 2, 3}})
	want := []int{1, 10, 2, 20, 3, 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestForEachMatching_ThenReturn(t *testing.T) {
	rule := ForEachMatching(NewMatchAllIteratingBuilder[order, string](), items).
		ThenReturn(func(n int) iter.Seq[string] {
			return func(yield func(string) bool) {
				for i := 0; i < n; i++ {
					if !yield(strconv.Itoa(n)) {
						return
					}
				}
			}
		})

	got := rule.Match(order{Items: []int{0, 2, 1}})
	want := []string{"2", "2", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestForEachMatching_ThenReturnValues(t *testing.T) {
	rule := ForEachMatching(NewMatchAllIteratingBuilder[order, string](), items).
		ThenReturnValues([]string{"x", "y"})

	got := rule.Match(order{Items: []int{7, 8}})
	want := []string{"x", "y", "x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestForEachMatching_ThenReturnSingle(t *testing.T) {
	rule := ForEachMatching(NewMatchAllIteratingBuilder[order, string](), items).
		ThenReturnSingle(func(n int) string { return "item-" + strconv.Itoa(n) })

	got := rule.Match(order{Items: []int{3, 1}})
	want := []string{"item-3", "item-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}

	if got := rule.Match(order{}); len(got) != 0 {
		t.Errorf("Match(no items) = %v, want empty", got)
	}
}

func TestForEachMatching_GatesStreamFactory(t *testing.T) {
	streamCalls := 0
	supplierCalls := 0

	b := NewMatchAllIteratingBuilder[order, int]().
		And(Field(func(o order) int { return o.ID }, GreaterThan(100)))

	rule := ForEachMatching(b, func(o order) iter.Seq[int] {
		streamCalls++
		return slices.Values(o.Items)
	}).ThenReturnSingle(func(n int) int {
		supplierCalls++
		return n
	})

	if got := rule.Match(order{ID: 1, Items: []int{1, 2}}); len(got) != 0 {
		t.Errorf("Match(non-matching) = %v, want empty", got)
	}
	if streamCalls != 0 || supplierCalls != 0 {
		t.Fatalf("stream calls = %d, supplier calls = %d on non-matching input, want 0 and 0", streamCalls, supplierCalls)
	}

	if got := rule.Match(order{ID: 101, Items: []int{1, 2}}); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Match(matching) = %v, want [1 2]", got)
	}
	if streamCalls != 1 || supplierCalls != 2 {
		t.Errorf("stream calls = %d, supplier calls = %d, want 1 and 2", streamCalls, supplierCalls)
	}
}

func TestIteratingBuilder_CombinatorsKeepType(t *testing.T) {
	b := NewMatchAllIteratingBuilder[order, string]().
		And(func(o order) bool { return len(o.Items) > 0 }).
		When(func(sb *IteratingBuilder[order, string]) *IteratingBuilder[order, string] {
			return sb.Or(Field(func(o order) int { return o.ID }, LessThan(0))).
				Or(Field(func(o order) int { return o.ID }, GreaterThan(10)))
		}).
		Not().
		Not()

	rule := ForEachMatching(b, items).ThenReturnSingle(strconv.Itoa)

	tests := []struct {
		input order
		want  []string
	}{
		{order{ID: 11, Items: []int{5}}, []string{"5"}},
		{order{ID: -1, Items: []int{6, 7}}, []string{"6", "7"}},
		{order{ID: 5, Items: []int{5}}, nil},
		{order{ID: 11}, nil},
	}

	for _, tt := range tests {
		if got := rule.Match(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Match(%+v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIteratingBuilder_EmptyWhenNeverMatches(t *testing.T) {
	b := NewMatchAllIteratingBuilder[order, int]().
		When(func(sb *IteratingBuilder[order, int]) *IteratingBuilder[order, int] { return sb })

	rule := ForEachMatching(b, items).ThenReturnSingle(func(n int) int { return n })

	if got := rule.Match(order{Items: []int{1}}); len(got) != 0 {
		t.Errorf("Match() = %v, want empty", got)
	}
}

func TestIteratingBuilder_PlainThenStillAvailable(t *testing.T) {
	rule := NewMatchNoneIteratingBuilder[order, string]().
		Or(func(o order) bool { return o.ID == 1 }).
		ThenValue("one")

	if got := rule.Match(order{ID: 1}); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("Match(ID 1) = %v, want [one]", got)
	}
	if got := rule.Match(order{ID: 2}); len(got) != 0 {
		t.Errorf("Match(ID 2) = %v, want empty", got)
	}
}

func TestForEachMatching_NilArgumentsPanic(t *testing.T) {
	b := NewMatchAllIteratingBuilder[order, int]()

	tests := []struct {
		name    string
		fn      func()
		wantErr error
	}{
		{"stream factory", func() { ForEachMatching[order, int, int](b, nil) }, ErrNilStreamFactory},
		{"then return", func() { ForEachMatching(b, items).ThenReturn(nil) }, ErrNilValueSupplier},
		{"then return single", func() { ForEachMatching(b, items).ThenReturnSingle(nil) }, ErrNilValueSupplier},
		{"do stream factory", func() {
			ForEachMatchingDo[order, int, int](b, nil, func(int) iter.Seq[int] { return nil })
		}, ErrNilStreamFactory},
		{"when", func() { b.When(nil) }, ErrNilSubBuilder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(tt.fn)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("panic = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Property-based test: flattening preserves sub-item and supplier order
func TestForEachMatchingDo_PropertyFlattenOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	rule := ForEachMatchingDo(
		NewMatchAllIteratingBuilder[order, int](),
		items,
		func(n int) iter.Seq[int] { return slices.Values([]int{n, n * 10}) },
	)

	properties.Property("output is each item followed by its tenfold", prop.ForAll(
		func(in []int) bool {
			got := rule.Match(order{Items: in})
			if len(got) != 2*len(in) {
				return false
			}
			for i, n := range in {
				if got[2*i] != n || got[2*i+1] != n*10 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
