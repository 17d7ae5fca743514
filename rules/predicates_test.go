// rules/predicates_test.go
package rules

import (
	"errors"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		cond  Condition[int]
		input int
		want  bool
	}{
		{"equal hit", Equal(5), 5, true},
		{"equal miss", Equal(5), 6, false},
		{"not equal", NotEqual(5), 6, true},
		{"greater than boundary", GreaterThan(10), 10, false},
		{"greater than", GreaterThan(10), 11, true},
		{"at least boundary", AtLeast(10), 10, true},
		{"less than boundary", LessThan(0), 0, false},
		{"less than", LessThan(0), -1, true},
		{"at most boundary", AtMost(0), 0, true},
		{"between low", Between(1, 3), 1, true},
		{"between high", Between(1, 3), 3, true},
		{"between outside", Between(1, 3), 4, false},
		{"one of hit", OneOf(2, 4, 8), 4, true},
		{"one of miss", OneOf(2, 4, 8), 3, false},
		{"one of empty", OneOf[int](), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Test(tt.input); got != tt.want {
				t.Errorf("Test(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPredicates_Strings(t *testing.T) {
	tests := []struct {
		name  string
		cond  Condition[string]
		input string
		want  bool
	}{
		{"prefix", HasPrefix("ABC/"), "ABC/R1000000", true},
		{"prefix miss", HasPrefix("ABC/"), "XYZ/R1", false},
		{"suffix", HasSuffix(".json"), "rules.json", true},
		{"suffix miss", HasSuffix(".json"), "rules.yaml", false},
		{"ordered strings", GreaterThan("m"), "z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Test(tt.input); got != tt.want {
				t.Errorf("Test(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOneOf_CopiesValues(t *testing.T) {
	values := []int{1, 2}
	cond := OneOf(values...)
	values[0] = 9

	if !cond.Test(1) {
		t.Errorf("Test(1) = false after caller mutation, want true")
	}
}

func TestField(t *testing.T) {
	type customer struct {
		Ref  int
		Name string
	}

	cond := Field(func(c customer) int { return c.Ref }, Between(1000000, 1000010)).
		And(Field(func(c customer) string { return c.Name }, HasPrefix("ABC")))

	if !cond.Test(customer{Ref: 1000001, Name: "ABC/R1000001"}) {
		t.Errorf("Test(in range, ABC) = false, want true")
	}
	if cond.Test(customer{Ref: 1000011, Name: "ABC/R1000011"}) {
		t.Errorf("Test(out of range) = true, want false")
	}

	err := recoverError(func() { Field[customer, int](nil, Equal(1)) })
	if !errors.Is(err, ErrNilFieldAccessor) {
		t.Errorf("panic = %v, want ErrNilFieldAccessor", err)
	}
}
