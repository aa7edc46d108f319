package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "invalid condition",
			err:      NewInvalidConditionError("got %T", 3.5),
			expected: "invalid condition: got float64",
		},
		{
			name:     "arity",
			err:      ArityError{Operator: "BETWEEN", Want: "3 operands", Got: 1},
			expected: "operator 'BETWEEN' requires 3 operands, got 1",
		},
		{
			name:     "unsupported operator",
			err:      UnsupportedOperatorError{Operator: "XOR"},
			expected: "unsupported operator: XOR",
		},
		{
			name:     "unsupported value without hint",
			err:      UnsupportedValueError{Operator: ">", Value: nil},
			expected: "operator '>' does not support value <nil>",
		},
		{
			name:     "unsupported value with hint",
			err:      UnsupportedValueError{Operator: "IS", Value: 5, Hint: "only NULL"},
			expected: "operator 'IS' does not support value 5: only NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("hash key 'age': %w", ArityError{Operator: "IN", Want: "2 operands", Got: 3})

	var arity ArityError
	if !errors.As(wrapped, &arity) {
		t.Fatal("expected ArityError through wrapping")
	}
	if arity.Got != 3 {
		t.Errorf("Got = %d, want 3", arity.Got)
	}

	var invalid InvalidConditionError
	if errors.As(wrapped, &invalid) {
		t.Error("ArityError must not match InvalidConditionError")
	}
}
