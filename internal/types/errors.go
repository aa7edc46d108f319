package types

import (
	"errors"
	"fmt"
)

// ErrEmptyCondition is returned when a condition literal filters to nothing.
var ErrEmptyCondition = errors.New("condition is empty after filtering")

// InvalidConditionError indicates a condition literal with an unrecognized
// or malformed shape.
type InvalidConditionError struct {
	Reason string
}

func (e InvalidConditionError) Error() string {
	return "invalid condition: " + e.Reason
}

// NewInvalidConditionError creates an invalid condition error with a formatted reason.
func NewInvalidConditionError(format string, args ...any) error {
	return InvalidConditionError{Reason: fmt.Sprintf(format, args...)}
}

// ArityError indicates the wrong number of operands for an operator.
type ArityError struct {
	Operator string
	Want     string
	Got      int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("operator '%s' requires %s, got %d", e.Operator, e.Want, e.Got)
}

// UnsupportedOperatorError indicates an operator outside the vocabulary.
type UnsupportedOperatorError struct {
	Operator string
}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator: %s", e.Operator)
}

// UnsupportedValueError indicates an operator/value combination that is not implemented.
type UnsupportedValueError struct {
	Value    any
	Operator string
	Hint     string
}

func (e UnsupportedValueError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("operator '%s' does not support value %v: %s", e.Operator, e.Value, e.Hint)
	}
	return fmt.Sprintf("operator '%s' does not support value %v", e.Operator, e.Value)
}
