package render

import "fmt"

// UnsupportedFeatureError reports a rendered expression that a database
// cannot accept as a single statement, such as one that binds more
// parameters than the dialect allows.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// NewParamLimitError reports a bind argument count above the dialect limit.
// Wide IN lists are the usual cause.
func NewParamLimitError(dialect string, got, limit int) error {
	return UnsupportedFeatureError{
		Feature: fmt.Sprintf("%d bind parameters", got),
		Dialect: dialect,
		Hint:    fmt.Sprintf("at most %d are allowed per statement; split the IN list", limit),
	}
}
