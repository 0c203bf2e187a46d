package types

import "fmt"

// InsufficientInputError reports bad or missing required input. It is never
// retried internally; callers see it immediately.
type InsufficientInputError struct {
	Field  string
	Reason string
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("insufficient input: %s: %s", e.Field, e.Reason)
}

// InvalidStateError reports an orchestrator call made out of order
type InvalidStateError struct {
	Current   string
	Requested string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s while in state %q", e.Requested, e.Current)
}
