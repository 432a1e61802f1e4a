package itemgen

import "fmt"

// Validator checks one generated item. Implementations must be stateless
// and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil when the item passes, or a ValidationError
	// describing the failure.
	Validate(it *Item, input GenerateInput) *ValidationError
}

// ValidationError describes why an item failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
