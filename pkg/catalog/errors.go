package catalog

import "fmt"

// AttributeError represents a single attribute validation failure.
type AttributeError struct {
	Kind   string // Node kind being constructed
	Name   string // Attribute name
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *AttributeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: attribute %q: %s", e.Kind, e.Name, e.Reason)
	}
	return fmt.Sprintf("%s: attribute %q: %s (got %T)", e.Kind, e.Name, e.Reason, e.Value)
}

// AggregateError collects multiple attribute validation failures from one
// construction call.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d attribute errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// AttributeErrors returns all attribute errors if err is an AggregateError.
// Otherwise returns nil.
func AttributeErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
