package catalog

import (
	"fmt"

	"github.com/cardwright/cardwright/pkg/domain"
)

// Type defines the contract for attribute validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g. "string").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// NumberType validates numeric values. Card attributes do not distinguish
// integer from float, so both are accepted.
type NumberType struct{}

func (t *NumberType) Name() string { return "number" }

func (t *NumberType) Validate(value any) error {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

// NodeType validates nested node references, which serialize as embedded
// sub-documents.
type NodeType struct{}

func (t *NodeType) Name() string { return "node" }

func (t *NodeType) Validate(value any) error {
	if _, ok := value.(*domain.Node); !ok {
		return fmt.Errorf("expected *domain.Node, got %T", value)
	}
	return nil
}

// StringListType validates lists of strings. Both []string and []any holding
// only strings are accepted, the latter for values decoded from YAML/JSON.
type StringListType struct{}

func (t *StringListType) Name() string { return "[string]" }

func (t *StringListType) Validate(value any) error {
	switch v := value.(type) {
	case []string:
		return nil
	case []any:
		for i, elem := range v {
			if _, ok := elem.(string); !ok {
				return fmt.Errorf("element %d: expected string, got %T", i, elem)
			}
		}
		return nil
	default:
		return fmt.Errorf("expected string list, got %T", value)
	}
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Number creates a numeric type validator.
func Number() Type { return &NumberType{} }

// NodeRef creates a nested-node type validator.
func NodeRef() Type { return &NodeType{} }

// StringList creates a string-list type validator.
func StringList() Type { return &StringListType{} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}
