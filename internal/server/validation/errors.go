// Package validation normalizes request bodies and checks them against
// declarative ozzo-validation rules. Every field is checked and all
// failures are reported together, in declaration order.
package validation

import (
	"encoding/json"
	"errors"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError names one offending field and the reason it was rejected.
type FieldError struct {
	Field   string
	Message string
}

// Errors is an ordered list of field failures. It renders to JSON as
// [{"<field>":"<message>"}, ...].
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e Errors) MarshalJSON() ([]byte, error) {
	out := make([]map[string]string, 0, len(e))
	for _, fe := range e {
		out = append(out, map[string]string{fe.Field: fe.Message})
	}
	return json.Marshal(out)
}

// FieldRules binds a field name and its value to the rules checked against it.
type FieldRules struct {
	name  string
	value any
	rules []ozzo.Rule
}

// Field declares the rules for one field. value is checked as-is, so
// pointer fields left nil pass every rule except ozzo.Required and
// ozzo.NotNil.
func Field(name string, value any, rules ...ozzo.Rule) *FieldRules {
	return &FieldRules{name: name, value: value, rules: rules}
}

// Check validates every field and returns Errors holding the first failure
// of each field, or nil. A rule that fails for a reason other than the value
// itself (ozzo.InternalError) is returned unwrapped.
func Check(fields ...*FieldRules) error {
	var errs Errors
	for _, f := range fields {
		err := ozzo.Validate(f.value, f.rules...)
		if err == nil {
			continue
		}
		var ie ozzo.InternalError
		if errors.As(err, &ie) {
			return ie
		}
		errs = append(errs, FieldError{Field: f.name, Message: message(err)})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func message(err error) string {
	var ve ozzo.Error
	if errors.As(err, &ve) {
		return ve.Message()
	}
	return err.Error()
}
