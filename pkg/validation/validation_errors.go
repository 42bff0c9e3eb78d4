package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation names one failed check: which field, which rule, and the rule's
// parameter (e.g. the length bound).
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (v Violation) String() string {
	if v.Param != "" {
		return fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param)
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Rule)
}

// ViolationError is the structured result of a failed validation.
type ViolationError struct {
	Violations []Violation
}

func (e *ViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Check validates s and returns nil or a *ViolationError listing every
// failed rule. Non-validation errors (e.g. a nil struct) are returned as is.
func Check(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	return &ViolationError{Violations: Violations(validationErrors)}
}

// Violations converts validator.ValidationErrors to Violation values.
func Violations(errs validator.ValidationErrors) []Violation {
	out := make([]Violation, 0, len(errs))
	for _, e := range errs {
		out = append(out, Violation{
			Field: e.Field(),
			Rule:  e.Tag(),
			Param: e.Param(),
		})
	}
	return out
}
