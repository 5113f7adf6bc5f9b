// Package validation evaluates ordered per-field rule chains against form data.
// Failures are returned as data, never as panics or Go errors.
package validation

import "fmt"

// Machine-readable failure codes.
const (
	CodeRequired          = "REQUIRED"
	CodeMinLength         = "MIN_LENGTH"
	CodeMaxLength         = "MAX_LENGTH"
	CodeInvalidEmail      = "INVALID_EMAIL"
	CodeNoUppercase       = "NO_UPPERCASE"
	CodeNoNumber          = "NO_NUMBER"
	CodeInvalidCharacters = "INVALID_CHARACTERS"
	CodeInvalidURL        = "INVALID_URL"
	CodeInvalidPhone      = "INVALID_PHONE"
	CodeMinValue          = "MIN_VALUE"
	CodeMaxValue          = "MAX_VALUE"
	CodeNoMatch           = "NO_MATCH"
)

// placeholderField marks errors produced by generic rules before Validate stamps the real field name.
const placeholderField = "field"

// Error is a single field failure.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Rule checks one raw field value. It returns nil when the value passes.
type Rule func(value any) *Error

// FieldRules is the rule chain for one field, evaluated in order.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Field builds a FieldRules entry.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Field: name, Rules: rules}
}

// Schema is an ordered set of field rule chains.
type Schema []FieldRules

// Fields returns the field names covered by the schema, in order.
func (s Schema) Fields() []string {
	names := make([]string, len(s))
	for i, fr := range s {
		names[i] = fr.Field
	}
	return names
}

// Result is the outcome of Validate.
type Result struct {
	errors []Error
}

// Valid reports whether no field failed.
func (r Result) Valid() bool { return len(r.errors) == 0 }

// Errors returns the collected failures in schema order.
func (r Result) Errors() []Error { return r.errors }

// Error returns the failure recorded for field, if any.
func (r Result) Error(field string) (Error, bool) {
	for _, e := range r.errors {
		if e.Field == field {
			return e, true
		}
	}
	return Error{}, false
}

// Validate runs every schema field's rules against data. Each field stops at
// its first failing rule; fields missing from the schema are never checked.
func Validate(data map[string]any, schema Schema) Result {
	var errs []Error
	for _, fr := range schema {
		value := data[fr.Field]
		for _, rule := range fr.Rules {
			e := rule(value)
			if e == nil {
				continue
			}
			stamped := *e
			stamped.Field = fr.Field
			errs = append(errs, stamped)
			break
		}
	}
	return Result{errors: errs}
}

// HasError reports whether errs contains a failure for field.
func HasError(errs []Error, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

// FieldError returns the message of the first failure for field, or "".
func FieldError(errs []Error, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
