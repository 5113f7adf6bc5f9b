package orbitcore

import "github.com/orbit-connect/orbitcore/internal/domain/validation"

// ValidationError is one failed field: name, human message and machine code.
type ValidationError = validation.Error

// ValidationResult is the outcome of Validate.
type ValidationResult = validation.Result

// Rule checks one value and returns nil when it passes.
type Rule = validation.Rule

// FieldRules pairs a field name with its ordered rules.
type FieldRules = validation.FieldRules

// Schema is an ordered list of field rules.
type Schema = validation.Schema

// Error codes reported in ValidationError.Code.
const (
	CodeRequired          = validation.CodeRequired
	CodeMinLength         = validation.CodeMinLength
	CodeMaxLength         = validation.CodeMaxLength
	CodeInvalidEmail      = validation.CodeInvalidEmail
	CodeNoUppercase       = validation.CodeNoUppercase
	CodeNoNumber          = validation.CodeNoNumber
	CodeInvalidCharacters = validation.CodeInvalidCharacters
	CodeInvalidURL        = validation.CodeInvalidURL
	CodeInvalidPhone      = validation.CodeInvalidPhone
	CodeMinValue          = validation.CodeMinValue
	CodeMaxValue          = validation.CodeMaxValue
	CodeNoMatch           = validation.CodeNoMatch
)

// Field declares the rules for one field. The first failing rule wins.
func Field(name string, rules ...Rule) FieldRules { return validation.Field(name, rules...) }

// Validate runs schema against data. Missing keys are validated as nil.
func Validate(data map[string]any, schema Schema) ValidationResult {
	return validation.Validate(data, schema)
}

// HasError reports whether errs contains a failure for field.
func HasError(errs []ValidationError, field string) bool { return validation.HasError(errs, field) }

// FieldError returns the message of the first failure for field, or "".
func FieldError(errs []ValidationError, field string) string {
	return validation.FieldError(errs, field)
}

// Required fails on missing, false, zero or blank values.
func Required(name ...string) Rule { return validation.Required(name...) }

// MinLength fails below n characters.
func MinLength(n int, name ...string) Rule { return validation.MinLength(n, name...) }

// MaxLength fails above n characters.
func MaxLength(n int, name ...string) Rule { return validation.MaxLength(n, name...) }

// MinNumber fails when a numeric value is below n.
func MinNumber(n float64, name ...string) Rule { return validation.MinNumber(n, name...) }

// MaxNumber fails when a numeric value is above n.
func MaxNumber(n float64, name ...string) Rule { return validation.MaxNumber(n, name...) }

// Match fails when the value differs from compare.
func Match(compare string, name ...string) Rule { return validation.Match(compare, name...) }

// Email checks an address shape.
func Email() Rule { return validation.Email() }

// Password requires 8 characters with an uppercase letter and a digit.
func Password() Rule { return validation.Password() }

// Username requires 3 to 20 letters, digits, underscores or hyphens.
func Username() Rule { return validation.Username() }

// URL requires an absolute URL.
func URL() Rule { return validation.URL() }

// Phone checks a loose international phone number.
func Phone() Rule { return validation.Phone() }

// StorySubmissionSchema validates a community story.
func StorySubmissionSchema() Schema { return validation.StorySubmission() }

// CourseEnrollmentSchema validates a course sign-up.
func CourseEnrollmentSchema() Schema { return validation.CourseEnrollment() }

// UserSignUpSchema validates account creation.
func UserSignUpSchema() Schema { return validation.UserSignUp() }

// UserLoginSchema validates a login form.
func UserLoginSchema() Schema { return validation.UserLogin() }

// ContactFormSchema validates a contact message.
func ContactFormSchema() Schema { return validation.ContactForm() }

// LookupSchema returns a built-in schema by name, e.g. "contact-form".
func LookupSchema(name string) (Schema, bool) { return validation.Lookup(name) }

// SchemaNames lists the built-in schema names.
func SchemaNames() []string { return validation.Names() }
