package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phoneRegex    = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

// Generic subject names used when a rule is built without one.
const (
	defaultFieldName = "This field"
	defaultValueName = "This value"
	defaultMatchName = "Fields"
)

// Length bounds for built-in rules.
const (
	usernameMinLength = 3
	usernameMaxLength = 20
	passwordMinLength = 8
)

// hierarchicalSchemes need a host to be a usable URL.
var hierarchicalSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true, "ws": true, "wss": true,
}

func fail(field, message, code string) *Error {
	return &Error{Field: field, Message: message, Code: code}
}

func subject(name []string, fallback string) string {
	if len(name) > 0 && name[0] != "" {
		return name[0]
	}
	return fallback
}

// Required fails on nil, false, zero, or strings that are blank after trimming.
func Required(name ...string) Rule {
	n := subject(name, defaultFieldName)
	return func(v any) *Error {
		if isFalsy(v) {
			return fail(placeholderField, n+" is required", CodeRequired)
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return fail(placeholderField, n+" is required", CodeRequired)
		}
		return nil
	}
}

// MinLength fails when the value has fewer than minLen characters.
func MinLength(minLen int, name ...string) Rule {
	n := subject(name, defaultFieldName)
	return func(v any) *Error {
		if length(v) < minLen {
			return fail(placeholderField, fmt.Sprintf("%s must be at least %d characters", n, minLen), CodeMinLength)
		}
		return nil
	}
}

// MaxLength fails when the value has more than maxLen characters.
func MaxLength(maxLen int, name ...string) Rule {
	n := subject(name, defaultFieldName)
	return func(v any) *Error {
		if length(v) > maxLen {
			return fail(placeholderField, fmt.Sprintf("%s must not exceed %d characters", n, maxLen), CodeMaxLength)
		}
		return nil
	}
}

// MinNumber fails when the numeric value is below minValue. Non-numeric values pass.
func MinNumber(minValue float64, name ...string) Rule {
	n := subject(name, defaultValueName)
	return func(v any) *Error {
		if x, ok := number(v); ok && x < minValue {
			return fail(placeholderField, fmt.Sprintf("%s must be at least %s", n, formatNumber(minValue)), CodeMinValue)
		}
		return nil
	}
}

// MaxNumber fails when the numeric value is above maxValue. Non-numeric values pass.
func MaxNumber(maxValue float64, name ...string) Rule {
	n := subject(name, defaultValueName)
	return func(v any) *Error {
		if x, ok := number(v); ok && x > maxValue {
			return fail(placeholderField, fmt.Sprintf("%s must not exceed %s", n, formatNumber(maxValue)), CodeMaxValue)
		}
		return nil
	}
}

// Match fails when the value differs from compare.
func Match(compare string, name ...string) Rule {
	n := subject(name, defaultMatchName)
	return func(v any) *Error {
		if text(v) != compare {
			return fail(placeholderField, n+" do not match", CodeNoMatch)
		}
		return nil
	}
}

// Email requires a local@domain.tld shaped value.
func Email() Rule {
	return func(v any) *Error {
		s := text(v)
		if s == "" {
			return fail("email", "Email is required", CodeRequired)
		}
		if !emailRegex.MatchString(s) {
			return fail("email", "Please enter a valid email address", CodeInvalidEmail)
		}
		return nil
	}
}

// Password requires 8+ characters with an uppercase letter and a digit.
func Password() Rule {
	return func(v any) *Error {
		s := text(v)
		switch {
		case s == "":
			return fail("password", "Password is required", CodeRequired)
		case utf8.RuneCountInString(s) < passwordMinLength:
			return fail("password", "Password must be at least 8 characters", CodeMinLength)
		case !upperRegex.MatchString(s):
			return fail("password", "Password must contain at least one uppercase letter", CodeNoUppercase)
		case !digitRegex.MatchString(s):
			return fail("password", "Password must contain at least one number", CodeNoNumber)
		}
		return nil
	}
}

// Username requires 3-20 characters from [a-zA-Z0-9_-].
func Username() Rule {
	return func(v any) *Error {
		s := text(v)
		n := utf8.RuneCountInString(s)
		switch {
		case s == "":
			return fail("username", "Username is required", CodeRequired)
		case n < usernameMinLength:
			return fail("username", "Username must be at least 3 characters", CodeMinLength)
		case n > usernameMaxLength:
			return fail("username", "Username must not exceed 20 characters", CodeMaxLength)
		case !usernameRegex.MatchString(s):
			return fail("username",
				"Username can only contain letters, numbers, underscores, and hyphens", CodeInvalidCharacters)
		}
		return nil
	}
}

// URL requires an absolute URL with a scheme.
func URL() Rule {
	return func(v any) *Error {
		s := text(v)
		if s == "" {
			return fail("url", "URL is required", CodeRequired)
		}
		if !isAbsoluteURL(s) {
			return fail("url", "Please enter a valid URL", CodeInvalidURL)
		}
		return nil
	}
}

// Phone accepts loose international numbers once whitespace is removed.
func Phone() Rule {
	return func(v any) *Error {
		s := text(v)
		if s == "" {
			return fail("phone", "Phone number is required", CodeRequired)
		}
		if !phoneRegex.MatchString(stripSpace(s)) {
			return fail("phone", "Please enter a valid phone number", CodeInvalidPhone)
		}
		return nil
	}
}
