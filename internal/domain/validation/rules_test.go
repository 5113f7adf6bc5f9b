package validation

import (
	"strings"
	"testing"
)

type ruleCase struct {
	name     string
	value    any
	wantCode string // "" means the rule passes
}

func runRuleCases(t *testing.T, rule Rule, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rule(tc.value)
			switch {
			case tc.wantCode == "" && err != nil:
				t.Errorf("unexpected failure: %+v", *err)
			case tc.wantCode != "" && err == nil:
				t.Errorf("expected %s, got pass", tc.wantCode)
			case tc.wantCode != "" && err.Code != tc.wantCode:
				t.Errorf("code = %s, want %s", err.Code, tc.wantCode)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	runRuleCases(t, Required("Name"), []ruleCase{
		{"nil", nil, CodeRequired},
		{"empty", "", CodeRequired},
		{"blank", "  \t", CodeRequired},
		{"false", false, CodeRequired},
		{"zero", 0, CodeRequired},
		{"text", "Ada", ""},
		{"number", 5, ""},
		{"true", true, ""},
	})

	err := Required("Name")(nil)
	if err.Message != "Name is required" || err.Field != placeholderField {
		t.Errorf("error = %+v", *err)
	}
	if msg := Required()(nil).Message; msg != "This field is required" {
		t.Errorf("default message = %q", msg)
	}
}

func TestMinMaxLength(t *testing.T) {
	runRuleCases(t, MinLength(5, "Title"), []ruleCase{
		{"too short", "Hi", CodeMinLength},
		{"boundary", "Hello", ""},
		{"nil reads empty", nil, CodeMinLength},
	})
	runRuleCases(t, MaxLength(3, "Code"), []ruleCase{
		{"too long", "abcd", CodeMaxLength},
		{"boundary", "abc", ""},
		{"code points", "héé", ""},
	})
	runRuleCases(t, MinLength(3), []ruleCase{
		{"multibyte counts runes", "héé", ""},
	})

	if msg := MinLength(5, "Story title")("Hi").Message; msg != "Story title must be at least 5 characters" {
		t.Errorf("message = %q", msg)
	}
	if msg := MaxLength(3)("abcd").Message; msg != "This field must not exceed 3 characters" {
		t.Errorf("message = %q", msg)
	}
}

func TestMinMaxNumber(t *testing.T) {
	runRuleCases(t, MinNumber(1, "Quantity"), []ruleCase{
		{"below", 0, CodeMinValue},
		{"boundary", 1, ""},
		{"numeric string", "0.5", CodeMinValue},
		{"non numeric passes", "abc", ""},
	})
	runRuleCases(t, MaxNumber(10), []ruleCase{
		{"above", 11.5, CodeMaxValue},
		{"boundary", 10, ""},
	})

	if msg := MinNumber(1, "Quantity")(0).Message; msg != "Quantity must be at least 1" {
		t.Errorf("message = %q", msg)
	}
	if msg := MaxNumber(2.5)(3).Message; msg != "This value must not exceed 2.5" {
		t.Errorf("message = %q", msg)
	}
}

func TestMatch(t *testing.T) {
	runRuleCases(t, Match("Secret1x", "Passwords"), []ruleCase{
		{"equal", "Secret1x", ""},
		{"different", "secret1x", CodeNoMatch},
		{"missing", nil, CodeNoMatch},
	})
	if msg := Match("a", "Passwords")("b").Message; msg != "Passwords do not match" {
		t.Errorf("message = %q", msg)
	}
}

func TestEmail(t *testing.T) {
	runRuleCases(t, Email(), []ruleCase{
		{"empty", "", CodeRequired},
		{"nil", nil, CodeRequired},
		{"no at sign", "not-an-email", CodeInvalidEmail},
		{"no tld", "a@b", CodeInvalidEmail},
		{"whitespace", "a b@c.io", CodeInvalidEmail},
		{"short valid", "a@b.co", ""},
		{"typical", "jane@example.com", ""},
	})
}

func TestPassword(t *testing.T) {
	runRuleCases(t, Password(), []ruleCase{
		{"empty", "", CodeRequired},
		{"short", "Short1", CodeMinLength},
		{"no uppercase", "lowercase1", CodeNoUppercase},
		{"no digit", "Uppercase", CodeNoNumber},
		{"no symbol needed", "Orbit2024", ""},
	})
}

func TestUsername(t *testing.T) {
	runRuleCases(t, Username(), []ruleCase{
		{"empty", "", CodeRequired},
		{"short", "ab", CodeMinLength},
		{"long", strings.Repeat("a", 21), CodeMaxLength},
		{"max boundary", strings.Repeat("a", 20), ""},
		{"space", "bad name", CodeInvalidCharacters},
		{"valid", "orbit_fan-1", ""},
	})
}

func TestURL(t *testing.T) {
	runRuleCases(t, URL(), []ruleCase{
		{"empty", "", CodeRequired},
		{"https", "https://orbit.example.com/path?q=1", ""},
		{"mailto", "mailto:team@example.com", ""},
		{"relative", "not a url", CodeInvalidURL},
		{"missing host", "http://", CodeInvalidURL},
		{"parse error", "://bad", CodeInvalidURL},
	})
}

func TestPhone(t *testing.T) {
	runRuleCases(t, Phone(), []ruleCase{
		{"empty", "", CodeRequired},
		{"parens and dash", "(555) 123-4567", ""},
		{"dots", "555.123.4567", ""},
		{"plus prefix", "+5551234567", ""},
		{"spaces stripped", "555 123 456789", ""},
		{"too short", "12345", CodeInvalidPhone},
		{"letters", "555-ORBIT-01", CodeInvalidPhone},
	})
}
