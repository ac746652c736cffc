package validation_test

import (
	"testing"

	"github.com/km-arc/go-injector/framework/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

// pass asserts the validator passes for the given data/rules.
func pass(t *testing.T, label string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Fails() {
			t.Errorf("expected PASS, got FAIL, errors: %+v", v.Errors().Bag)
		}
	})
}

// fail asserts the validator fails with an error on the given field.
func fail(t *testing.T, label, field string, data map[string]string, rules validation.Rules) {
	t.Helper()
	t.Run(label, func(t *testing.T) {
		v := validation.Make(data, rules)
		if v.Passes() {
			t.Errorf("expected FAIL on field %q, but validator PASSED", field)
		}
		if v.Errors().First(field) == "" {
			t.Errorf("expected error on field %q, but none found. Errors: %+v", field, v.Errors().Bag)
		}
	})
}

// ── required ─────────────────────────────────────────────────────────────────

func TestValidation_Required(t *testing.T) {
	r := validation.Rules{"APP_NAME": "required"}

	pass(t, "non-empty value", map[string]string{"APP_NAME": "demo"}, r)
	fail(t, "empty string", "APP_NAME", map[string]string{"APP_NAME": ""}, r)
	fail(t, "whitespace only", "APP_NAME", map[string]string{"APP_NAME": "   "}, r)
	fail(t, "missing key", "APP_NAME", map[string]string{}, r)
}

func TestValidation_Required_MessageFormat(t *testing.T) {
	v := validation.Make(map[string]string{"name": ""}, validation.Rules{"name": "required"})
	_ = v.Fails()
	if got, want := v.Errors().First("name"), "The name field is required."; got != want {
		t.Errorf("message: got %q want %q", got, want)
	}
}

// ── numeric / integer / boolean ───────────────────────────────────────────────

func TestValidation_Numeric(t *testing.T) {
	r := validation.Rules{"amount": "numeric"}

	pass(t, "integer", map[string]string{"amount": "42"}, r)
	pass(t, "float", map[string]string{"amount": "3.14"}, r)
	fail(t, "string", "amount", map[string]string{"amount": "abc"}, r)
}

func TestValidation_Integer(t *testing.T) {
	r := validation.Rules{"count": "integer"}

	pass(t, "positive int", map[string]string{"count": "10"}, r)
	pass(t, "negative int", map[string]string{"count": "-3"}, r)
	fail(t, "float", "count", map[string]string{"count": "3.14"}, r)
	fail(t, "string", "count", map[string]string{"count": "abc"}, r)
}

func TestValidation_Boolean(t *testing.T) {
	r := validation.Rules{"APP_DEBUG": "boolean"}

	for _, v := range []string{"true", "false", "1", "0", "True", "FALSE"} {
		pass(t, "boolean "+v, map[string]string{"APP_DEBUG": v}, r)
	}
	fail(t, "invalid bool", "APP_DEBUG", map[string]string{"APP_DEBUG": "maybe"}, r)
}

// ── min / max / range ─────────────────────────────────────────────────────────

func TestValidation_MinMax(t *testing.T) {
	r := validation.Rules{"name": "min:2|max:5"}

	pass(t, "lower boundary", map[string]string{"name": "ab"}, r)
	pass(t, "upper boundary", map[string]string{"name": "abcde"}, r)
	pass(t, "unicode rune count", map[string]string{"name": "日本語"}, r)
	fail(t, "too short", "name", map[string]string{"name": "a"}, r)
	fail(t, "too long", "name", map[string]string{"name": "abcdef"}, r)
}

func TestValidation_Range(t *testing.T) {
	r := validation.Rules{"APP_PORT": "range:1,65535"}

	pass(t, "min boundary", map[string]string{"APP_PORT": "1"}, r)
	pass(t, "max boundary", map[string]string{"APP_PORT": "65535"}, r)
	fail(t, "zero", "APP_PORT", map[string]string{"APP_PORT": "0"}, r)
	fail(t, "too large", "APP_PORT", map[string]string{"APP_PORT": "70000"}, r)
	fail(t, "not a number", "APP_PORT", map[string]string{"APP_PORT": "http"}, r)
}

// ── in ───────────────────────────────────────────────────────────────────────

func TestValidation_In(t *testing.T) {
	r := validation.Rules{"LOG_LEVEL": "in:debug, info,warn"}

	pass(t, "debug", map[string]string{"LOG_LEVEL": "debug"}, r)
	pass(t, "trimmed option", map[string]string{"LOG_LEVEL": "info"}, r)
	fail(t, "not in list", "LOG_LEVEL", map[string]string{"LOG_LEVEL": "trace"}, r)
	fail(t, "empty not in list", "LOG_LEVEL", map[string]string{"LOG_LEVEL": ""}, r)
}

// ── bail / error string ──────────────────────────────────────────────────────

func TestValidation_StopsAtFirstFailurePerField(t *testing.T) {
	v := validation.Make(map[string]string{"APP_PORT": ""}, validation.Rules{"APP_PORT": "required|integer|range:1,10"})
	if !v.Fails() {
		t.Fatal("expected failure")
	}
	if n := len(v.Errors().Bag["APP_PORT"]); n != 1 {
		t.Errorf("errors on APP_PORT: got %d want 1", n)
	}
}

func TestErrors_ErrorIsSorted(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"b": "required", "a": "required"})
	_ = v.Fails()

	want := "validation: The a field is required.; The b field is required."
	if got := v.Errors().Error(); got != want {
		t.Errorf("Error(): got %q want %q", got, want)
	}
}
