package rules

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kingrea/termprompt/internal/logging"
	"github.com/kingrea/termprompt/internal/prompt"
)

func TestCompileRejectsBadRules(t *testing.T) {
	for _, source := range []string{
		"",
		"value >",
		"value + 1",
		"len(value) > 2",
	} {
		if _, err := Compile[int](source); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("compile %q = %v, want ErrInvalidRule", source, err)
		}
	}
}

func TestIntegerRule(t *testing.T) {
	rule, err := Compile[int]("value >= 0 && value <= 150")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got, err := rule.Check(42); err != nil || got != 42 {
		t.Fatalf("check 42 = %d, %v", got, err)
	}
	_, err = rule.Check(200)
	if !prompt.IsValidation(err) {
		t.Fatalf("check 200 = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "value >= 0 && value <= 150") {
		t.Fatalf("error should name the rule: %v", err)
	}
}

func TestStringRule(t *testing.T) {
	rule, err := Compile[string](`value matches "^[a-z]+$" && len(value) <= 5`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := rule.Check("abc"); err != nil {
		t.Fatalf("check abc: %v", err)
	}
	for _, bad := range []string{"ABC", "toolong", "a1"} {
		if _, err := rule.Check(bad); !prompt.IsValidation(err) {
			t.Fatalf("check %q = %v, want validation error", bad, err)
		}
	}
}

func TestRuleRuntimeFailureIsValidation(t *testing.T) {
	rule, err := Compile[string]("int(value) > 3")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := rule.Check("10"); err != nil {
		t.Fatalf("check 10: %v", err)
	}
	if _, err := rule.Check("ten"); !prompt.IsValidation(err) {
		t.Fatalf("check ten = %v, want validation error", err)
	}
}

func TestGuardDrivesFetchRetries(t *testing.T) {
	out := &bytes.Buffer{}
	console := prompt.NewConsole(strings.NewReader("-5\n400\n30\n"), out,
		prompt.WithLogger(logging.NewWriter(&bytes.Buffer{})))
	s := prompt.ForInteger(console)
	transform, err := Guard(prompt.Identity[int](), "value >= 0 && value <= 150")
	if err != nil {
		t.Fatalf("guard: %v", err)
	}
	got, err := prompt.Fetch(s, transform)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != 30 {
		t.Fatalf("value = %d, want 30", got)
	}
	if n := strings.Count(out.String(), prompt.DefaultErrorMessage); n != 2 {
		t.Fatalf("error message shown %d times, want 2", n)
	}
}

func TestGuardWithoutRuleKeepsBase(t *testing.T) {
	base := prompt.Transform[string, string](func(v string) (string, error) {
		return strings.ToUpper(v), nil
	})
	got, err := Guard(base, "  ")
	if err != nil {
		t.Fatalf("guard: %v", err)
	}
	if v, _ := got("abc"); v != "ABC" {
		t.Fatalf("guard changed base transform, got %q", v)
	}
}
