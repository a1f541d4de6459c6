// Package rules turns boolean expressions from configuration into prompt
// transforms. Expressions see the candidate answer as "value".
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kingrea/termprompt/internal/prompt"
)

// ErrInvalidRule is returned when a rule does not compile.
var ErrInvalidRule = errors.New("invalid rule")

// Rule is a compiled expression over a value of type T.
type Rule[T any] struct {
	source  string
	program *vm.Program
}

// Compile type-checks source against a value of type T. The expression must
// evaluate to a bool.
func Compile[T any](source string) (*Rule[T], error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidRule)
	}
	var zero T
	program, err := expr.Compile(source, expr.Env(env(zero)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return &Rule[T]{source: source, program: program}, nil
}

// Source returns the expression text.
func (r *Rule[T]) Source() string {
	return r.source
}

// Check evaluates the rule. A false result or an evaluation failure is a
// validation error so the prompt asks again.
func (r *Rule[T]) Check(value T) (T, error) {
	out, err := expr.Run(r.program, env(value))
	if err != nil {
		return value, prompt.Invalid(value, "rule %q failed: %v", r.source, err)
	}
	if ok, _ := out.(bool); !ok {
		return value, prompt.Invalid(value, "rule %q not satisfied", r.source)
	}
	return value, nil
}

// Transform exposes Check as a prompt transform.
func (r *Rule[T]) Transform() prompt.Transform[T, T] {
	return r.Check
}

// Guard appends the rule in source to base. An empty source returns base
// unchanged.
func Guard[T, R any](base prompt.Transform[T, R], source string) (prompt.Transform[T, R], error) {
	if strings.TrimSpace(source) == "" {
		return base, nil
	}
	rule, err := Compile[R](source)
	if err != nil {
		return nil, err
	}
	return prompt.AndThen(base, rule.Transform()), nil
}

func env(value any) map[string]any {
	return map[string]any{"value": value}
}
