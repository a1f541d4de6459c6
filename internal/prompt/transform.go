package prompt

import "strings"

// Transform turns a raw value into a typed one. It returns a *ValidationError
// when the value is unacceptable.
type Transform[T, R any] func(T) (R, error)

// Identity accepts every value unchanged.
func Identity[T any]() Transform[T, T] {
	return func(v T) (T, error) {
		return v, nil
	}
}

// AndThen runs first and feeds its result to next. A validation failure in
// either stage makes Fetch ask again.
func AndThen[T, R, V any](first Transform[T, R], next Transform[R, V]) Transform[T, V] {
	return func(v T) (V, error) {
		mid, err := first(v)
		if err != nil {
			var zero V
			return zero, err
		}
		return next(mid)
	}
}

// YesNo accepts answers whose first non-space character is a lowercase 'y'
// or 'n'.
func YesNo(choice string) (bool, error) {
	trimmed := strings.TrimLeft(choice, " \t")
	switch {
	case strings.HasPrefix(trimmed, "y"):
		return true, nil
	case strings.HasPrefix(trimmed, "n"):
		return false, nil
	}
	return false, Invalid(choice, "expected 'y' or 'n'")
}
