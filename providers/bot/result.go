package bot

import "errors"

// Result is a value/error container supporting partial success. It encodes
// "ask many sources, accept a best-effort combined answer" outcomes: a value
// accompanied by errors is an expected, valid shape in multi-provider
// deployments where some backends are transiently unreachable.
//
// A Result takes one of three canonical shapes:
//   - pure success: value present, no errors
//   - partial: value present, errors present
//   - pure failure: no value, at least one error
//
// Callers must inspect both sides: check [Result.HasErrors] even when
// [Result.Value] reports a value, and vice versa.
type Result[T any] struct {
	value  *T
	errors []*Error
}

// Ok creates a pure-success result holding value.
func Ok[T any](value T) *Result[T] {
	return &Result[T]{value: &value}
}

// Fail creates a pure-failure result from one or more errors.
func Fail[T any](errs ...*Error) *Result[T] {
	return &Result[T]{errors: errs}
}

// NewResult builds a result from an optional value and an error list. It is
// the only fallible constructor: it errors exactly when both the value and
// the error list are absent, since that shape is meaningless.
func NewResult[T any](value *T, errs []*Error) (*Result[T], error) {
	if value == nil && len(errs) == 0 {
		return nil, errors.New("result requires a value, errors, or both")
	}
	return &Result[T]{value: value, errors: errs}, nil
}

// Value returns the carried value and whether one is present. The second
// return is false only for pure failures.
func (r *Result[T]) Value() (T, bool) {
	if r.value == nil {
		var zero T
		return zero, false
	}
	return *r.value, true
}

// HasErrors reports whether the result carries any errors. True for both
// partial results and pure failures.
func (r *Result[T]) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns the carried errors in encounter order. The returned slice is
// shared; callers must not mutate it.
func (r *Result[T]) Errors() []*Error {
	return r.errors
}

// Merge combines any number of slice-valued results into one, losslessly.
// Errors are concatenated in encounter order. Value slices are concatenated
// into a present (possibly empty) merged value, unless every contributor
// lacks a value, in which case the merged value is absent too.
//
// This is the single aggregation rule used by every multi-source operation;
// no other merge policy exists.
func Merge[E any](results ...*Result[[]E]) *Result[[]E] {
	var merged []E
	var errs []*Error
	hasValue := false

	for _, result := range results {
		errs = append(errs, result.errors...)
		if result.value != nil {
			hasValue = true
			merged = append(merged, *result.value...)
		}
	}

	if !hasValue {
		return &Result[[]E]{errors: errs}
	}
	if merged == nil {
		merged = []E{}
	}
	return &Result[[]E]{value: &merged, errors: errs}
}
