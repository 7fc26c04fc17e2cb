package fn

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// ValidateAll runs every validator against a successful value. With
// breakOnFirst the first failing validator wins; otherwise all failures are
// joined into a single error payload.
func ValidateAll[T any](r Result[T, error], breakOnFirst bool,
	validators ...func(in T) error) Result[T, error] {

	if r.IsFailure() {
		return r
	}

	var joined error
	for _, validate := range validators {
		if err := validate(r.Value()); !IsNil(err) {
			if breakOnFirst {
				return Failure[T, error](err)
			}
			joined = errors.Join(append(Errors(joined), err)...)
		}
	}

	if IsNil(joined) {
		return r
	}
	return Failure[T, error](joined)
}
