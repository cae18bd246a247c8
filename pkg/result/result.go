package result

import "errors"

// ErrNoValue substitutes for a nil error passed to Err so that the failure
// arm is never silently empty.
var ErrNoValue = errors.New("result: no value")

// Result holds either a success value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a Result with the success arm populated.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a Result with the failure arm populated. A nil err is
// normalized to ErrNoValue.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNoValue
	}
	return Result[T]{err: err}
}

// Of bridges a conventional (T, error) return pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the success arm is populated.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the failure arm is populated.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value unpacks the result back into a conventional (T, error) pair.
func (r Result[T]) Value() (T, error) { return r.value, r.err }

// MustValue returns the success value or panics with the failure arm's error.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// ValueOr returns the success value, or fallback when the failure arm is
// populated.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Err returns the failure arm's error, or nil on success.
func (r Result[T]) Err() error { return r.err }

// MapErr transforms the failure arm's error. Success results pass through
// unchanged; fn returning nil keeps the original error.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	if mapped := fn(r.err); mapped != nil {
		return Result[T]{err: mapped}
	}
	return r
}

// Map transforms the success arm with fn, carrying a failure through
// untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}
