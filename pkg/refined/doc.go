// Package refined provides immutable wrapper types that can only be
// constructed holding a value satisfying a fixed set of predicates: a
// non-empty string stays non-empty for its entire lifetime, a positive
// integer stays positive, a non-empty list stays non-empty and unmodifiable.
//
// Every refined type X exposes the same three entry points:
//
//   - ValidateX(v) *validation.Error — pure validation query; nil when v is
//     valid, otherwise an error enumerating every violated predicate.
//   - NewX(v) (X, error) — error-by-value constructor; returns the zero X and
//     the validation error on invalid input.
//   - MustX(v) X — raising constructor; panics with the same validation error
//     on invalid input.
//
// Validation is exhaustive: predicates are evaluated in declared order and
// every failure contributes a sub-message, so a caller sees all violated
// preconditions in one pass:
//
//	_, err := refined.NewNonBlankString("")
//	fmt.Println(err)
//	// NonBlankString invalid parameter(s) - Parameter Validation Failures: [string must not be empty|string must not be blank]
//
// The wrapped field of every refined type is unexported; the constructors are
// the only way a non-zero instance can come into existence, and there are no
// setters. The zero value of a refined type is the "absent" placeholder and
// must not be treated as valid. Callers who prefer a two-armed result can
// lift a constructor with result.Of:
//
//	r := result.Of(refined.NewPosInt(5))
//
// Scalar refined types order by their wrapped value via Compare; container
// refined types (NonEmptyList, NonEmptySet, NonEmptyMap) additionally require
// the wrapped container to be structurally unmodifiable, verified with the
// collection package's empirical probe. Custom refined types can be built
// from the same machinery using Rule and Check.
package refined
