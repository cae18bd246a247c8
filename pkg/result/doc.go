// Package result provides a two-armed success-or-failure container for
// callers that prefer carrying errors as ordinary values instead of the
// conventional (T, error) pair.
//
// A Result[T] always has exactly one populated arm: the success arm holding a
// T, or the failure arm holding an error. The Of bridge converts a standard
// Go return pair into a Result, which makes it convenient to lift existing
// constructors:
//
//	r := result.Of(refined.NewPosInt(5))
//	if r.IsOk() {
//	    fmt.Println(r.MustValue().Value()) // 5
//	}
//
// Results are plain immutable values: safe to copy, compare arm state, and
// share between goroutines.
package result
