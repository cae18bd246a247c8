// Package validation provides the aggregate error value used across typekit
// to report parameter validation failures.
//
// The central type is Error: an immutable value carrying a primary message,
// an ordered list of sub-messages (one per violated precondition), and an
// optional originating cause. Validation in typekit is exhaustive rather than
// short-circuiting, so a single Error can enumerate every violated
// precondition at once:
//
//	err := validation.NewAggregate("Config invalid parameter(s)", []string{
//	    "host must not be empty",
//	    "port [-1] must be greater than 0",
//	})
//	fmt.Println(err)
//	// Config invalid parameter(s) - Parameter Validation Failures: [host must not be empty|port [-1] must be greater than 0]
//
// Error supports structural equality via Equal, integrates with the errors
// package through Unwrap and Is, and is safe to share between goroutines
// because it is never mutated after construction. No operation in this
// package can itself fail: it is the error terminal of the library.
package validation
