package refined

import "github.com/typekit-go/typekit/pkg/validation"

// Rule couples a single validation predicate with the sub-message reported
// when it fails.
type Rule struct {
	Check   func() bool
	Message string
}

// Check evaluates every rule in declared order and aggregates all failures
// into a single validation error with the message
// "{typeName} invalid parameter(s)". It returns nil when every rule passes.
// Evaluation is exhaustive, never short-circuiting: sub-message order always
// mirrors rule declaration order.
func Check(typeName string, rules ...Rule) *validation.Error {
	var subs []string
	for _, rule := range rules {
		if !rule.Check() {
			subs = append(subs, rule.Message)
		}
	}
	if len(subs) == 0 {
		return nil
	}
	return validation.NewAggregate(typeName+" invalid parameter(s)", subs)
}
