package validation

import (
	"errors"
	"strings"
)

// DefaultMessage is used when an Error is built from sub-messages alone.
const DefaultMessage = "Parameters validation failed"

// Error is an aggregate parameter validation failure: a primary message, an
// ordered list of sub-messages describing individual violated preconditions,
// and an optional originating cause. It is immutable after construction.
type Error struct {
	message     string
	subMessages []string
	cause       error
}

// New returns an Error carrying the message alone.
func New(message string) *Error {
	return &Error{message: message, subMessages: []string{}}
}

// Aggregate returns an Error with the default message and the given
// sub-messages.
func Aggregate(subMessages ...string) *Error {
	return NewAggregate(DefaultMessage, subMessages)
}

// NewAggregate returns an Error carrying the message and the given
// sub-messages. The input slice is copied; the stored list never aliases
// caller storage.
func NewAggregate(message string, subMessages []string) *Error {
	return &Error{message: message, subMessages: copyMessages(subMessages)}
}

// Wrap returns an Error carrying the message and an originating cause.
func Wrap(message string, cause error) *Error {
	return &Error{message: message, subMessages: []string{}, cause: cause}
}

// WrapAggregate returns an Error carrying the message, sub-messages and an
// originating cause.
func WrapAggregate(message string, subMessages []string, cause error) *Error {
	return &Error{message: message, subMessages: copyMessages(subMessages), cause: cause}
}

// Collect builds an Error whose sub-messages are the rendered text of each
// non-nil error. Nil entries are silently dropped. An empty message falls
// back to DefaultMessage.
func Collect(message string, errs ...error) *Error {
	if message == "" {
		message = DefaultMessage
	}
	subs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			subs = append(subs, err.Error())
		}
	}
	return &Error{message: message, subMessages: subs}
}

// Error renders the failure. Without sub-messages the message is returned
// alone; otherwise every sub-message is listed, pipe-separated, in order.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.subMessages) == 0 {
		return e.message
	}
	return e.message + " - Parameter Validation Failures: [" + strings.Join(e.subMessages, "|") + "]"
}

// Message returns the primary message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// SubMessages returns a copy of the ordered sub-messages. The result is never
// nil.
func (e *Error) SubMessages() []string {
	if e == nil {
		return []string{}
	}
	return copyMessages(e.subMessages)
}

// Unwrap returns the originating cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Equal reports structural equality: message, sub-messages (element-wise,
// order-sensitive) and cause must all match. Two nil errors are equal.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	if e.message != other.message {
		return false
	}
	if len(e.subMessages) != len(other.subMessages) {
		return false
	}
	for i := range e.subMessages {
		if e.subMessages[i] != other.subMessages[i] {
			return false
		}
	}
	return equalCause(e.cause, other.cause)
}

// Is lets errors.Is match two aggregate errors structurally.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Equal(other)
}

func equalCause(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if errors.Is(a, b) || errors.Is(b, a) {
		return true
	}
	return a.Error() == b.Error()
}

func copyMessages(subMessages []string) []string {
	out := make([]string, len(subMessages))
	copy(out, subMessages)
	return out
}
