package lib

import "fmt"

type wrappedError struct {
	parent error
	cause  error
}

// WrapError joins a sentinel error with its cause, so that both can be matched with errors.Is
// and the message reads "parent: cause"
func WrapError(parent error, cause error) error {
	if cause == nil {
		return parent
	}
	return &wrappedError{parent: parent, cause: cause}
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.parent, e.cause)
}

func (e *wrappedError) Unwrap() []error {
	return []error{e.parent, e.cause}
}
