package reclass

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned when a value of the wrong kind is passed, such as
	// a nil class or a method name that is not an identifier.
	ErrType = errors.New("type error")

	// ErrValue is returned when a value has the right kind but an invalid
	// content.
	ErrValue = errors.New("value error")

	// ErrNotFound is returned when a class has no method with a given name.
	ErrNotFound = errors.New("method not found")

	// ErrNotConstructible is returned when a class cannot build an instance
	// without arguments, which is required to classify its methods.
	ErrNotConstructible = errors.New("class cannot be constructed without arguments")
)

// ContractError is the panic value raised by a method rewritten with
// [Immutify] when the method it wraps returns a value. Such methods are
// expected to mutate their receiver and return nothing.
type ContractError struct {
	Method string
	Result any
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("immutable method %s returned a value: %v", e.Method, e.Result)
}
