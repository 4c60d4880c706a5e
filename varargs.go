package reclass

import (
	"fmt"
	"slices"
)

// Rewriter rewrites the method table of c in place and returns c. Its
// options are always optional.
type Rewriter[O any] func(c *Class, opts ...O) (*Class, error)

// Adapter makes a Rewriter usable both bare and with options.
type Adapter[O any] struct {
	name string
	fn   Rewriter[O]
}

// Optional adapts fn. It fails if fn is nil.
func Optional[O any](name string, fn Rewriter[O]) (*Adapter[O], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %s: not a function", ErrType, name)
	}
	return &Adapter[O]{name: name, fn: fn}, nil
}

// MustOptional is like Optional but panics if fn is nil. It is meant for
// package-level declarations.
func MustOptional[O any](name string, fn Rewriter[O]) *Adapter[O] {
	a, err := Optional(name, fn)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the name the rewriter was adapted under.
func (a *Adapter[O]) Name() string {
	return a.name
}

// Apply runs the rewriter on c without options.
func (a *Adapter[O]) Apply(c *Class) (*Class, error) {
	return a.fn(c)
}

// With captures opts and returns a function that runs the rewriter with
// them once it is given a class. With() behaves exactly like Apply.
func (a *Adapter[O]) With(opts ...O) func(*Class) (*Class, error) {
	opts = slices.Clone(opts)
	return func(c *Class) (*Class, error) {
		return a.fn(c, opts...)
	}
}
