package reclass

import "fmt"

// Original returns the method reachable as name on c with every wrapper
// removed, which is the function it was declared with. If c has no such
// method Original returns nil.
func Original(c *Class, name string) *Method {
	return Unwrap(c.Lookup(name))
}

// Restore removes the wrappers a rewriter installed on c for name. An
// inherited method becomes the base class method again; a method c declares
// itself goes back to its declaration.
func Restore(c *Class, name string) error {
	m := c.Lookup(name)
	if m == nil {
		return fmt.Errorf("%w: %s.%s", ErrNotFound, c.Name, name)
	}

	own := c.Own(name)
	if own == nil || own.wrapped == nil {
		return nil
	}

	if IsInherited(c, name) {
		delete(c.methods, name)
		return nil
	}

	c.set(name, Unwrap(own))
	return nil
}
