package reclass

import (
	"fmt"
	"reflect"
)

// IsInherited reports whether the method reachable as name on c is the one
// reachable on its base class, possibly behind wrappers installed on c.
func IsInherited(c *Class, name string) bool {
	if c == nil || c.Base == nil {
		return false
	}

	parent := c.Base.Lookup(name)
	if parent == nil {
		return false
	}

	for m := c.Lookup(name); m != nil; m = m.wrapped {
		if m == parent {
			return true
		}
	}
	return false
}

// Classify reports how the method name binds on c. It builds an instance of
// c without arguments and checks that an instance method accepts it as its
// receiver.
func Classify(c *Class, name string) (Kind, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: must be used on a class, not %T", ErrType, c)
	}

	inst, err := construct(c)
	if err != nil {
		return 0, err
	}

	m := c.Lookup(name)
	if m == nil {
		return 0, fmt.Errorf("%w: %s.%s", ErrNotFound, c.Name, name)
	}
	if m.Kind != KindInstance {
		return m.Kind, nil
	}

	if _, ok := upcast(reflect.ValueOf(inst), m.Type.In(0)); !ok {
		return 0, fmt.Errorf("%w: %s does not accept a %T receiver", ErrType, m.Qualname, inst)
	}
	return KindInstance, nil
}

func construct(c *Class) (any, error) {
	if c.New == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, c.Name)
	}

	inst := c.New()
	if inst == nil {
		return nil, fmt.Errorf("%w: %s: constructor returned nil", ErrNotConstructible, c.Name)
	}
	return inst, nil
}
