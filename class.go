package reclass

import (
	"fmt"
	"reflect"
	"sort"
)

// Class is a named type with a method table and at most one base class.
//
// Methods are looked up on the class first and then on each base in turn.
// Rewriters replace entries of the table in place; they never create a new
// class.
type Class struct {
	Name string

	// Type is the exact type of instances of the class.
	Type reflect.Type

	Base *Class

	// New builds an instance without arguments. Classes without New
	// cannot be classified, and therefore cannot be rewritten.
	New func() any

	// From builds an instance from a value of the base class. It is used
	// by Inherit to reconstruct results.
	From func(any) (any, error)

	// Clone returns a deep copy of an instance. It is used by Immutify.
	Clone func(any) any

	methods map[string]*Method
}

// Decl declares one entry of a method table. Func is a Go function: instance
// methods take the receiver first (method expressions such as
// (*T).Method work), class-bound methods take a *Class first.
type Decl struct {
	Name string
	Kind Kind
	Func any
	Doc  string
}

// NewClass returns a class with an empty method table. typ is the type of
// its instances.
func NewClass(name string, base *Class, typ reflect.Type) *Class {
	return &Class{
		Name:    name,
		Type:    typ,
		Base:    base,
		methods: map[string]*Method{},
	}
}

// Declare adds methods to c. A method that overrides a base method of the
// same kind must have the same parameters and results, apart from the
// receiver.
func (c *Class) Declare(decls ...Decl) error {
	for _, d := range decls {
		m, err := newMethod(c.Name, d)
		if err != nil {
			return err
		}

		if c.Base != nil {
			if base := c.Base.Lookup(d.Name); base != nil && base.Kind == m.Kind {
				if diff := diffSignatures(base.Type, m.Type, m.Kind != KindStatic); diff.Err() != nil {
					return fmt.Errorf("%w: %s overrides %s with a different signature: %w", ErrType, m.Qualname, base.Qualname, diff.Err())
				}
			}
		}

		c.set(d.Name, m)
	}
	return nil
}

// Lookup returns the method reachable as name on c, searching the base
// classes when c does not define it. It returns nil if there is none.
func (c *Class) Lookup(name string) *Method {
	for k := c; k != nil; k = k.Base {
		if m, ok := k.methods[name]; ok {
			return m
		}
	}
	return nil
}

// Own returns the method c itself defines as name, or nil.
func (c *Class) Own(name string) *Method {
	return c.methods[name]
}

// Call looks up name on c and calls it. recv is only used for instance
// methods; class-bound methods receive c. Wrappers installed by rewriters
// see c as the class of the call, so a method inherited from a rewritten
// base still works on instances of c.
func (c *Class) Call(recv any, name string, args ...any) (any, error) {
	m := c.Lookup(name)
	if m == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotFound, c.Name, name)
	}

	switch m.Kind {
	case KindClass:
		return m.call(c, c, args...)
	case KindStatic:
		return m.call(c, nil, args...)
	}
	return m.call(c, recv, args...)
}

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}

func (c *Class) set(name string, m *Method) {
	if c.methods == nil {
		c.methods = map[string]*Method{}
	}
	c.methods[name] = m
}

// Callables returns the sorted names of every method reachable on c.
func Callables(c *Class) []string {
	seen := map[string]struct{}{}
	for k := c; k != nil; k = k.Base {
		for name := range k.methods {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Object is the root class. Its method names are ignored by Inherit unless
// IgnoreBaseType(false) is given.
var Object = newObjectClass()

func newObjectClass() *Class {
	c := NewClass("Object", nil, reflect.TypeOf((*any)(nil)).Elem())
	c.New = func() any { return new(struct{}) }

	err := c.Declare(
		Decl{Name: "New", Kind: KindClass, Func: newInstance, Doc: "Build an instance without arguments"},
		Decl{Name: "Init", Kind: KindInstance, Func: func(any) {}},
		Decl{Name: "Del", Kind: KindInstance, Func: func(any) {}},
		Decl{Name: "Equal", Kind: KindInstance, Func: func(self, other any) bool { return reflect.DeepEqual(self, other) }},
		Decl{Name: "NotEqual", Kind: KindInstance, Func: func(self, other any) bool { return !reflect.DeepEqual(self, other) }},
		Decl{Name: "String", Kind: KindInstance, Func: objectString},
		Decl{Name: "Repr", Kind: KindInstance, Func: objectString},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func newInstance(c *Class) (any, error) {
	if c.New == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, c.Name)
	}
	return c.New(), nil
}

func objectString(self any) string {
	return fmt.Sprintf("<%T object>", self)
}
