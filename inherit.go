package reclass

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// DefaultIgnore lists the methods Inherit leaves alone unless IgnoreMethods
// says otherwise. They keep the behavior of the base class.
var DefaultIgnore = []string{
	"GetItem", "SetItem", "DelItem",
	"Del", "New", "Init",
	"Len", "Alloc", "Contains",
	"Repr", "String", "Iter",
}

type inheritConfig struct {
	ignore     []string
	ignoreBase bool
}

// InheritOption configures Inherit.
type InheritOption func(*inheritConfig)

// IgnoreMethods replaces DefaultIgnore with names.
func IgnoreMethods(names ...string) InheritOption {
	return func(cfg *inheritConfig) {
		cfg.ignore = names
	}
}

// IgnoreBaseType controls whether the methods of Object are ignored as
// well. The default is true.
func IgnoreBaseType(ignore bool) InheritOption {
	return func(cfg *inheritConfig) {
		cfg.ignoreBase = ignore
	}
}

// Inherit wraps every instance method that c inherits unchanged from its
// base so that it returns instances of c:
//
//   - a result whose type is exactly the base type is rebuilt with c.From
//   - a slice, array or set is rebuilt with its base-typed elements
//     converted the same way and the rest left alone
//   - anything else is returned as is
//
// Static and class-bound methods are never wrapped.
var Inherit = MustOptional("Inherit", inheritMethods)

func inheritMethods(c *Class, opts ...InheritOption) (*Class, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: must be used on a class, not %T", ErrType, c)
	}
	if c.Base == nil {
		return nil, fmt.Errorf("%w: %s has no base class", ErrType, c.Name)
	}
	if c.From == nil {
		return nil, fmt.Errorf("%w: %s cannot be built from a %s", ErrType, c.Name, c.Base.Name)
	}

	cfg := inheritConfig{
		ignore:     DefaultIgnore,
		ignoreBase: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateNames(cfg.ignore); err != nil {
		return nil, err
	}

	ignore := map[string]bool{}
	for _, name := range cfg.ignore {
		ignore[name] = true
	}
	if cfg.ignoreBase {
		for _, name := range Callables(Object) {
			ignore[name] = true
		}
	}

	for _, name := range Callables(c) {
		if ignore[name] || !IsInherited(c, name) {
			continue
		}

		kind, err := Classify(c, name)
		if err != nil {
			return nil, fmt.Errorf("inherit %s.%s: %w", c.Name, name, err)
		}
		if kind != KindInstance {
			continue
		}

		c.set(name, downcastWrapper(c, name))
		Logger().Debug("installed downcast wrapper",
			zap.String("class", c.Name),
			zap.String("method", name))
	}

	return c, nil
}

func downcastWrapper(c *Class, name string) *Method {
	super := c.Base.Lookup(name)
	return wrap(super, c.Name+"."+name, func(via *Class, recv any, args ...any) (any, error) {
		result, err := super.call(via, recv, args...)
		if err != nil {
			return result, err
		}
		return downcast(c, result)
	})
}

// downcast converts result to c when it is exactly an instance of c.Base,
// or a collection holding such instances. Nested collections are left
// alone.
func downcast(c *Class, result any) (any, error) {
	if result == nil {
		return nil, nil
	}
	if reflect.TypeOf(result) == c.Base.Type {
		return c.From(result)
	}
	if !HoldsType(result, nil) {
		return result, nil
	}

	v := reflect.ValueOf(result)
	if v.Kind() == reflect.Map {
		return downcastSet(c, v)
	}
	return downcastSeq(c, v)
}

func downcastSeq(c *Class, v reflect.Value) (any, error) {
	var out reflect.Value
	switch et := v.Type().Elem(); {
	case et == c.Base.Type && v.Kind() == reflect.Slice:
		out = reflect.MakeSlice(reflect.SliceOf(c.Type), v.Len(), v.Len())
	case et == c.Base.Type:
		out = reflect.New(reflect.ArrayOf(v.Len(), c.Type)).Elem()
	case et.Kind() == reflect.Interface && v.Kind() == reflect.Slice:
		out = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	case et.Kind() == reflect.Interface:
		out = reflect.New(v.Type()).Elem()
	default:
		// Nothing in here can be of the base type.
		return v.Interface(), nil
	}

	for i := 0; i < v.Len(); i++ {
		x, err := downcastElem(c, v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if x.IsValid() {
			out.Index(i).Set(x)
		}
	}
	return out.Interface(), nil
}

func downcastSet(c *Class, v reflect.Value) (any, error) {
	var out reflect.Value
	switch kt := v.Type().Key(); {
	case kt == c.Base.Type && c.Type.Comparable():
		out = reflect.MakeMapWithSize(reflect.MapOf(c.Type, v.Type().Elem()), v.Len())
	case kt.Kind() == reflect.Interface:
		out = reflect.MakeMapWithSize(v.Type(), v.Len())
	default:
		return v.Interface(), nil
	}

	iter := v.MapRange()
	for iter.Next() {
		k, err := downcastElem(c, iter.Key())
		if err != nil {
			return nil, err
		}
		if !k.IsValid() {
			k = reflect.Zero(out.Type().Key())
		}
		out.SetMapIndex(k, iter.Value())
	}
	return out.Interface(), nil
}

// downcastElem returns the converted element, or an invalid Value for a nil
// element that should stay at its zero value.
func downcastElem(c *Class, x reflect.Value) (reflect.Value, error) {
	if x.Kind() == reflect.Interface {
		if x.IsNil() {
			return reflect.Value{}, nil
		}
		x = x.Elem()
	}
	if x.Type() != c.Base.Type {
		return x, nil
	}
	if x.Kind() == reflect.Pointer && x.IsNil() {
		return reflect.Value{}, nil
	}

	y, err := c.From(x.Interface())
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(y), nil
}
