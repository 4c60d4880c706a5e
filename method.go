package reclass

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Kind says how a method binds when it is called through a class.
type Kind int

const (
	// KindStatic methods receive neither an instance nor a class.
	KindStatic Kind = iota
	// KindClass methods receive the *Class they were called through.
	KindClass
	// KindInstance methods receive the instance as their first argument.
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Tuple holds the results of a method that has more than one non-error
// result.
type Tuple []any

// boundFunc is the calling convention shared by every entry of a method
// table. via is the class the call went through, nil when the method is
// called directly.
type boundFunc func(via *Class, recv any, args ...any) (any, error)

// Method is an entry in a class method table.
type Method struct {
	Name     string
	Qualname string
	Doc      string
	Kind     Kind

	// Type is the signature of the Go function the method was declared
	// with. Wrappers keep the type of the method they wrap.
	Type reflect.Type

	fn      boundFunc
	wrapped *Method
	logged  bool
}

// Call invokes the method. recv is the instance for instance methods, the
// *Class for class-bound methods and nil for static methods.
//
// A nil result is the "no value" sentinel: it is what a Go function without
// non-error results returns.
func (m *Method) Call(recv any, args ...any) (any, error) {
	return m.fn(nil, recv, args...)
}

// call is Call for a method looked up on via.
func (m *Method) call(via *Class, recv any, args ...any) (any, error) {
	return m.fn(via, recv, args...)
}

// Wrapped returns the method m wraps, or nil if m is not a wrapper.
func (m *Method) Wrapped() *Method {
	return m.wrapped
}

// Unwrap strips every wrapper layer from m.
func Unwrap(m *Method) *Method {
	for m != nil && m.wrapped != nil {
		m = m.wrapped
	}
	return m
}

// wrap returns a method that looks like m to introspection but calls fn.
func wrap(m *Method, qualname string, fn boundFunc) *Method {
	return &Method{
		Name:     m.Name,
		Qualname: qualname,
		Doc:      m.Doc,
		Kind:     m.Kind,
		Type:     m.Type,
		fn:       fn,
		wrapped:  m,
	}
}

var (
	classType = reflect.TypeOf((*Class)(nil))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// newMethod turns a Go function into a method table entry. Instance methods
// take the receiver as their first parameter, class-bound methods take a
// *Class.
func newMethod(owner string, d Decl) (*Method, error) {
	fnv := reflect.ValueOf(d.Func)
	if fnv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s.%s: not a function, kind: %v", ErrType, owner, d.Name, fnv.Kind())
	}
	if fnv.IsNil() {
		return nil, fmt.Errorf("%w: %s.%s: nil function", ErrType, owner, d.Name)
	}

	ft := fnv.Type()
	switch d.Kind {
	case KindInstance:
		if ft.NumIn() == 0 || (ft.IsVariadic() && ft.NumIn() == 1) {
			return nil, fmt.Errorf("%w: %s.%s: instance method has no receiver parameter", ErrType, owner, d.Name)
		}
	case KindClass:
		if ft.NumIn() == 0 || ft.In(0) != classType {
			return nil, fmt.Errorf("%w: %s.%s: class method must take a *Class first", ErrType, owner, d.Name)
		}
	case KindStatic:
	default:
		return nil, fmt.Errorf("%w: %s.%s: unknown kind %v", ErrType, owner, d.Name, d.Kind)
	}

	return &Method{
		Name:     d.Name,
		Qualname: owner + "." + d.Name,
		Doc:      d.Doc,
		Kind:     d.Kind,
		Type:     ft,
		fn:       reflectFunc(fnv, d.Kind),
	}, nil
}

func reflectFunc(fnv reflect.Value, kind Kind) boundFunc {
	ft := fnv.Type()
	return func(_ *Class, recv any, args ...any) (any, error) {
		if kind != KindStatic {
			args = append([]any{recv}, args...)
		}

		in, err := convertArgs(ft, args)
		if err != nil {
			return nil, err
		}

		return collectResults(ft, fnv.Call(in))
	}
}

func convertArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrType, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrType, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}

		v, err := argValue(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argValue(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not a %v", ErrType, t)
	}

	v := reflect.ValueOf(arg)
	if up, ok := upcast(v, t); ok {
		return up, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) && v.CanConvert(t) {
		return convertNumber(v, t)
	}
	return reflect.Value{}, fmt.Errorf("%w: %v is not a %v", ErrType, v.Type(), t)
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// convertNumber converts v to t when t can hold its value exactly.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	overflow := fmt.Errorf("%w: %v out of range for %v", ErrValue, v, t)

	switch k := v.Kind(); {
	case isInt(k):
		n := v.Int()
		switch {
		case isInt(t.Kind()) && out.OverflowInt(n):
			return reflect.Value{}, overflow
		case isUint(t.Kind()) && (n < 0 || out.OverflowUint(uint64(n))):
			return reflect.Value{}, overflow
		}
	case isUint(k):
		n := v.Uint()
		switch {
		case isInt(t.Kind()) && (n > math.MaxInt64 || out.OverflowInt(int64(n))):
			return reflect.Value{}, overflow
		case isUint(t.Kind()) && out.OverflowUint(n):
			return reflect.Value{}, overflow
		}
	default:
		f := v.Float()
		if t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64 {
			if out.OverflowFloat(f) {
				return reflect.Value{}, overflow
			}
			break
		}
		if f != math.Trunc(f) {
			return reflect.Value{}, fmt.Errorf("%w: %v is not an integer", ErrType, v)
		}
		switch {
		case f < math.MinInt64 || f >= math.MaxUint64:
			return reflect.Value{}, overflow
		case isInt(t.Kind()) && (f >= math.MaxInt64 || out.OverflowInt(int64(f))):
			return reflect.Value{}, overflow
		case isUint(t.Kind()) && (f < 0 || out.OverflowUint(uint64(f))):
			return reflect.Value{}, overflow
		}
	}

	return v.Convert(t), nil
}

// upcast finds the value of type t that v "is". v itself qualifies when it
// is assignable to t, otherwise the search continues into the embedded first
// field of v, which is how a subclass instance carries its base instance.
// Embedded fields are reached by address so methods of the base mutate the
// subclass instance.
func upcast(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	for {
		if v.Type().AssignableTo(t) {
			return v, true
		}

		s := v
		if s.Kind() == reflect.Pointer {
			if s.IsNil() {
				return reflect.Value{}, false
			}
			s = s.Elem()
		}
		if s.Kind() != reflect.Struct || s.NumField() == 0 || !s.Type().Field(0).Anonymous {
			return reflect.Value{}, false
		}

		f := s.Field(0)
		if !f.CanInterface() && f.CanAddr() {
			// Unexported embedded type; values read through it can't be
			// passed to Call.
			f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
		}
		if !f.CanInterface() {
			return reflect.Value{}, false
		}
		if f.Type().AssignableTo(t) {
			return f, true
		}
		if f.Kind() != reflect.Pointer && f.CanAddr() {
			f = f.Addr()
		}
		v = f
	}
}

func collectResults(ft reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}

	results := make(Tuple, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, err
}
