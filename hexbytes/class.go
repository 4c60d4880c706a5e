package hexbytes

import (
	"fmt"
	"reflect"

	"github.com/pboyd/reclass"
	"github.com/pboyd/reclass/bytearray"
)

// Class is the method table of HexBytes. It derives bytearray.Class with
// every inherited operation rewritten to return *HexBytes and Extend
// rewritten to leave its receiver alone.
var Class *reclass.Class

func init() {
	// Methods of HexBytes call through Class, so it can't be built in a
	// variable initializer.
	Class = newClass()
}

var hexBytesType = reflect.TypeOf((*HexBytes)(nil))

func newClass() *reclass.Class {
	c := reclass.NewClass("HexBytes", bytearray.Class, hexBytesType)
	c.New = func() any { return &HexBytes{} }
	c.From = fromSequence
	c.Clone = func(v any) any {
		return v.(*HexBytes).Clone()
	}

	err := c.Declare(
		reclass.Decl{Name: "IsHexByte", Kind: reclass.KindStatic, Func: IsHexByte},
		reclass.Decl{Name: "RequireHexByte", Kind: reclass.KindStatic, Func: RequireHexByte},
		reclass.Decl{Name: "FromText", Kind: reclass.KindClass, Func: fromText, Doc: "Build an instance from ASCII text"},
		reclass.Decl{Name: "String", Kind: reclass.KindInstance, Func: (*HexBytes).String},
		reclass.Decl{Name: "Get", Kind: reclass.KindInstance, Func: (*HexBytes).Get},
		reclass.Decl{Name: "Set", Kind: reclass.KindInstance, Func: (*HexBytes).Set},
		reclass.Decl{Name: "LeftPad", Kind: reclass.KindInstance, Func: (*HexBytes).LeftPad},
		reclass.Decl{Name: "RightPad", Kind: reclass.KindInstance, Func: (*HexBytes).RightPad},
	)
	if err != nil {
		panic(err)
	}

	if _, err := reclass.Inherit.Apply(c); err != nil {
		panic(err)
	}
	if _, err := reclass.Immutify.With("Extend")(c); err != nil {
		panic(err)
	}
	return c
}

// fromSequence takes ownership of a *bytearray.ByteArray; other sequences
// are copied.
func fromSequence(v any) (any, error) {
	switch s := v.(type) {
	case *bytearray.ByteArray:
		return &HexBytes{ByteArray: *s}, nil
	case bytearray.Sequence:
		return New(s.Bytes()...), nil
	}
	return nil, fmt.Errorf("%w: cannot build a HexBytes from %T", reclass.ErrType, v)
}

func fromText(c *reclass.Class, text string) (any, error) {
	h, err := FromText(text)
	if err != nil {
		return nil, err
	}
	if c.Type == hexBytesType {
		return h, nil
	}
	return c.From(h)
}

func call[T any](h *HexBytes, name string, args ...any) (T, error) {
	var zero T

	res, err := Class.Call(h, name, args...)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}

	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T", reclass.ErrType, name, res)
	}
	return v, nil
}

// mustCall is call for operations that cannot fail once the class table is
// built.
func mustCall[T any](h *HexBytes, name string, args ...any) T {
	v, err := call[T](h, name, args...)
	if err != nil {
		panic(err)
	}
	return v
}
