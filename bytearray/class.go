package bytearray

import (
	"fmt"
	"reflect"

	"github.com/pboyd/reclass"
)

// Class is the method table of ByteArray. Subclasses use it as their base.
var Class = newClass()

var byteArrayType = reflect.TypeOf((*ByteArray)(nil))

func newClass() *reclass.Class {
	c := reclass.NewClass("ByteArray", reclass.Object, byteArrayType)
	c.New = func() any { return &ByteArray{} }
	c.From = func(v any) (any, error) {
		s, ok := v.(Sequence)
		if !ok {
			return nil, fmt.Errorf("%w: cannot build a ByteArray from %T", reclass.ErrType, v)
		}
		return FromBytes(s.Bytes()), nil
	}
	c.Clone = func(v any) any {
		return v.(*ByteArray).Clone()
	}

	err := c.Declare(
		reclass.Decl{Name: "FromHex", Kind: reclass.KindClass, Func: fromHex, Doc: "Decode pairs of hex digits"},

		reclass.Decl{Name: "GetItem", Kind: reclass.KindInstance, Func: (*ByteArray).At},
		reclass.Decl{Name: "SetItem", Kind: reclass.KindInstance, Func: (*ByteArray).SetAt},
		reclass.Decl{Name: "DelItem", Kind: reclass.KindInstance, Func: (*ByteArray).DelAt},
		reclass.Decl{Name: "Len", Kind: reclass.KindInstance, Func: (*ByteArray).Len},
		reclass.Decl{Name: "Contains", Kind: reclass.KindInstance, Func: (*ByteArray).Contains},
		reclass.Decl{Name: "Iter", Kind: reclass.KindInstance, Func: (*ByteArray).All},
		reclass.Decl{Name: "String", Kind: reclass.KindInstance, Func: (*ByteArray).String},
		reclass.Decl{Name: "Repr", Kind: reclass.KindInstance, Func: (*ByteArray).String},
		reclass.Decl{Name: "Equal", Kind: reclass.KindInstance, Func: (*ByteArray).Equal},
		reclass.Decl{Name: "NotEqual", Kind: reclass.KindInstance, Func: func(b *ByteArray, other any) bool { return !b.Equal(other) }},
		reclass.Decl{Name: "Compare", Kind: reclass.KindInstance, Func: (*ByteArray).Compare},

		reclass.Decl{Name: "Append", Kind: reclass.KindInstance, Func: (*ByteArray).Append},
		reclass.Decl{Name: "Extend", Kind: reclass.KindInstance, Func: (*ByteArray).Extend, Doc: "Append the bytes of another sequence in place"},
		reclass.Decl{Name: "Insert", Kind: reclass.KindInstance, Func: (*ByteArray).Insert},
		reclass.Decl{Name: "Pop", Kind: reclass.KindInstance, Func: (*ByteArray).Pop},
		reclass.Decl{Name: "Remove", Kind: reclass.KindInstance, Func: (*ByteArray).Remove},
		reclass.Decl{Name: "Reverse", Kind: reclass.KindInstance, Func: (*ByteArray).Reverse},
		reclass.Decl{Name: "Clear", Kind: reclass.KindInstance, Func: (*ByteArray).Clear},

		reclass.Decl{Name: "Copy", Kind: reclass.KindInstance, Func: (*ByteArray).Copy},
		reclass.Decl{Name: "Slice", Kind: reclass.KindInstance, Func: (*ByteArray).Slice},
		reclass.Decl{Name: "Concat", Kind: reclass.KindInstance, Func: (*ByteArray).Concat},
		reclass.Decl{Name: "Repeat", Kind: reclass.KindInstance, Func: (*ByteArray).Repeat},
		reclass.Decl{Name: "LJust", Kind: reclass.KindInstance, Func: (*ByteArray).LJust},
		reclass.Decl{Name: "RJust", Kind: reclass.KindInstance, Func: (*ByteArray).RJust},
		reclass.Decl{Name: "Strip", Kind: reclass.KindInstance, Func: (*ByteArray).Strip},
		reclass.Decl{Name: "Split", Kind: reclass.KindInstance, Func: (*ByteArray).Split},
		reclass.Decl{Name: "Partition", Kind: reclass.KindInstance, Func: (*ByteArray).Partition},

		reclass.Decl{Name: "Count", Kind: reclass.KindInstance, Func: (*ByteArray).Count},
		reclass.Decl{Name: "Find", Kind: reclass.KindInstance, Func: (*ByteArray).Find},
		reclass.Decl{Name: "Index", Kind: reclass.KindInstance, Func: (*ByteArray).Index},
		reclass.Decl{Name: "HasPrefix", Kind: reclass.KindInstance, Func: (*ByteArray).HasPrefix},
		reclass.Decl{Name: "Hex", Kind: reclass.KindInstance, Func: (*ByteArray).Hex},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// fromHex builds an instance of the class it is called through.
func fromHex(c *reclass.Class, s string) (any, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if c.Type == byteArrayType {
		return b, nil
	}
	return c.From(b)
}
