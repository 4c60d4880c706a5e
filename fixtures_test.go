package reclass

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// seq is a small base type with methods returning every shape Inherit
// handles.
type seq struct {
	items []int
}

func (s *seq) Clone() *seq {
	return &seq{items: slices.Clone(s.items)}
}

func (s *seq) Push(v int) {
	s.items = append(s.items, v)
}

func (s *seq) Len() int {
	return len(s.items)
}

func (s *seq) Sum() int {
	sum := 0
	for _, v := range s.items {
		sum += v
	}
	return sum
}

func (s *seq) Head(n int) *seq {
	return &seq{items: slices.Clone(s.items[:n])}
}

func (s *seq) Halves() []*seq {
	mid := len(s.items) / 2
	return []*seq{{items: slices.Clone(s.items[:mid])}, {items: slices.Clone(s.items[mid:])}}
}

func (s *seq) Pair() [2]*seq {
	return [2]*seq{s.Clone(), s.Clone()}
}

func (s *seq) Mixed() []any {
	return []any{s.Clone(), 7, "x", nil}
}

func (s *seq) Set() map[*seq]struct{} {
	return map[*seq]struct{}{s.Clone(): {}}
}

func (s *seq) Nested() [][]*seq {
	return [][]*seq{{s.Clone()}}
}

func (s *seq) Split() (*seq, *seq) {
	h := s.Halves()
	return h[0], h[1]
}

func (s *seq) Fail() (*seq, error) {
	return nil, fmt.Errorf("%w: always fails", ErrValue)
}

type child struct {
	seq
}

type grandchild struct {
	child
}

var (
	seqType        = reflect.TypeOf((*seq)(nil))
	childType      = reflect.TypeOf((*child)(nil))
	grandchildType = reflect.TypeOf((*grandchild)(nil))
)

func newSeqClass(t *testing.T) *Class {
	t.Helper()

	c := NewClass("seq", Object, seqType)
	c.New = func() any { return &seq{} }
	c.From = func(v any) (any, error) { return v, nil }
	c.Clone = func(v any) any { return v.(*seq).Clone() }

	require.NoError(t, c.Declare(
		Decl{Name: "Of", Kind: KindClass, Func: seqOf},
		Decl{Name: "Zero", Kind: KindStatic, Func: func() int { return 0 }},
		Decl{Name: "Push", Kind: KindInstance, Func: (*seq).Push, Doc: "Add v to the end"},
		Decl{Name: "Len", Kind: KindInstance, Func: (*seq).Len},
		Decl{Name: "Sum", Kind: KindInstance, Func: (*seq).Sum},
		Decl{Name: "Head", Kind: KindInstance, Func: (*seq).Head, Doc: "First n items"},
		Decl{Name: "Halves", Kind: KindInstance, Func: (*seq).Halves},
		Decl{Name: "Pair", Kind: KindInstance, Func: (*seq).Pair},
		Decl{Name: "Mixed", Kind: KindInstance, Func: (*seq).Mixed},
		Decl{Name: "Set", Kind: KindInstance, Func: (*seq).Set},
		Decl{Name: "Nested", Kind: KindInstance, Func: (*seq).Nested},
		Decl{Name: "Split", Kind: KindInstance, Func: (*seq).Split},
		Decl{Name: "Fail", Kind: KindInstance, Func: (*seq).Fail},
	))
	return c
}

func seqOf(c *Class, items ...int) (any, error) {
	return c.From(&seq{items: items})
}

func newChildClass(t *testing.T, base *Class) *Class {
	t.Helper()

	c := NewClass("child", base, childType)
	c.New = func() any { return &child{} }
	c.From = func(v any) (any, error) {
		s, ok := v.(*seq)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrType, v)
		}
		return &child{seq: *s}, nil
	}
	c.Clone = func(v any) any {
		return &child{seq: *v.(*child).seq.Clone()}
	}
	return c
}

func newGrandchildClass(base *Class) *Class {
	c := NewClass("grandchild", base, grandchildType)
	c.New = func() any { return &grandchild{} }
	c.From = func(v any) (any, error) {
		return &grandchild{child: *v.(*child)}, nil
	}
	return c
}

func newChild(items ...int) *child {
	return &child{seq: seq{items: items}}
}
