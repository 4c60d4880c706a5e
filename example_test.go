package reclass_test

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/pboyd/reclass"
)

type Stack struct {
	items []string
}

func (s *Stack) Push(v string) { s.items = append(s.items, v) }

func (s *Stack) Top(n int) *Stack {
	return &Stack{items: slices.Clone(s.items[len(s.items)-n:])}
}

type NamedStack struct {
	Stack
	Name string
}

func ExampleInherit() {
	base := reclass.NewClass("Stack", reclass.Object, reflect.TypeOf((*Stack)(nil)))
	base.Declare(reclass.Decl{Name: "Top", Kind: reclass.KindInstance, Func: (*Stack).Top})

	named := reclass.NewClass("NamedStack", base, reflect.TypeOf((*NamedStack)(nil)))
	named.New = func() any { return &NamedStack{} }
	named.From = func(v any) (any, error) {
		return &NamedStack{Stack: *v.(*Stack), Name: "top"}, nil
	}
	reclass.Inherit.Apply(named)

	s := &NamedStack{Stack: Stack{items: []string{"a", "b", "c"}}, Name: "all"}
	top, _ := named.Call(s, "Top", 2)
	fmt.Printf("%T %v\n", top, top.(*NamedStack).items)
	// Output: *reclass_test.NamedStack [b c]
}

func ExampleImmutify() {
	base := reclass.NewClass("Stack", reclass.Object, reflect.TypeOf((*Stack)(nil)))
	base.New = func() any { return &Stack{} }
	base.Clone = func(v any) any { return &Stack{items: slices.Clone(v.(*Stack).items)} }
	base.Declare(reclass.Decl{Name: "Push", Kind: reclass.KindInstance, Func: (*Stack).Push})

	reclass.Immutify.With("Push")(base)

	s := &Stack{items: []string{"a"}}
	pushed, _ := base.Call(s, "Push", "b")
	fmt.Println(s.items, pushed.(*Stack).items)
	// Output: [a] [a b]
}
