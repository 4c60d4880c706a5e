package reclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmutify(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := newChildClass(t, newSeqClass(t))
	_, err := Inherit.Apply(c)
	require.NoError(err)
	_, err = Immutify.With("Push")(c)
	require.NoError(err)

	ch := newChild(1, 2)
	res, err := c.Call(ch, "Push", 3)
	require.NoError(err)

	assert.Equal([]int{1, 2}, ch.items, "receiver must not change")
	if assert.IsType(&child{}, res) {
		assert.Equal([]int{1, 2, 3}, res.(*child).items)
		assert.NotSame(ch, res)
	}

	m := c.Own("Push")
	assert.Equal("Push", m.Name)
	assert.Equal("Add v to the end", m.Doc)
	assert.True(IsInherited(c, "Push"))
}

func TestImmutify_RepeatedCalls(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	_, err := Immutify.With("Push")(c)
	require.NoError(t, err)

	ch := newChild()
	for i := 0; i < 3; i++ {
		res, err := c.Call(ch, "Push", i)
		require.NoError(t, err)
		assert.Equal(t, []int{i}, res.(*child).items)
	}
	assert.Empty(t, ch.items)
}

func TestImmutify_ReturnedValuePanics(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	_, err := Immutify.With("Sum")(c)
	require.NoError(t, err)

	defer func() {
		r := recover()
		cerr, ok := r.(*ContractError)
		if assert.True(t, ok, "got %v", r) {
			assert.Equal(t, "seq.Sum", cerr.Method)
			assert.Equal(t, 3, cerr.Result)
		}
	}()

	c.Call(newChild(1, 2), "Sum")
	t.Fatal("expected a panic")
}

func TestImmutify_ErrorsPassThrough(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	require.NoError(t, c.Declare(Decl{Name: "Grow", Kind: KindInstance, Func: func(c *child, n int) error {
		if n < 0 {
			return ErrValue
		}
		c.items = append(c.items, n)
		return nil
	}}))
	_, err := Immutify.With("Grow")(c)
	require.NoError(t, err)

	_, err = c.Call(newChild(), "Grow", -1)
	assert.ErrorIs(t, err, ErrValue)

	res, err := c.Call(newChild(), "Grow", 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.(*child).items)
}

func TestImmutify_Skips(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	_, err := Immutify.With("Of", "Zero", "Nope")(c)
	require.NoError(t, err)

	assert.Nil(t, c.Own("Of"))
	assert.Nil(t, c.Own("Zero"))
	assert.Nil(t, c.Own("Nope"))
}

func TestImmutify_BareIsNoop(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	_, err := Immutify.Apply(c)
	require.NoError(t, err)

	for _, name := range Callables(c) {
		assert.Nil(t, c.Own(name), name)
	}
}

func TestImmutify_Errors(t *testing.T) {
	t.Run("nil class", func(t *testing.T) {
		_, err := Immutify.With("Push")(nil)
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("no clone", func(t *testing.T) {
		c := newChildClass(t, newSeqClass(t))
		c.Clone = nil
		_, err := Immutify.With("Push")(c)
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("bad names", func(t *testing.T) {
		c := newChildClass(t, newSeqClass(t))
		_, err := Immutify.With("Push", "")(c)
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("not constructible", func(t *testing.T) {
		c := newChildClass(t, newSeqClass(t))
		c.New = nil
		_, err := Immutify.With("Push")(c)
		assert.ErrorIs(t, err, ErrNotConstructible)
	})
}

func TestImmutify_DerivedClass(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := newChildClass(t, newSeqClass(t))
	_, err := Inherit.Apply(c)
	require.NoError(err)
	_, err = Immutify.With("Push")(c)
	require.NoError(err)

	g := newGrandchildClass(c)
	g.Clone = func(v any) any {
		return &grandchild{child: child{seq: *v.(*grandchild).seq.Clone()}}
	}
	_, err = Inherit.Apply(g)
	require.NoError(err)
	assert.True(IsInherited(g, "Push"))

	gc := &grandchild{child: *newChild(1, 2)}
	var res any
	require.NotPanics(func() {
		res, err = g.Call(gc, "Push", 3)
	})
	require.NoError(err)
	if assert.IsType(&grandchild{}, res) {
		assert.Equal([]int{1, 2, 3}, res.(*grandchild).items)
	}
	assert.Equal([]int{1, 2}, gc.items)

	// The base class still copies its own instances.
	res, err = c.Call(newChild(4), "Push", 5)
	require.NoError(err)
	assert.IsType(&child{}, res)
}

func TestImmutify_DerivedClassWithoutClone(t *testing.T) {
	c := newChildClass(t, newSeqClass(t))
	_, err := Immutify.With("Push")(c)
	require.NoError(t, err)

	g := newGrandchildClass(c)
	_, err = Inherit.Apply(g)
	require.NoError(t, err)

	gc := &grandchild{child: *newChild(1)}
	_, err = g.Call(gc, "Push", 2)
	assert.ErrorIs(t, err, ErrType)
	assert.Equal(t, []int{1}, gc.items)
}
