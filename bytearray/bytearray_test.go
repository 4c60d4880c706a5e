package bytearray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pboyd/reclass"
)

func TestFromHex(t *testing.T) {
	b, err := FromHex("de ad\tbe ef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b.Bytes())

	_, err = FromHex("xyz")
	assert.ErrorIs(t, err, reclass.ErrValue)
}

func TestIndexing(t *testing.T) {
	assert := assert.New(t)

	b := New(1, 2, 3)

	v, err := b.At(-1)
	assert.NoError(err)
	assert.EqualValues(3, v)

	_, err = b.At(3)
	assert.ErrorIs(err, ErrIndex)
	_, err = b.At(-4)
	assert.ErrorIs(err, ErrIndex)

	assert.NoError(b.SetAt(0, 9))
	assert.NoError(b.DelAt(1))
	assert.Equal([]byte{9, 3}, b.Bytes())

	assert.True(b.Contains(3))
	assert.False(b.Contains(2))
}

func TestMutators(t *testing.T) {
	assert := assert.New(t)

	b := New(1, 2)
	b.Append(3)
	b.Extend(New(4, 5))
	b.Insert(0, 0)
	b.Insert(100, 6)
	assert.Equal([]byte{0, 1, 2, 3, 4, 5, 6}, b.Bytes())

	v, err := b.Pop(-1)
	assert.NoError(err)
	assert.EqualValues(6, v)

	assert.NoError(b.Remove(0))
	assert.ErrorIs(b.Remove(42), reclass.ErrValue)

	b.Reverse()
	assert.Equal([]byte{5, 4, 3, 2, 1}, b.Bytes())

	b.Clear()
	assert.Zero(b.Len())
}

func TestProducers(t *testing.T) {
	b := New(' ', 1, 2, 3, ' ')

	tests := []struct {
		name string
		got  *ByteArray
		want []byte
	}{
		{"copy", b.Copy(), []byte{' ', 1, 2, 3, ' '}},
		{"slice", b.Slice(1, -1), []byte{1, 2, 3}},
		{"slice clamped", b.Slice(-100, 100), []byte{' ', 1, 2, 3, ' '}},
		{"slice empty", b.Slice(3, 1), []byte{}},
		{"concat", New(1).Concat(New(2)), []byte{1, 2}},
		{"repeat", New(1, 2).Repeat(2), []byte{1, 2, 1, 2}},
		{"repeat zero", New(1).Repeat(0), nil},
		{"ljust", New(1).LJust(3, 0), []byte{1, 0, 0}},
		{"rjust", New(1).RJust(3, 0), []byte{0, 0, 1}},
		{"rjust narrow", New(1, 2).RJust(1, 0), []byte{1, 2}},
		{"strip", b.Strip(), []byte{1, 2, 3}},
		{"strip chars", New(0, 1, 0).Strip(0), []byte{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Bytes(), cmpBytes); diff != "" {
				t.Errorf("bytes mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Producers leave the receiver alone.
	assert.Equal(t, []byte{' ', 1, 2, 3, ' '}, b.Bytes())
}

// cmpBytes treats nil and empty as equal.
var cmpBytes = cmp.Comparer(func(a, b []byte) bool {
	return string(a) == string(b)
})

func TestSplit(t *testing.T) {
	parts, err := New(1, 0, 2, 0, 3).Split(New(0))
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []byte{3}, parts[2].Bytes())

	_, err = New(1).Split(New())
	assert.ErrorIs(t, err, reclass.ErrValue)
}

func TestPartition(t *testing.T) {
	p, err := New(1, 0, 2, 0, 3).Partition(New(0))
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, p[0].Bytes())
	assert.Equal(t, []byte{0}, p[1].Bytes())
	assert.Equal(t, []byte{2, 0, 3}, p[2].Bytes())

	p, err = New(1, 2).Partition(New(9))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, p[0].Bytes())
	assert.Zero(t, p[1].Len())
	assert.Zero(t, p[2].Len())
}

func TestQueries(t *testing.T) {
	assert := assert.New(t)

	b := New(1, 2, 1, 2, 3)
	assert.Equal(2, b.Count(New(1, 2)))
	assert.Equal(2, b.Find(New(1, 2, 3)))
	assert.Equal(-1, b.Find(New(4)))
	assert.True(b.HasPrefix(New(1, 2)))

	_, err := b.Index(New(4))
	assert.ErrorIs(err, reclass.ErrValue)

	assert.True(b.Equal([]byte{1, 2, 1, 2, 3}))
	assert.True(b.Equal(b.Clone()))
	assert.False(b.Equal("nope"))
	assert.Equal(-1, New(1).Compare(New(2)))

	assert.Equal("01 02", New(1, 2).Hex(" "))
	assert.Equal(`bytearray("AB")`, New('A', 'B').String())
}

func TestAll(t *testing.T) {
	var got []byte
	for i, v := range New(5, 6, 7).All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []byte{5, 6}, got)
}
