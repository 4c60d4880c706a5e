package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pboyd/reclass"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		delims   string
		maxSplit int
		want     []string
	}{
		{"single", "a b c", " ", 0, []string{"a", "b", "c"}},
		{"runs", "a, b,,c", ", ", 0, []string{"a", "b", "c"}},
		{"max split", "a b c d", " ", 2, []string{"a", "b", "c d"}},
		{"leading delimiter", ",a", ",", 0, []string{"", "a"}},
		{"regexp characters", "a.b]c^d", ".]^", 0, []string{"a", "b", "c", "d"}},
		{"no match", "abc", "-", 0, []string{"abc"}},
		{"unicode", "a→b", "→", 0, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.s, tt.delims, tt.maxSplit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Split("abc", "", 0)
	assert.ErrorIs(t, err, reclass.ErrValue)
}
