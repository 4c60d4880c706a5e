package reclass

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoldsType(t *testing.T) {
	stringType := reflect.TypeOf("")

	cases := map[string]struct {
		candidate any
		elem      reflect.Type
		want      bool
	}{
		"slice of strings":     {[]string{"a", "b"}, stringType, true},
		"empty slice":          {[]string{}, stringType, true},
		"array":                {[2]string{"a", "b"}, stringType, true},
		"set":                  {map[string]struct{}{"a": {}}, stringType, true},
		"bool set":             {map[string]bool{"a": true}, stringType, true},
		"mixed":                {[]any{"a", 1}, stringType, false},
		"nil element":          {[]any{"a", nil}, stringType, false},
		"any elements":         {[]any{"a", 1}, nil, true},
		"string":               {"abc", stringType, false},
		"map":                  {map[string]int{"a": 1}, nil, false},
		"nil":                  {nil, nil, false},
		"subclass instances":   {[]*child{newChild()}, seqType, true},
		"base is not subclass": {[]*seq{{}}, childType, false},
		"interface":            {[]any{newChild()}, reflect.TypeOf((*interface{ Sum() int })(nil)).Elem(), true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, HoldsType(tc.candidate, tc.elem))
		})
	}
}
