package reclass

import (
	"errors"
	"fmt"
	"reflect"
)

type funcDifferences struct {
	In  []*argDifference
	Out []*argDifference
}

// Err returns every difference joined into one error, or nil if the
// signatures match.
func (d *funcDifferences) Err() error {
	errs := []error{}
	for i, arg := range d.In {
		if arg != nil {
			errs = append(errs, fmt.Errorf("argument %d: %v != %v", i, arg.A, arg.B))
		}
	}
	for i, out := range d.Out {
		if out != nil {
			errs = append(errs, fmt.Errorf("output %d: %v != %v", i, out.A, out.B))
		}
	}

	return errors.Join(errs...)
}

type argDifference struct {
	A reflect.Type
	B reflect.Type
}

// diffSignatures compares two function types. When skipReceiver is set the
// first parameter is left out, since an override takes its own class as
// receiver.
func diffSignatures(a, b reflect.Type, skipReceiver bool) *funcDifferences {
	ain, bin := inTypes(a), inTypes(b)
	if skipReceiver {
		ain, bin = dropFirst(ain), dropFirst(bin)
	}

	diff := &funcDifferences{
		In:  diffTypes(ain, bin),
		Out: diffTypes(outTypes(a), outTypes(b)),
	}
	if a.IsVariadic() != b.IsVariadic() && len(diff.In) > 0 {
		last := len(diff.In) - 1
		if diff.In[last] == nil {
			diff.In[last] = &argDifference{A: ain[len(ain)-1], B: bin[len(bin)-1]}
		}
	}
	return diff
}

// diffTypes pairs up two type lists. Positions missing from one side are
// reported against nil.
func diffTypes(a, b []reflect.Type) []*argDifference {
	n := max(len(a), len(b))
	diffs := make([]*argDifference, n)
	for i := 0; i < n; i++ {
		var at, bt reflect.Type
		if i < len(a) {
			at = a[i]
		}
		if i < len(b) {
			bt = b[i]
		}
		if at != bt {
			diffs[i] = &argDifference{A: at, B: bt}
		}
	}
	return diffs
}

func inTypes(t reflect.Type) []reflect.Type {
	types := make([]reflect.Type, t.NumIn())
	for i := range types {
		types[i] = t.In(i)
	}
	return types
}

func outTypes(t reflect.Type) []reflect.Type {
	types := make([]reflect.Type, t.NumOut())
	for i := range types {
		types[i] = t.Out(i)
	}
	return types
}

func dropFirst(types []reflect.Type) []reflect.Type {
	if len(types) == 0 {
		return types
	}
	return types[1:]
}
