package helper

import (
	"fmt"
	"runtime"

	"github.com/pboyd/reclass"
)

// Frame is one caller found by Strace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Strace returns up to count stack frames, starting with the function that
// calls it and walking outwards. Fewer frames are returned when the stack is
// shallower.
//
//	f1() -> f2() -> f3() -> Strace(2) = [f3, f2]
func Strace(count int) ([]Frame, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must be non-negative: %d", reclass.ErrValue, count)
	}
	if count == 0 {
		return []Frame{}, nil
	}

	// Skip runtime.Callers and Strace.
	pcs := make([]uintptr, count)
	n := runtime.Callers(2, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		if f.Function != "" {
			out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		}
		if !more || len(out) == count {
			break
		}
	}
	return out, nil
}
