package helper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pboyd/reclass"
)

// Split cuts s around every run of characters found in delims. With
// maxSplit > 0 at most maxSplit cuts are made and the rest of s is the last
// element.
func Split(s, delims string, maxSplit int) ([]string, error) {
	if delims == "" {
		return nil, fmt.Errorf("%w: no delimiters", reclass.ErrValue)
	}

	var class strings.Builder
	class.WriteByte('[')
	for _, r := range delims {
		fmt.Fprintf(&class, `\x{%x}`, r)
	}
	class.WriteString("]+")

	n := -1
	if maxSplit > 0 {
		n = maxSplit + 1
	}
	return regexp.MustCompile(class.String()).Split(s, n), nil
}
