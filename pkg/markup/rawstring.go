package markup

import (
	"fmt"
	"iter"
	"strings"
)

// RawString is an ordered sequence of pre-escaped fragments. Its content
// is emitted verbatim, with no escaping and no separator, so it must never
// carry untrusted input.
type RawString struct {
	fragments []string
}

// Raw builds a RawString from zero or more fragments. Zero fragments is
// valid and renders nothing.
func Raw(fragments ...string) RawString {
	return RawString{fragments: append([]string(nil), fragments...)}
}

// Rawf builds a single-fragment RawString from a format string.
func Rawf(format string, args ...any) RawString {
	return RawString{fragments: []string{fmt.Sprintf(format, args...)}}
}

// Fragments yields the fragments verbatim, in order.
func (r RawString) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range r.fragments {
			if !yield(f) {
				return
			}
		}
	}
}

// String joins the fragments with no separator.
func (r RawString) String() string {
	switch len(r.fragments) {
	case 0:
		return ""
	case 1:
		return r.fragments[0]
	}
	var b strings.Builder
	for _, f := range r.fragments {
		b.WriteString(f)
	}
	return b.String()
}
