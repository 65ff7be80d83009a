// Package render writes markup fragment streams to strings and writers.
//
// The markup types render themselves via String(), so this package is only
// needed when output goes to an io.Writer (files, sockets, HTTP response
// bodies) or when the flush cadence matters (see Stream).
package render

import (
	"io"
	"strings"

	"github.com/dirty-go/dirty/pkg/markup"
)

// String renders a node to a single string.
func String(n markup.Node) string {
	var b strings.Builder
	for f := range n.Fragments() {
		b.WriteString(f)
	}
	return b.String()
}

// WriteTo streams a node's fragments to w and returns the bytes written.
// Writing stops at the first write error; fragments already written stay
// written, and lazy children past the failure point are never pulled.
func WriteTo(w io.Writer, n markup.Node) (int64, error) {
	var written int64
	var err error
	for f := range n.Fragments() {
		var nn int
		nn, err = io.WriteString(w, f)
		written += int64(nn)
		if err != nil {
			break
		}
	}
	return written, err
}
