// Package xml wraps a markup tree in an XML document: an XML declaration
// followed by the root node's fragments, produced lazily.
package xml

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dirty-go/dirty/pkg/markup"
)

// Declaration defaults.
const (
	DefaultVersion  = "1.0"
	DefaultEncoding = "utf-8"
)

// Prolog returns the XML declaration as a raw fragment.
func Prolog(version, encoding string) markup.RawString {
	return markup.Raw(fmt.Sprintf("<?xml version=%q encoding=%q?>", version, encoding))
}

// Document is a root node prefixed with an XML declaration.
type Document struct {
	root     markup.Node
	version  string
	encoding string
}

// Option configures a Document.
type Option func(*Document)

// WithVersion overrides the declared XML version.
func WithVersion(v string) Option {
	return func(d *Document) { d.version = v }
}

// WithEncoding overrides the declared encoding.
func WithEncoding(e string) Option {
	return func(d *Document) { d.encoding = e }
}

// New wraps root in a Document. A nil root yields the declaration alone.
func New(root markup.Node, opts ...Option) *Document {
	d := &Document{root: root, version: DefaultVersion, encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fragments yields the declaration and then the root's fragments. The root
// is driven lazily, the same as ranging over it directly.
func (d *Document) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range Prolog(d.version, d.encoding).Fragments() {
			if !yield(f) {
				return
			}
		}
		if d.root == nil {
			return
		}
		for f := range d.root.Fragments() {
			if !yield(f) {
				return
			}
		}
	}
}

// String renders the whole document.
func (d *Document) String() string {
	var b strings.Builder
	for f := range d.Fragments() {
		b.WriteString(f)
	}
	return b.String()
}
