// Package dirty provides the public API for lazy HTML and XML generation.
//
// Importing the root package gives the core model under one name:
//
//	import "github.com/dirty-go/dirty"
//
// Usage:
//
//	ul := dirty.NewTag("ul")
//	li := dirty.NewTag("li")
//	list := ul.New(dirty.Range(users, func(u User, _ int) any {
//	    return li.New(u.Name)
//	}))
//	fmt.Println(list.String())
//
// Most HTML work goes through the html subpackage, which predefines the
// element vocabulary; this package re-exports the core model for custom
// vocabularies and XML.
package dirty

import (
	"iter"

	"github.com/dirty-go/dirty/pkg/markup"
)

// =============================================================================
// Core model (re-export from pkg/markup)
// =============================================================================

// Node is anything that can serialize itself as an ordered sequence of
// markup fragments.
type Node = markup.Node

// Tag is an immutable element descriptor shared by every element using it.
type Tag = markup.Tag

// TagOption configures a Tag at construction.
type TagOption = markup.TagOption

// Element is one markup element: a tag, attributes, and children.
type Element = markup.Element

// RawString is markup emitted verbatim, without escaping.
type RawString = markup.RawString

// Attr is one explicit attribute argument.
type Attr = markup.Attr

// UnexpectedTypeError reports an element argument of an unsupported type.
type UnexpectedTypeError = markup.UnexpectedTypeError

// ErrMissingTag is returned by New when the arguments contain no tag.
var ErrMissingTag = markup.ErrMissingTag

// =============================================================================
// Constructors
// =============================================================================

// NewTag creates a tag descriptor.
var NewTag = markup.NewTag

// New builds an element from a tag and arguments, failing without a tag.
var New = markup.New

// Raw wraps pre-rendered markup fragments that must not be escaped.
var Raw = markup.Raw

// Rawf formats raw markup, printf style.
var Rawf = markup.Rawf

// Attrs converts an attribute map into sorted Attr arguments.
var Attrs = markup.Attrs

// Tag construction options.
var (
	WithShortenEmpty = markup.WithShortenEmpty
	WithCDATA        = markup.WithCDATA
	WithOption       = markup.WithOption
)

// =============================================================================
// Child helpers
// =============================================================================

// Group bundles children so they can be passed as one argument.
var Group = markup.Group

// If returns child when condition holds, and nothing otherwise.
var If = markup.If

// When defers child construction until the condition is known to hold.
var When = markup.When

// Range yields one child per item, produced only during rendering.
//
// Example:
//
//	dirty.Range(users, func(u User, i int) any {
//	    return li.New(u.Name)
//	})
func Range[T any](items []T, fn func(item T, index int) any) iter.Seq[any] {
	return markup.Range(items, fn)
}

// Repeat yields fn(0) through fn(n-1), produced only during rendering.
func Repeat(n int, fn func(i int) any) iter.Seq[any] {
	return markup.Repeat(n, fn)
}

// Seq adapts any iterator into a child sequence.
func Seq[T any](s iter.Seq[T]) iter.Seq[any] {
	return markup.Seq(s)
}
