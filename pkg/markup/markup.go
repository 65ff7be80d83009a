// Package markup builds HTML/XML documents from nested Go values and
// serializes them as a lazy sequence of string fragments.
//
// A Tag is an immutable descriptor (name plus rendering options); applying
// it produces an Element:
//
//	div := markup.NewTag("div")
//	p := markup.NewTag("p")
//	doc := div.New(p.New("hi"), markup.Attr{Key: "class", Value: "x"})
//	fmt.Println(doc) // <div class="x"><p>hi</p></div>
//
// Serialization is pull-based: ranging over Fragments drives child
// traversal one step per fragment, so children may be lazy sequences
// (iter.Seq[any]) of arbitrary or unbounded length and the document can be
// streamed without buffering. Text is escaped on emission; RawString
// fragments pass through verbatim.
package markup

import "iter"

// Node is a value that serializes itself as a lazy sequence of
// ready-to-write string fragments. RawString and *Element are the two
// implementations in this package; the xml package adds a document
// wrapper.
type Node interface {
	Fragments() iter.Seq[string]
}
