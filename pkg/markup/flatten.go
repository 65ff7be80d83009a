package markup

import "iter"

// childKind is the child classification discriminator.
type childKind uint8

const (
	childSkip childKind = iota // nil, renders nothing
	childText                  // plain text, escaped (or CDATA-wrapped) on emit
	childRaw                   // RawString, fragments re-emitted verbatim
	childNode                  // nested Node, drives its own fragment sequence
	childSeq                   // lazy sequence or slice, recursed element by element
)

// String returns the string representation of the childKind.
func (k childKind) String() string {
	switch k {
	case childSkip:
		return "Skip"
	case childText:
		return "Text"
	case childRaw:
		return "Raw"
	case childNode:
		return "Node"
	case childSeq:
		return "Seq"
	default:
		return "Unknown"
	}
}

// classified is a child value tagged with its kind. Exactly one of the
// payload fields is set, matching the kind.
type classified struct {
	kind childKind
	text string
	node Node
	seq  iter.Seq[any]
}

// classify tags a child value. Strings and RawStrings are leaves, never
// recursed into; nil renders nothing; sequences and slices recurse; any
// other scalar becomes text via its standard string form.
func classify(v any) classified {
	switch c := v.(type) {
	case nil:
		return classified{kind: childSkip}

	case string:
		return classified{kind: childText, text: c}

	case RawString:
		return classified{kind: childRaw, node: c}

	case *Element:
		if c == nil {
			return classified{kind: childSkip}
		}
		return classified{kind: childNode, node: c}

	case iter.Seq[any]:
		return classified{kind: childSeq, seq: c}

	case func(func(any) bool):
		return classified{kind: childSeq, seq: iter.Seq[any](c)}

	case []any:
		return classified{kind: childSeq, seq: sliceSeq(c)}

	case []string:
		return classified{kind: childSeq, seq: sliceSeq(c)}

	case []*Element:
		return classified{kind: childSeq, seq: sliceSeq(c)}

	case []RawString:
		return classified{kind: childSeq, seq: sliceSeq(c)}

	case []Node:
		return classified{kind: childSeq, seq: sliceSeq(c)}

	case Node:
		return classified{kind: childNode, node: c}

	default:
		return classified{kind: childText, text: stringValue(c)}
	}
}

// sliceSeq adapts a slice into a child sequence.
func sliceSeq[T any](items []T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// emitChildren walks the children depth-first, pushing each flattened
// leaf's fragments through yield. It pulls lazy sequences one element at a
// time, so unbounded or side-effecting children are driven exactly as far
// as the consumer reads. Returns false once yield reports the consumer
// stopped.
func emitChildren(children []any, cdata bool, yield func(string) bool) bool {
	for _, child := range children {
		if !emitChild(child, cdata, yield) {
			return false
		}
	}
	return true
}

func emitChild(v any, cdata bool, yield func(string) bool) bool {
	c := classify(v)
	switch c.kind {
	case childText:
		return emitText(c.text, cdata, yield)

	case childRaw, childNode:
		if el, ok := c.node.(*Element); ok {
			return el.emit(yield)
		}
		for f := range c.node.Fragments() {
			if !yield(f) {
				return false
			}
		}
		return true

	case childSeq:
		for item := range c.seq {
			if !emitChild(item, cdata, yield) {
				return false
			}
		}
		return true

	default: // childSkip
		return true
	}
}

func emitText(text string, cdata bool, yield func(string) bool) bool {
	if cdata {
		return yield("<![CDATA[" + text + "]]>")
	}
	return yield(escapeText(text))
}
