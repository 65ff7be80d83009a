package markup

import (
	"iter"
	"sort"
	"strings"
)

// Element is a tag application: one node of the markup tree, holding the
// tag, an ordered child list, and an attribute map. Elements are immutable
// once constructed.
type Element struct {
	tag      *Tag
	children []any
	attrs    map[string]any
}

// New builds an Element from a mixed argument list. Attribute arguments
// (Attr, []Attr, map[string]any) may appear anywhere and never count as
// children; the first remaining argument must be the *Tag; everything
// after it is kept as a child, nil markers included. It returns
// ErrMissingTag when no tag appears, and *UnexpectedTypeError when
// something else arrives in tag position.
//
// Applying a known tag directly via (*Tag).New is the common path and
// cannot fail.
func New(args ...any) (*Element, error) {
	var tag *Tag
	rest := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case *Tag:
			if tag == nil && v != nil {
				tag = v
				continue
			}
			rest = append(rest, arg)
		case Attr, []Attr, map[string]any:
			rest = append(rest, arg)
		default:
			if tag == nil {
				return nil, &UnexpectedTypeError{Value: arg}
			}
			rest = append(rest, arg)
		}
	}
	if tag == nil {
		return nil, ErrMissingTag
	}
	return tag.New(rest...), nil
}

// New applies the tag to the given children and attributes. Arguments are
// processed left to right: Attr, []Attr, and map[string]any populate the
// attribute set (a later key overrides an earlier one, nil values drop the
// key); every other argument becomes a child in order. nil children are
// kept as markers — they render nothing but count toward "has children".
func (t *Tag) New(args ...any) *Element {
	e := &Element{tag: t}
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			e.setAttr(v.Key, v.Value)
		case []Attr:
			for _, a := range v {
				e.setAttr(a.Key, a.Value)
			}
		case map[string]any:
			for _, a := range Attrs(v) {
				e.setAttr(a.Key, a.Value)
			}
		default:
			e.children = append(e.children, arg)
		}
	}
	return e
}

// setAttr normalizes the key and stores the value. A nil value removes the
// key, so attribute maps never hold dropped attributes.
func (e *Element) setAttr(key string, value any) {
	key = normalizeAttrKey(key)
	if key == "" {
		return
	}
	if value == nil {
		delete(e.attrs, key)
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]any)
	}
	e.attrs[key] = value
}

// Tag returns the element's tag.
func (e *Element) Tag() *Tag { return e.tag }

// Attr returns an attribute's rendered string form by its normalized name,
// with ok reporting presence.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[normalizeAttrKey(name)]
	if !ok {
		return "", false
	}
	return stringValue(v), true
}

// Attributes returns a copy of the attribute map, keys normalized.
func (e *Element) Attributes() map[string]any {
	out := make(map[string]any, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Children returns a copy of the child list as constructed, nil markers
// included.
func (e *Element) Children() []any {
	return append([]any(nil), e.children...)
}

// Fragments returns the element's serialization as a lazy sequence of
// string fragments: the open tag, one fragment per attribute (sorted by
// name), the flattened children, and the close tag. Each pull advances the
// traversal a single step; breaking out of the range stops it without
// draining lazy children.
func (e *Element) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		e.emit(yield)
	}
}

// emit drives one traversal. Returns false once yield reports the
// consumer stopped.
func (e *Element) emit(yield func(string) bool) bool {
	if !yield("<" + e.tag.name) {
		return false
	}

	if len(e.attrs) > 0 {
		keys := make([]string, 0, len(e.attrs))
		for k := range e.attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !yield(" " + k + `="` + escapeAttr(stringValue(e.attrs[k])) + `"`) {
				return false
			}
		}
	}

	// "Has children" is judged on the list as constructed: a lone nil
	// marker still forces the open/close pair.
	if len(e.children) == 0 {
		if e.tag.shortenEmpty {
			return yield(" />")
		}
		return yield("></" + e.tag.name + ">")
	}

	if !yield(">") {
		return false
	}
	if !emitChildren(e.children, e.tag.cdata, yield) {
		return false
	}
	return yield("</" + e.tag.name + ">")
}

// String renders the element to a single string by joining its fragment
// sequence with no separator.
func (e *Element) String() string {
	var b strings.Builder
	for f := range e.Fragments() {
		b.WriteString(f)
	}
	return b.String()
}
