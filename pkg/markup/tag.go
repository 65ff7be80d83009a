package markup

// Tag is an immutable element descriptor: a name plus rendering options.
// Tags are stateless factories; two Elements built from the same Tag do
// not interact, so tags are normally created once as package-level
// variables and shared (see the html package).
type Tag struct {
	name         string
	shortenEmpty bool
	cdata        bool
	extra        map[string]any
}

// TagOption configures a Tag at construction time.
type TagOption func(*Tag)

// WithShortenEmpty controls whether an element with no children collapses
// to a self-closing tag (" />") instead of an open/close pair. On by
// default.
func WithShortenEmpty(on bool) TagOption {
	return func(t *Tag) { t.shortenEmpty = on }
}

// WithCDATA emits the element's text children inside CDATA sections,
// verbatim, instead of escaping them.
func WithCDATA(on bool) TagOption {
	return func(t *Tag) { t.cdata = on }
}

// WithOption stores an option key the renderer does not recognize. Unknown
// options are kept on the Tag and ignored here, so tags stay forward
// compatible with renderers that understand more keys.
func WithOption(key string, value any) TagOption {
	return func(t *Tag) {
		if t.extra == nil {
			t.extra = make(map[string]any)
		}
		t.extra[key] = value
	}
}

// NewTag creates a tag descriptor. The name must be non-empty.
func NewTag(name string, opts ...TagOption) *Tag {
	if name == "" {
		panic("markup: empty tag name")
	}
	t := &Tag{name: name, shortenEmpty: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// ShortenEmpty reports whether a childless element self-closes.
func (t *Tag) ShortenEmpty() bool { return t.shortenEmpty }

// CDATA reports whether text children are wrapped in CDATA sections.
func (t *Tag) CDATA() bool { return t.cdata }

// Option returns a stored unrecognized option and whether it was set.
func (t *Tag) Option(key string) (any, bool) {
	v, ok := t.extra[key]
	return v, ok
}

// String returns the tag name.
func (t *Tag) String() string { return t.name }

// Equal reports whether both tags carry the same name. Options do not
// participate: a tag's identity is its name.
func (t *Tag) Equal(o *Tag) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.name == o.name
}
