package markup

import (
	"errors"
	"strings"
	"testing"
)

// collect drains a node's fragment sequence into a slice.
func collect(n Node) []string {
	var out []string
	for f := range n.Fragments() {
		out = append(out, f)
	}
	return out
}

func TestElementString(t *testing.T) {
	div := NewTag("div")
	p := NewTag("p")

	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "empty element self-closes",
			el:   div.New(),
			want: "<div />",
		},
		{
			name: "text child",
			el:   p.New("hi"),
			want: "<p>hi</p>",
		},
		{
			name: "nested elements",
			el:   div.New(p.New("hi"), Attr{Key: "class", Value: "x"}),
			want: `<div class="x"><p>hi</p></div>`,
		},
		{
			name: "nil child still forces open and close tags",
			el:   p.New(nil),
			want: "<p></p>",
		},
		{
			name: "attribute only",
			el:   div.New(Attr{Key: "id", Value: "main"}),
			want: `<div id="main" />`,
		},
		{
			name: "scalar children stringify",
			el:   p.New(42, " of ", 3.5, " is ", true),
			want: "<p>42 of 3.5 is true</p>",
		},
		{
			name: "slice child flattens",
			el:   div.New([]any{"a", p.New("b"), nil, "c"}),
			want: "<div>a<p>b</p>c</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementAttributesSorted(t *testing.T) {
	tag := NewTag("input")
	el := tag.New(
		Attr{Key: "type", Value: "text"},
		Attr{Key: "name", Value: "email"},
		Attr{Key: "id", Value: "f1"},
	)

	want := `<input id="f1" name="email" type="text" />`
	if got := el.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestElementAttributeMerging(t *testing.T) {
	div := NewTag("div")

	tests := []struct {
		name string
		el   *Element
		want string
	}{
		{
			name: "map arg merges into attributes",
			el:   div.New("text", map[string]any{"class": "c"}),
			want: `<div class="c">text</div>`,
		},
		{
			name: "map equals Attr form",
			el:   div.New("text", Attr{Key: "class", Value: "c"}),
			want: `<div class="c">text</div>`,
		},
		{
			name: "later map key overrides earlier Attr",
			el:   div.New(Attr{Key: "class", Value: "x"}, map[string]any{"class": "y"}),
			want: `<div class="y" />`,
		},
		{
			name: "later Attr overrides earlier map key",
			el:   div.New(map[string]any{"class": "y"}, Attr{Key: "class", Value: "x"}),
			want: `<div class="x" />`,
		},
		{
			name: "attr slice",
			el:   div.New([]Attr{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}),
			want: `<div a="1" b="2" />`,
		},
		{
			name: "nil value drops the attribute",
			el:   div.New(Attr{Key: "class", Value: "x"}, Attr{Key: "class", Value: nil}),
			want: "<div />",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementNilFiltering(t *testing.T) {
	p := NewTag("p")

	got := p.New(nil, "x", Attr{Key: "class", Value: nil}).String()
	want := p.New("x").String()
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttributeKeyNormalization(t *testing.T) {
	div := NewTag("div")

	tests := []struct {
		key  string
		want string
	}{
		{"class_", `<div class="v" />`},
		{"attr_name", `<div attr-name="v" />`},
		{"__proto__", `<div proto="v" />`},
		{"http_equiv", `<div http-equiv="v" />`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			el := div.New(Attr{Key: tt.key, Value: "v"})
			if got := el.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementEscaping(t *testing.T) {
	div := NewTag("div")

	t.Run("text children are escaped", func(t *testing.T) {
		got := div.New("<b>&").String()
		if got != "<div>&lt;b&gt;&amp;</div>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("raw children pass through verbatim", func(t *testing.T) {
		got := div.New(Raw("<b>&")).String()
		if got != "<div><b>&</div>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested elements are not double escaped", func(t *testing.T) {
		p := NewTag("p")
		got := div.New(p.New("a & b")).String()
		if got != "<div><p>a &amp; b</p></div>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("attribute values are escaped", func(t *testing.T) {
		got := div.New(Attr{Key: "title", Value: `a"b<c>`}).String()
		if got != `<div title="a&quot;b&lt;c&gt;" />` {
			t.Errorf("got %q", got)
		}
	})
}

func TestCDATASection(t *testing.T) {
	script := NewTag("script", WithCDATA(true))

	t.Run("text is wrapped, not escaped", func(t *testing.T) {
		got := script.New("a<b").String()
		if got != "<script><![CDATA[a<b]]></script>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested elements stay outside CDATA", func(t *testing.T) {
		span := NewTag("span")
		got := script.New("a<b", span.New("x & y")).String()
		want := "<script><![CDATA[a<b]]><span>x &amp; y</span></script>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("text pulled from a sequence is wrapped too", func(t *testing.T) {
		got := script.New([]string{"a<b", "c>d"}).String()
		want := "<script><![CDATA[a<b]]><![CDATA[c>d]]></script>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestShortenEmptyTag(t *testing.T) {
	tests := []struct {
		name string
		tag  *Tag
		want string
	}{
		{"default self-closes", NewTag("br"), "<br />"},
		{"disabled keeps the pair", NewTag("script", WithShortenEmpty(false)), "<script></script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.New().String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	div := NewTag("div")

	t.Run("no arguments", func(t *testing.T) {
		_, err := New()
		if !errors.Is(err, ErrMissingTag) {
			t.Fatalf("got %v, want ErrMissingTag", err)
		}
	})

	t.Run("only attribute arguments", func(t *testing.T) {
		_, err := New(map[string]any{"class": "x"})
		if !errors.Is(err, ErrMissingTag) {
			t.Fatalf("got %v, want ErrMissingTag", err)
		}
	})

	t.Run("non-tag in tag position", func(t *testing.T) {
		_, err := New("text")
		var ute *UnexpectedTypeError
		if !errors.As(err, &ute) {
			t.Fatalf("got %T, want *UnexpectedTypeError", err)
		}
		if got := err.Error(); got != "markup: expected Tag, got string" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nil in tag position", func(t *testing.T) {
		_, err := New(nil)
		if err == nil || !strings.Contains(err.Error(), "got <nil>") {
			t.Fatalf("got %v, want nil-type error", err)
		}
	})

	t.Run("attributes may precede the tag", func(t *testing.T) {
		el, err := New(map[string]any{"class": "x"}, div, "hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := el.String(); got != `<div class="x">hi</div>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("children after the tag", func(t *testing.T) {
		el, err := New(div, "a", Attr{Key: "id", Value: "z"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := el.String(); got != `<div id="z">a</div>` {
			t.Errorf("got %q", got)
		}
	})
}

func TestElementAccessors(t *testing.T) {
	div := NewTag("div")
	el := div.New("a", nil, Attr{Key: "class_", Value: "x"})

	if !el.Tag().Equal(div) {
		t.Errorf("Tag() = %v, want div", el.Tag())
	}
	if v, ok := el.Attr("class"); !ok || v != "x" {
		t.Errorf("Attr(class) = %q, %v", v, ok)
	}
	if _, ok := el.Attr("id"); ok {
		t.Error("Attr(id) should be absent")
	}
	if got := len(el.Children()); got != 2 {
		t.Errorf("Children() len = %d, want 2", got)
	}
	if attrs := el.Attributes(); len(attrs) != 1 || attrs["class"] != "x" {
		t.Errorf("Attributes() = %v", attrs)
	}
}

func TestElementStringIsRepeatable(t *testing.T) {
	div := NewTag("div")
	el := div.New("x", NewTag("p").New("y"))

	first := el.String()
	second := el.String()
	if first != second {
		t.Errorf("renders differ: %q vs %q", first, second)
	}
}

func BenchmarkElementString(b *testing.B) {
	div := NewTag("div")
	li := NewTag("li")
	ul := NewTag("ul")

	items := make([]any, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, li.New("item", i))
	}
	page := div.New(Attr{Key: "class", Value: "page"}, ul.New(items))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = page.String()
	}
}

func BenchmarkFragments(b *testing.B) {
	div := NewTag("div")
	page := div.New(
		Attr{Key: "class", Value: "page"},
		Repeat(100, func(i int) any { return div.New("row ", i) }),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for f := range page.Fragments() {
			n += len(f)
		}
	}
}
