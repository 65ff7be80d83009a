package html

import (
	"sort"
	"strings"

	"github.com/dirty-go/dirty/pkg/markup"
)

// attr creates a markup.Attr with the given key and value.
func attr(key string, value any) markup.Attr {
	return markup.Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) markup.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) markup.Attr { return attr("class", strings.Join(classes, " ")) }

// Classes merges class values into one class attribute. Accepts string,
// []string, and map[string]bool; empty names are skipped and map-driven
// classes come out sorted, so the rendered value is deterministic.
func Classes(classes ...any) markup.Attr {
	var names []string
	for _, c := range classes {
		switch v := c.(type) {
		case nil:
		case string:
			if v != "" {
				names = append(names, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					names = append(names, s)
				}
			}
		case map[string]bool:
			on := make([]string, 0, len(v))
			for name, include := range v {
				if include && name != "" {
					on = append(on, name)
				}
			}
			sort.Strings(on)
			names = append(names, on...)
		}
	}
	return attr("class", strings.Join(names, " "))
}

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) markup.Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) markup.Attr { return attr("title", title) }

// Role sets the role attribute.
func Role(role string) markup.Attr { return attr("role", role) }

// Lang sets the lang attribute.
func Lang(lang string) markup.Attr { return attr("lang", lang) }

// Data attributes

// DataAttr creates a data-* attribute (named to avoid conflict with the Data element).
// Example: DataAttr("id", "123") renders data-id="123".
func DataAttr(key, value string) markup.Attr { return attr("data-"+key, value) }

// Link attributes

// Href sets the href attribute.
func Href(url string) markup.Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) markup.Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) markup.Attr { return attr("rel", rel) }

// Media attributes

// Src sets the src attribute.
func Src(url string) markup.Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) markup.Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) markup.Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) markup.Attr { return attr("height", h) }

// Form attributes

// Name sets the name attribute.
func Name(name string) markup.Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) markup.Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) markup.Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) markup.Attr { return attr("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) markup.Attr { return attr("for", id) }

// FormAttr sets the form attribute (named to avoid conflict with the Form element).
func FormAttr(id string) markup.Attr { return attr("form", id) }

// Action sets the action attribute.
func Action(url string) markup.Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) markup.Attr { return attr("method", method) }

// Rows sets the rows attribute.
func Rows(n int) markup.Attr { return attr("rows", n) }

// Cols sets the cols attribute.
func Cols(n int) markup.Attr { return attr("cols", n) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() markup.Attr { return attr("disabled", true) }

// Checked sets the checked attribute.
func Checked() markup.Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() markup.Attr { return attr("selected", true) }

// Required sets the required attribute.
func Required() markup.Attr { return attr("required", true) }

// Multiple sets the multiple attribute.
func Multiple() markup.Attr { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() markup.Attr { return attr("autofocus", true) }

// Document and meta attributes

// Charset sets the charset attribute.
func Charset(charset string) markup.Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) markup.Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) markup.Attr { return attr("http-equiv", value) }
