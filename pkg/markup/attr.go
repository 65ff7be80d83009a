package markup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Attr is a single attribute argument. A nil Value drops the attribute.
type Attr struct {
	Key   string
	Value any
}

// Attrs turns a map into a slice of attribute arguments, sorted by key so
// behavior is deterministic when two keys normalize to the same name.
func Attrs(m map[string]any) []Attr {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]Attr, 0, len(m))
	for _, k := range keys {
		attrs = append(attrs, Attr{Key: k, Value: m[k]})
	}
	return attrs
}

// normalizeAttrKey strips leading/trailing underscores and turns inner
// underscores into hyphens, so attribute names that collide with Go
// identifiers stay writable: class_ → class, http_equiv → http-equiv.
func normalizeAttrKey(key string) string {
	key = strings.Trim(key, "_")
	if !strings.Contains(key, "_") {
		return key
	}
	return strings.ReplaceAll(key, "_", "-")
}

// stringValue converts an attribute value or scalar child to its rendered
// string form.
func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
