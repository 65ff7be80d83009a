package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeAttrKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"class", "class"},
		{"class_", "class"},
		{"_class", "class"},
		{"__class__", "class"},
		{"attr_name", "attr-name"},
		{"data_user_id", "data-user-id"},
		{"_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalizeAttrKey(tt.in); got != tt.want {
				t.Errorf("normalizeAttrKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type stamp struct{ v string }

func (s stamp) String() string { return "stamp:" + s.v }

func TestStringValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"float integral", 3.0, "3"},
		{"stringer", stamp{"a"}, "stamp:a"},
		{"fallback", []byte("b"), "[98]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringValue(tt.in); got != tt.want {
				t.Errorf("stringValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAttrs(t *testing.T) {
	got := Attrs(map[string]any{"b": 2, "a": 1, "c": nil})

	want := []Attr{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: nil}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Attrs mismatch (-want +got):\n%s", diff)
	}
}
