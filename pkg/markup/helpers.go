package markup

import "iter"

// Range lazily maps items through fn as a child sequence. Each element is
// built only when the serializer reaches it, so large slices stream
// without materializing their markup up front.
func Range[T any](items []T, fn func(item T, index int) any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i, item := range items {
			if !yield(fn(item, i)) {
				return
			}
		}
	}
}

// Repeat lazily produces fn(0) .. fn(n-1) as a child sequence.
func Repeat(n int, fn func(i int) any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < n; i++ {
			if !yield(fn(i)) {
				return
			}
		}
	}
}

// Seq adapts a typed sequence into a child sequence.
func Seq[T any](s iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Group bundles children without introducing a wrapper element.
func Group(children ...any) []any {
	return children
}

// If returns child when the condition holds, nil otherwise. nil children
// render nothing, which makes conditional markup read flat:
//
//	div.New("hello", markup.If(loggedIn, logoutLink))
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// When is If with lazy construction: fn runs only when the condition
// holds.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return nil
}
