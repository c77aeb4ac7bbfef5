package nonempty

import "github.com/samber/mo"

// First returns the first element of an ordinary slice, or [mo.None] when
// items is empty.
//
// A plain slice may be empty, so its head can only be offered as an option.
// Once the slice has gone through [TryFrom], [Slice.Head] needs no option.
func First[T any](items []T) mo.Option[T] {
	if len(items) == 0 {
		return mo.None[T]()
	}

	return mo.Some(items[0])
}
