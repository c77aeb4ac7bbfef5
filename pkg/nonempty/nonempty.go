// Package nonempty provides a sequence type that always holds at least one
// element.
//
// A [Slice] is built from a mandatory head element plus a possibly empty
// tail, so the empty state has no representation at all. Code that receives
// a [Slice] reads its first element with [Slice.Head], which cannot fail.
//
// There are two ways to build one:
//
//	// The caller already holds a first element: no check is needed.
//	dirs := nonempty.Of("/etc/app", "/home/user/.config/app")
//
//	// The source may be empty: validate once, at the boundary.
//	dirs, err := nonempty.TryFrom(strings.Split(raw, ","))
//	if err != nil {
//	    return err // errors.Is(err, nonempty.ErrEmpty)
//	}
//
//	initCache(dirs.Head())
//
// For an ordinary slice, [First] is the fallible counterpart of [Slice.Head].
package nonempty

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Slice is an ordered sequence with at least one element.
//
// The zero value is a one-element sequence holding the zero value of T.
// Fields are unexported, so a Slice can only come from [Of], [TryFrom] or
// [Slice.UnmarshalJSON], all of which keep the invariant.
//
// Slice is safe for concurrent reads. Accessors returning slices return
// fresh copies.
type Slice[T any] struct {
	head T
	tail []T
}

// Of returns a Slice with the given head followed by tail, in order.
//
// Of cannot fail: the head parameter is required, so there is no way to pass
// zero elements. Prefer it over [TryFrom] whenever a first element is already
// in hand.
func Of[T any](head T, tail ...T) Slice[T] {
	return Slice[T]{head: head, tail: cloneTail(tail)}
}

// TryFrom converts items into a Slice. The first element becomes the head
// and the remaining elements form the tail, in their original order.
//
// Returns [ErrEmpty] if items is nil or has length zero. items is not
// retained.
func TryFrom[T any](items []T) (Slice[T], error) {
	if len(items) == 0 {
		return Slice[T]{}, ErrEmpty
	}

	return Slice[T]{head: items[0], tail: cloneTail(items[1:])}, nil
}

// Head returns the first element.
func (s Slice[T]) Head() T {
	return s.head
}

// HeadPtr returns a pointer to the stored first element. It is never nil.
func (s *Slice[T]) HeadPtr() *T {
	return &s.head
}

// Tail returns a copy of every element after the head. The result is empty,
// never nil, for a single-element Slice.
func (s Slice[T]) Tail() []T {
	out := make([]T, len(s.tail))
	copy(out, s.tail)

	return out
}

// Len returns the number of elements. It is always at least 1.
func (s Slice[T]) Len() int {
	return 1 + len(s.tail)
}

// Slice returns the head followed by the tail as an ordinary slice.
// This drops the non-empty guarantee; use it when handing the elements to
// code that accepts any slice.
func (s Slice[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	out = append(out, s.head)
	out = append(out, s.tail...)

	return out
}

// All iterates over index/element pairs, starting with the head at index 0.
func (s Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !yield(0, s.head) {
			return
		}

		for i, v := range s.tail {
			if !yield(i+1, v) {
				return
			}
		}
	}
}

func (s Slice[T]) String() string {
	return fmt.Sprint(s.Slice())
}

// MarshalJSON encodes s as a JSON array.
func (s Slice[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes a JSON array into s. An empty array or null returns
// an error wrapping [ErrEmpty] and leaves s unchanged.
func (s *Slice[T]) UnmarshalJSON(data []byte) error {
	var items []T

	err := json.Unmarshal(data, &items)
	if err != nil {
		return err
	}

	decoded, err := TryFrom(items)
	if err != nil {
		return fmt.Errorf("decode json array: %w", err)
	}

	*s = decoded

	return nil
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Slice[T]) bool {
	return a.head == b.head && slices.Equal(a.tail, b.tail)
}

func cloneTail[T any](tail []T) []T {
	if len(tail) == 0 {
		return nil
	}

	out := make([]T, len(tail))
	copy(out, tail)

	return out
}
