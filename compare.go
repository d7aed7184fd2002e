package maybeowned

import "cmp"

// Comparisons delegate to the contained values and ignore the variant:
// Own(5) and Borrow(&five) compare equal. Each comparison comes as a
// symmetric pair, one for two cells and one taking a raw value on the
// right, so a cell can be checked against plain data without wrapping it.
// A raw pointer participates by wrapping it with Borrow; the constructors
// do not copy.

// Equal reports whether two read cells contain equal values.
func Equal[T comparable](a, b *MaybeOwned[T]) bool {
	return *a.Get() == *b.Get()
}

// EqualValue reports whether a read cell contains v.
func EqualValue[T comparable](a *MaybeOwned[T], v T) bool {
	return *a.Get() == v
}

// Compare orders two read cells by their contained values.
func Compare[T cmp.Ordered](a, b *MaybeOwned[T]) int {
	return cmp.Compare(*a.Get(), *b.Get())
}

// CompareValue orders a read cell against a raw value.
func CompareValue[T cmp.Ordered](a *MaybeOwned[T], v T) int {
	return cmp.Compare(*a.Get(), v)
}

// Less reports whether a's value orders before b's.
func Less[T cmp.Ordered](a, b *MaybeOwned[T]) bool {
	return *a.Get() < *b.Get()
}

// LessValue reports whether a's value orders before v.
func LessValue[T cmp.Ordered](a *MaybeOwned[T], v T) bool {
	return *a.Get() < v
}

// EqualMut reports whether two mutable cells contain equal values.
func EqualMut[T comparable](a, b *MaybeOwnedMut[T]) bool {
	return *a.Get() == *b.Get()
}

// EqualMutValue reports whether a mutable cell contains v.
func EqualMutValue[T comparable](a *MaybeOwnedMut[T], v T) bool {
	return *a.Get() == v
}

// CompareMut orders two mutable cells by their contained values.
func CompareMut[T cmp.Ordered](a, b *MaybeOwnedMut[T]) int {
	return cmp.Compare(*a.Get(), *b.Get())
}

// CompareMutValue orders a mutable cell against a raw value.
func CompareMutValue[T cmp.Ordered](a *MaybeOwnedMut[T], v T) int {
	return cmp.Compare(*a.Get(), v)
}

// LessMut reports whether a's value orders before b's.
func LessMut[T cmp.Ordered](a, b *MaybeOwnedMut[T]) bool {
	return *a.Get() < *b.Get()
}

// LessMutValue reports whether a's value orders before v.
func LessMutValue[T cmp.Ordered](a *MaybeOwnedMut[T], v T) bool {
	return *a.Get() < v
}
