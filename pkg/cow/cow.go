// Package cow is a minimal clone-on-write container and the interop bridge
// between it and the ownership cells.
//
// Unlike a cell, a Cow requires the duplication capability up front and may
// rewrite its own variant: ToMut silently clones borrowed data into owned
// storage. That trade-off is what the cells deliberately avoid, so the
// bridge is one struct and two conversions rather than a shared core.
package cow

import "github.com/rustonaut/maybeowned"

// Cow holds either its own T or a shared pointer, and clones on first
// mutable access. The zero value is an owned zero T.
type Cow[T maybeowned.Cloner[T]] struct {
	owned T
	ref   *T // nil means owned
}

// Owned wraps v in an owned Cow.
func Owned[T maybeowned.Cloner[T]](v T) Cow[T] {
	return Cow[T]{owned: v}
}

// Borrowed wraps a shared pointer. Panics if p is nil.
func Borrowed[T maybeowned.Cloner[T]](p *T) Cow[T] {
	if p == nil {
		panic("cow: Borrowed called with nil pointer")
	}
	return Cow[T]{ref: p}
}

// IsOwned reports whether the Cow owns its value.
func (c *Cow[T]) IsOwned() bool { return c.ref == nil }

// Get returns a read-only view of the contained value.
func (c *Cow[T]) Get() *T {
	if c.ref != nil {
		return c.ref
	}
	return &c.owned
}

// ToMut returns a writable pointer, cloning the pointee into owned storage
// first if the Cow was borrowed. After ToMut the Cow is always owned.
func (c *Cow[T]) ToMut() *T {
	if c.ref != nil {
		c.owned = (*c.ref).Clone()
		c.ref = nil
	}
	return &c.owned
}

// IntoOwned consumes the Cow and returns the value, cloning only in the
// borrowed case.
func (c Cow[T]) IntoOwned() T {
	if c.ref != nil {
		return (*c.ref).Clone()
	}
	return c.owned
}

// FromCell converts a read cell into a Cow with the same variant. No data
// is copied: an owned cell moves its value, a borrowed cell shares its
// pointer.
func FromCell[T maybeowned.Cloner[T]](m maybeowned.MaybeOwned[T]) Cow[T] {
	if m.IsBorrowed() {
		return Cow[T]{ref: m.Get()}
	}
	return Cow[T]{owned: *m.Get()}
}

// ToCell converts a Cow into a read cell with the same variant, again
// without copying.
func ToCell[T maybeowned.Cloner[T]](c Cow[T]) maybeowned.MaybeOwned[T] {
	if c.ref != nil {
		return maybeowned.Borrow(c.ref)
	}
	return maybeowned.Own(c.owned)
}
