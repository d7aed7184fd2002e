// Package maybeowned provides cells that hold either an owned value or a
// pointer to a value owned elsewhere, and expose access to it uniformly.
//
// Unlike a clone-on-write container, a cell never requires the contained
// type to be duplicable: only the operations that actually have to copy
// (see MakeOwned) ask for that capability, and they ask at the call site.
// This makes the cells usable with types that have no sensible copy at all,
// and lets an API accept owned and shared data through one parameter.
//
// MaybeOwned is the read-only cell: a Borrowed cell must never be written
// through, only read. MaybeOwnedMut is the mutable counterpart; its borrowed
// pointer is treated as exclusive for the life of the cell. Go cannot check
// either rule at compile time, so both are caller contracts: a Borrowed cell
// used after its source is gone, or a mutable borrow aliased by another live
// accessor, is a bug in the caller, not a recoverable error.
package maybeowned

import "fmt"

// Cloner is the duplication capability: the ability to produce an
// independent copy of a value. It is supplied by the caller's type and is
// only required by the operations that must copy.
type Cloner[T any] interface {
	Clone() T
}

// MaybeOwned holds either its own T or a shared read-only pointer to one.
//
// The zero value is an owned zero T; there is no empty state. A cell built
// with Borrow reads through the held pointer on every access, so changes
// made by the true owner are always visible.
type MaybeOwned[T any] struct {
	owned T
	ref   *T // nil means the cell owns the value
}

// Own wraps v in an owned cell.
func Own[T any](v T) MaybeOwned[T] {
	return MaybeOwned[T]{owned: v}
}

// Borrow wraps a shared pointer in a borrowed cell. The pointee must stay
// alive and must not be written through the cell. Panics if p is nil.
func Borrow[T any](p *T) MaybeOwned[T] {
	if p == nil {
		panic("maybeowned: Borrow called with nil pointer")
	}
	return MaybeOwned[T]{ref: p}
}

// IsOwned reports whether the cell owns its value.
func (m *MaybeOwned[T]) IsOwned() bool { return m.ref == nil }

// IsBorrowed reports whether the cell holds a shared pointer.
func (m *MaybeOwned[T]) IsBorrowed() bool { return m.ref != nil }

// Get returns a read-only view of the contained value: the cell's own
// storage if owned, the held pointer if borrowed. Callers must not write
// through the returned pointer; use AsMut for that.
func (m *MaybeOwned[T]) Get() *T {
	if m.ref != nil {
		return m.ref
	}
	return &m.owned
}

// AsMut returns a writable pointer only when the cell owns its value.
// For a borrowed cell it reports false: writing through a shared pointer
// is never allowed, and AsMut never copies to work around that.
func (m *MaybeOwned[T]) AsMut() (*T, bool) {
	if m.ref != nil {
		return nil, false
	}
	return &m.owned, true
}

// String formats the contained value.
func (m MaybeOwned[T]) String() string {
	return fmt.Sprint(*m.Get())
}

// MakeOwned consumes the cell and returns the value in owned form.
// An owned cell hands its value over directly; a borrowed cell copies the
// pointee through its Clone capability. The cell must not be used after.
//
// This is a function rather than a method because it is the one read-cell
// operation that needs the Cloner constraint, which a method cannot carry.
func MakeOwned[T Cloner[T]](m MaybeOwned[T]) T {
	if m.ref != nil {
		return (*m.ref).Clone()
	}
	return m.owned
}

// MakeOwnedFunc is MakeOwned for types without a Clone method; clone is
// only invoked in the borrowed case.
func MakeOwnedFunc[T any](m MaybeOwned[T], clone func(T) T) T {
	if m.ref != nil {
		return clone(*m.ref)
	}
	return m.owned
}

// Clone duplicates the cell: an owned cell clones its value, a borrowed
// cell shares the same pointer. The variant is preserved.
func Clone[T Cloner[T]](m *MaybeOwned[T]) MaybeOwned[T] {
	if m.ref != nil {
		return MaybeOwned[T]{ref: m.ref}
	}
	return MaybeOwned[T]{owned: m.owned.Clone()}
}

// Parse builds an owned cell from a string form of T. Parsed values are
// always owned; there is nobody to borrow them from.
func Parse[T any](s string, parse func(string) (T, error)) (MaybeOwned[T], error) {
	v, err := parse(s)
	if err != nil {
		return MaybeOwned[T]{}, err
	}
	return Own(v), nil
}
