package maybeowned

import "fmt"

// MaybeOwnedMut holds either its own T or an exclusive pointer to one.
//
// Exclusivity is the whole contract: while a cell built with BorrowMut is
// alive, nothing else — the true owner included — may read or write the
// pointee except through this cell. Go does not enforce that; callers must.
// In exchange GetMut works for both variants, so code can mutate through
// the cell without caring where the value lives.
type MaybeOwnedMut[T any] struct {
	owned T
	ref   *T // nil means the cell owns the value
}

// OwnMut wraps v in an owned mutable cell.
func OwnMut[T any](v T) MaybeOwnedMut[T] {
	return MaybeOwnedMut[T]{owned: v}
}

// BorrowMut wraps an exclusive pointer in a borrowed mutable cell.
// Panics if p is nil. No other access to the pointee may happen while the
// cell is in use.
func BorrowMut[T any](p *T) MaybeOwnedMut[T] {
	if p == nil {
		panic("maybeowned: BorrowMut called with nil pointer")
	}
	return MaybeOwnedMut[T]{ref: p}
}

// IsOwned reports whether the cell owns its value.
func (m *MaybeOwnedMut[T]) IsOwned() bool { return m.ref == nil }

// IsBorrowed reports whether the cell holds an exclusive pointer.
func (m *MaybeOwnedMut[T]) IsBorrowed() bool { return m.ref != nil }

// Get returns a read-only view of the contained value.
func (m *MaybeOwnedMut[T]) Get() *T {
	if m.ref != nil {
		return m.ref
	}
	return &m.owned
}

// GetMut returns a writable pointer for either variant: the cell's own
// storage if owned, the exclusive pointer if borrowed. Writes through a
// borrowed cell land in the original value.
func (m *MaybeOwnedMut[T]) GetMut() *T {
	if m.ref != nil {
		return m.ref
	}
	return &m.owned
}

// String formats the contained value.
func (m MaybeOwnedMut[T]) String() string {
	return fmt.Sprint(*m.Get())
}

// MakeOwnedMut consumes the cell and returns the value in owned form,
// cloning only in the borrowed case. The cell must not be used after.
//
// This is the only copying operation the mutable cell has. There is
// deliberately no Clone for MaybeOwnedMut: duplicating a cell that holds an
// exclusive pointer would create two live writers of the same value.
func MakeOwnedMut[T Cloner[T]](m MaybeOwnedMut[T]) T {
	if m.ref != nil {
		return (*m.ref).Clone()
	}
	return m.owned
}

// MakeOwnedMutFunc is MakeOwnedMut with a caller-supplied clone func.
func MakeOwnedMutFunc[T any](m MaybeOwnedMut[T], clone func(T) T) T {
	if m.ref != nil {
		return clone(*m.ref)
	}
	return m.owned
}
