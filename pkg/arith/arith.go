// Package arith adds a binary-operator surface for cells of numeric types.
//
// It lives in its own package so it can be left out entirely: importing the
// core never pulls it in, and its API is less settled than the cell
// contract itself. Every operator reads its operands through the cells and
// wraps the result in a fresh owned cell — a computed value has no external
// owner, so there is never a borrowed result.
package arith

import (
	"golang.org/x/exp/constraints"

	"github.com/rustonaut/maybeowned"
)

// Number constrains the contained type to the built-in numerics.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns Own(l + r).
func Add[T Number](l, r *maybeowned.MaybeOwned[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() + *r.Get())
}

// AddValue returns Own(l + v) for a raw right-hand side.
func AddValue[T Number](l *maybeowned.MaybeOwned[T], v T) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() + v)
}

// Sub returns Own(l - r).
func Sub[T Number](l, r *maybeowned.MaybeOwned[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() - *r.Get())
}

// SubValue returns Own(l - v) for a raw right-hand side.
func SubValue[T Number](l *maybeowned.MaybeOwned[T], v T) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() - v)
}

// Mul returns Own(l * r).
func Mul[T Number](l, r *maybeowned.MaybeOwned[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() * *r.Get())
}

// MulValue returns Own(l * v) for a raw right-hand side.
func MulValue[T Number](l *maybeowned.MaybeOwned[T], v T) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() * v)
}

// Div returns Own(l / r). Division by zero behaves as it does for T.
func Div[T Number](l, r *maybeowned.MaybeOwned[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() / *r.Get())
}

// DivValue returns Own(l / v) for a raw right-hand side.
func DivValue[T Number](l *maybeowned.MaybeOwned[T], v T) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() / v)
}

// Neg returns Own(-v).
func Neg[T constraints.Signed | constraints.Float](v *maybeowned.MaybeOwned[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(-*v.Get())
}

// AddMut reads two mutable cells and returns the sum as an owned read cell.
func AddMut[T Number](l, r *maybeowned.MaybeOwnedMut[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() + *r.Get())
}

// SubMut reads two mutable cells and returns the difference as an owned
// read cell.
func SubMut[T Number](l, r *maybeowned.MaybeOwnedMut[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() - *r.Get())
}

// MulMut reads two mutable cells and returns the product as an owned read
// cell.
func MulMut[T Number](l, r *maybeowned.MaybeOwnedMut[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() * *r.Get())
}

// DivMut reads two mutable cells and returns the quotient as an owned read
// cell.
func DivMut[T Number](l, r *maybeowned.MaybeOwnedMut[T]) maybeowned.MaybeOwned[T] {
	return maybeowned.Own(*l.Get() / *r.Get())
}

// The compound assignments only exist for the mutable cell: GetMut works
// for both of its variants, so no variant rewrite is needed. The read cell
// has no in-place form; convert with MakeOwned first.

// AddAssign adds v into the cell's value in place.
func AddAssign[T Number](l *maybeowned.MaybeOwnedMut[T], v T) {
	*l.GetMut() += v
}

// SubAssign subtracts v from the cell's value in place.
func SubAssign[T Number](l *maybeowned.MaybeOwnedMut[T], v T) {
	*l.GetMut() -= v
}

// MulAssign multiplies the cell's value by v in place.
func MulAssign[T Number](l *maybeowned.MaybeOwnedMut[T], v T) {
	*l.GetMut() *= v
}

// DivAssign divides the cell's value by v in place.
func DivAssign[T Number](l *maybeowned.MaybeOwnedMut[T], v T) {
	*l.GetMut() /= v
}
