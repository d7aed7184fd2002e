package arith

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustonaut/maybeowned"
)

func TestAddAcrossVariants(t *testing.T) {
	l, r := 2, 3

	a := maybeowned.Own(2)
	b := maybeowned.Own(3)
	sum := Add(&a, &b)
	require.True(t, sum.IsOwned())
	assert.True(t, maybeowned.EqualValue(&sum, 5))

	c := maybeowned.Borrow(&l)
	d := maybeowned.Borrow(&r)
	sum = Add(&c, &d)
	require.True(t, sum.IsOwned())
	assert.True(t, maybeowned.EqualValue(&sum, 5))
}

func TestBinaryOps(t *testing.T) {
	a := maybeowned.Own(10)
	b := maybeowned.Own(4)

	assert.True(t, maybeowned.EqualValue(ptr(Sub(&a, &b)), 6))
	assert.True(t, maybeowned.EqualValue(ptr(Mul(&a, &b)), 40))
	assert.True(t, maybeowned.EqualValue(ptr(Div(&a, &b)), 2))
}

func TestValueForms(t *testing.T) {
	n := 7
	a := maybeowned.Borrow(&n)

	assert.True(t, maybeowned.EqualValue(ptr(AddValue(&a, 3)), 10))
	assert.True(t, maybeowned.EqualValue(ptr(SubValue(&a, 3)), 4))
	assert.True(t, maybeowned.EqualValue(ptr(MulValue(&a, 3)), 21))
	assert.True(t, maybeowned.EqualValue(ptr(DivValue(&a, 3)), 2))
}

func TestNeg(t *testing.T) {
	a := maybeowned.Own(5)
	neg := Neg(&a)
	require.True(t, neg.IsOwned())
	assert.True(t, maybeowned.EqualValue(&neg, -5))
}

func TestMutOperands(t *testing.T) {
	l, r := 2.5, 1.5
	a := maybeowned.BorrowMut(&l)
	b := maybeowned.BorrowMut(&r)

	sum := AddMut(&a, &b)
	require.True(t, sum.IsOwned())
	assert.True(t, maybeowned.EqualValue(&sum, 4.0))
	assert.True(t, maybeowned.EqualValue(ptr(SubMut(&a, &b)), 1.0))
	assert.True(t, maybeowned.EqualValue(ptr(MulMut(&a, &b)), 3.75))
	assert.True(t, maybeowned.EqualValue(ptr(DivMut(&a, &b)), 2.5/1.5))
}

func TestAssignWritesThroughBorrow(t *testing.T) {
	v := 10
	m := maybeowned.BorrowMut(&v)

	AddAssign(&m, 5)
	assert.Equal(t, 15, v)
	SubAssign(&m, 3)
	assert.Equal(t, 12, v)
	MulAssign(&m, 2)
	assert.Equal(t, 24, v)
	DivAssign(&m, 4)
	assert.Equal(t, 6, v)
}

func TestAddMatchesPlainAddition(t *testing.T) {
	condition := func(x, y int64) bool {
		a, b := maybeowned.Own(x), maybeowned.Own(y)
		sum := Add(&a, &b)
		return sum.IsOwned() && maybeowned.EqualValue(&sum, x+y)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func ptr[T any](m maybeowned.MaybeOwned[T]) *maybeowned.MaybeOwned[T] {
	return &m
}
