package maybeowned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnMutVariants(t *testing.T) {
	m := OwnMut(1)
	assert.True(t, m.IsOwned())
	assert.False(t, m.IsBorrowed())

	v := 2
	b := BorrowMut(&v)
	assert.True(t, b.IsBorrowed())
	assert.False(t, b.IsOwned())
}

func TestBorrowMutNilPanics(t *testing.T) {
	require.Panics(t, func() { BorrowMut[int](nil) })
}

func TestGetMutOwned(t *testing.T) {
	m := OwnMut(10)
	*m.GetMut() = 42
	assert.Equal(t, 42, *m.Get())
}

func TestGetMutBorrowedWritesSource(t *testing.T) {
	v := 10
	m := BorrowMut(&v)
	*m.GetMut() = 42

	// the write must land in the original value
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, *m.Get())
}

func TestMakeOwnedMutOwned(t *testing.T) {
	m := OwnMut(record{ID: 5})
	got := MakeOwnedMutFunc(m, func(record) record {
		t.Fatal("clone must not run for an owned cell")
		return record{}
	})
	assert.Equal(t, 5, got.ID)
}

func TestMakeOwnedMutBorrowedIsIndependent(t *testing.T) {
	src := record{ID: 1, Tags: []string{"a"}}
	m := BorrowMut(&src)
	got := MakeOwnedMut(m)
	require.Equal(t, 1, got.ID)

	src.Tags[0] = "b"
	assert.Equal(t, "a", got.Tags[0])
}

func TestReborrow(t *testing.T) {
	outer := OwnMut([]uint32{0})
	inner := BorrowMut(outer.GetMut())
	*inner.GetMut() = append(*inner.GetMut(), 1)
	assert.Equal(t, []uint32{0, 1}, *outer.Get())
}
