package maybeowned

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int
	Tags []string
}

func (r record) Clone() record {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return record{ID: r.ID, Tags: tags}
}

func TestOwnIsOwned(t *testing.T) {
	m := Own(record{ID: 1})
	assert.True(t, m.IsOwned())
	assert.False(t, m.IsBorrowed())
}

func TestBorrowIsBorrowed(t *testing.T) {
	r := record{ID: 2}
	m := Borrow(&r)
	assert.True(t, m.IsBorrowed())
	assert.False(t, m.IsOwned())
}

func TestZeroValueIsOwned(t *testing.T) {
	var m MaybeOwned[int]
	require.True(t, m.IsOwned())
	assert.Equal(t, 0, *m.Get())
}

func TestBorrowNilPanics(t *testing.T) {
	require.Panics(t, func() { Borrow[int](nil) })
}

func TestExactlyOneVariant(t *testing.T) {
	condition := func(v uint64, borrowed bool) bool {
		var m MaybeOwned[uint64]
		if borrowed {
			m = Borrow(&v)
		} else {
			m = Own(v)
		}
		return m.IsOwned() != m.IsBorrowed()
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestGetReadsThroughSource(t *testing.T) {
	v := 10
	m := Borrow(&v)
	require.Equal(t, 10, *m.Get())

	// the true owner mutates; the cell must see it
	v = 99
	assert.Equal(t, 99, *m.Get())
}

func TestAsMutOwned(t *testing.T) {
	m := Own(10)
	p, ok := m.AsMut()
	require.True(t, ok)
	*p = 42
	assert.Equal(t, 42, *m.Get())
}

func TestAsMutBorrowed(t *testing.T) {
	v := 10
	m := Borrow(&v)
	p, ok := m.AsMut()
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Equal(t, 10, v)
}

func TestMakeOwnedFuncOwnedSkipsClone(t *testing.T) {
	m := Own(record{ID: 7})
	got := MakeOwnedFunc(m, func(record) record {
		t.Fatal("clone must not run for an owned cell")
		return record{}
	})
	assert.Equal(t, 7, got.ID)
}

func TestMakeOwnedBorrowedIsIndependent(t *testing.T) {
	src := record{ID: 1, Tags: []string{"a"}}
	m := Borrow(&src)
	got := MakeOwned(m)
	require.Equal(t, src, got)

	src.ID = 2
	src.Tags[0] = "b"
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "a", got.Tags[0])
}

func TestMakeOwnedRoundTrip(t *testing.T) {
	condition := func(v uint64) bool {
		m := Own(v)
		return MakeOwnedFunc(m, func(x uint64) uint64 { return x }) == v
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestCloneOwned(t *testing.T) {
	m := Own(record{ID: 3, Tags: []string{"x"}})
	c := Clone(&m)
	require.True(t, c.IsOwned())

	// distinct storage
	p, ok := m.AsMut()
	require.True(t, ok)
	p.Tags[0] = "y"
	assert.Equal(t, "x", c.Get().Tags[0])
}

func TestCloneBorrowedSharesPointer(t *testing.T) {
	src := record{ID: 4}
	m := Borrow(&src)
	c := Clone(&m)
	require.True(t, c.IsBorrowed())
	assert.Same(t, m.Get(), c.Get())
}

func TestString(t *testing.T) {
	n := 33
	a := Own(42)
	b := Borrow(&n)
	assert.Equal(t, "42", a.String())
	assert.Equal(t, "33", b.String())
}

func TestParse(t *testing.T) {
	m, err := Parse("12", strconv.Atoi)
	require.NoError(t, err)
	require.True(t, m.IsOwned())
	assert.Equal(t, 12, *m.Get())

	_, err = Parse("not a number", strconv.Atoi)
	assert.Error(t, err)
}
