package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrTableAppendIsIdempotent(t *testing.T) {
	var tbl AddrTable
	tbl.Append("foo")
	tbl.Append("bar")
	tbl.Append("foo")

	assert.Equal(t, []string{"foo", "bar"}, tbl.Entries())

	idx, ok := tbl.FindIndex("foo")
	require.True(t, ok)
	assert.Equal(t, uint(0), idx)

	idx, ok = tbl.FindIndex("bar")
	require.True(t, ok)
	assert.Equal(t, uint(1), idx)

	_, ok = tbl.FindIndex("baz")
	assert.False(t, ok)
}

func TestAddrTableComputeOffset(t *testing.T) {
	var tbl AddrTable
	tbl.Append("ab")  // 4 + 2 = 6 bytes of header
	tbl.Append("cde") // 4 + 3 = 7 bytes of header

	// header = 4 (count) + (4+2) + (4+3) = 17
	assert.Equal(t, uint(17), tbl.ComputeOffset(0))
	assert.Equal(t, uint(25), tbl.ComputeOffset(1))
	assert.Equal(t, uint(33), tbl.ComputeOffset(2))
}
