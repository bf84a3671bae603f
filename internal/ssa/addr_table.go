package ssa

// AddrTable is the side table PIC lowering builds mapping a symbol name to
// a dense index; a symbol reference the backend can't resolve to a final
// address at codegen time is replaced with a load from this table instead.
// Ported from addr_table.hpp/.cpp: entries is insertion order (so the
// indices handed out by Append are stable and match the table's eventual
// serialized layout), indices is the reverse lookup.
type AddrTable struct {
	entries []string
	indices map[string]uint
}

// Append adds symbol to the table if it isn't already present; idempotent,
// since the same symbol can be referenced from many call sites.
func (t *AddrTable) Append(symbol string) {
	if t.indices == nil {
		t.indices = make(map[string]uint)
	}
	if _, ok := t.indices[symbol]; ok {
		return
	}
	t.indices[symbol] = uint(len(t.entries))
	t.entries = append(t.entries, symbol)
}

// FindIndex returns symbol's dense index and true, or (0, false) if it was
// never appended.
func (t *AddrTable) FindIndex(symbol string) (uint, bool) {
	i, ok := t.indices[symbol]
	return i, ok
}

// Entries returns the table's symbols in append order.
func (t *AddrTable) Entries() []string { return t.entries }

// ComputeOffset returns the byte offset of entry index's 8-byte address
// slot, given the header: a 4-byte entry count, then for each entry a
// 4-byte name length followed by the raw name bytes.
func (t *AddrTable) ComputeOffset(index uint) uint {
	headerSize := uint(4)
	for _, entry := range t.entries {
		headerSize += 4 + uint(len(entry))
	}
	return headerSize + 8*index
}
