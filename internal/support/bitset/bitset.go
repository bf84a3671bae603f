// Package bitset provides fixed-universe bit sets for the SSA layer:
// live-instruction tracking during dead-code elimination and visited-node
// marks during CFG construction. It is a thin
// domain wrapper over github.com/bits-and-blooms/bitset (pulled in by the
// corpus's go-corset repository, which leans on it for exactly this kind of
// dense index-set bookkeeping in a compiler IR).
package bitset

import "github.com/bits-and-blooms/bitset"

// Set is a mutable set of small non-negative integers (CFG node indices,
// instruction indices).
type Set struct {
	bits *bitset.BitSet
}

// New returns a Set with room for at least n elements.
func New(n uint) *Set {
	return &Set{bits: bitset.New(n)}
}

func (s *Set) Add(i uint)          { s.bits.Set(i) }
func (s *Set) Remove(i uint)       { s.bits.Clear(i) }
func (s *Set) Contains(i uint) bool { return s.bits.Test(i) }
func (s *Set) Len() uint           { return s.bits.Count() }

// Each calls fn for every member in ascending order.
func (s *Set) Each(fn func(i uint)) {
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		fn(i)
	}
}

// Union adds every member of other into s.
func (s *Set) Union(other *Set) {
	s.bits.InPlaceUnion(other.bits)
}
