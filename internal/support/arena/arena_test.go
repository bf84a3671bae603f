package arena

import "testing"

type node struct {
	Value int
}

func TestArenaStablePointers(t *testing.T) {
	var a Arena[node]

	ptrs := make([]*node, 0, 1000)
	for i := 0; i < 1000; i++ {
		n := a.New()
		n.Value = i
		ptrs = append(ptrs, n)
	}

	for i, p := range ptrs {
		if p.Value != i {
			t.Fatalf("pointer %d: got value %d, want %d (arena pointers must stay stable across growth)", i, p.Value, i)
		}
	}

	if a.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", a.Len())
	}
}

func TestArenaNewSlice(t *testing.T) {
	var a Arena[int]
	s := a.NewSlice(4)
	if len(s) != 4 {
		t.Fatalf("len(s) = %d, want 4", len(s))
	}
	for i := range s {
		s[i] = i * 2
	}
	if s[3] != 6 {
		t.Fatalf("s[3] = %d, want 6", s[3])
	}
}

func TestArenaNewSliceZero(t *testing.T) {
	var a Arena[int]
	if s := a.NewSlice(0); s != nil {
		t.Fatalf("NewSlice(0) = %v, want nil", s)
	}
}
