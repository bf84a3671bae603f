package ssa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond builds entry -(CJMP)-> {left, right} -(JMP)-> merge -(RET),
// the minimal graph with a real join point: merge is dominated by entry
// but not by left or right individually, and its dominance frontier is
// empty (since entry, its idom, has no other predecessors), while left and
// right's frontier is {merge}.
func buildDiamond(t *testing.T) (fn *Function, entry, left, right, merge *BasicBlock) {
	t.Helper()
	fn = NewFunction("diamond", nil, Type{Primitive: VOID}, CallingConvNone)

	entry = fn.CreateBlock("entry")
	left = fn.CreateBlock("left")
	right = fn.CreateBlock("right")
	merge = fn.CreateBlock("merge")

	cmp := &ComparisonConst{Cmp: EQ}
	lhs := fn.CreateIntConst(1, Type{Primitive: I32})
	rhs := fn.CreateIntConst(1, Type{Primitive: I32})
	trueTarget := fn.CreateBranchTarget(left, nil)
	falseTarget := fn.CreateBranchTarget(right, nil)
	entry.Append(fn.CreateInstruction(CJMP, []Operand{cmp, lhs, rhs, trueTarget, falseTarget}, nil))

	left.Append(fn.CreateInstruction(JMP, []Operand{fn.CreateBranchTarget(merge, nil)}, nil))
	right.Append(fn.CreateInstruction(JMP, []Operand{fn.CreateBranchTarget(merge, nil)}, nil))
	merge.Append(fn.CreateInstruction(RET, nil, nil))

	return fn, entry, left, right, merge
}

func TestControlFlowGraphEntryGetsHighestIndex(t *testing.T) {
	fn, entry, _, _, _ := buildDiamond(t)
	cfg := NewControlFlowGraph(fn)

	require.Equal(t, 4, len(cfg.Nodes()))
	assert.Equal(t, uint(len(cfg.Nodes())-1), cfg.EntryIndex())

	idx, ok := cfg.NodeIndex(entry)
	require.True(t, ok)
	assert.Equal(t, cfg.EntryIndex(), idx)
}

func TestControlFlowGraphSuccessorsAndPredecessors(t *testing.T) {
	fn, entry, left, right, merge := buildDiamond(t)
	cfg := NewControlFlowGraph(fn)

	entryIdx, _ := cfg.NodeIndex(entry)
	leftIdx, _ := cfg.NodeIndex(left)
	rightIdx, _ := cfg.NodeIndex(right)
	mergeIdx, _ := cfg.NodeIndex(merge)

	entryNode := cfg.Node(entryIdx)
	assert.ElementsMatch(t, []uint{leftIdx, rightIdx}, entryNode.Successors)

	mergeNode := cfg.Node(mergeIdx)
	assert.ElementsMatch(t, []uint{leftIdx, rightIdx}, mergeNode.Predecessors)
}

func TestDominatorTreeComputesImmediateDominators(t *testing.T) {
	fn, entry, left, right, merge := buildDiamond(t)
	cfg := NewControlFlowGraph(fn)
	dt := NewDominatorTree(cfg)

	entryIdx, _ := cfg.NodeIndex(entry)
	leftIdx, _ := cfg.NodeIndex(left)
	rightIdx, _ := cfg.NodeIndex(right)
	mergeIdx, _ := cfg.NodeIndex(merge)

	assert.Equal(t, entryIdx, dt.Node(leftIdx).ParentIndex)
	assert.Equal(t, entryIdx, dt.Node(rightIdx).ParentIndex)
	assert.Equal(t, entryIdx, dt.Node(mergeIdx).ParentIndex, "merge is dominated by entry, not by either branch alone")
	assert.False(t, dt.Node(entryIdx).HasParent)
}

func TestDominatorTreeComputesDominanceFrontiers(t *testing.T) {
	fn, entry, left, right, merge := buildDiamond(t)
	cfg := NewControlFlowGraph(fn)
	dt := NewDominatorTree(cfg)

	entryIdx, _ := cfg.NodeIndex(entry)
	leftIdx, _ := cfg.NodeIndex(left)
	rightIdx, _ := cfg.NodeIndex(right)
	mergeIdx, _ := cfg.NodeIndex(merge)

	assert.Equal(t, []uint{mergeIdx}, dt.DominanceFrontiers(leftIdx))
	assert.Equal(t, []uint{mergeIdx}, dt.DominanceFrontiers(rightIdx))
	assert.Empty(t, dt.DominanceFrontiers(entryIdx))
}

func TestDominatorTreeStructuralShapeMatchesDiamond(t *testing.T) {
	fn, entry, left, right, merge := buildDiamond(t)
	cfg := NewControlFlowGraph(fn)
	dt := NewDominatorTree(cfg)

	entryIdx, _ := cfg.NodeIndex(entry)
	leftIdx, _ := cfg.NodeIndex(left)
	rightIdx, _ := cfg.NodeIndex(right)
	mergeIdx, _ := cfg.NodeIndex(merge)

	want := map[uint]DomTreeNode{
		entryIdx: {Index: entryIdx, HasParent: false, ChildrenIndices: []uint{leftIdx, rightIdx, mergeIdx}},
		leftIdx:  {Index: leftIdx, ParentIndex: entryIdx, HasParent: true, DominanceFrontiers: []uint{mergeIdx}},
		rightIdx: {Index: rightIdx, ParentIndex: entryIdx, HasParent: true, DominanceFrontiers: []uint{mergeIdx}},
		mergeIdx: {Index: mergeIdx, ParentIndex: entryIdx, HasParent: true},
	}

	got := make(map[uint]DomTreeNode, len(want))
	for idx := range want {
		got[idx] = *dt.Node(idx)
	}

	cmpOpt := cmp.Comparer(func(a, b []uint) bool {
		return assert.ObjectsAreEqualValues(sortedUints(a), sortedUints(b))
	})
	if diff := cmp.Diff(want, got, cmpOpt); diff != "" {
		t.Fatalf("dominator tree shape mismatch (-want +got):\n%s", diff)
	}
}

func sortedUints(s []uint) []uint {
	out := append([]uint(nil), s...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func TestControlFlowGraphPanicsOnMissingTerminator(t *testing.T) {
	fn := NewFunction("broken", nil, Type{Primitive: VOID}, CallingConvNone)
	fn.CreateBlock("empty")
	assert.Panics(t, func() { NewControlFlowGraph(fn) })
}
