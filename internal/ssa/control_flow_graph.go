package ssa

import "github.com/banjo-lang/banjoc/internal/support/bitset"

// ControlFlowGraph numbers a Function's blocks into nodes with explicit
// predecessor/successor lists, in reverse post-order: the entry block ends
// up at the *highest* index, and (for a reducible graph, i.e. no
// irreducible loops) every non-back-edge predecessor of a node has a higher
// index than the node itself — the property the dominator tree computation
// below relies on to converge in a single reverse pass over most graphs.
type ControlFlowGraph struct {
	nodes      []CFGNode
	entryIndex uint
	block2node map[*BasicBlock]uint
}

type CFGNode struct {
	Block        *BasicBlock
	Predecessors []uint
	Successors   []uint
}

// NewControlFlowGraph builds the graph by recursively visiting fn's entry
// block's terminator, discovering every reachable block exactly once, then
// renumbering the discovered nodes into reverse post-order.
func NewControlFlowGraph(fn *Function) *ControlFlowGraph {
	cfg := &ControlFlowGraph{block2node: make(map[*BasicBlock]uint)}
	entry := fn.Entry()
	if entry == nil {
		return cfg
	}
	cfg.createNodes(entry)
	cfg.sortInPostOrder()
	return cfg
}

func (g *ControlFlowGraph) Nodes() []CFGNode      { return g.nodes }
func (g *ControlFlowGraph) EntryIndex() uint       { return g.entryIndex }
func (g *ControlFlowGraph) Node(index uint) *CFGNode { return &g.nodes[index] }

// NodeIndex returns the node index block was assigned, and whether block is
// part of this graph at all (unreachable blocks never are).
func (g *ControlFlowGraph) NodeIndex(block *BasicBlock) (uint, bool) {
	i, ok := g.block2node[block]
	return i, ok
}

// createNodes is create_nodes from control_flow_graph.cpp: a recursive
// depth-first discovery that creates one node per reachable block and one
// edge per terminator branch target, asserting every block ends in a valid
// terminator.
func (g *ControlFlowGraph) createNodes(block *BasicBlock) {
	if _, visited := g.block2node[block]; visited {
		return
	}

	term := block.Terminator()
	if term == nil {
		panic("ssa: block does not end in a terminator instruction")
	}

	index := uint(len(g.nodes))
	g.nodes = append(g.nodes, CFGNode{Block: block})
	g.block2node[block] = index

	switch term.Opcode {
	case JMP:
		targets := term.BranchTargets()
		g.createEdge(index, targets[0].Block)
	case CJMP, FCJMP:
		targets := term.BranchTargets()
		g.createEdge(index, targets[0].Block)
		g.createEdge(index, targets[1].Block)
	case RET:
		// no successors
	default:
		panic("ssa: block does not end in a branch instruction")
	}
}

func (g *ControlFlowGraph) createEdge(fromIndex uint, to *BasicBlock) {
	g.createNodes(to)
	toIndex := g.block2node[to]
	g.nodes[fromIndex].Successors = append(g.nodes[fromIndex].Successors, toIndex)
	g.nodes[toIndex].Predecessors = append(g.nodes[toIndex].Predecessors, fromIndex)
}

// sortInPostOrder renumbers every node into a true postorder (a node gets
// its new index only after every successor has already gotten one), then
// remaps predecessor/successor lists and places the entry block's node at
// the highest index — postorder visits the entry last, since it starts the
// walk and every other node is reached by walking forward from it.
func (g *ControlFlowGraph) sortInPostOrder() {
	indexMap := make(map[uint]uint, len(g.nodes))
	visited := bitset.New(uint(len(g.nodes)))
	curNewIndex := uint(0)
	g.collectInPostOrder(0, visited, indexMap, &curNewIndex)

	sorted := make([]CFGNode, len(g.nodes))
	for oldIndex, node := range g.nodes {
		newIndex := indexMap[uint(oldIndex)]
		remapped := CFGNode{
			Block:        node.Block,
			Predecessors: remapIndices(node.Predecessors, indexMap),
			Successors:   remapIndices(node.Successors, indexMap),
		}
		sorted[newIndex] = remapped
		g.block2node[node.Block] = newIndex
	}

	g.nodes = sorted
	g.entryIndex = uint(len(g.nodes) - 1)
}

func (g *ControlFlowGraph) collectInPostOrder(index uint, visited *bitset.Set, indexMap map[uint]uint, curNewIndex *uint) {
	if visited.Contains(index) {
		return
	}
	visited.Add(index)

	for _, succ := range g.nodes[index].Successors {
		g.collectInPostOrder(succ, visited, indexMap, curNewIndex)
	}

	indexMap[index] = *curNewIndex
	*curNewIndex++
}

func remapIndices(indices []uint, indexMap map[uint]uint) []uint {
	if indices == nil {
		return nil
	}
	out := make([]uint, len(indices))
	for i, idx := range indices {
		out[i] = indexMap[idx]
	}
	return out
}

// DominatorTree is the immediate-dominator and dominance-frontier
// information for one ControlFlowGraph, computed by the iterative
// Cooper/Harvey/Kennedy algorithm (Cooper, Harvey & Kennedy, "A Simple,
// Fast Dominance Algorithm").
type DominatorTree struct {
	cfg   *ControlFlowGraph
	nodes []DomTreeNode
	doms  []int
}

type DomTreeNode struct {
	Index              uint
	ParentIndex        uint
	HasParent          bool
	ChildrenIndices    []uint
	DominanceFrontiers []uint
}

// NewDominatorTree computes the dominator tree over cfg.
func NewDominatorTree(cfg *ControlFlowGraph) *DominatorTree {
	t := &DominatorTree{cfg: cfg}
	t.computeIdoms()
	t.computeDominanceFrontiers()
	return t
}

func (t *DominatorTree) CFG() *ControlFlowGraph { return t.cfg }
func (t *DominatorTree) Node(index uint) *DomTreeNode { return &t.nodes[index] }

func (t *DominatorTree) DominanceFrontiers(index uint) []uint {
	return t.nodes[index].DominanceFrontiers
}

// computeIdoms is compute_idoms from control_flow_graph.cpp: doms[entry] is
// seeded to itself, everything else starts undefined (-1); nodes are
// revisited in reverse postorder-assigned order (i.e. from the
// highest-numbered non-entry node down to 0) until a full pass changes
// nothing.
func (t *DominatorTree) computeIdoms() {
	n := len(t.cfg.nodes)
	doms := make([]int, n)
	for i := range doms {
		doms[i] = -1
	}
	entry := t.cfg.entryIndex
	doms[entry] = int(entry)

	changed := true
	for changed {
		changed = false
		for i := int(entry) - 1; i >= 0; i-- {
			index := uint(i)
			node := t.cfg.nodes[index]

			newIdom := -1
			for _, pred := range node.Predecessors {
				if doms[pred] == -1 {
					continue
				}
				if newIdom == -1 {
					newIdom = int(pred)
				} else {
					newIdom = int(intersect(uint(newIdom), pred, doms))
				}
			}

			if newIdom != -1 && doms[index] != newIdom {
				doms[index] = newIdom
				changed = true
			}
		}
	}

	t.nodes = make([]DomTreeNode, n)
	for i := range t.nodes {
		t.nodes[i].Index = uint(i)
	}
	for i, d := range doms {
		if d == -1 || uint(i) == entry {
			continue
		}
		t.nodes[i].ParentIndex = uint(d)
		t.nodes[i].HasParent = true
		t.nodes[d].ChildrenIndices = append(t.nodes[d].ChildrenIndices, uint(i))
	}

	t.doms = doms
}

// intersect walks two dominator-chain pointers upward (toward higher
// indices, since reverse postorder puts dominators at higher indices than
// what they dominate) until they meet; this is the "finger" algorithm from
// the Cooper/Harvey/Kennedy paper.
func intersect(b1, b2 uint, doms []int) uint {
	for b1 != b2 {
		if b1 < b2 {
			b1 = uint(doms[b1])
		} else {
			b2 = uint(doms[b2])
		}
	}
	return b1
}

// computeDominanceFrontiers is compute_dominance_frontiers from
// control_flow_graph.cpp: for every join point (a node with 2+
// predecessors), walk each predecessor up the dominator tree until reaching
// (but not including) the join's immediate dominator, adding the join to
// every node visited along the way.
func (t *DominatorTree) computeDominanceFrontiers() {
	for index, node := range t.cfg.nodes {
		if len(node.Predecessors) < 2 {
			continue
		}
		idom := uint(t.doms[index])

		for _, pred := range node.Predecessors {
			runner := pred
			for runner != idom {
				t.nodes[runner].DominanceFrontiers = append(t.nodes[runner].DominanceFrontiers, uint(index))
				runner = uint(t.doms[runner])
			}
		}
	}
}
