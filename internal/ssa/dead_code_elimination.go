package ssa

import "github.com/banjo-lang/banjoc/internal/support/bitset"

// DeadCodeElimination removes instructions and block parameters whose
// results are never read, starting from instructions that must run
// regardless (HasSideEffects) and propagating liveness backward through
// operand uses — the inverse of how the instructions were built forward.
// Mirrors the two-pass shape of dead_code_elimination.hpp: parameters
// first (since a parameter can only be proven dead after seeing whether any
// branch target's argument feeding it is itself live), then instructions.
type DeadCodeElimination struct{}

// paramInfo tracks one block parameter's liveness plus the other
// parameters that directly feed it through a branch target argument —
// mirroring ParamInfo's direct_src_params, which is what lets "used"
// propagate through a parameter chain that crosses several blocks.
type paramInfo struct {
	param          *Param
	directSrc      []*paramInfo
	used           bool
}

// Run prunes fn in place.
func (DeadCodeElimination) Run(fn *Function) {
	infos := make(map[*Param]*paramInfo)
	for _, b := range fn.Blocks {
		for _, p := range b.Params {
			infos[p] = &paramInfo{param: p}
		}
	}

	linkParamSources(fn, infos)
	markUsedParams(fn, infos)
	removeUnusedParams(fn, infos)
	removeUnusedInstrs(fn)
}

// linkParamSources connects each block parameter to the parameter(s) that
// feed it directly: when a branch target's Nth argument is itself another
// block's parameter, that source parameter is added to this one's
// directSrc so markUsedParams can chase the chain.
func linkParamSources(fn *Function, infos map[*Param]*paramInfo) {
	for _, b := range fn.Blocks {
		term := b.Terminator()
		if term == nil {
			continue
		}
		for _, target := range term.BranchTargets() {
			for i, arg := range target.Args {
				if i >= len(target.Block.Params) {
					continue
				}
				dst := infos[target.Block.Params[i]]
				if srcParam, ok := arg.(*Param); ok {
					if src, ok2 := infos[srcParam]; ok2 {
						dst.directSrc = append(dst.directSrc, src)
					}
				}
			}
		}
	}
}

// markUsedParams marks a parameter used when any instruction in its block
// reads it directly (as opposed to only ever forwarding it on to another
// block's parameter), then flood-fills that usage backward through
// directSrc chains.
func markUsedParams(fn *Function, infos map[*Param]*paramInfo) {
	var queue []*paramInfo

	for _, b := range fn.Blocks {
		for _, instr := range b.Instructions {
			for _, op := range instr.Operands {
				if p, ok := op.(*Param); ok {
					if info, ok2 := infos[p]; ok2 && !info.used {
						info.used = true
						queue = append(queue, info)
					}
				}
			}
		}
	}

	for len(queue) > 0 {
		info := queue[0]
		queue = queue[1:]
		for _, src := range info.directSrc {
			if !src.used {
				src.used = true
				queue = append(queue, src)
			}
		}
	}
}

// removeUnusedParams drops every never-used parameter from each block and
// the corresponding argument from every branch target feeding it.
func removeUnusedParams(fn *Function, infos map[*Param]*paramInfo) {
	for _, b := range fn.Blocks {
		keep := make([]bool, len(b.Params))
		var kept []*Param
		for i, p := range b.Params {
			if infos[p].used {
				keep[i] = true
				kept = append(kept, p)
			}
		}
		b.Params = kept

		for _, pb := range fn.Blocks {
			term := pb.Terminator()
			if term == nil {
				continue
			}
			for _, target := range term.BranchTargets() {
				if target.Block != b {
					continue
				}
				var args []Operand
				for i, arg := range target.Args {
					if i < len(keep) && keep[i] {
						args = append(args, arg)
					}
				}
				target.Args = args
			}
		}
	}
}

// removeUnusedInstrs walks every block backward, keeping an instruction
// when it HasSideEffects or its Result register is read by a kept
// instruction (recorded in liveRegs as each kept instruction's own operands
// are inspected), and dropping it otherwise.
func removeUnusedInstrs(fn *Function) {
	liveRegs := make(map[*Register]bool)
	keeps := make([]*bitset.Set, len(fn.Blocks))

	// The marking repeats until no new register becomes live, so a result
	// read only by an instruction in a later block is still kept.
	for changed := true; changed; {
		before := len(liveRegs)
		for bi, b := range fn.Blocks {
			keep := bitset.New(uint(len(b.Instructions)))
			for i := len(b.Instructions) - 1; i >= 0; i-- {
				instr := b.Instructions[i]
				resultLive := instr.Result != nil && liveRegs[instr.Result]

				if !instr.HasSideEffects() && !resultLive {
					continue
				}
				keep.Add(uint(i))

				for _, op := range instr.Operands {
					if r, ok := op.(*Register); ok {
						liveRegs[r] = true
					}
					if bt, ok := op.(*BranchTarget); ok {
						for _, arg := range bt.Args {
							if r, ok2 := arg.(*Register); ok2 {
								liveRegs[r] = true
							}
						}
					}
				}
			}
			keeps[bi] = keep
		}
		changed = len(liveRegs) != before
	}

	for bi, b := range fn.Blocks {
		keep := keeps[bi]
		kept := make([]*Instruction, 0, keep.Len())
		for i, instr := range b.Instructions {
			if keep.Contains(uint(i)) {
				kept = append(kept, instr)
			}
		}
		b.Instructions = kept
	}
}
