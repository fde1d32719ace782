package shadermodule

// ValueMap remaps values from a source module into their counterparts
// in a destination module while cloning. It is the Go analog of LLVM's
// ValueToValueMapTy used by CloneFunctionInto (original DxilLinker.cpp).
type ValueMap map[Value]Value

// Map returns the mapped value for v, or v itself if unmapped.
func (vm ValueMap) Map(v Value) Value {
	if mapped, ok := vm[v]; ok {
		return mapped
	}
	return v
}

// Clone copies src's body into dst, rewriting every operand through
// vmap so that references to old functions and old globals become
// references to their new counterparts. Arguments are mapped
// positionally (spec.md §4.3.5); vmap must already map every callee and
// every referenced global to its materialized counterpart, and dst's
// Params must already have been created via AddParam matching src.
func Clone(dst *Function, src *Function, vmap ValueMap) {
	for i, p := range src.Params {
		if i < len(dst.Params) {
			vmap[p] = dst.Params[i]
		}
	}

	for _, blk := range src.Blocks {
		nb := &Block{}
		for _, inst := range blk.Instructions {
			ni := &Instruction{Op: inst.Op, Parent: dst}
			for _, op := range inst.Operands {
				mapped := vmap.Map(op)
				ni.Operands = append(ni.Operands, mapped)
				mapped.addUse(ni)
			}
			nb.Instructions = append(nb.Instructions, ni)
		}
		dst.Blocks = append(dst.Blocks, nb)
	}
}
