package shadermodule

// Value is anything that can be referenced by an instruction or a
// constant expression: a Function, a GlobalVariable, a Param, an
// Instruction result, or a constant.
type Value interface {
	// Uses returns the current users of this value. The returned slice
	// is owned by the caller.
	Uses() []Value
	addUse(u Value)
	removeUse(u Value)
}

// valueBase implements the def-use bookkeeping shared by every Value.
type valueBase struct {
	uses []Value
}

func (v *valueBase) Uses() []Value {
	out := make([]Value, len(v.uses))
	copy(out, v.uses)
	return out
}

func (v *valueBase) addUse(u Value) {
	v.uses = append(v.uses, u)
}

func (v *valueBase) removeUse(u Value) {
	for i, x := range v.uses {
		if x == u {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}

// ConstantExpr is a non-instruction user, e.g. a struct or array
// initializer that references a function or global. Constant users are
// never call sites, but the global-use walk recurses through them until
// it finds an instruction (mirrors DXIL's CollectUsedFunctions).
type ConstantExpr struct {
	valueBase
	Operands []Value
}

// NewConstantExpr builds a constant aggregate referencing operands, and
// records the use edges from each operand back to it.
func NewConstantExpr(operands ...Value) *ConstantExpr {
	c := &ConstantExpr{Operands: operands}
	for _, op := range operands {
		if op != nil {
			op.addUse(c)
		}
	}
	return c
}

func (c *ConstantExpr) replaceOperand(old, new Value) {
	for i, op := range c.Operands {
		if op == old {
			c.Operands[i] = new
			old.removeUse(c)
			new.addUse(c)
		}
	}
}

// ConstantInt is an integer constant of a given element type, used for
// the resource-ID rewrite during resource table installation (spec.md
// §4.3.7).
type ConstantInt struct {
	valueBase
	Type  Type
	Value int64
}

// NewConstantInt creates an integer constant of the given type.
func NewConstantInt(t Type, v int64) *ConstantInt {
	return &ConstantInt{Type: t, Value: v}
}

// UsingFunctions returns every function that transitively reaches an
// instruction referencing v, walking through constant-expression users
// (spec.md §4.1 step 4). It is exported for use by the library indexer.
func UsingFunctions(v Value) []*Function {
	set := walkUsersToFunctions(v)
	out := make([]*Function, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	return out
}

// walkUsersToFunctions computes the set of functions that transitively
// reach an instruction using v, walking through ConstantExpr users
// (spec.md §4.1 step 4).
func walkUsersToFunctions(v Value) map[*Function]bool {
	result := make(map[*Function]bool)
	visited := make(map[Value]bool)
	var walk func(Value)
	walk = func(val Value) {
		for _, u := range val.Uses() {
			if visited[u] {
				continue
			}
			visited[u] = true
			switch uu := u.(type) {
			case *Instruction:
				result[uu.Parent] = true
			case *ConstantExpr:
				walk(uu)
			}
		}
	}
	walk(v)
	return result
}

// replaceAllUsesWith rewrites every operand slot referencing old to
// reference new instead, and moves the use edges accordingly. Used when
// installing resource IDs (spec.md §4.3.7): a load of a resource global
// is replaced by the assigned integer constant everywhere it is used.
func replaceAllUsesWith(old, new Value) {
	for _, u := range old.Uses() {
		switch uu := u.(type) {
		case *Instruction:
			uu.replaceOperand(old, new)
		case *ConstantExpr:
			uu.replaceOperand(old, new)
		}
	}
}

// ReplaceAllUsesWith is the exported form of replaceAllUsesWith, used by
// the link job to rewrite every load of a merged resource global to the
// integer constant assigned by resource installation (spec.md §4.3.7).
func ReplaceAllUsesWith(old, new Value) { replaceAllUsesWith(old, new) }
