package shadermodule

// Linkage mirrors the two linkage kinds spec.md's renaming rule cares
// about: internal-linkage symbols get library-prefixed at index time,
// external-linkage symbols form the cross-library namespace.
type Linkage int

const (
	External Linkage = iota
	Internal
)

// ThreadLocalMode mirrors LLVM's thread-local storage modes, carried
// through global cloning verbatim (spec.md §4.3.4).
type ThreadLocalMode int

const (
	NotThreadLocal ThreadLocalMode = iota
	GeneralDynamicTLS
)

// Attr is a function attribute consumed by the finalization pipeline.
type Attr int

const (
	// AlwaysInline is the marker spec.md §4.3.3 installs on every
	// materialized function except the entry (and its patch-constant
	// companion), consumed by the always-inliner pass.
	AlwaysInline Attr = iota
)

// FuncType is an opaque function signature. Equality is by identity or
// by Signature string — the linker never inspects it beyond copying it
// verbatim onto declarations (spec.md §4.3.3).
type FuncType struct {
	Signature string
}

// Opcode distinguishes the instruction kinds the linker cares about;
// everything else is OpOther and carried opaquely.
type Opcode int

const (
	OpCall Opcode = iota
	OpLoad
	OpOther
)

// Instruction is a single operation inside a function body. For OpCall,
// Operands[0] is the callee Function; for OpLoad, Operands[0] is the
// GlobalVariable being read.
type Instruction struct {
	valueBase
	Op       Opcode
	Operands []Value
	Parent   *Function
}

// Callee returns the called function for an OpCall instruction.
func (i *Instruction) Callee() *Function {
	if i.Op != OpCall || len(i.Operands) == 0 {
		return nil
	}
	f, _ := i.Operands[0].(*Function)
	return f
}

// LoadedGlobal returns the global read by an OpLoad instruction.
func (i *Instruction) LoadedGlobal() *GlobalVariable {
	if i.Op != OpLoad || len(i.Operands) == 0 {
		return nil
	}
	g, _ := i.Operands[0].(*GlobalVariable)
	return g
}

func (i *Instruction) replaceOperand(old, new Value) {
	for idx, op := range i.Operands {
		if op == old {
			i.Operands[idx] = new
			old.removeUse(i)
			new.addUse(i)
		}
	}
}

// Block is a basic block: an ordered instruction list.
type Block struct {
	Instructions []*Instruction
}

// Param is a function argument value.
type Param struct {
	valueBase
	Name  string
	Index int
}

// Function is a defined or declared function in a Module.
type Function struct {
	valueBase
	Name          string
	Linkage       Linkage
	Type          FuncType
	Params        []*Param
	Blocks        []*Block
	Declaration   bool
	attrs         map[Attr]bool
	module        *Module
	staticInit    bool
	hullPatchFunc *Function // never assigned; the patch-constant companion is FunctionProperties.PatchConstantFn
}

func newFunction(name string, typ FuncType, linkage Linkage, m *Module) *Function {
	f := &Function{Name: name, Type: typ, Linkage: linkage, module: m, attrs: map[Attr]bool{}}
	return f
}

// AddAttr sets a function attribute.
func (f *Function) AddAttr(a Attr) { f.attrs[a] = true }

// RemoveAttr clears a function attribute.
func (f *Function) RemoveAttr(a Attr) { delete(f.attrs, a) }

// HasAttr reports whether a function attribute is set.
func (f *Function) HasAttr(a Attr) bool { return f.attrs[a] }

// Attrs returns every attribute currently set on f, for copying onto a
// declaration in another module (spec.md §4.3.3 step 3).
func (f *Function) Attrs() []Attr {
	out := make([]Attr, 0, len(f.attrs))
	for a := range f.attrs {
		out = append(out, a)
	}
	return out
}

// AddParam appends a positional parameter and returns it.
func (f *Function) AddParam(name string) *Param {
	p := &Param{Name: name, Index: len(f.Params)}
	f.Params = append(f.Params, p)
	return p
}

// EntryBlock returns the function's first basic block, creating an
// empty one if none exists yet.
func (f *Function) EntryBlock() *Block {
	if len(f.Blocks) == 0 {
		f.Blocks = append(f.Blocks, &Block{})
	}
	return f.Blocks[0]
}

// NewCallInst appends a call instruction to block, and returns it. It
// records the def-use edge from callee back to the new instruction so
// that Callers()/global-use walks see it.
func (f *Function) NewCallInst(block *Block, callee *Function) *Instruction {
	inst := &Instruction{Op: OpCall, Operands: []Value{callee}, Parent: f}
	callee.addUse(inst)
	block.Instructions = append(block.Instructions, inst)
	return inst
}

// InsertCallAtEntry inserts a call to callee as the very first
// instruction of f's entry block (spec.md §4.3.6).
func (f *Function) InsertCallAtEntry(callee *Function) *Instruction {
	block := f.EntryBlock()
	inst := &Instruction{Op: OpCall, Operands: []Value{callee}, Parent: f}
	callee.addUse(inst)
	block.Instructions = append([]*Instruction{inst}, block.Instructions...)
	return inst
}

// NewLoadInst appends a load of global to block.
func (f *Function) NewLoadInst(block *Block, global *GlobalVariable) *Instruction {
	inst := &Instruction{Op: OpLoad, Operands: []Value{global}, Parent: f}
	global.addUse(inst)
	block.Instructions = append(block.Instructions, inst)
	return inst
}

// Callers returns every function containing a call instruction to f
// (spec.md §4.1 step 3): direct users only, non-call constant uses
// (e.g. f appearing in a static-initializer list) are ignored.
func (f *Function) Callers() []*Function {
	seen := make(map[*Function]bool)
	var out []*Function
	for _, u := range f.Uses() {
		inst, ok := u.(*Instruction)
		if !ok || inst.Op != OpCall {
			continue
		}
		if !seen[inst.Parent] {
			seen[inst.Parent] = true
			out = append(out, inst.Parent)
		}
	}
	return out
}

// StaticInitializer reports whether f was registered as a static
// initializer (spec.md §4.1 step 7).
func (f *Function) StaticInitializer() bool { return f.staticInit }
