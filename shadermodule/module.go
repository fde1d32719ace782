package shadermodule

// Type is an opaque element type. Two types are equal iff their
// descriptors match; the linker never inspects a type beyond copying it
// and comparing it for the resource-shape invariant (spec.md §3).
type Type struct {
	Descriptor string
}

// Equal reports whether two types describe the same shape.
func (t Type) Equal(o Type) bool { return t.Descriptor == o.Descriptor }

// GlobalVariable is a module-scope global.
type GlobalVariable struct {
	valueBase
	Name                  string
	ElementType           Type
	Constant              bool
	Linkage               Linkage
	ThreadLocal           ThreadLocalMode
	AddressSpace          uint32
	ExternallyInitialized bool
	Initializer           Value // nil, ConstantInt, or ConstantExpr
}

// Module is a shader module: functions, globals, resources, a
// constructor list, and identifying metadata. It stands in for the
// "shader container format" collaborator that spec.md §1 puts out of
// scope for the linker's core.
type Module struct {
	Identifier    string
	TargetTriple  string
	Functions     []*Function
	Globals       []*GlobalVariable
	Ctors         []*Function // spec.md §4.1 step 7: llvm.global_ctors-equivalent
	Resources     *ResourceTables
	EntryFunction *Function

	properties map[*Function]*FunctionProperties
	typeSys    *TypeSystem
}

// NewModule creates an empty module named identifier.
func NewModule(identifier string) *Module {
	return &Module{
		Identifier: identifier,
		Resources:  newResourceTables(),
		properties: make(map[*Function]*FunctionProperties),
		typeSys:    NewTypeSystem(),
	}
}

// TypeSystem returns the module's per-function annotation store.
func (m *Module) TypeSystem() *TypeSystem { return m.typeSys }

// DeclareFunction creates a function declaration (isDeclaration=true,
// no body) with the given signature, linkage, and copies the given
// attributes verbatim — used both for intrinsic redeclaration (spec.md
// §4.3.3 step 2) and for materialized-function declarations (step 3).
func (m *Module) DeclareFunction(name string, typ FuncType, linkage Linkage, attrs []Attr) *Function {
	f := newFunction(name, typ, linkage, m)
	f.Declaration = true
	for _, a := range attrs {
		f.AddAttr(a)
	}
	m.Functions = append(m.Functions, f)
	return f
}

// DefineFunction creates a function with an empty body ready for
// cloning into (spec.md §4.3.5).
func (m *Module) DefineFunction(name string, typ FuncType, linkage Linkage) *Function {
	f := newFunction(name, typ, linkage, m)
	m.Functions = append(m.Functions, f)
	return f
}

// AddGlobal creates a new global variable with the given attributes and
// registers it in the module (spec.md §4.3.4 "not materialized" case).
func (m *Module) AddGlobal(name string, elemType Type, constant bool, linkage Linkage, tls ThreadLocalMode, addrSpace uint32, externallyInit bool, initializer Value) *GlobalVariable {
	g := &GlobalVariable{
		Name:                  name,
		ElementType:           elemType,
		Constant:              constant,
		Linkage:               linkage,
		ThreadLocal:           tls,
		AddressSpace:          addrSpace,
		ExternallyInitialized: externallyInit,
		Initializer:           initializer,
	}
	m.Globals = append(m.Globals, g)
	return g
}

// FindGlobal returns the global with the given name, or nil.
func (m *Module) FindGlobal(name string) *GlobalVariable {
	for _, g := range m.Globals {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindFunction returns the function with the given name, or nil.
func (m *Module) FindFunction(name string) *Function {
	for _, f := range m.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasFunctionProperties reports whether f has associated shader
// properties (implements the PropertyStore collaborator, spec.md §6).
func (m *Module) HasFunctionProperties(f *Function) bool {
	_, ok := m.properties[f]
	return ok
}

// FunctionProperties returns f's shader properties, or nil.
func (m *Module) FunctionProperties(f *Function) *FunctionProperties {
	return m.properties[f]
}

// SetFunctionProperties installs shader properties for f.
func (m *Module) SetFunctionProperties(f *Function, props *FunctionProperties) {
	m.properties[f] = props
}

// AddStaticInitializer marks f as a static initializer (spec.md §4.1
// step 7) and appends it to the module's constructor list.
func (m *Module) AddStaticInitializer(f *Function) {
	f.staticInit = true
	m.Ctors = append(m.Ctors, f)
}
