package index

import (
	"testing"

	"github.com/gogpu/shaderlink/shadermodel"
	"github.com/gogpu/shaderlink/shadermodule"
)

func i32() shadermodule.Type { return shadermodule.Type{Descriptor: "i32"} }

func voidFn() shadermodule.FuncType { return shadermodule.FuncType{Signature: "void()"} }

func TestBuildRenamesInternalSymbols(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	f := m.DefineFunction("helper", voidFn(), shadermodule.Internal)
	g := m.AddGlobal("counter", i32(), false, shadermodule.Internal, shadermodule.NotThreadLocal, 0, false, nil)

	Build(m)

	if f.Name != "mylibhelper" {
		t.Errorf("internal function not renamed, got %q", f.Name)
	}
	if g.Name != "mylibcounter" {
		t.Errorf("internal global not renamed, got %q", g.Name)
	}
}

func TestBuildLeavesExternalSymbolsAlone(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	f := m.DefineFunction("main", voidFn(), shadermodule.External)

	Build(m)

	if f.Name != "main" {
		t.Errorf("external function renamed to %q, want unchanged", f.Name)
	}
}

func TestBuildCallSet(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	callee := m.DefineFunction("callee", voidFn(), shadermodule.External)
	caller := m.DefineFunction("caller", voidFn(), shadermodule.External)
	caller.NewCallInst(caller.EntryBlock(), callee)

	idx := Build(m)

	info, ok := idx.LinkInfo("caller")
	if !ok {
		t.Fatal("caller missing from index")
	}
	if !info.CallSet["callee"] {
		t.Errorf("caller's call set = %v, want to contain callee", info.CallSet)
	}
}

func TestBuildGlobalUseSet(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	g := m.AddGlobal("cbuf", i32(), true, shadermodule.External, shadermodule.NotThreadLocal, 0, false, nil)
	user := m.DefineFunction("user", voidFn(), shadermodule.External)
	user.NewLoadInst(user.EntryBlock(), g)

	idx := Build(m)

	info, ok := idx.LinkInfo("user")
	if !ok {
		t.Fatal("user missing from index")
	}
	if !info.GlobalSet["cbuf"] {
		t.Errorf("user's global set = %v, want to contain cbuf", info.GlobalSet)
	}
}

func TestBuildHullShaderPatchConstantWiring(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	entry := m.DefineFunction("hs_main", voidFn(), shadermodule.External)
	patch := m.DefineFunction("hs_patch", voidFn(), shadermodule.External)
	m.SetFunctionProperties(entry, &shadermodule.FunctionProperties{
		Kind:            shadermodel.Hull,
		PatchConstantFn: patch,
	})

	idx := Build(m)

	info, ok := idx.LinkInfo("hs_main")
	if !ok {
		t.Fatal("hs_main missing from index")
	}
	if !info.CallSet["hs_patch"] {
		t.Errorf("hull entry call set = %v, want to contain patch-constant function", info.CallSet)
	}
}

func TestBuildResourceMap(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	g := m.AddGlobal("g_tex", i32(), true, shadermodule.External, shadermodule.NotThreadLocal, 0, false, nil)
	m.Resources.Declare(&shadermodule.ResourceDescriptor{
		Class:         shadermodule.SRV,
		GlobalName:    "g_tex",
		BackingGlobal: g,
	})

	idx := Build(m)

	if !idx.IsResourceGlobal("g_tex") {
		t.Fatal("g_tex not recognized as a resource global")
	}
	desc, ok := idx.Resource("g_tex")
	if !ok || desc.Class != shadermodule.SRV {
		t.Errorf("Resource(g_tex) = %+v, ok=%v, want SRV descriptor", desc, ok)
	}
}

func TestBuildStaticInitializerPullsInThroughSharedGlobal(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	g := m.AddGlobal("g_state", i32(), false, shadermodule.External, shadermodule.NotThreadLocal, 0, false, nil)

	ctor := m.DefineFunction("g_state_ctor", voidFn(), shadermodule.External)
	ctor.NewLoadInst(ctor.EntryBlock(), g) // ctor touches g_state
	m.AddStaticInitializer(ctor)

	user := m.DefineFunction("uses_state", voidFn(), shadermodule.External)
	user.NewLoadInst(user.EntryBlock(), g) // unrelated user of the same global

	idx := Build(m)

	if !idx.IsStaticInitializer("g_state_ctor") {
		t.Fatal("g_state_ctor not recognized as a static initializer")
	}
	userInfo, ok := idx.LinkInfo("uses_state")
	if !ok {
		t.Fatal("uses_state missing from index")
	}
	if !userInfo.CallSet["g_state_ctor"] {
		t.Errorf("uses_state call set = %v, want to contain g_state_ctor", userInfo.CallSet)
	}
}

func TestBuildStaticInitializerIgnoredWithoutSharedGlobal(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	ctor := m.DefineFunction("noop_ctor", voidFn(), shadermodule.External)
	m.AddStaticInitializer(ctor)

	_ = m.DefineFunction("unrelated", voidFn(), shadermodule.External)

	idx := Build(m)

	otherInfo, ok := idx.LinkInfo("unrelated")
	if !ok {
		t.Fatal("unrelated missing from index")
	}
	if otherInfo.CallSet["noop_ctor"] {
		t.Error("unrelated function should not call an initializer it shares no global with")
	}
}

func TestFunctionNamesSorted(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	m.DefineFunction("zeta", voidFn(), shadermodule.External)
	m.DefineFunction("alpha", voidFn(), shadermodule.External)

	idx := Build(m)
	names := idx.FunctionNames()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("FunctionNames() = %v, want [alpha zeta]", names)
	}
}

func TestHasIgnoresDeclarations(t *testing.T) {
	m := shadermodule.NewModule("mylib")
	m.DeclareFunction("dx.op.LoadInput", voidFn(), shadermodule.External, nil)

	idx := Build(m)
	if idx.Has("dx.op.LoadInput") {
		t.Error("Has() should not report declarations as defined functions")
	}
}
