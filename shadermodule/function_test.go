package shadermodule

import "testing"

func TestCallersFindsOnlyCallSites(t *testing.T) {
	m := NewModule("m")
	callee := m.DefineFunction("helper", voidFn(), External)
	caller1 := m.DefineFunction("a", voidFn(), External)
	caller2 := m.DefineFunction("b", voidFn(), External)

	caller1.NewCallInst(caller1.EntryBlock(), callee)
	caller2.NewCallInst(caller2.EntryBlock(), callee)
	// A second call from the same function must not duplicate the entry.
	caller1.NewCallInst(caller1.EntryBlock(), callee)

	callers := callee.Callers()
	if len(callers) != 2 {
		t.Fatalf("Callers() = %v, want 2 distinct callers", callers)
	}
	seen := map[*Function]bool{}
	for _, c := range callers {
		seen[c] = true
	}
	if !seen[caller1] || !seen[caller2] {
		t.Errorf("Callers() = %v, want to contain %v and %v", callers, caller1, caller2)
	}
}

func TestCallersIgnoresNonCallUses(t *testing.T) {
	m := NewModule("m")
	f := m.DefineFunction("f", voidFn(), External)
	NewConstantExpr(f) // e.g. appears in a static-initializer list, not a call

	if callers := f.Callers(); len(callers) != 0 {
		t.Errorf("Callers() = %v, want none for a non-call use", callers)
	}
}

func TestInsertCallAtEntryPrepends(t *testing.T) {
	m := NewModule("m")
	main := m.DefineFunction("main", voidFn(), External)
	other := m.DefineFunction("other", voidFn(), External)
	init := m.DefineFunction("init", voidFn(), External)

	main.NewCallInst(main.EntryBlock(), other)
	main.InsertCallAtEntry(init)

	insts := main.EntryBlock().Instructions
	if len(insts) != 2 || insts[0].Callee() != init || insts[1].Callee() != other {
		t.Fatalf("unexpected instruction order: %+v", insts)
	}
}

func TestAttrsRoundTrip(t *testing.T) {
	m := NewModule("m")
	f := m.DefineFunction("f", voidFn(), External)
	f.AddAttr(AlwaysInline)
	if !f.HasAttr(AlwaysInline) {
		t.Error("AddAttr should set the attribute")
	}
	attrs := f.Attrs()
	if len(attrs) != 1 || attrs[0] != AlwaysInline {
		t.Errorf("Attrs() = %v, want [AlwaysInline]", attrs)
	}
	f.RemoveAttr(AlwaysInline)
	if f.HasAttr(AlwaysInline) {
		t.Error("RemoveAttr should clear the attribute")
	}
}

func TestEntryBlockCreatesOnFirstUse(t *testing.T) {
	m := NewModule("m")
	f := m.DefineFunction("f", voidFn(), External)
	if len(f.Blocks) != 0 {
		t.Fatal("a fresh function should have no blocks")
	}
	b1 := f.EntryBlock()
	b2 := f.EntryBlock()
	if b1 != b2 {
		t.Error("EntryBlock should return the same block on repeated calls")
	}
	if len(f.Blocks) != 1 {
		t.Errorf("Blocks = %v, want exactly one block", f.Blocks)
	}
}

func TestInstructionCalleeAndLoadedGlobal(t *testing.T) {
	m := NewModule("m")
	f := m.DefineFunction("f", voidFn(), External)
	callee := m.DefineFunction("g", voidFn(), External)
	g := m.AddGlobal("global", i32(), false, External, NotThreadLocal, 0, false, nil)

	callInst := f.NewCallInst(f.EntryBlock(), callee)
	loadInst := f.NewLoadInst(f.EntryBlock(), g)

	if callInst.Callee() != callee {
		t.Error("Callee() should return the called function")
	}
	if callInst.LoadedGlobal() != nil {
		t.Error("Callee instruction should not report a loaded global")
	}
	if loadInst.LoadedGlobal() != g {
		t.Error("LoadedGlobal() should return the loaded global")
	}
	if loadInst.Callee() != nil {
		t.Error("Load instruction should not report a callee")
	}
}
