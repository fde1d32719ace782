package intrinsic

import (
	"testing"

	"github.com/gogpu/shaderlink/shadermodule"
)

func TestIsIntrinsic(t *testing.T) {
	cases := map[string]bool{
		"dx.op.sqrt":   true,
		"dx.op.sample": true,
		"main":         false,
		"dxop.sqrt":    false,
		"":             false,
	}
	for name, want := range cases {
		if got := IsIntrinsic(name); got != want {
			t.Errorf("IsIntrinsic(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestCacheRefreshAndLookup(t *testing.T) {
	m := shadermodule.NewModule("m")
	sqrtFn := m.DeclareFunction("dx.op.sqrt", shadermodule.FuncType{Signature: "void()"}, shadermodule.External, nil)
	m.DefineFunction("main", shadermodule.FuncType{Signature: "void()"}, shadermodule.External)

	c := NewCache()
	if c.Len() != 0 {
		t.Fatal("a fresh cache should be empty")
	}

	c.Refresh(m)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	got, ok := c.Lookup("dx.op.sqrt")
	if !ok || got != sqrtFn {
		t.Errorf("Lookup(dx.op.sqrt) = %v, %v, want %v, true", got, ok, sqrtFn)
	}
	if _, ok := c.Lookup("main"); ok {
		t.Error("Lookup(main) should fail: main is not an intrinsic")
	}
}

func TestCacheRefreshReplacesPriorContents(t *testing.T) {
	m1 := shadermodule.NewModule("m1")
	m1.DeclareFunction("dx.op.sqrt", shadermodule.FuncType{Signature: "void()"}, shadermodule.External, nil)
	m2 := shadermodule.NewModule("m2")
	m2.DeclareFunction("dx.op.sin", shadermodule.FuncType{Signature: "void()"}, shadermodule.External, nil)

	c := NewCache()
	c.Refresh(m1)
	c.Refresh(m2)

	if _, ok := c.Lookup("dx.op.sqrt"); ok {
		t.Error("Refresh should discard the previous module's intrinsics")
	}
	if _, ok := c.Lookup("dx.op.sin"); !ok {
		t.Error("Refresh should pick up the new module's intrinsics")
	}
}
