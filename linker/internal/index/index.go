// Package index builds the per-library index described in spec.md §4.1:
// for every defined function, its call set and global-use set, plus the
// library's resource map and static initializer set. Resource uses are
// not kept as a separate per-function set: resource-backed globals sit
// in the global-use set and are told apart through Index.Resource.
//
// Grounded on the DxilLib constructor in the original DxilLinker.cpp,
// followed pass-for-pass: rename → enumerate defines → call sets →
// global-use sets → hull patch-constant wiring → resource map → static
// initializers.
package index

import (
	"sort"

	"github.com/gogpu/shaderlink/shadermodule"
)

// FunctionLinkInfo is spec.md §3's "Function Link-Info": the set of
// functions a defined function calls and the globals it reads or
// writes. It has no separate resource set; resource-backed globals are
// part of GlobalSet.
type FunctionLinkInfo struct {
	Func      *shadermodule.Function
	CallSet   map[string]bool
	GlobalSet map[string]bool
}

func newLinkInfo(f *shadermodule.Function) *FunctionLinkInfo {
	return &FunctionLinkInfo{Func: f, CallSet: map[string]bool{}, GlobalSet: map[string]bool{}}
}

// Index is the per-library index.
type Index struct {
	module      *shadermodule.Module
	functions   map[string]*FunctionLinkInfo
	staticInits map[string]bool
	resources   map[string]*shadermodule.ResourceDescriptor
}

// Build constructs the index for m, deterministically and in a single
// pass, renaming m's internal-linkage symbols with m.Identifier as
// prefix (spec.md §4.1 step 1). m.Identifier must already be set to the
// library's name before calling Build.
func Build(m *shadermodule.Module) *Index {
	idx := &Index{
		module:      m,
		functions:   make(map[string]*FunctionLinkInfo),
		staticInits: make(map[string]bool),
		resources:   make(map[string]*shadermodule.ResourceDescriptor),
	}

	renamePrivateSymbols(m)

	for _, f := range m.Functions {
		if f.Declaration {
			continue
		}
		idx.functions[f.Name] = newLinkInfo(f)
	}

	for _, info := range idx.functions {
		for _, blk := range info.Func.Blocks {
			for _, inst := range blk.Instructions {
				if callee := inst.Callee(); callee != nil {
					info.CallSet[callee.Name] = true
				}
			}
		}
	}

	for _, g := range m.Globals {
		for _, f := range shadermodule.UsingFunctions(g) {
			if info, ok := idx.functions[f.Name]; ok {
				info.GlobalSet[g.Name] = true
			}
		}
	}

	for _, info := range idx.functions {
		props := m.FunctionProperties(info.Func)
		if props != nil && props.IsHullShader() {
			info.CallSet[props.PatchConstantFn.Name] = true
		}
	}

	for _, desc := range m.Resources.All() {
		if desc.BackingGlobal != nil {
			idx.resources[desc.BackingGlobal.Name] = desc
		}
	}

	idx.buildStaticInitializers()

	return idx
}

func renamePrivateSymbols(m *shadermodule.Module) {
	for _, f := range m.Functions {
		if f.Linkage == shadermodule.Internal {
			f.Name = m.Identifier + f.Name
		}
	}
	for _, g := range m.Globals {
		if g.Linkage == shadermodule.Internal {
			g.Name = m.Identifier + g.Name
		}
	}
}

// buildStaticInitializers implements spec.md §4.1 step 7: every
// non-nil, zero-parameter function in the module's constructor list
// that this library defines becomes a static initializer (the return
// type in its opaque signature is not checked), and any OTHER function
// using one of its globals
// must call it, so pulling in a user of a global transitively pulls in
// its initializer.
func (idx *Index) buildStaticInitializers() {
	var ctorNames []string
	for _, c := range idx.module.Ctors {
		if c == nil || c.Declaration || len(c.Params) != 0 {
			continue
		}
		if _, ok := idx.functions[c.Name]; !ok {
			continue
		}
		idx.staticInits[c.Name] = true
		ctorNames = append(ctorNames, c.Name)
	}
	sort.Strings(ctorNames)

	for _, cname := range ctorNames {
		cinfo := idx.functions[cname]
		for g := range cinfo.GlobalSet {
			for fname, finfo := range idx.functions {
				if fname == cname {
					continue
				}
				if finfo.GlobalSet[g] {
					finfo.CallSet[cname] = true
				}
			}
		}
	}
}

// Has reports whether name is a defined function in this library.
func (idx *Index) Has(name string) bool {
	_, ok := idx.functions[name]
	return ok
}

// LinkInfo returns the link-info for a defined function name.
func (idx *Index) LinkInfo(name string) (*FunctionLinkInfo, bool) {
	li, ok := idx.functions[name]
	return li, ok
}

// FunctionNames returns every defined function name in the library, in
// sorted order for deterministic iteration by callers such as attach.
func (idx *Index) FunctionNames() []string {
	names := make([]string, 0, len(idx.functions))
	for name := range idx.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsStaticInitializer reports whether name is a registered static
// initializer.
func (idx *Index) IsStaticInitializer(name string) bool {
	return idx.staticInits[name]
}

// IsResourceGlobal reports whether globalName backs a declared resource.
func (idx *Index) IsResourceGlobal(globalName string) bool {
	_, ok := idx.resources[globalName]
	return ok
}

// Resource returns the resource descriptor backed by globalName.
func (idx *Index) Resource(globalName string) (*shadermodule.ResourceDescriptor, bool) {
	d, ok := idx.resources[globalName]
	return d, ok
}

// Module returns the underlying shader module.
func (idx *Index) Module() *shadermodule.Module { return idx.module }
