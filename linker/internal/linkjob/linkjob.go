// Package linkjob implements the link job of spec.md §4.3: transitive
// closure over the call graph, validation against the target profile,
// output-module construction, global and resource merging, function
// body cloning, static-initializer wiring, resource-ID installation,
// and finalization.
//
// Grounded on DxilLinkJob::Link (DxilLinker.cpp) followed near
// line-for-line: worklist closure with a visited set, two-phase
// global/resource materialization that collects every failure before
// aborting, ValueToValueMapTy-style cloning, entry-block initializer
// insertion, and AddResourceToDM's use-rewriting for resource IDs.
package linkjob

import (
	"sort"

	"go.uber.org/zap"

	"github.com/gogpu/shaderlink/diag"
	"github.com/gogpu/shaderlink/finalize"
	"github.com/gogpu/shaderlink/intrinsic"
	"github.com/gogpu/shaderlink/linker/internal/index"
	"github.com/gogpu/shaderlink/linker/internal/registry"
	"github.com/gogpu/shaderlink/shadermodel"
	"github.com/gogpu/shaderlink/shadermodule"
)

// Job runs one link operation against a shared registry and intrinsic
// cache. A Job is stateless between calls to Link; all mutable state
// lives in the transient run below (spec.md §5: "a failed link does
// not mutate the linker at all").
type Job struct {
	reg        *registry.Registry
	cache      *intrinsic.Cache
	logger     *zap.Logger
	model      shaderModelResolver
	intrinsics intrinsicRecognizer
}

// New creates a link job bound to reg and cache.
func New(reg *registry.Registry, cache *intrinsic.Cache, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{
		reg:        reg,
		cache:      cache,
		logger:     logger,
		model:      defaultShaderModel{},
		intrinsics: defaultIntrinsics{},
	}
}

type materialized struct {
	idx  *index.Index
	lib  string
	info *index.FunctionLinkInfo
}

type mergedResource struct {
	desc      *shadermodule.ResourceDescriptor
	newGlobal *shadermodule.GlobalVariable
}

// run holds every piece of transient state for a single Link call.
type run struct {
	sink *diag.Sink

	funcDefs   map[string]materialized
	intrinsics map[string]*shadermodule.Function

	out          *shadermodule.Module
	funcOldToNew map[*shadermodule.Function]*shadermodule.Function
	newFuncs     map[string]*shadermodule.Function
	staticInits  []*shadermodule.Function

	globalOldToNew map[*shadermodule.GlobalVariable]*shadermodule.GlobalVariable
	newGlobals     map[string]*shadermodule.GlobalVariable
	resources      map[string]*mergedResource
	globalFailed   bool
}

// Link executes a link job for entry against profile, returning the
// finished output module on success. On failure it returns nil, false,
// and diagnostics in sink; err carries the underlying finalization
// error when finalization itself is what failed, and is nil for every
// other failure category (those are fully described by sink alone).
func (j *Job) Link(entry, profile string, sink *diag.Sink) (*shadermodule.Module, bool, error) {
	r := &run{
		sink:           sink,
		funcDefs:       make(map[string]materialized),
		intrinsics:     make(map[string]*shadermodule.Function),
		funcOldToNew:   make(map[*shadermodule.Function]*shadermodule.Function),
		newFuncs:       make(map[string]*shadermodule.Function),
		globalOldToNew: make(map[*shadermodule.GlobalVariable]*shadermodule.GlobalVariable),
		newGlobals:     make(map[string]*shadermodule.GlobalVariable),
		resources:      make(map[string]*mergedResource),
	}

	if !j.closure(r, entry) {
		return nil, false, nil
	}

	entryMat, ok := r.funcDefs[entry]
	if !ok {
		sink.Emit(diag.UndefinedFunction, entry)
		return nil, false, nil
	}
	props := entryMat.idx.Module().FunctionProperties(entryMat.info.Func)
	if !j.validate(r, entry, profile, props) {
		return nil, false, nil
	}

	r.out = shadermodule.NewModule(entry)
	r.out.TargetTriple = entryMat.idx.Module().TargetTriple

	j.declareIntrinsics(r)
	j.materializeFunctions(r)
	j.setEntry(r, entry, entryMat, props)

	if !j.materializeGlobals(r) {
		return nil, false, nil
	}

	j.cloneBodies(r)
	j.insertStaticInitializerCalls(r)
	j.installResources(r)

	if err := finalize.NewPipeline(j.cache).Run(r.out); err != nil {
		j.logger.Warn("finalization failed", zap.String("entry", entry), zap.Error(err))
		return nil, false, err
	}

	return r.out, true, nil
}

// closure implements spec.md §4.3.1.
func (j *Job) closure(r *run, entry string) bool {
	visited := make(map[string]bool)
	queue := []string{entry}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n] {
			continue
		}
		visited[n] = true

		idx, lib, ok := j.reg.LookupWithLibrary(n)
		if !ok {
			r.sink.Emit(diag.UndefinedFunction, n)
			return false
		}
		info, ok := idx.LinkInfo(n)
		if !ok {
			r.sink.Emit(diag.UndefinedFunction, n)
			return false
		}
		r.funcDefs[n] = materialized{idx: idx, lib: lib, info: info}

		callees := make([]string, 0, len(info.CallSet))
		for c := range info.CallSet {
			callees = append(callees, c)
		}
		sort.Strings(callees)

		for _, callee := range callees {
			if j.intrinsics.IsIntrinsic(callee) {
				if _, seen := r.intrinsics[callee]; !seen {
					if f := idx.Module().FindFunction(callee); f != nil {
						r.intrinsics[callee] = f
					}
				}
				continue
			}
			if !visited[callee] {
				queue = append(queue, callee)
			}
		}
	}
	return true
}

// validate implements spec.md §4.3.2.
func (j *Job) validate(r *run, entry, profile string, props *shadermodule.FunctionProperties) bool {
	if props == nil {
		r.sink.Emit(diag.MissingEntryProps, entry)
		return false
	}
	if props.Kind == shadermodel.Library || props.Kind == shadermodel.Invalid {
		r.sink.Emit(diag.InvalidProfile, profile)
		return false
	}
	resolved, ok := j.model.Lookup(profile)
	if !ok || resolved.Kind != props.Kind {
		r.sink.Emit(diag.ShaderKindMismatch, profile, props.Kind.String())
		return false
	}
	return true
}

// declareIntrinsics implements spec.md §4.3.3 step 2.
func (j *Job) declareIntrinsics(r *run) {
	names := make([]string, 0, len(r.intrinsics))
	for name := range r.intrinsics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src := r.intrinsics[name]
		decl := r.out.DeclareFunction(name, src.Type, src.Linkage, src.Attrs())
		r.funcOldToNew[src] = decl
	}
}

// materializeFunctions implements spec.md §4.3.3 step 3.
func (j *Job) materializeFunctions(r *run) {
	names := make([]string, 0, len(r.funcDefs))
	for name := range r.funcDefs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mat := r.funcDefs[name]
		newF := r.out.DeclareFunction(name, mat.info.Func.Type, mat.info.Func.Linkage, mat.info.Func.Attrs())
		newF.AddAttr(shadermodule.AlwaysInline)
		for _, p := range mat.info.Func.Params {
			newF.AddParam(p.Name)
		}
		shadermodule.CopyFunctionAnnotation(r.out.TypeSystem(), newF, mat.idx.Module().TypeSystem(), mat.info.Func)

		r.newFuncs[name] = newF
		r.funcOldToNew[mat.info.Func] = newF
		if mat.idx.IsStaticInitializer(name) {
			r.staticInits = append(r.staticInits, newF)
		}
	}
}

// setEntry implements spec.md §4.3.3 steps 4-5.
func (j *Job) setEntry(r *run, entry string, entryMat materialized, props *shadermodule.FunctionProperties) {
	newEntry := r.newFuncs[entry]
	r.out.EntryFunction = newEntry
	newEntry.RemoveAttr(shadermodule.AlwaysInline)

	propsCopy := &shadermodule.FunctionProperties{
		Kind:      props.Kind,
		Signature: props.Signature,
	}
	if props.IsHullShader() {
		if newPatch, ok := r.funcOldToNew[props.PatchConstantFn]; ok {
			propsCopy.PatchConstantFn = newPatch
			newPatch.RemoveAttr(shadermodule.AlwaysInline)
		}
	}
	r.out.SetFunctionProperties(newEntry, propsCopy)
}

// materializeGlobals implements spec.md §4.3.4.
func (j *Job) materializeGlobals(r *run) bool {
	names := make([]string, 0, len(r.funcDefs))
	for name := range r.funcDefs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mat := r.funcDefs[name]
		globalNames := make([]string, 0, len(mat.info.GlobalSet))
		for g := range mat.info.GlobalSet {
			globalNames = append(globalNames, g)
		}
		sort.Strings(globalNames)

		for _, gname := range globalNames {
			j.materializeOneGlobal(r, mat, gname)
		}
	}

	return !r.globalFailed
}

func (j *Job) materializeOneGlobal(r *run, mat materialized, gname string) {
	oldGlobal := mat.idx.Module().FindGlobal(gname)
	if oldGlobal == nil {
		return
	}
	if _, mapped := r.globalOldToNew[oldGlobal]; mapped {
		return
	}

	desc, isResource := mat.idx.Resource(gname)

	if existingNew, exists := r.newGlobals[gname]; exists {
		if isResource {
			merged, ok := j.mergeResource(r, gname, desc, existingNew)
			if !ok {
				r.sink.Emit(diag.ResourceShapeConflict, desc.Class.String(), gname)
				r.globalFailed = true
				return
			}
			r.globalOldToNew[oldGlobal] = merged.newGlobal
			return
		}
		r.sink.Emit(diag.RedefineGlobal, gname)
		r.globalFailed = true
		return
	}

	newG := r.out.AddGlobal(oldGlobal.Name, oldGlobal.ElementType, oldGlobal.Constant, oldGlobal.Linkage, oldGlobal.ThreadLocal, oldGlobal.AddressSpace, oldGlobal.ExternallyInitialized, oldGlobal.Initializer)
	r.newGlobals[gname] = newG
	r.globalOldToNew[oldGlobal] = newG
	if isResource {
		j.mergeResource(r, gname, desc, newG)
	}
}

func (j *Job) mergeResource(r *run, name string, desc *shadermodule.ResourceDescriptor, newGlobal *shadermodule.GlobalVariable) (*mergedResource, bool) {
	if existing, ok := r.resources[name]; ok {
		if !existing.desc.BackingGlobal.ElementType.Equal(desc.BackingGlobal.ElementType) {
			return nil, false
		}
		return existing, true
	}
	m := &mergedResource{desc: desc, newGlobal: newGlobal}
	r.resources[name] = m
	return m, true
}

// cloneBodies implements spec.md §4.3.5.
func (j *Job) cloneBodies(r *run) {
	vmap := make(shadermodule.ValueMap, len(r.funcOldToNew)+len(r.globalOldToNew))
	for old, nw := range r.funcOldToNew {
		vmap[old] = nw
	}
	for old, nw := range r.globalOldToNew {
		vmap[old] = nw
	}

	names := make([]string, 0, len(r.funcDefs))
	for name := range r.funcDefs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mat := r.funcDefs[name]
		newF := r.newFuncs[name]
		shadermodule.Clone(newF, mat.info.Func, vmap)
		newF.Declaration = false
	}
}

// insertStaticInitializerCalls implements spec.md §4.3.6. Relative
// order across initializers is unspecified (spec.md §9); this
// implementation sorts them by name and prepends each call in turn, so
// the entry block calls them in descending name order.
func (j *Job) insertStaticInitializerCalls(r *run) {
	sort.Slice(r.staticInits, func(i, k int) bool { return r.staticInits[i].Name < r.staticInits[k].Name })

	newEntry := r.out.EntryFunction
	for _, sinit := range r.staticInits {
		if sinit == newEntry {
			continue
		}
		newEntry.InsertCallAtEntry(sinit)
	}
}

// installResources implements spec.md §4.3.7.
func (j *Job) installResources(r *run) {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		merged := r.resources[name]
		meta := make(map[string]any, len(merged.desc.Metadata))
		for k, v := range merged.desc.Metadata {
			meta[k] = v
		}
		newDesc := &shadermodule.ResourceDescriptor{
			Class:         merged.desc.Class,
			GlobalName:    merged.desc.GlobalName,
			BackingGlobal: merged.newGlobal,
			Metadata:      meta,
		}
		id := r.out.Resources.Install(newDesc)
		constVal := shadermodule.NewConstantInt(merged.newGlobal.ElementType, int64(id))
		shadermodule.ReplaceAllUsesWith(merged.newGlobal, constVal)
	}
}
