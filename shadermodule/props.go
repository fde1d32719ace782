package shadermodule

import "github.com/gogpu/shaderlink/shadermodel"

// EntrySignature is opaque entry-point signature metadata (input/output
// parameter layout) copied verbatim from the source library onto the
// output module (spec.md §4.3.3 step 4).
type EntrySignature struct {
	Inputs  []string
	Outputs []string
}

// FunctionProperties is the "shader-function-properties" collaborator
// of spec.md §6: shader kind, hull-shader patch-constant companion, and
// entry-point signature.
type FunctionProperties struct {
	Kind            shadermodel.ShaderKind
	PatchConstantFn *Function // set only when Kind == shadermodel.Hull
	Signature       *EntrySignature
}

// IsHullShader reports whether these properties describe a hull shader
// with a patch-constant companion function (spec.md §4.1 step 5).
func (p *FunctionProperties) IsHullShader() bool {
	return p.Kind == shadermodel.Hull && p.PatchConstantFn != nil
}

// FunctionAnnotation is opaque per-function type-system metadata (e.g.
// parameter semantics) copied verbatim across modules when present
// (spec.md §4.3.3 step 3).
type FunctionAnnotation struct {
	Data map[string]any
}

// TypeSystem is the "type-system store" collaborator of spec.md §6: it
// records an optional annotation per function.
type TypeSystem struct {
	annotations map[*Function]*FunctionAnnotation
}

// NewTypeSystem creates an empty type-system store.
func NewTypeSystem() *TypeSystem {
	return &TypeSystem{annotations: make(map[*Function]*FunctionAnnotation)}
}

// Annotation returns f's annotation, or nil if none was recorded.
func (t *TypeSystem) Annotation(f *Function) *FunctionAnnotation {
	return t.annotations[f]
}

// SetAnnotation records an annotation for f.
func (t *TypeSystem) SetAnnotation(f *Function, a *FunctionAnnotation) {
	t.annotations[f] = a
}

// CopyFunctionAnnotation copies src's annotation for srcFn (in srcSys)
// onto dstFn in dstSys, if one exists (spec.md §4.3.3 step 3).
func CopyFunctionAnnotation(dstSys *TypeSystem, dstFn *Function, srcSys *TypeSystem, srcFn *Function) {
	ann := srcSys.Annotation(srcFn)
	if ann == nil {
		return
	}
	cp := &FunctionAnnotation{Data: make(map[string]any, len(ann.Data))}
	for k, v := range ann.Data {
		cp.Data[k] = v
	}
	dstSys.SetAnnotation(dstFn, cp)
}
