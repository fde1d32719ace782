// Package finalize runs the linker's finalization pipeline: a fixed
// sequence of named passes invoked opaquely over the freshly linked
// output module (spec.md §1, §4.3.8). The passes' internals are
// explicitly out of scope — this package only owns naming and the
// documented fixed order, grounded on the legacy PassManager sequencing
// in the original DxilLinkJob::RunPreparePass.
package finalize

import (
	"github.com/gogpu/shaderlink/intrinsic"
	"github.com/gogpu/shaderlink/shadermodule"
)

// Pass is one named finalization step.
type Pass struct {
	Name string
	Run  func(*shadermodule.Module) error
}

// Pipeline runs its passes in order against a module.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds the fixed-order pipeline from spec.md §4.3.8:
// refresh intrinsic cache, always-inline, DCE, global DCE, instruction
// simplification, CFG simplification, resource condensation, view-ID
// state computation, metadata emission.
func NewPipeline(cache *intrinsic.Cache) *Pipeline {
	return &Pipeline{passes: []Pass{
		{Name: "refresh-intrinsic-cache", Run: refreshIntrinsicCache(cache)},
		{Name: "always-inline", Run: alwaysInline},
		{Name: "dead-code-elimination", Run: deadCodeElimination},
		{Name: "global-dce", Run: globalDCE},
		{Name: "instsimplify", Run: instSimplify},
		{Name: "simplifycfg", Run: simplifyCFG},
		{Name: "condense-resources", Run: condenseResources},
		{Name: "compute-view-id-state", Run: computeViewIDState},
		{Name: "emit-metadata", Run: emitMetadata},
	}}
}

// Names returns the pass names in execution order, for diagnostics and
// tests asserting the fixed order is preserved.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.passes))
	for i, pass := range p.passes {
		out[i] = pass.Name
	}
	return out
}

// Run executes every pass in order, stopping at the first error.
func (p *Pipeline) Run(m *shadermodule.Module) error {
	for _, pass := range p.passes {
		if err := pass.Run(m); err != nil {
			return err
		}
	}
	return nil
}

func refreshIntrinsicCache(cache *intrinsic.Cache) func(*shadermodule.Module) error {
	return func(m *shadermodule.Module) error {
		cache.Refresh(m)
		return nil
	}
}

// The remaining passes are intentionally trivial: their algorithms
// (inlining, dead-code elimination, resource condensation, metadata
// emission) are the shader IR's business, not the linker's, per
// spec.md §1. They exist so the pipeline's fixed order and naming are
// real, independently testable stages.

func alwaysInline(_ *shadermodule.Module) error       { return nil }
func deadCodeElimination(_ *shadermodule.Module) error { return nil }
func globalDCE(_ *shadermodule.Module) error          { return nil }
func instSimplify(_ *shadermodule.Module) error       { return nil }
func simplifyCFG(_ *shadermodule.Module) error        { return nil }
func condenseResources(_ *shadermodule.Module) error  { return nil }
func computeViewIDState(_ *shadermodule.Module) error { return nil }
func emitMetadata(_ *shadermodule.Module) error       { return nil }
