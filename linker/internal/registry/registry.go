// Package registry implements the cross-library symbol registry of
// spec.md §4.2: a mapping from function name to (link-info, library),
// attached and detached atomically with respect to naming collisions.
// Globals are not part of the registry — they are per-library and only
// resolved against each other during a link (spec.md §4.3.4).
//
// Grounded on DxilLinkerImpl::AttachLib/DetachLib's two-phase
// insert-then-rollback in the original DxilLinker.cpp, and on the
// teacher's Resolver (linker/resolver.go: an RWMutex-guarded name→value
// map with Register/Get/Unregister operations).
package registry

import (
	"sync"

	"github.com/gogpu/shaderlink/diag"
	"github.com/gogpu/shaderlink/linker/internal/index"
	"github.com/gogpu/shaderlink/shadermodule"
)

// Registry is the process of record for which library owns which
// function name, across every currently attached library. It is safe
// for concurrent use (spec.md §5).
type Registry struct {
	mu        sync.RWMutex
	functions map[string]string // function name -> owning library name
	attached  map[string]*index.Index
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		functions: make(map[string]string),
		attached:  make(map[string]*index.Index),
	}
}

// Attach inserts every defined function name in idx under libName. If
// lib is already attached, Attach fails (no-op, no diagnostic — spec.md
// §4.2's category (h)/(i) state errors carry no diagnostic). Otherwise
// it attempts to insert every name; on the first collision it records a
// diagnostic and keeps scanning to report every remaining collision,
// then rolls back so the registry returns to its pre-attach state.
func (r *Registry) Attach(libName string, idx *index.Index, sink *diag.Sink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attached[libName]; ok {
		return false
	}

	ok := true
	for _, name := range idx.FunctionNames() {
		if _, exists := r.functions[name]; exists {
			sink.Emit(diag.RedefineFunction, name)
			ok = false
		}
	}
	if !ok {
		return false
	}

	for _, name := range idx.FunctionNames() {
		r.functions[name] = libName
	}
	r.attached[libName] = idx
	return true
}

// Detach removes every function name libName contributed to the
// registry and removes libName from the attached set. Silent no-op if
// libName is not attached.
func (r *Registry) Detach(libName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attached[libName]; !ok {
		return false
	}
	r.detachLocked(libName)
	return true
}

func (r *Registry) detachLocked(libName string) {
	idx, ok := r.attached[libName]
	if !ok {
		return
	}
	for _, name := range idx.FunctionNames() {
		if r.functions[name] == libName {
			delete(r.functions, name)
		}
	}
	delete(r.attached, libName)
}

// DetachAll removes every attached library's symbols.
func (r *Registry) DetachAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name := range r.attached {
		r.detachLocked(name)
	}
}

// IsAttached reports whether libName currently has symbols registered.
func (r *Registry) IsAttached(libName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.attached[libName]
	return ok
}

// Lookup returns the index owning function name, across every attached
// library, for use during closure resolution (spec.md §4.3.1).
func (r *Registry) Lookup(name string) (*index.Index, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	libName, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return r.attached[libName], true
}

// LookupWithLibrary is Lookup plus the owning library's name, for
// recording (link-info, library) pairs in the link job's function-def
// map (spec.md §4.3.1).
func (r *Registry) LookupWithLibrary(name string) (*index.Index, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	libName, ok := r.functions[name]
	if !ok {
		return nil, "", false
	}
	return r.attached[libName], libName, true
}

// FindFunction resolves a function name to its defining Function value
// across every attached library.
func (r *Registry) FindFunction(name string) *shadermodule.Function {
	idx, ok := r.Lookup(name)
	if !ok {
		return nil
	}
	info, ok := idx.LinkInfo(name)
	if !ok {
		return nil
	}
	return info.Func
}

// Attached returns the names of every currently attached library.
func (r *Registry) Attached() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.attached))
	for name := range r.attached {
		out = append(out, name)
	}
	return out
}
