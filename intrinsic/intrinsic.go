// Package intrinsic recognizes shader-operation intrinsic functions by
// name and caches per-module intrinsic lookups.
//
// Grounded on component/canon_registry.go's name-keyed registry pattern
// and asyncify/matcher.go's naming-convention predicate from the
// wasm-runtime teacher.
package intrinsic

import (
	"strings"
	"sync"

	"github.com/gogpu/shaderlink/shadermodule"
)

// namePrefix is the naming convention shader-operation intrinsics use;
// any function whose name starts with it is redeclared verbatim by the
// linker rather than cloned (spec.md §4.3.1, §9 "name-based late binding
// of intrinsics").
const namePrefix = "dx.op."

// IsIntrinsic reports whether name follows the shader-operation
// intrinsic naming convention.
func IsIntrinsic(name string) bool {
	return strings.HasPrefix(name, namePrefix)
}

// Cache is the "refreshable per-module cache" collaborator of spec.md
// §6, refreshed as the first step of the finalization pipeline (spec.md
// §4.3.8) once every intrinsic has been redeclared in the output
// module.
type Cache struct {
	mu    sync.Mutex
	names map[string]*shadermodule.Function
}

// NewCache creates an empty intrinsic cache.
func NewCache() *Cache {
	return &Cache{names: make(map[string]*shadermodule.Function)}
}

// Refresh rebuilds the cache from every intrinsic-named function
// currently declared in m.
func (c *Cache) Refresh(m *shadermodule.Module) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = make(map[string]*shadermodule.Function)
	for _, f := range m.Functions {
		if IsIntrinsic(f.Name) {
			c.names[f.Name] = f
		}
	}
}

// Lookup returns the cached intrinsic declaration by name, if present.
func (c *Cache) Lookup(name string) (*shadermodule.Function, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.names[name]
	return f, ok
}

// Len reports how many intrinsics are currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names)
}
