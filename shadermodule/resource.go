package shadermodule

// ResourceClass is one of the four DXIL-style resource binding classes
// (spec.md §3).
type ResourceClass int

const (
	UAV ResourceClass = iota
	SRV
	CBuffer
	Sampler
)

// String returns the class name used in the "Resource already exists as
// <class> for <name>" diagnostic (spec.md §6).
func (c ResourceClass) String() string {
	switch c {
	case UAV:
		return "UAV"
	case SRV:
		return "SRV"
	case CBuffer:
		return "CBuffer"
	case Sampler:
		return "Sampler"
	default:
		return "unknown"
	}
}

// ResourceDescriptor is a binding-table entry (spec.md §3): its class,
// its global name, the backing global symbol (with its element type),
// and opaque class-specific metadata (register slot, sample count, ...).
type ResourceDescriptor struct {
	Class         ResourceClass
	GlobalName    string
	BackingGlobal *GlobalVariable
	Metadata      map[string]any
}

// ResourceTables is a module's resource table, split by class the same
// way DXIL keeps separate UAV/SRV/CBuffer/Sampler tables.
type ResourceTables struct {
	UAVs     []*ResourceDescriptor
	SRVs     []*ResourceDescriptor
	CBuffers []*ResourceDescriptor
	Samplers []*ResourceDescriptor
}

func newResourceTables() *ResourceTables { return &ResourceTables{} }

func (rt *ResourceTables) tableFor(class ResourceClass) *[]*ResourceDescriptor {
	switch class {
	case UAV:
		return &rt.UAVs
	case SRV:
		return &rt.SRVs
	case CBuffer:
		return &rt.CBuffers
	case Sampler:
		return &rt.Samplers
	default:
		return nil
	}
}

// Declare registers desc in the table for its class, at parse time
// (spec.md §4.1 step 6 — "walk the module's resource table").
func (rt *ResourceTables) Declare(desc *ResourceDescriptor) {
	t := rt.tableFor(desc.Class)
	if t == nil {
		return
	}
	*t = append(*t, desc)
}

// All returns every declared resource across all four classes, in
// class order (UAV, SRV, CBuffer, Sampler) matching the AddResourceMap
// iteration order of the original DxilLib constructor.
func (rt *ResourceTables) All() []*ResourceDescriptor {
	var out []*ResourceDescriptor
	out = append(out, rt.UAVs...)
	out = append(out, rt.SRVs...)
	out = append(out, rt.CBuffers...)
	out = append(out, rt.Samplers...)
	return out
}

// Install appends desc to the appropriate class table of the OUTPUT
// module and returns the assigned resource identifier (spec.md §4.3.7):
// its index within that class's table, mirroring DxilModule::AddUAV et
// al.
func (rt *ResourceTables) Install(desc *ResourceDescriptor) uint32 {
	t := rt.tableFor(desc.Class)
	*t = append(*t, desc)
	return uint32(len(*t) - 1)
}
