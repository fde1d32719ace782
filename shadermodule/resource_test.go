package shadermodule

import "testing"

func TestResourceTablesDeclareSplitsByClass(t *testing.T) {
	rt := newResourceTables()
	rt.Declare(&ResourceDescriptor{Class: SRV, GlobalName: "tex"})
	rt.Declare(&ResourceDescriptor{Class: UAV, GlobalName: "buf"})
	rt.Declare(&ResourceDescriptor{Class: CBuffer, GlobalName: "cb"})
	rt.Declare(&ResourceDescriptor{Class: Sampler, GlobalName: "samp"})

	if len(rt.SRVs) != 1 || len(rt.UAVs) != 1 || len(rt.CBuffers) != 1 || len(rt.Samplers) != 1 {
		t.Fatalf("unexpected table sizes: %+v", rt)
	}
}

func TestResourceTablesAllOrdersByClass(t *testing.T) {
	rt := newResourceTables()
	rt.Declare(&ResourceDescriptor{Class: Sampler, GlobalName: "samp"})
	rt.Declare(&ResourceDescriptor{Class: UAV, GlobalName: "buf"})
	rt.Declare(&ResourceDescriptor{Class: SRV, GlobalName: "tex"})
	rt.Declare(&ResourceDescriptor{Class: CBuffer, GlobalName: "cb"})

	all := rt.All()
	classes := make([]ResourceClass, len(all))
	for i, d := range all {
		classes[i] = d.Class
	}
	want := []ResourceClass{UAV, SRV, CBuffer, Sampler}
	for i, c := range want {
		if classes[i] != c {
			t.Errorf("All()[%d].Class = %v, want %v", i, classes[i], c)
		}
	}
}

func TestResourceTablesInstallAssignsSequentialIDsPerClass(t *testing.T) {
	rt := newResourceTables()
	id0 := rt.Install(&ResourceDescriptor{Class: SRV, GlobalName: "a"})
	id1 := rt.Install(&ResourceDescriptor{Class: SRV, GlobalName: "b"})
	uavID := rt.Install(&ResourceDescriptor{Class: UAV, GlobalName: "c"})

	if id0 != 0 || id1 != 1 {
		t.Errorf("SRV ids = %d, %d, want 0, 1", id0, id1)
	}
	if uavID != 0 {
		t.Errorf("UAV id = %d, want 0 (independent per-class counter)", uavID)
	}
}

func TestResourceClassString(t *testing.T) {
	cases := map[ResourceClass]string{
		UAV: "UAV", SRV: "SRV", CBuffer: "CBuffer", Sampler: "Sampler", ResourceClass(99): "unknown",
	}
	for class, want := range cases {
		if got := class.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", class, got, want)
		}
	}
}
