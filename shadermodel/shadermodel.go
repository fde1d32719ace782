// Package shadermodel resolves shader profile strings (e.g. "ps_6_0")
// into a shader kind and model version, mirroring DXIL's ShaderModel
// registry closely enough for the linker's profile-validation step
// (spec.md §4.3.2) without carrying any of the container format it
// would normally live inside.
//
// Grounded on gogpu-naga's hlsl.ShaderModel version enum, extended with
// the stage dimension that DXIL profile strings encode as a prefix.
package shadermodel

import (
	"fmt"
	"strconv"
	"strings"
)

// ShaderKind identifies a shader stage, or one of the two special
// non-executable kinds spec.md §4.3.2 treats as invalid link targets.
type ShaderKind int

const (
	Invalid ShaderKind = iota
	Pixel
	Vertex
	Geometry
	Hull
	Domain
	Compute
	Library
	Amplification
	Mesh
)

// String returns the human-readable kind name used in the "Profile
// mismatch ... and <shader-kind-name>" diagnostic (spec.md §6).
func (k ShaderKind) String() string {
	switch k {
	case Pixel:
		return "pixel"
	case Vertex:
		return "vertex"
	case Geometry:
		return "geometry"
	case Hull:
		return "hull"
	case Domain:
		return "domain"
	case Compute:
		return "compute"
	case Library:
		return "library"
	case Amplification:
		return "amplification"
	case Mesh:
		return "mesh"
	default:
		return "invalid"
	}
}

var prefixToKind = map[string]ShaderKind{
	"ps":  Pixel,
	"vs":  Vertex,
	"gs":  Geometry,
	"hs":  Hull,
	"ds":  Domain,
	"cs":  Compute,
	"lib": Library,
	"as":  Amplification,
	"ms":  Mesh,
}

// Profile is a resolved shader profile: stage and shader-model version.
type Profile struct {
	Kind  ShaderKind
	Major uint8
	Minor uint8
}

// String renders the profile back in "<stage>_<major>_<minor>" form.
func (p Profile) String() string {
	for prefix, kind := range prefixToKind {
		if kind == p.Kind {
			return fmt.Sprintf("%s_%d_%d", prefix, p.Major, p.Minor)
		}
	}
	return fmt.Sprintf("invalid_%d_%d", p.Major, p.Minor)
}

// Lookup resolves a profile name like "ps_6_0" or "lib_6_3" into a
// Profile. It returns false if the name does not follow
// "<stage>_<major>_<minor>" or the stage prefix is unrecognized —
// spec.md §4.3.2 treats such a profile as invalid to link against.
func Lookup(name string) (Profile, bool) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 {
		return Profile{}, false
	}
	kind, ok := prefixToKind[parts[0]]
	if !ok {
		return Profile{}, false
	}
	major, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Profile{}, false
	}
	minor, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Profile{}, false
	}
	return Profile{Kind: kind, Major: uint8(major), Minor: uint8(minor)}, true
}
