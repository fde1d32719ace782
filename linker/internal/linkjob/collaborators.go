package linkjob

//go:generate mockgen -source=collaborators.go -destination=collaborators_mock.go -package=linkjob

import (
	"github.com/gogpu/shaderlink/intrinsic"
	"github.com/gogpu/shaderlink/shadermodel"
)

// shaderModelResolver resolves a profile string to its shader kind and
// version, isolating the validation step (spec.md §4.3.2) from the
// concrete shadermodel registry so it can be exercised against
// hypothetical profiles in tests.
type shaderModelResolver interface {
	Lookup(profile string) (shadermodel.Profile, bool)
}

// intrinsicRecognizer decides whether a called function name is a
// shader-operation intrinsic rather than a linkable definition
// (spec.md §4.3.1), isolating closure walking from the naming
// convention itself.
type intrinsicRecognizer interface {
	IsIntrinsic(name string) bool
}

type defaultShaderModel struct{}

func (defaultShaderModel) Lookup(profile string) (shadermodel.Profile, bool) {
	return shadermodel.Lookup(profile)
}

type defaultIntrinsics struct{}

func (defaultIntrinsics) IsIntrinsic(name string) bool {
	return intrinsic.IsIntrinsic(name)
}
