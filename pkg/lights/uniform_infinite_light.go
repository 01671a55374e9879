package lights

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// UniformInfiniteLight emits the same color in all directions
type UniformInfiniteLight struct {
	emission core.Vec3
}

// NewUniformInfiniteLight creates a new uniform infinite light
func NewUniformInfiniteLight(emission core.Vec3) *UniformInfiniteLight {
	return &UniformInfiniteLight{emission: emission}
}

// Emit returns the constant emission
func (uil *UniformInfiniteLight) Emit(ray core.Ray) core.Vec3 {
	return uil.emission
}
