package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear color carried back along ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}
