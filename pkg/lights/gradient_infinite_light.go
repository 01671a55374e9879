package lights

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// GradientInfiniteLight blends between a bottom and a top color by the
// normalized Y of the ray direction
type GradientInfiniteLight struct {
	topColor    core.Vec3 // Color straight up
	bottomColor core.Vec3 // Color straight down
}

// NewGradientInfiniteLight creates a new gradient infinite light
func NewGradientInfiniteLight(topColor, bottomColor core.Vec3) *GradientInfiniteLight {
	return &GradientInfiniteLight{topColor: topColor, bottomColor: bottomColor}
}

// NewSkyGradient returns the default sky: white at the bottom blending to light blue at the top
func NewSkyGradient() *GradientInfiniteLight {
	return NewGradientInfiniteLight(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Emit returns (1-t)*bottom + t*top with t = 0.5*(unit(d).Y + 1)
func (gil *GradientInfiniteLight) Emit(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(gil.bottomColor, gil.topColor, t)
}
