package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
)

// MaxDepth is the number of scattering events after which a path is cut off
// and contributes black. The cutoff is a termination guarantee; the energy it
// drops in deep glass/mirror paths is expected output.
const MaxDepth = 50

// DefaultTMin offsets scattered ray origins to suppress self-intersection
const DefaultTMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing lit only by an
// infinite background light
type PathTracingIntegrator struct {
	tMin       float64
	background lights.Light
}

// NewPathTracingIntegrator creates a path tracing integrator lit by the default sky gradient
func NewPathTracingIntegrator(tMin float64) *PathTracingIntegrator {
	return NewPathTracingIntegratorWithBackground(tMin, lights.NewSkyGradient())
}

// NewPathTracingIntegratorWithBackground creates a path tracing integrator lit by background
func NewPathTracingIntegratorWithBackground(tMin float64, background lights.Light) *PathTracingIntegrator {
	return &PathTracingIntegrator{tMin: tMin, background: background}
}

// RayColor computes the color for a single ray. The path is followed in a loop;
// attenuations are kept so they can be applied innermost-first, giving the same
// floating point result (NaN and signed zeros included) as
// attenuation ⊙ color(scattered, depth+1).
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	var stack [MaxDepth]core.Vec3
	depth := 0

	for {
		hit, isHit := world.Hit(ray, pt.tMin, math.MaxFloat64)
		if !isHit {
			return applyAttenuations(pt.background.Emit(ray), stack[:depth])
		}

		if depth >= MaxDepth {
			return applyAttenuations(core.Vec3{}, stack[:depth])
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return applyAttenuations(core.Vec3{}, stack[:depth])
		}

		stack[depth] = scatter.Attenuation
		depth++
		ray = scatter.Scattered
	}
}

// applyAttenuations multiplies color by each attenuation from the last bounce back to the first
func applyAttenuations(color core.Vec3, attenuations []core.Vec3) core.Vec3 {
	for i := len(attenuations) - 1; i >= 0; i-- {
		color = color.MultiplyVec(attenuations[i])
	}
	return color
}
