package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// The set of materials is closed: Lambertian, Metal and Dielectric.
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if the
	// ray was absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	sealed()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is only valid for the query that produced it.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward surface normal, (point - center) / radius for spheres
	Material Material  // Material of the hit object
}
