package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var outwardNormal core.Vec3
	var refractionRatio, cosine float64

	inDotN := rayIn.Direction.Dot(hit.Normal)
	if inDotN > 0 {
		// Ray is exiting the material (from glass to air)
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * inDotN / rayIn.Direction.Length()
	} else {
		// Ray is entering the material (from air to glass)
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -inDotN / rayIn.Direction.Length()
	}

	direction := Reflect(rayIn.Direction, hit.Normal)
	if refracted, ok := Refract(rayIn.Direction, outwardNormal, refractionRatio); ok {
		// One uniform draw per refractable hit; total internal reflection draws nothing
		if Schlick(cosine, d.RefractiveIndex) <= sampler.Get1D() {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

func (d *Dielectric) sealed() {}

// Refract bends v through a surface with normal n using Snell's law, where
// ratio is the incident over transmitted refractive index. It reports false
// on total internal reflection.
func Refract(v, n core.Vec3, ratio float64) (core.Vec3, bool) {
	uv := v.Normalize()
	cosTheta := uv.Dot(n)
	discriminant := 1.0 - ratio*ratio*(1.0-cosTheta*cosTheta)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(cosTheta)).Multiply(ratio).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
