package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0,1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(
		math.Max(0, math.Min(1, r)),
		math.Max(0, math.Min(1, g)),
		math.Max(0, math.Min(1, blue)),
	)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 8

// NewSphereGridScene creates a grid of spheres on a large ground sphere. Hue
// varies along X and chroma along Z; every fourth sphere is glass, the rest
// alternate between rough metal and diffuse.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewVec3(4.5, 6, 18)
	lookAt := core.NewVec3(4.5, 0.8, 4.5)

	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.1,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	samplingConfig := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		Width:           320,
		Height:          180,
		SamplesPerPixel: 50,
	})

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	// Fit the grid into a 9x9 area centred on the look-at point
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	sphereRadius := math.Min(0.35*spacing, 0.5)

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25
	glass := material.NewDielectric(1.5)

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(sphereGridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(sphereGridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			switch {
			case (i+j)%4 == 0:
				mat = glass
			case (i+j)%2 == 0:
				mat = material.NewLambertian(color)
			default:
				roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
				mat = material.NewMetal(color, roughness)
			}

			world.Add(geometry.NewSphere(position, sphereRadius, mat))
		}
	}

	return &Scene{
		Name:           "sphere-grid",
		World:          world,
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
	}
}
