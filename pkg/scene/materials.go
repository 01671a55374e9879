package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewMaterialsScene creates a row of diffuse, metal and hollow glass spheres
// viewed through a lens focused on the centre sphere
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)

	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   2.0,
		Aperture:      0.5,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}
	cameraConfig := applyCameraOverrides(defaultCameraConfig, cameraOverrides)

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward, making the glass sphere a thin shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	return &Scene{
		Name:           "materials",
		World:          world,
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
