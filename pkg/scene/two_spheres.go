package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewTwoSpheresScene creates the reference scene: a diffuse blue sphere resting
// on a huge diffuse ground sphere, seen through the default pinhole camera
func NewTwoSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := applyCameraOverrides(renderer.DefaultCameraConfig(), cameraOverrides)

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)

	return &Scene{
		Name:           "two-spheres",
		World:          world,
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}
