package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.ShapeList // Objects in the scene, in hit-test order
	Background     lights.Light        // Light seen by escaping rays; nil means the default sky
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// NewCamera builds the camera described by the scene's camera config
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// FitAspectToImage sets the camera aspect ratio to the image width over height
func (s *Scene) FitAspectToImage() {
	s.CameraConfig.AspectRatio = float64(s.SamplingConfig.Width) / float64(s.SamplingConfig.Height)
}

// NewRaytracer creates a raytracer for the scene
func (s *Scene) NewRaytracer(logger core.Logger) (*renderer.Raytracer, error) {
	rt, err := renderer.NewRaytracer(s.World, s.NewCamera(), s.SamplingConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	if s.Background != nil {
		rt.SetBackground(s.Background)
	}
	return rt, nil
}

// Constructor builds a built-in scene, applying optional camera overrides
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

// builtins maps scene names to their constructors
var builtins = map[string]Constructor{
	"two-spheres": NewTwoSpheresScene,
	"materials":   NewMaterialsScene,
	"sphere-grid": NewSphereGridScene,
}

// ByName creates the built-in scene with the given name
func ByName(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	constructor, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return constructor(cameraOverrides...), nil
}

// Names returns the names of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyCameraOverrides merges the first override, if any, over base
func applyCameraOverrides(base renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(cameraOverrides) > 0 {
		return renderer.MergeCameraConfig(base, cameraOverrides[0])
	}
	return base
}
