package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/lights"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// SceneFile is the JSON scene description
type SceneFile struct {
	Name       string         `json:"name,omitempty"`
	Camera     CameraCfg      `json:"camera"`
	Sampling   SamplingCfg    `json:"sampling"`
	Background *BackgroundCfg `json:"background,omitempty"`
	Spheres    []SphereCfg    `json:"spheres"`
}

// BackgroundCfg selects the light seen by escaping rays: "gradient" with top
// and bottom colors, or "uniform" with a single emission color
type BackgroundCfg struct {
	Type     string  `json:"type"`
	Top      Vec3Cfg `json:"top,omitempty"`
	Bottom   Vec3Cfg `json:"bottom,omitempty"`
	Emission Vec3Cfg `json:"emission,omitempty"`
}

// CameraCfg overrides the default camera. Omitted fields keep their defaults.
// With a non-zero aperture and no focus distance, the camera focuses on lookAt.
type CameraCfg struct {
	LookFrom      *Vec3Cfg `json:"lookFrom,omitempty"`
	LookAt        *Vec3Cfg `json:"lookAt,omitempty"`
	Up            *Vec3Cfg `json:"up,omitempty"`
	VFov          float64  `json:"vfov,omitempty"`
	AspectRatio   float64  `json:"aspectRatio,omitempty"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"`
}

// SamplingCfg overrides the default sampling configuration
type SamplingCfg struct {
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	Samples  int     `json:"samples,omitempty"`
	Seed     uint64  `json:"seed,omitempty"`
	TMin     float64 `json:"tMin,omitempty"`
	TileSize int     `json:"tileSize,omitempty"`
}

// SphereCfg describes one sphere. A negative radius is allowed and flips the
// surface normals inward.
type SphereCfg struct {
	Center   Vec3Cfg     `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

// MaterialCfg is a tagged material: "lambertian", "metal" or "dielectric"
type MaterialCfg struct {
	Type            string  `json:"type"`
	Albedo          Vec3Cfg `json:"albedo,omitempty"`
	Fuzz            float64 `json:"fuzz,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

// LoadSceneJSON reads and builds a scene from a JSON file
func LoadSceneJSON(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseSceneJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseSceneJSON decodes a JSON scene description. Unknown fields are rejected.
func ParseSceneJSON(r io.Reader) (*scene.Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	return file.Build()
}

// Build converts the decoded description into a scene
func (f SceneFile) Build() (*scene.Scene, error) {
	world := geometry.NewShapeList()
	for i, sc := range f.Spheres {
		sphere, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		world.Add(sphere)
	}

	samplingConfig := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		Width:           f.Sampling.Width,
		Height:          f.Sampling.Height,
		SamplesPerPixel: f.Sampling.Samples,
		Seed:            f.Sampling.Seed,
		TMin:            f.Sampling.TMin,
		TileSize:        f.Sampling.TileSize,
	})
	if err := samplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	var background lights.Light
	if f.Background != nil {
		var err error
		if background, err = f.Background.Build(); err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
	}

	s := &scene.Scene{
		Name:           f.Name,
		World:          world,
		Background:     background,
		CameraConfig:   f.Camera.Build(),
		SamplingConfig: samplingConfig,
	}
	if f.Camera.AspectRatio == 0 {
		s.FitAspectToImage()
	}
	return s, nil
}

// Build creates the background light named by Type
func (b BackgroundCfg) Build() (lights.Light, error) {
	switch b.Type {
	case "gradient":
		return lights.NewGradientInfiniteLight(b.Top.vec(), b.Bottom.vec()), nil
	case "uniform":
		return lights.NewUniformInfiniteLight(b.Emission.vec()), nil
	default:
		return nil, fmt.Errorf("unknown background type %q", b.Type)
	}
}

// Build merges the camera overrides over the default camera
func (c CameraCfg) Build() renderer.CameraConfig {
	override := renderer.CameraConfig{
		VFov:          c.VFov,
		AspectRatio:   c.AspectRatio,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	}
	if c.LookFrom != nil {
		override.LookFrom = c.LookFrom.vec()
	}
	if c.LookAt != nil {
		override.LookAt = c.LookAt.vec()
	}
	if c.Up != nil {
		override.Up = c.Up.vec()
	}

	config := renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), override)
	if c.Aperture > 0 && c.FocusDistance == 0 {
		config.FocusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}
	return config
}

// Build creates the sphere and its material
func (s SphereCfg) Build() (*geometry.Sphere, error) {
	if s.Radius == 0 {
		return nil, fmt.Errorf("radius must be non-zero")
	}
	mat, err := s.Material.Build()
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(s.Center.vec(), s.Radius, mat), nil
}

// Build creates the material named by Type
func (m MaterialCfg) Build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		return material.NewLambertian(m.Albedo.vec()), nil
	case "metal":
		return material.NewMetal(m.Albedo.vec(), m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("dielectric refractive index must be positive, got %g", m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	case "":
		return nil, fmt.Errorf("material type is required")
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}
