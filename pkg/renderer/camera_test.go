package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestCamera_DefaultPinholeViewport(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"upper left", 0, 1, core.NewVec3(-2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if !ray.Origin.Equals(core.Vec3{}) {
				t.Errorf("Pinhole ray should start at the origin, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_BasisOrthonormal(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      0.1,
		FocusDistance: 10,
	})

	basis := []core.Vec3{camera.u, camera.v, camera.w}
	for i, a := range basis {
		if math.Abs(a.Length()-1) > 1e-12 {
			t.Errorf("Basis vector %d not unit length: %f", i, a.Length())
		}
		for j, b := range basis[i+1:] {
			if math.Abs(a.Dot(b)) > 1e-12 {
				t.Errorf("Basis vectors %d and %d not orthogonal: %f", i, i+1+j, a.Dot(b))
			}
		}
	}

	expectedForward := core.NewVec3(-13, -2, -3).Normalize()
	if !vecClose(camera.GetCameraForward(), expectedForward, 1e-12) {
		t.Errorf("Expected forward %v, got %v", expectedForward, camera.GetCameraForward())
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	config := DefaultCameraConfig()
	config.VFov = 60
	config.AspectRatio = 1
	camera := NewCamera(config)

	// Rays through the top and bottom edge span the vertical field of view
	top := camera.GetRay(0.5, 1, core.NewSeededSampler(1)).Direction.Normalize()
	bottom := camera.GetRay(0.5, 0, core.NewSeededSampler(1)).Direction.Normalize()

	angle := math.Acos(top.Dot(bottom)) * 180 / math.Pi
	if math.Abs(angle-60) > 1e-9 {
		t.Errorf("Expected 60 degree vertical field of view, got %f", angle)
	}
}

func TestCamera_DepthOfFieldFocusPlane(t *testing.T) {
	config := CameraConfig{
		LookFrom:      core.NewVec3(3, 3, 2),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   2,
		Aperture:      2.0,
		FocusDistance: core.NewVec3(3, 3, 3).Length(),
	}
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(5)

	reference := camera.GetRay(0.3, 0.7, sampler)
	originsDiffer := false

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.3, 0.7, sampler)

		// Every lens sample converges on the same point of the focus plane
		if !vecClose(ray.At(1), reference.At(1), 1e-9) {
			t.Fatalf("Ray %d misses the focus point: %v vs %v", i, ray.At(1), reference.At(1))
		}
		if offset := ray.Origin.Subtract(config.LookFrom).Length(); offset >= config.Aperture/2 {
			t.Fatalf("Ray %d origin %v outside lens radius", i, ray.Origin)
		}
		if !ray.Origin.Equals(reference.Origin) {
			originsDiffer = true
		}
	}

	if !originsDiffer {
		t.Error("Expected lens samples to move the ray origin")
	}
}

func TestCamera_AlwaysConsumesLensSample(t *testing.T) {
	sampler := core.NewSeededSampler(8)
	reference := core.NewSeededSampler(8)

	camera := NewCamera(DefaultCameraConfig())
	camera.GetRay(0.5, 0.5, sampler)
	core.SamplePointInUnitDisk(reference)

	if sampler.Get1D() != reference.Get1D() {
		t.Error("Pinhole camera should consume exactly one unit disk sample per ray")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{
		LookFrom: core.NewVec3(1, 2, 3),
		Aperture: 0.5,
	}

	merged := MergeCameraConfig(base, override)
	if !merged.LookFrom.Equals(override.LookFrom) {
		t.Errorf("Expected LookFrom override, got %v", merged.LookFrom)
	}
	if merged.Aperture != 0.5 {
		t.Errorf("Expected Aperture override, got %f", merged.Aperture)
	}
	if merged.VFov != base.VFov || !merged.LookAt.Equals(base.LookAt) || merged.FocusDistance != base.FocusDistance {
		t.Errorf("Zero fields should keep base values, got %+v", merged)
	}
}
