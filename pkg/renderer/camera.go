package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus
}

// DefaultCameraConfig returns the classic fixed pinhole camera at the origin
// looking down -Z with a 4x2 viewport one unit away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   2.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if !override.LookFrom.Equals(zero) {
		result.LookFrom = override.LookFrom
	}
	if !override.LookAt.Equals(zero) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(zero) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Camera generates rays for rendering with optional depth of field.
// It is immutable after construction and safe for concurrent use.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis vectors
	lensRadius      float64
}

// NewCamera derives the camera basis and viewport from config
func NewCamera(config CameraConfig) *Camera {
	halfHeight := math.Tan(config.VFov * math.Pi / 360)
	halfWidth := config.AspectRatio * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	focus := config.FocusDistance
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focus)).
		Subtract(v.Multiply(halfHeight * focus)).
		Subtract(w.Multiply(focus))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focus),
		vertical:        v.Multiply(2 * halfHeight * focus),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1.
// The lens sample is always drawn so the stream consumed per ray does not
// depend on the aperture.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the camera's forward direction (normalized)
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
