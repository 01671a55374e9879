package lights

import "github.com/df07/go-sphere-tracer/pkg/core"

// Light is a light source seen by rays that escape the world
type Light interface {
	// Emit evaluates emission in the direction of the given ray
	Emit(ray core.Ray) core.Vec3
}
