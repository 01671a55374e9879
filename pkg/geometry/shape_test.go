package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// recordingShape wraps a shape and records the tMax it was queried with
type recordingShape struct {
	shape   Shape
	lastMax float64
}

func (r *recordingShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	r.lastMax = tMax
	return r.shape.Hit(ray, tMin, tMax)
}

func TestShapeList_NearestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := map[string][]Shape{
		"near first": {
			NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
			NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
		},
		"far first": {
			NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
			NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
		},
	}

	for name, shapes := range orders {
		t.Run(name, func(t *testing.T) {
			list := NewShapeList(shapes...)
			hit, isHit := list.Hit(ray, 0.001, math.MaxFloat64)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest t=1.5, got %f", hit.T)
			}
			if hit.Material != near {
				t.Errorf("Expected nearest sphere's material")
			}
		})
	}
}

func TestShapeList_ShrinksUpperBound(t *testing.T) {
	first := &recordingShape{shape: NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)}
	second := &recordingShape{shape: NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)}
	list := NewShapeList(first, second)

	list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)

	if first.lastMax != 100 {
		t.Errorf("First shape should see the caller's tMax, got %f", first.lastMax)
	}
	if math.Abs(second.lastMax-1.5) > 1e-9 {
		t.Errorf("Second shape should see the closest t so far (1.5), got %f", second.lastMax)
	}
}

func TestShapeList_MissAndEmpty(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	empty := NewShapeList()
	if _, isHit := empty.Hit(ray, 0.001, math.MaxFloat64); isHit {
		t.Error("Empty list should never hit")
	}

	list := NewShapeList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	if list.Len() != 1 {
		t.Fatalf("Expected 1 shape, got %d", list.Len())
	}
	if _, isHit := list.Hit(ray, 0.001, math.MaxFloat64); isHit {
		t.Error("Ray pointing away should miss")
	}
}
