package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// ShapeList is an ordered collection of shapes resolving the nearest hit
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a shape list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// Hit checks every shape in order, shrinking tMax to the closest accepted hit.
// Exact ties go to the shape evaluated first.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
