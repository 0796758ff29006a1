package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList is a flat, unordered collection of shapes tested linearly.
// It is the reference the BVH must agree with, and a container for
// mixing a BVH with a handful of large shapes.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit returns the nearest hit among all members
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

// BoundingBox returns the union of member boxes. It reports false for an
// empty list or when any member is unbounded.
func (l *ShapeList) BoundingBox() (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, shape := range l.Shapes {
		shapeBox, ok := shape.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = shapeBox
		} else {
			box = box.Union(shapeBox)
		}
	}
	return box, true
}
