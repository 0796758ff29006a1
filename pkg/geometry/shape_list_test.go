package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestShapeList_NearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, testMaterial)

	for _, list := range []*ShapeList{NewShapeList(near, far), NewShapeList(far, near)} {
		hit, isHit := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("Expected nearest hit at t=1.5, got %f", hit.T)
		}
	}
}

func TestShapeList_BoundingBox(t *testing.T) {
	empty := NewShapeList()
	if _, ok := empty.BoundingBox(); ok {
		t.Error("Expected empty list to have no bounding box")
	}

	list := NewShapeList(
		NewSphere(core.NewVec3(-2, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(3, 1, 0), 0.5, testMaterial),
	)
	box, ok := list.BoundingBox()
	if !ok {
		t.Fatal("Expected bounded list")
	}
	expected := core.NewAABB(core.NewVec3(-3, -1, -1), core.NewVec3(3.5, 1.5, 1))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	list.Add(MockShape{bounded: false, hitFn: neverHit})
	if _, ok := list.BoundingBox(); ok {
		t.Error("Expected unbounded member to make the list unbounded")
	}
}
