package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyScene is returned when a BVH is built from no shapes
	ErrEmptyScene = errors.New("bvh: no shapes to build from")
	// ErrNoBoundingBox is returned when a shape reports no finite bounds
	ErrNoBoundingBox = errors.New("bvh: shape has no bounding box")
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves wrap exactly one shape; branches own exactly two children.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shape       Shape // Non-nil for leaf nodes only
}

// IsLeaf reports whether the node wraps a single shape
func (n *BVHNode) IsLeaf() bool {
	return n.Shape != nil
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is immutable after construction and safe for concurrent Hit calls.
type BVH struct {
	Root *BVHNode
}

// bvhItem caches a shape's bounding box so sorting does not re-query it
type bvhItem struct {
	shape Shape
	box   core.AABB
}

// NewBVH constructs a BVH from a slice of shapes.
// The input slice is not modified.
func NewBVH(shapes []Shape) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("%w: shape %d (%T)", ErrNoBoundingBox, i, shape)
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	return &BVH{Root: buildBVH(items)}, nil
}

// buildBVH recursively splits items at the median along the axis where
// box centers are most spread out.
func buildBVH(items []bvhItem) *BVHNode {
	if len(items) == 1 {
		return &BVHNode{
			BoundingBox: items[0].box,
			Shape:       items[0].shape,
		}
	}

	axis := splitAxis(items)
	sortItemsByAxis(items, axis)

	mid := len(items) / 2
	left := buildBVH(items[:mid])
	right := buildBVH(items[mid:])

	return &BVHNode{
		BoundingBox: left.BoundingBox.Union(right.BoundingBox),
		Left:        left,
		Right:       right,
	}
}

// splitAxis returns the axis with the largest extent of item box centers.
// Ties resolve to the lower axis.
func splitAxis(items []bvhItem) int {
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, item := range items {
		c := item.box.Center()
		lo = core.NewVec3(math.Min(lo.X, c.X), math.Min(lo.Y, c.Y), math.Min(lo.Z, c.Z))
		hi = core.NewVec3(math.Max(hi.X, c.X), math.Max(hi.Y, c.Y), math.Max(hi.Z, c.Z))
	}
	return core.NewAABB(lo, hi).LongestAxis()
}

// sortItemsByAxis orders items by min+max of their boxes on axis.
// The sort is stable so equal keys keep input order and builds are deterministic.
func sortItemsByAxis(items []bvhItem, axis int) {
	sort.SliceStable(items, func(i, j int) bool {
		ki := items[i].box.Min.Axis(axis) + items[i].box.Max.Axis(axis)
		kj := items[j].box.Min.Axis(axis) + items[j].box.Max.Axis(axis)
		return ki < kj
	})
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode prunes on the node box, then queries the left subtree and uses
// its hit distance as the upper bound for the right subtree.
func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.IsLeaf() {
		return node.Shape.Hit(ray, tMin, tMax)
	}

	leftHit, hitLeft := hitNode(node.Left, ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := hitNode(node.Right, ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.BoundingBox, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	AvgDepth   float64 // Mean leaf depth
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	collectStats(bvh.Root, 0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if node.IsLeaf() {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth) // Summed here, averaged in Stats
		return
	}

	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
