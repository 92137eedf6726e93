package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// KdNode is a node in the kd-tree. The node set is closed: a node is
// either a split (Left and Right non-nil, Objects nil) or a leaf
// (Objects non-nil, possibly empty). Children are owned by their parent;
// the geometries themselves are owned by the scene.
type KdNode struct {
	Axis    int       // Split axis (0=X, 1=Y, 2=Z)
	Pos     float64   // Split position along the axis
	Bounds  core.AABB // Region this node covers
	Left    *KdNode
	Right   *KdNode
	Objects []core.Geometry // Leaf payload
}

// IsLeaf reports whether this node is a leaf
func (n *KdNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// KdTree accelerates nearest-hit queries with axis-aligned binary splits
// chosen by a surface-area cost heuristic
type KdTree struct {
	Root *KdNode
}

// splitPlane is a candidate split evaluated during the build
type splitPlane struct {
	axis     int
	pos      float64
	leftBox  core.AABB
	rightBox core.AABB
}

// NewKdTree builds a kd-tree over the given objects. The tree is an
// optional acceleration layer: callers must fall back to a linear scan
// when no tree was built.
func NewKdTree(objects []core.Geometry, bounds core.AABB, depthLimit, leafSize int) *KdTree {
	if len(objects) == 0 {
		return &KdTree{Root: nil}
	}

	// Copy so the build never reorders the scene's own slice
	objectsCopy := make([]core.Geometry, len(objects))
	copy(objectsCopy, objects)

	return &KdTree{
		Root: buildKdNode(objectsCopy, bounds, depthLimit, leafSize, 0),
	}
}

// buildKdNode recursively splits the object set. Depth increments once
// per split level, irrespective of branch.
func buildKdNode(objects []core.Geometry, bounds core.AABB, depthLimit, leafSize, depth int) *KdNode {
	depth++
	if len(objects) <= leafSize || depth == depthLimit {
		return &KdNode{Bounds: bounds, Objects: objects}
	}

	best, ok := findBestPlane(objects, bounds)
	if !ok {
		return &KdNode{Bounds: bounds, Objects: objects}
	}

	leftList, rightList := classify(objects, best)

	// A split that fails to separate the set would recurse forever on
	// degenerate inputs; recover locally with a leaf.
	if len(leftList) == 0 || len(rightList) == 0 {
		return &KdNode{Bounds: bounds, Objects: objects}
	}

	return &KdNode{
		Axis:   best.axis,
		Pos:    best.pos,
		Bounds: bounds,
		Left:   buildKdNode(leftList, best.leftBox, depthLimit, leafSize, depth),
		Right:  buildKdNode(rightList, best.rightBox, depthLimit, leafSize, depth),
	}
}

// findBestPlane evaluates every candidate plane formed by every object's
// min and max extent along every axis, and picks the one minimizing
// (leftCount·leftArea + rightCount·rightArea) / parentArea
func findBestPlane(objects []core.Geometry, bounds core.AABB) (splitPlane, bool) {
	parentArea := bounds.SurfaceArea()
	if parentArea <= 0 {
		return splitPlane{}, false
	}

	var best splitPlane
	found := false
	minCost := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		for _, obj := range objects {
			box := obj.BoundingBox()
			for _, pos := range [2]float64{box.Min.Axis(axis), box.Max.Axis(axis)} {
				plane := splitPlane{
					axis:     axis,
					pos:      pos,
					leftBox:  bounds.SetAxisMax(axis, pos),
					rightBox: bounds.SetAxisMin(axis, pos),
				}

				leftCount, rightCount := countSides(objects, axis, pos)
				cost := (float64(leftCount)*plane.leftBox.SurfaceArea() +
					float64(rightCount)*plane.rightBox.SurfaceArea()) / parentArea

				if cost < minCost {
					minCost = cost
					best = plane
					found = true
				}
			}
		}
	}

	return best, found
}

// countSides counts objects whose extent reaches each side of the plane.
// Straddling objects count on both sides.
func countSides(objects []core.Geometry, axis int, pos float64) (int, int) {
	left, right := 0, 0
	for _, obj := range objects {
		box := obj.BoundingBox()
		if box.Min.Axis(axis) < pos {
			left++
		}
		if box.Max.Axis(axis) > pos {
			right++
		}
	}
	return left, right
}

// classify partitions objects by comparing their box extents against the
// split position. Straddlers go to both sides. Flat objects lying
// exactly in the plane are assigned by their normal direction.
func classify(objects []core.Geometry, plane splitPlane) ([]core.Geometry, []core.Geometry) {
	var leftList, rightList []core.Geometry

	for _, obj := range objects {
		box := obj.BoundingBox()
		min := box.Min.Axis(plane.axis)
		max := box.Max.Axis(plane.axis)

		if min < plane.pos {
			leftList = append(leftList, obj)
		}
		if max > plane.pos {
			rightList = append(rightList, obj)
		}
		if min == plane.pos && max == plane.pos {
			if obj.Normal().Axis(plane.axis) < 0 {
				leftList = append(leftList, obj)
			} else {
				rightList = append(rightList, obj)
			}
		}
	}

	return leftList, rightList
}

// Intersect finds the nearest hit in the tree, or false for a miss or an
// unbuilt tree
func (kt *KdTree) Intersect(ray core.Ray) (core.Isect, bool) {
	if kt == nil || kt.Root == nil {
		return core.NewIsect(), false
	}
	return kt.Root.findIntersection(ray, core.RayEpsilon, core.NoHitT)
}

// findIntersection walks the tree with the current valid parametric
// interval [tMin, tMax]
func (n *KdNode) findIntersection(ray core.Ray, tMin, tMax float64) (core.Isect, bool) {
	tMin, tMax, ok := n.Bounds.Intersect(ray, tMin, tMax)
	if !ok {
		return core.NewIsect(), false
	}

	if n.IsLeaf() {
		return n.intersectObjects(ray, tMin, tMax)
	}

	// Position along the split axis at both interval ends decides which
	// children the ray can reach
	posMin := ray.At(tMin).Axis(n.Axis)
	posMax := ray.At(tMax).Axis(n.Axis)

	// Near-parallel rays get a small nudge to break the tie
	if math.Abs(ray.Direction.Axis(n.Axis)) < core.RayEpsilon {
		posMin += 1e-6
		posMax += 1e-6
	}

	if n.Pos > posMin && n.Pos > posMax {
		return n.Left.findIntersection(ray, tMin, tMax)
	}
	if n.Pos < posMin && n.Pos < posMax {
		return n.Right.findIntersection(ray, tMin, tMax)
	}

	// Interval straddles the plane: descend both and keep the nearer hit
	best := core.NewIsect()
	if hit, ok := n.Left.findIntersection(ray, tMin, tMax); ok && hit.T < best.T {
		best = hit
	}
	if hit, ok := n.Right.findIntersection(ray, tMin, tMax); ok && hit.T < best.T {
		best = hit
	}
	return best, best.Hit()
}

// intersectObjects linear-scans a leaf, box-rejecting each object before
// the exact primitive test
func (n *KdNode) intersectObjects(ray core.Ray, tMin, tMax float64) (core.Isect, bool) {
	best := core.NewIsect()

	for _, obj := range n.Objects {
		if !obj.BoundingBox().Hit(ray, tMin, tMax) {
			continue
		}
		if hit, ok := obj.Intersect(ray); ok && hit.T < best.T && hit.T >= tMin && hit.T <= tMax {
			best = hit
		}
	}

	return best, best.Hit()
}

// Stats returns structural statistics about the tree
func (kt *KdTree) Stats() KdStats {
	stats := KdStats{}
	if kt != nil && kt.Root != nil {
		collectKdStats(kt.Root, 0, &stats)
	}
	return stats
}

// KdStats contains statistics about the kd-tree structure
type KdStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	TotalObjects int // Sum over leaves; straddlers count once per leaf
}

func collectKdStats(node *KdNode, depth int, stats *KdStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.IsLeaf() {
		stats.LeafNodes++
		stats.TotalObjects += len(node.Objects)
		return
	}

	collectKdStats(node.Left, depth+1, stats)
	collectKdStats(node.Right, depth+1, stats)
}
