package geometry

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Leaf threshold: if we have this many or fewer primitives, store them in a leaf node
const leafThreshold = 4

// traversalStackSize covers balanced trees over billions of primitives;
// deeper trees spill the stack to the heap.
const traversalStackSize = 64

// bvhNode is a node of the flattened tree. Leaves have Count > 0 and
// Offset is the first primitive. Internal nodes have their left child at
// the next index and Offset pointing at the right child.
type bvhNode struct {
	Bounds core.AABB
	Offset uint32
	Count  uint32
	Axis   uint8
}

func (n *bvhNode) isLeaf() bool {
	return n.Count > 0
}

// BVHStats summarises the shape of a built tree
type BVHStats struct {
	Primitives       int
	Nodes            int
	InternalNodes    int
	Leaves           int
	DegenerateLeaves int
	MaxDepth         int
	MaxLeafSize      int
	BuildTime        time.Duration
}

// AvgLeafSize returns the mean number of primitives per leaf
func (s BVHStats) AvgLeafSize() float64 {
	if s.Leaves == 0 {
		return 0
	}
	return float64(s.Primitives) / float64(s.Leaves)
}

// BVH is a bounding volume hierarchy over a primitive slice, built with
// median splits and stored as a flat node array.
type BVH struct {
	primitives []Primitive
	nodes      []bvhNode
	stats      BVHStats
	logger     log.Logger
}

type buildItem struct {
	primitive Primitive
	bounds    core.AABB
	centroid  core.Vec3
}

// NewBVH builds a tree over primitives. The slice is reordered in place so
// that every leaf covers a contiguous range.
func NewBVH(primitives []Primitive) *BVH {
	bvh := &BVH{
		primitives: primitives,
		logger:     log.New("bvh"),
	}
	if len(primitives) == 0 {
		return bvh
	}

	start := time.Now()

	items := make([]buildItem, len(primitives))
	for i := range primitives {
		bounds := primitives[i].Bounds()
		items[i] = buildItem{
			primitive: primitives[i],
			bounds:    bounds,
			centroid:  primitives[i].Shape.Centroid(),
		}
	}

	bvh.nodes = make([]bvhNode, 0, 2*len(primitives)/leafThreshold+1)
	bvh.build(items, 0, len(items), 0)

	for i := range items {
		primitives[i] = items[i].primitive
	}

	bvh.stats.Primitives = len(primitives)
	bvh.stats.Nodes = len(bvh.nodes)
	bvh.stats.BuildTime = time.Since(start)
	bvh.logger.Infof(
		"built BVH over %d primitives in %s (nodes: %d, leaves: %d, max depth: %d)",
		bvh.stats.Primitives, bvh.stats.BuildTime, bvh.stats.Nodes, bvh.stats.Leaves, bvh.stats.MaxDepth,
	)

	return bvh
}

// build creates the subtree over items[start:end] and returns its node index
func (bvh *BVH) build(items []buildItem, start, end, depth int) int {
	idx := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{})

	bounds := core.EmptyAABB()
	centroidBounds := core.EmptyAABB()
	for i := start; i < end; i++ {
		bounds = bounds.Union(items[i].bounds)
		centroidBounds = centroidBounds.UnionPoint(items[i].centroid)
	}
	bvh.nodes[idx].Bounds = bounds

	if depth > bvh.stats.MaxDepth {
		bvh.stats.MaxDepth = depth
	}

	count := end - start
	if count <= leafThreshold {
		bvh.makeLeaf(idx, start, count)
		return idx
	}

	axis := centroidBounds.LongestAxis()
	if centroidBounds.Size().Axis(axis) <= 0 {
		bvh.logger.Debugf("degenerate split over %d primitives at depth %d, making leaf", count, depth)
		bvh.stats.DegenerateLeaves++
		bvh.makeLeaf(idx, start, count)
		return idx
	}

	mid := start + count/2
	selectNth(items[start:end], mid-start, axis)

	bvh.stats.InternalNodes++
	bvh.nodes[idx].Axis = uint8(axis)
	bvh.build(items, start, mid, depth+1)
	right := bvh.build(items, mid, end, depth+1)
	bvh.nodes[idx].Offset = uint32(right)

	return idx
}

func (bvh *BVH) makeLeaf(idx, start, count int) {
	bvh.nodes[idx].Offset = uint32(start)
	bvh.nodes[idx].Count = uint32(count)
	bvh.stats.Leaves++
	if count > bvh.stats.MaxLeafSize {
		bvh.stats.MaxLeafSize = count
	}
}

// selectNth partially orders items so that items[k] holds the element that
// would be there if sorted by centroid along axis, with smaller centroids
// before it and larger after it.
func selectNth(items []buildItem, k, axis int) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		pivot := items[lo+(hi-lo)/2].centroid.Axis(axis)
		i, j := lo, hi
		for i <= j {
			for items[i].centroid.Axis(axis) < pivot {
				i++
			}
			for items[j].centroid.Axis(axis) > pivot {
				j--
			}
			if i <= j {
				items[i], items[j] = items[j], items[i]
				i++
				j--
			}
		}
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return
		}
	}
}

// Intersect returns the closest hit along ray. The query narrows its own
// copy of the ray interval; the caller's ray is left untouched.
func (bvh *BVH) Intersect(ray core.Ray) (IntersectInfo, bool) {
	var info IntersectInfo
	if len(bvh.nodes) == 0 {
		return info, false
	}

	dirInv := core.NewVec3(1/ray.Direction.X, 1/ray.Direction.Y, 1/ray.Direction.Z)
	dirIsNeg := [3]bool{dirInv.X < 0, dirInv.Y < 0, dirInv.Z < 0}

	var buf [traversalStackSize]uint32
	stack := buf[:0]

	hit := false
	visited := 0
	current := uint32(0)
	for {
		node := &bvh.nodes[current]
		visited++

		if node.Bounds.Hit(ray, dirInv, dirIsNeg) {
			if node.isLeaf() {
				for i := node.Offset; i < node.Offset+node.Count; i++ {
					if bvh.primitives[i].Intersect(ray, &info) {
						hit = true
						ray.TMax = info.T
					}
				}
			} else {
				// visit the near child first
				if dirIsNeg[node.Axis] {
					stack = append(stack, current+1)
					current = node.Offset
				} else {
					stack = append(stack, node.Offset)
					current = current + 1
				}
				continue
			}
		}

		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}

	info.BVHDepth = visited
	return info, hit
}

// Stats returns the build statistics
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}

// Bounds returns the bounds of the whole tree
func (bvh *BVH) Bounds() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].Bounds
}
