package motionplan

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// NearestNeighborType selects how a Tree answers nearest neighbor queries.
type NearestNeighborType string

const (
	// LinearNearestNeighbor scans every node on each query.
	LinearNearestNeighbor NearestNeighborType = "linear"
	// KDTreeNearestNeighbor keeps an incrementally built k-d tree of the nodes.
	KDTreeNearestNeighbor NearestNeighborType = "kdtree"
)

type neighborIndex interface {
	insert(id NodeID, q Config)
	nearest(nodes []Config, query Config) NodeID
}

type linearNeighborIndex struct{}

func (linearNeighborIndex) insert(NodeID, Config) {}

func (linearNeighborIndex) nearest(nodes []Config, query Config) NodeID {
	best := NoNode
	bestDist := math.Inf(1)
	for i, n := range nodes {
		// strict comparison keeps the first of several equidistant nodes
		if dist := Distance(n, query); dist < bestDist {
			bestDist = dist
			best = NodeID(i)
		}
	}
	return best
}

// kdPoint is a kdtree.Comparable carrying the tree handle of the node.
type kdPoint struct {
	q  []float64
	id NodeID
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.q[d] - c.(kdPoint).q[d]
}

func (p kdPoint) Dims() int {
	return len(p.q)
}

// Distance returns the squared Euclidean distance, as kdtree.Point does.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	o := c.(kdPoint)
	var sum float64
	for i, v := range p.q {
		d := v - o.q[i]
		sum += d * d
	}
	return sum
}

type kdNeighborIndex struct {
	tree kdtree.Tree
}

func (idx *kdNeighborIndex) insert(id NodeID, q Config) {
	idx.tree.Insert(kdPoint{q: q.Q, id: id}, false)
}

func (idx *kdNeighborIndex) nearest(_ []Config, query Config) NodeID {
	q := kdPoint{q: query.Q, id: NoNode}
	got, dist := idx.tree.Nearest(q)
	if got == nil {
		return NoNode
	}
	// The k-d tree does not order equidistant points, so collect all of them and keep the oldest.
	keeper := kdtree.NewDistKeeper(dist)
	idx.tree.NearestSet(keeper, q)
	best := got.(kdPoint).id
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue
		}
		if id := cd.Comparable.(kdPoint).id; id < best {
			best = id
		}
	}
	return best
}
