package motionplan

import (
	"slices"
)

// Tree is a rooted tree of configurations grown by the planner. Nodes are only ever appended; a
// node's parent always has a smaller handle than the node itself.
type Tree struct {
	nodes  []Config
	parent []NodeID
	nn     neighborIndex
}

// TreeOption configures a Tree at construction time.
type TreeOption func(*Tree)

// WithKDTreeIndex makes the tree answer nearest neighbor queries with a k-d tree instead of a
// linear scan.
func WithKDTreeIndex() TreeOption {
	return func(t *Tree) {
		t.nn = &kdNeighborIndex{}
	}
}

// NewTree creates a tree whose root, with handle 0, is a copy of the given configuration.
func NewTree(root Config, opts ...TreeOption) *Tree {
	root = root.Copy()
	t := &Tree{nn: linearNeighborIndex{}}
	for _, opt := range opts {
		opt(t)
	}
	t.nodes = []Config{root}
	t.parent = []NodeID{NoNode}
	t.nn.insert(0, root)
	return t
}

func newTreeWithIndex(root Config, kind NearestNeighborType) *Tree {
	if kind == KDTreeNearestNeighbor {
		return NewTree(root, WithKDTreeIndex())
	}
	return NewTree(root)
}

// Root returns the handle of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// Dim returns the dimension of the root configuration.
func (t *Tree) Dim() int {
	return t.nodes[0].Dim()
}

func (t *Tree) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Config returns the configuration stored at id. It shares storage with the tree and must not be
// modified. It panics if id is not in the tree.
func (t *Tree) Config(id NodeID) Config {
	return t.nodes[id]
}

// Parent returns the parent of id, or NoNode for the root and for ids not in the tree.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.parent[id]
}

// Nodes returns copies of the stored configurations in handle order.
func (t *Tree) Nodes() []Config {
	nodes := make([]Config, len(t.nodes))
	for i, q := range t.nodes {
		nodes[i] = q.Copy()
	}
	return nodes
}

// Parents returns the parent handle of every node, in handle order.
func (t *Tree) Parents() []NodeID {
	return slices.Clone(t.parent)
}

// AddNode appends a copy of q as a child of parent and returns its new handle. The parent must
// already be in the tree, and q must have the dimension of the root.
func (t *Tree) AddNode(q Config, parent NodeID) (NodeID, error) {
	if !t.contains(parent) {
		return NoNode, newParentNotInTreeError(parent, len(t.nodes))
	}
	if q.Dim() != t.Dim() {
		return NoNode, NewDimensionMismatchError(t.Dim(), q.Dim())
	}
	id := NodeID(len(t.nodes))
	if id == parent {
		return NoNode, newSelfParentError(id)
	}
	q = q.Copy()
	t.nodes = append(t.nodes, q)
	t.parent = append(t.parent, parent)
	t.nn.insert(id, q)
	return id, nil
}

// Nearest returns the handle of the node closest to query. Ties go to the node inserted first.
func (t *Tree) Nearest(query Config) NodeID {
	return t.nn.nearest(t.nodes, query)
}

// BacktrackIDs returns the handles from the root to id, inclusive. It returns nil if id is not in
// the tree.
func (t *Tree) BacktrackIDs(id NodeID) []NodeID {
	if !t.contains(id) {
		return nil
	}
	path := []NodeID{}
	for cur := id; cur != NoNode; cur = t.parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// Backtrack returns copies of the configurations from the root to id, inclusive.
func (t *Tree) Backtrack(id NodeID) []Config {
	ids := t.BacktrackIDs(id)
	if ids == nil {
		return nil
	}
	path := make([]Config, 0, len(ids))
	for _, i := range ids {
		path = append(path, t.nodes[i].Copy())
	}
	return path
}
