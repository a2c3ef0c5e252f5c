package motionplan

import (
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func randomConfig(r *rand.Rand, dim int) Config {
	q := make([]float64, dim)
	for i := range q {
		q[i] = r.Float64()*20 - 10
	}
	return Config{Q: q}
}

func TestTreeParentsPrecedeChildren(t *testing.T) {
	//nolint:gosec
	r := rand.New(rand.NewSource(7))
	tree := NewTree(randomConfig(r, 3))
	test.That(t, tree.Root(), test.ShouldEqual, NodeID(0))
	test.That(t, tree.Parent(tree.Root()), test.ShouldEqual, NoNode)

	for i := 1; i < 500; i++ {
		parent := NodeID(r.Intn(tree.Size()))
		id, err := tree.AddNode(randomConfig(r, 3), parent)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, id, test.ShouldEqual, NodeID(i))
		test.That(t, tree.Parent(id), test.ShouldEqual, parent)
	}
	test.That(t, tree.Size(), test.ShouldEqual, 500)
	test.That(t, len(tree.Nodes()), test.ShouldEqual, 500)

	for i, parent := range tree.Parents() {
		if i == 0 {
			test.That(t, parent, test.ShouldEqual, NoNode)
			continue
		}
		test.That(t, parent, test.ShouldBeLessThan, NodeID(i))
	}

	for id := NodeID(0); int(id) < tree.Size(); id++ {
		ids := tree.BacktrackIDs(id)
		test.That(t, len(ids), test.ShouldBeLessThanOrEqualTo, tree.Size())
		test.That(t, ids[0], test.ShouldEqual, tree.Root())
		test.That(t, ids[len(ids)-1], test.ShouldEqual, id)
		for j := 1; j < len(ids); j++ {
			test.That(t, tree.Parent(ids[j]), test.ShouldEqual, ids[j-1])
		}
		configs := tree.Backtrack(id)
		test.That(t, len(configs), test.ShouldEqual, len(ids))
		test.That(t, configs[len(configs)-1].Q, test.ShouldResemble, tree.Config(id).Q)
	}
}

func TestTreeAddNodeErrors(t *testing.T) {
	tree := NewTree(NewConfig(0, 0))

	_, err := tree.AddNode(NewConfig(1, 1), 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not in the tree")

	_, err = tree.AddNode(NewConfig(1, 1), NoNode)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = tree.AddNode(NewConfig(1, 1, 1), 0)
	test.That(t, err, test.ShouldWrap, ErrDimensionMismatch)

	test.That(t, tree.Size(), test.ShouldEqual, 1)
	test.That(t, tree.Backtrack(5), test.ShouldBeNil)
	test.That(t, tree.Parent(5), test.ShouldEqual, NoNode)
}

func TestBacktrackLinearChain(t *testing.T) {
	tree := NewTree(NewConfig(0))
	prev := tree.Root()
	for i := 1; i <= 4; i++ {
		id, err := tree.AddNode(NewConfig(float64(i)), prev)
		test.That(t, err, test.ShouldBeNil)
		prev = id
	}
	// a side branch off the root must not appear in the chain
	_, err := tree.AddNode(NewConfig(-1), tree.Root())
	test.That(t, err, test.ShouldBeNil)

	path := tree.Backtrack(prev)
	test.That(t, ConfigsToFloats(path), test.ShouldResemble, [][]float64{{0}, {1}, {2}, {3}, {4}})
}

func TestTreeOwnsItsConfigurations(t *testing.T) {
	for _, opts := range [][]TreeOption{nil, {WithKDTreeIndex()}} {
		root := NewConfig(0, 0)
		tree := NewTree(root, opts...)
		q := NewConfig(5, 5)
		id, err := tree.AddNode(q, tree.Root())
		test.That(t, err, test.ShouldBeNil)

		// Mutating what was passed in or handed out leaves the tree unchanged.
		root.Q[0] = 9
		q.Q[0] = -5
		tree.Nodes()[id].Q[1] = 100
		tree.Backtrack(id)[0].Q[1] = 100

		test.That(t, ConfigsToFloats(tree.Nodes()), test.ShouldResemble, [][]float64{{0, 0}, {5, 5}})
		test.That(t, tree.Nearest(NewConfig(4, 4)), test.ShouldEqual, id)
		test.That(t, tree.Nearest(NewConfig(-5, 5)), test.ShouldEqual, tree.Root())
	}
}

func TestConfigCopy(t *testing.T) {
	q := []float64{1, 2, 3}
	c := NewConfig(q...)
	q[0] = 100
	test.That(t, c.Q[0], test.ShouldEqual, 1.)

	cp := c.Copy()
	cp.Q[1] = 100
	test.That(t, c.Q[1], test.ShouldEqual, 2.)
	test.That(t, cp.Dim(), test.ShouldEqual, 3)
	test.That(t, c.String(), test.ShouldEqual, "[1 2 3]")
	test.That(t, Distance(NewConfig(0, 0), NewConfig(3, 4)), test.ShouldAlmostEqual, 5.)
}
