package autodiff

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologicalOrder_Simple(t *testing.T) {
	x1 := NewValue(2)
	x2 := NewValue(1)
	y := x1.Add(x2)
	y2 := y.Mul(x1)

	topo := TopologicalOrder(y2)

	require.Len(t, topo, 4)
	assert.Same(t, x1, topo[0])
	assert.Same(t, x2, topo[1])
	assert.Same(t, y, topo[2])
	assert.Same(t, y2, topo[3])
}

func TestTopologicalOrder_Neuron(t *testing.T) {
	o, n := buildNeuron()

	topo := TopologicalOrder(o)

	require.Len(t, topo, 10)
	assert.Same(t, n.x1, topo[0])
	assert.Same(t, o, topo[9])
}

func TestTopologicalOrder_Leaf(t *testing.T) {
	x := NewValue(1)

	topo := TopologicalOrder(x)

	require.Len(t, topo, 1)
	assert.Same(t, x, topo[0])
}

func TestTopologicalOrder_SameOperandTwice(t *testing.T) {
	a := NewValue(3)
	b := a.Add(a)

	topo := TopologicalOrder(b)

	require.Len(t, topo, 2)
	assert.Same(t, a, topo[0])
	assert.Same(t, b, topo[1])
}

// Equal data must not merge distinct nodes.
func TestTopologicalOrder_EqualDataDistinctNodes(t *testing.T) {
	a := NewValue(1)
	b := NewValue(1)

	topo := TopologicalOrder(a.Mul(b))

	assert.Len(t, topo, 3)
}

// Each level reuses the previous node twice, so the number of root-to-leaf
// paths doubles per level. The order must stay linear in the node count.
func TestTopologicalOrder_SharedChain(t *testing.T) {
	const depth = 40

	leaf := NewValue(1)
	x := leaf
	for range depth {
		x = x.Add(x)
	}

	topo := TopologicalOrder(x)
	require.Len(t, topo, depth+1)

	Backward(x)
	assert.Equal(t, float32(1<<depth), leaf.Grad())
	assert.Equal(t, float32(1<<depth), x.Data())
}

func TestTopologicalOrder_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := range 20 {
		root := randomGraph(rng, 5, 40)
		topo := TopologicalOrder(root)

		position := make(map[*Value]int, len(topo))
		for i, v := range topo {
			_, dup := position[v]
			require.False(t, dup, "trial %d: node emitted twice", trial)
			position[v] = i
		}

		for i, v := range topo {
			for _, child := range v.Children() {
				pos, ok := position[child]
				require.True(t, ok, "trial %d: child missing from order", trial)
				assert.Less(t, pos, i, "trial %d: child after parent", trial)
			}
		}

		assert.Len(t, topo, len(reachable(root)), "trial %d", trial)
		assert.Same(t, root, topo[len(topo)-1])
	}
}

// randomGraph builds a DAG by applying random operations to a pool that
// grows with every result, so later nodes share earlier ones heavily.
func randomGraph(rng *rand.Rand, leaves, steps int) *Value {
	pool := make([]*Value, 0, leaves+steps)
	for range leaves {
		pool = append(pool, NewValue(rng.Float32()*2-1))
	}

	for range steps {
		a := pool[rng.IntN(len(pool))]
		b := pool[rng.IntN(len(pool))]
		var v *Value
		switch rng.IntN(5) {
		case 0:
			v = a.Add(b)
		case 1:
			v = a.Mul(b)
		case 2:
			v = a.Tanh()
		case 3:
			v = a.Sub(b)
		default:
			v = a.Pow(2)
		}
		pool = append(pool, v)
	}

	return Sum(pool[len(pool)-5:]...)
}

func reachable(root *Value) map[*Value]struct{} {
	seen := make(map[*Value]struct{})
	var visit func(v *Value)
	visit = func(v *Value) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		for _, c := range v.Children() {
			visit(c)
		}
	}
	visit(root)
	return seen
}
