package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ketting/internal/autodiff/ops"
)

func TestNewValue(t *testing.T) {
	v := NewValue(1.5)

	assert.Equal(t, float32(1.5), v.Data())
	assert.Equal(t, float32(0), v.Grad())
	assert.Empty(t, v.Children())
	assert.Equal(t, ops.KindLeaf, v.Op())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Label())
}

func TestValue_IdentityIsNotData(t *testing.T) {
	a := NewValue(1)
	b := NewValue(1)

	assert.NotEqual(t, a.ID(), b.ID(), "equal data must not share identity")

	a.SetData(7)
	a.SetGrad(3)
	id := a.ID()
	assert.Equal(t, id, a.ID(), "identity survives mutation")
}

func TestAdd_Structure(t *testing.T) {
	v1 := NewValue(1)
	v2 := NewValue(2)
	v3 := v1.Add(v2)

	assert.Equal(t, float32(3), v3.Data())
	require.Len(t, v3.Children(), 2)
	assert.Same(t, v1, v3.Children()[0])
	assert.Same(t, v2, v3.Children()[1])
	assert.Equal(t, ops.KindAdd, v3.Op())
	assert.False(t, v3.IsLeaf())
}

func TestAdd_Twice(t *testing.T) {
	v1 := NewValue(1)
	v2 := NewValue(2)
	v3 := NewValue(3)
	v1v2 := v1.Add(v2)
	v4 := v1v2.Add(v3)

	assert.Equal(t, float32(6), v4.Data())
	require.Len(t, v4.Children(), 2)
	assert.Same(t, v1v2, v4.Children()[0])
	assert.Same(t, v3, v4.Children()[1])
}

func TestMul_Structure(t *testing.T) {
	v1 := NewValue(3)
	v2 := NewValue(2)
	v3 := v1.Mul(v2)

	assert.Equal(t, float32(6), v3.Data())
	require.Len(t, v3.Children(), 2)
	assert.Same(t, v1, v3.Children()[0])
	assert.Same(t, v2, v3.Children()[1])
	assert.Equal(t, ops.KindMul, v3.Op())
}

func TestUnary_Structure(t *testing.T) {
	x := NewValue(2)

	tests := []struct {
		name string
		node *Value
		kind ops.Kind
	}{
		{"tanh", x.Tanh(), ops.KindTanh},
		{"exp", x.Exp(), ops.KindExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.node.Children(), 1)
			assert.Same(t, x, tt.node.Children()[0])
			assert.Equal(t, tt.kind, tt.node.Op())
		})
	}
}

func TestPow_Structure(t *testing.T) {
	x := NewValue(2)
	p := x.Pow(3)

	assert.Equal(t, float32(8), p.Data())
	assert.Equal(t, ops.KindPow, p.Op())
	require.Len(t, p.Children(), 2)
	assert.Same(t, x, p.Children()[0])

	exponent := p.Children()[1]
	assert.True(t, exponent.IsLeaf())
	assert.Equal(t, float32(3), exponent.Data())
}

// Mutating a leaf is visible through every node that holds it, but nodes
// already built keep their eagerly computed data.
func TestSetData_VisibleThroughChildren(t *testing.T) {
	v1 := NewValue(1)
	v2 := NewValue(2)
	v3 := v1.Add(v2)

	v1.SetData(v1.Data() + 1)

	assert.Same(t, v1, v3.Children()[0])
	assert.Equal(t, float32(2), v3.Children()[0].Data())
	assert.Equal(t, float32(3), v3.Data(), "forward value is not recomputed")

	v4 := v1.Add(v2)
	assert.Equal(t, float32(4), v4.Data())
}

func TestSetGrad_VisibleThroughChildren(t *testing.T) {
	x1 := NewValue(2)
	x2 := x1.Tanh()

	x2.Children()[0].SetGrad(2)

	assert.Equal(t, float32(2), x1.Grad())
}

func TestGradAccessors(t *testing.T) {
	v := NewValue(0)

	v.SetGrad(1.5)
	v.AddGrad(0.5)
	assert.Equal(t, float32(2), v.Grad())

	v.ZeroGrad()
	assert.Equal(t, float32(0), v.Grad())
}

func TestValue_String(t *testing.T) {
	v := NewValue(2).SetLabel("x")
	v.SetGrad(0.5)

	assert.Equal(t, "Value(data=2, label=x, grad=0.5)", v.String())
}
