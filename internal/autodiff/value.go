package autodiff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/ketting/internal/autodiff/ops"
)

// Value is a scalar node in a define-by-run computation graph.
//
// A *Value is a shared handle: every graph that uses a node as an operand
// holds the same pointer, so data and gradient written through one alias are
// visible through all of them. Leaves (inputs and parameters) live across
// forward passes; operation nodes are rebuilt on every pass.
//
// Example:
//
//	a := autodiff.NewValue(-2)
//	b := autodiff.NewValue(3)
//	f := a.Mul(b).Mul(a.Add(b))
//	autodiff.Backward(f)
//	fmt.Println(a.Grad(), b.Grad()) // -3 -8
type Value struct {
	id       uuid.UUID     // Graph identity, independent of data and grad
	data     float32       // Forward value
	grad     float32       // Accumulated dL/d(this)
	children []*Value      // Operands, in operation order
	op       ops.Operation // nil for leaves
	label    string        // Optional debug name
}

// NewValue creates a leaf node with the given data and a zero gradient.
func NewValue(data float32) *Value {
	return &Value{
		id:   uuid.New(),
		data: data,
	}
}

// newOpValue evaluates op on the current data of children and returns the
// resulting node.
func newOpValue(op ops.Operation, children ...*Value) *Value {
	if len(children) != op.Arity() {
		panic(fmt.Sprintf("autodiff: %s expects %d operands, got %d", op.Kind(), op.Arity(), len(children)))
	}
	v := NewValue(op.Forward(childData(children)))
	v.children = children
	v.op = op
	return v
}

// ID returns the node's process-unique identity.
func (v *Value) ID() uuid.UUID {
	return v.id
}

// Data returns the forward value.
func (v *Value) Data() float32 {
	return v.data
}

// SetData overwrites the forward value in place.
//
// Nodes already built from v keep their computed data; only graphs built
// afterwards observe the new value.
func (v *Value) SetData(data float32) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float32 {
	return v.grad
}

// SetGrad overwrites the gradient.
func (v *Value) SetGrad(grad float32) {
	v.grad = grad
}

// AddGrad accumulates delta into the gradient.
func (v *Value) AddGrad(delta float32) {
	v.grad += delta
}

// ZeroGrad resets the gradient to 0.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Children returns the operands of v in operation order.
// The returned slice must not be modified.
func (v *Value) Children() []*Value {
	return v.children
}

// Op returns how v was produced.
func (v *Value) Op() ops.Kind {
	if v.op == nil {
		return ops.KindLeaf
	}
	return v.op.Kind()
}

// IsLeaf reports whether v has no operands.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Label returns the debug name.
func (v *Value) Label() string {
	return v.label
}

// SetLabel sets the debug name and returns v.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%v, label=%s, grad=%v)", v.data, v.label, v.grad)
}

func childData(children []*Value) []float32 {
	data := make([]float32, len(children))
	for i, c := range children {
		data[i] = c.data
	}
	return data
}
