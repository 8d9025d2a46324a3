package autodiff

// Backward computes gradients of root with respect to every node it depends on.
//
// Algorithm:
//  1. Seed root's gradient with 1 (assumed to be the loss)
//  2. Order the graph with TopologicalOrder
//  3. Walk the order in reverse, applying each node's local rule once
//
// Contributions are added into existing gradients; nothing is reset. Call
// ZeroGrad on the leaves first when starting a fresh computation, otherwise
// gradients from earlier passes are included in the result.
//
// Example:
//
//	a := autodiff.NewValue(3)
//	b := a.Add(a)
//	autodiff.Backward(b)
//	fmt.Println(a.Grad()) // 2
func Backward(root *Value) {
	root.grad = 1

	order := TopologicalOrder(root)
	for i := len(order) - 1; i >= 0; i-- {
		order[i].Propagate()
	}
}

// Propagate pushes v's gradient onto its operands using v's local rule,
// adding to their existing gradients. It is a no-op for leaves.
//
// Backward calls Propagate exactly once per node; calling it again
// accumulates the same contributions a second time.
func (v *Value) Propagate() {
	if v.op == nil {
		return
	}

	grads := v.op.Backward(childData(v.children), v.data, v.grad)
	for j, child := range v.children {
		if j >= len(grads) {
			break
		}
		child.AddGrad(grads[j])
	}
}

// ZeroGrad resets the gradient of every given node to 0.
func ZeroGrad(values ...*Value) {
	for _, v := range values {
		v.ZeroGrad()
	}
}
