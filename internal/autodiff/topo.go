package autodiff

import "github.com/google/uuid"

// TopologicalOrder returns every node reachable from root, each exactly once,
// ordered so that a node's operands come strictly before the node itself.
//
// Algorithm:
//  1. Pop a node from the work stack; skip it if already emitted
//  2. If some operand has not been emitted yet, push the node back and
//     push that operand on top of it
//  3. Otherwise emit the node
//
// Membership is keyed on node identity, never on data, so distinct nodes
// holding equal values are kept apart and a node shared by several parents
// (a diamond) is emitted once. The stack only ever holds a chain of
// ancestors, so its depth is bounded by twice the graph depth.
func TopologicalOrder(root *Value) []*Value {
	emitted := make(map[uuid.UUID]struct{})
	order := make([]*Value, 0, 64) // Pre-allocate for small graphs
	stack := []*Value{root}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, done := emitted[v.id]; done {
			continue
		}

		ready := true
		for _, child := range v.children {
			if _, done := emitted[child.id]; !done {
				stack = append(stack, v, child)
				ready = false
				break
			}
		}

		if ready {
			emitted[v.id] = struct{}{}
			order = append(order, v)
		}
	}

	return order
}
