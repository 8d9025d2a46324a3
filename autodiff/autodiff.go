// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every arithmetic method on *Value computes its result immediately and
// records its operands, building a graph that Backward walks in reverse.
//
// Example:
//
//	import "github.com/born-ml/ketting/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(-2)
//	    b := autodiff.NewValue(3)
//
//	    // f = (a*b) * (a+b): a and b are reached along two paths each
//	    f := a.Mul(b).Mul(a.Add(b))
//
//	    autodiff.Backward(f)
//	    fmt.Println(a.Grad(), b.Grad()) // -3 -8
//	}
//
// Gradients accumulate across calls to Backward. Reset leaves with ZeroGrad
// before starting a fresh computation.
package autodiff

import (
	"github.com/born-ml/ketting/internal/autodiff"
	"github.com/born-ml/ketting/internal/autodiff/ops"
)

// Value is a scalar graph node holding data, gradient and operands.
type Value = autodiff.Value

// Kind tags how a node was produced (leaf, add, mul, tanh, exp, pow).
type Kind = ops.Kind

// Operation kinds.
const (
	KindLeaf = ops.KindLeaf
	KindAdd  = ops.KindAdd
	KindMul  = ops.KindMul
	KindTanh = ops.KindTanh
	KindExp  = ops.KindExp
	KindPow  = ops.KindPow
)

// NewValue creates a leaf node with the given data and a zero gradient.
func NewValue(data float32) *Value {
	return autodiff.NewValue(data)
}

// Sum folds values left to right with Add.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// Backward seeds root's gradient with 1 and propagates gradients to every
// node root depends on, accumulating into existing gradients.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopologicalOrder returns every node reachable from root exactly once,
// operands before the nodes that use them.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrad resets the gradient of every given node to 0.
func ZeroGrad(values ...*Value) {
	autodiff.ZeroGrad(values...)
}
