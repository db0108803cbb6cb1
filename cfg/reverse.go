//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cfg

import "github.com/turtlewalk/turtlewalk/ast"

// ReverseCFG is a zero-copy view of a CFG with edges and operation order
// flipped, so that backward analyses can run the exact same forward solver
// over it. Block i of the reverse view is block (N-1-i) of the underlying
// CFG, which keeps "start block = index 0" true in both directions.
type ReverseCFG struct {
	cfg *CFG
}

// Reverse wraps g in a ReverseCFG. No blocks are copied; every method
// recomputes its answer from g on demand.
func Reverse(g *CFG) *ReverseCFG {
	return &ReverseCFG{cfg: g}
}

// Blocks returns every block in reverse construction order. It satisfies
// Graph.
func (r *ReverseCFG) Blocks() []Block {
	n := len(r.cfg.blocks)
	out := make([]Block, n)
	for i := 0; i < n; i++ {
		out[i] = &reverseBlock{bb: r.cfg.blocks[n-1-i], n: n}
	}
	return out
}

type reverseBlock struct {
	bb *basicBlock
	n  int
}

// Operations returns the block's operations in reverse order, since the
// block is being read back to front.
func (r *reverseBlock) Operations() []ast.Operation {
	ops := r.bb.ops
	out := make([]ast.Operation, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op
	}
	return out
}

// Successors of the reverse view are the underlying block's predecessors,
// remapped into reverse-view indices.
func (r *reverseBlock) Successors() []int {
	return remap(r.bb.preds, r.n)
}

// Predecessors of the reverse view are the underlying block's successors,
// remapped into reverse-view indices.
func (r *reverseBlock) Predecessors() []int {
	return remap(r.bb.succs, r.n)
}

func remap(indices []int, n int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = n - 1 - idx
	}
	return out
}
