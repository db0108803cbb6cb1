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

// Package cfg builds a control-flow graph of basic blocks out of an AST, and
// provides the traversal machinery (reverse view, RPO order, worklist) that
// the solver package runs its fixpoint over.
package cfg

import (
	"fmt"

	"github.com/turtlewalk/turtlewalk/ast"
)

// Block is a maximal straight-line run of operations together with the
// block indices that can be reached from it, and that can reach it.
type Block interface {
	Operations() []ast.Operation
	Successors() []int
	Predecessors() []int
}

// Graph is implemented by both *CFG and *ReverseCFG, so that solvers and
// printers are written once against either direction of travel.
type Graph interface {
	Blocks() []Block
}

type basicBlock struct {
	ops   []ast.Operation
	succs []int
	preds []int
}

func (b *basicBlock) Operations() []ast.Operation { return b.ops }
func (b *basicBlock) Successors() []int           { return b.succs }
func (b *basicBlock) Predecessors() []int         { return b.preds }

// CFG is a control-flow graph built from a single program's AST. Block 0 is
// always the start block; the last block is always the end block.
type CFG struct {
	blocks []*basicBlock
}

// Build walks root and produces its control-flow graph. root is typically
// the Sequence returned by parser.Parse.
func Build(root ast.Node) *CFG {
	g := &CFG{}
	g.newBlock()
	addASTNode(g, 0, root)
	return g
}

// Blocks returns every block in construction order. It satisfies Graph.
func (g *CFG) Blocks() []Block {
	out := make([]Block, len(g.blocks))
	for i, b := range g.blocks {
		out[i] = b
	}
	return out
}

// Len returns the number of blocks in the graph.
func (g *CFG) Len() int { return len(g.blocks) }

func (g *CFG) newBlock() int {
	g.blocks = append(g.blocks, &basicBlock{})
	return len(g.blocks) - 1
}

func (g *CFG) addEdge(from, to int) {
	for _, succ := range g.blocks[from].succs {
		if succ == to {
			panic(fmt.Sprintf("cfg.addEdge: duplicate edge %d -> %d", from, to))
		}
	}
	g.blocks[from].succs = append(g.blocks[from].succs, to)
	g.blocks[to].preds = append(g.blocks[to].preds, from)
}

// addASTNode folds node into the graph starting at currentBlock, returning
// the block execution continues from after node. It is grounded directly in
// the single recursive traversal used by the source this package is ported
// from: a Sequence threads the same block through its children; a Branch
// forks into two fresh blocks and rejoins into a third; a Loop forks into a
// body block that edges back to itself before falling through.
func addASTNode(g *CFG, currentBlock int, node ast.Node) int {
	switch n := node.(type) {
	case ast.Operation:
		b := g.blocks[currentBlock]
		b.ops = append(b.ops, n)
		return currentBlock
	case *ast.Sequence:
		for _, child := range n.Nodes {
			currentBlock = addASTNode(g, currentBlock, child)
		}
		return currentBlock
	case *ast.Branch:
		lhsBlock := g.newBlock()
		rhsBlock := g.newBlock()
		branchPred := currentBlock
		lhsAfter := addASTNode(g, lhsBlock, n.LHS)
		rhsAfter := addASTNode(g, rhsBlock, n.RHS)
		g.addEdge(branchPred, lhsBlock)
		g.addEdge(branchPred, rhsBlock)
		afterBranch := g.newBlock()
		g.addEdge(lhsAfter, afterBranch)
		g.addEdge(rhsAfter, afterBranch)
		return afterBranch
	case *ast.Loop:
		bodyBegin := g.newBlock()
		g.addEdge(currentBlock, bodyBegin)
		bodyEnd := addASTNode(g, bodyBegin, n.Body)
		afterBody := g.newBlock()
		g.addEdge(bodyEnd, bodyBegin)
		g.addEdge(bodyEnd, afterBody)
		return afterBody
	default:
		panic("cfg.Build: unhandled node type")
	}
}
