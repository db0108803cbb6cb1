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

// Package solver runs monotone dataflow analyses to a fixpoint over any
// cfg.Graph, in plain and always-widen flavors, and expands per-block
// results back out to per-operation annotations and covered areas.
package solver

import (
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/config"
	"github.com/turtlewalk/turtlewalk/domain"
)

// Transfer computes the abstract state after executing op, given the
// abstract state before it.
type Transfer[D any] func(op ast.Operation, preState D) D

// Solve computes the domain value at the end of every basic block of g
// using transfer, iterating blocks in reverse-post-order until the
// analysis reaches a fixpoint. bottom is D's least element.
//
// The indices of the returned slice correspond to the block indices of g.
// If the analysis does not converge within config.NodeLimit*len(g.Blocks())
// block visits, Solve returns nil.
func Solve[D domain.Domain[D]](g cfg.Graph, transfer Transfer[D], bottom D) []D {
	blocks := g.Blocks()
	limit := config.NodeLimit * len(blocks)
	processed := 0

	postStates := make([]D, len(blocks))
	for i := range postStates {
		postStates[i] = bottom
	}
	visited := make([]bool, len(blocks))

	w := cfg.NewWorklist(g)
	w.Enqueue(0)
	for !w.Empty() {
		if limit > 0 && processed >= limit {
			return nil
		}

		current := w.Dequeue()
		preState := bottom
		for _, pred := range blocks[current].Predecessors() {
			preState = preState.Join(postStates[pred])
		}

		postState := preState
		for _, op := range blocks[current].Operations() {
			postState = transfer(op, postState)
		}
		processed++

		// If the state did not change we do not need to propagate the
		// change. The visited guard keeps the analysis from terminating
		// prematurely just because a block's first visit produced
		// bottom: not every analysis uses bottom to mean dead code.
		if visited[current] && postStates[current].Equal(postState) {
			continue
		}

		visited[current] = true
		postStates[current] = postState
		w.EnqueueSuccessors(g, current)
	}

	return postStates
}

// SolveWidening is Solve's always-widen counterpart: every time a block is
// visited, its running pre-state is widened towards the state flowing in
// from its (currently known) predecessors before the transfer functions
// run. This sacrifices precision for guaranteed termination on graphs with
// unbounded loops.
func SolveWidening[D domain.Widenable[D]](g cfg.Graph, transfer Transfer[D], bottom D) []D {
	blocks := g.Blocks()
	limit := config.NodeLimit * len(blocks)
	processed := 0

	preStates := make([]D, len(blocks))
	postStates := make([]D, len(blocks))
	for i := range preStates {
		preStates[i] = bottom
		postStates[i] = bottom
	}
	visited := make([]bool, len(blocks))

	w := cfg.NewWorklist(g)
	w.Enqueue(0)
	for !w.Empty() {
		if limit > 0 && processed >= limit {
			return nil
		}

		current := w.Dequeue()
		newPreState := bottom
		for _, pred := range blocks[current].Predecessors() {
			newPreState = newPreState.Join(postStates[pred])
		}

		preStates[current] = preStates[current].Widen(newPreState)
		postState := preStates[current]
		for _, op := range blocks[current].Operations() {
			postState = transfer(op, postState)
		}
		processed++

		if visited[current] && postStates[current].Equal(postState) {
			continue
		}

		visited[current] = true
		postStates[current] = postState
		w.EnqueueSuccessors(g, current)
	}

	return postStates
}
