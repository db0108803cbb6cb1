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

package solver

import (
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/domain"
	"github.com/turtlewalk/turtlewalk/util"
)

// BlockEndAnnotations annotates the last operation of every non-empty block
// with the analysis state at the end of that block. This is cheap (it
// reuses the per-block results directly) but coarse: operations earlier in
// a block get no annotation at all.
func BlockEndAnnotations[D domain.Domain[D]](g cfg.Graph, result []D) *ast.Annotations {
	anns := ast.NewAnnotations()
	for i, block := range g.Blocks() {
		ops := block.Operations()
		if len(ops) == 0 {
			continue
		}
		anns.AddPost(ops[len(ops)-1], result[i].String())
	}
	return anns
}

// direction distinguishes a forward walk of g's blocks (pre-state flows in
// from predecessors, result lands in Post) from a backward walk over a
// ReverseCFG (result lands in Pre, since the pretty-printer always reads
// forward).
type direction int

const (
	// Forward indicates g is a plain CFG.
	Forward direction = iota
	// Backward indicates g is a ReverseCFG.
	Backward
)

// AllOperationAnnotations re-runs transfer across every block, starting
// each block from the join of its predecessors' fixpoint results, recovering the
// analysis state after every single operation rather than only at block
// boundaries.
func AllOperationAnnotations[D domain.Domain[D]](g cfg.Graph, transfer Transfer[D], result []D, bottom D, dir direction) *ast.Annotations {
	anns := ast.NewAnnotations()
	for _, block := range g.Blocks() {
		preState := bottom
		for _, pred := range block.Predecessors() {
			preState = preState.Join(result[pred])
		}

		postOperationState := preState
		for _, op := range block.Operations() {
			postOperationState = transfer(op, postOperationState)
			if dir == Backward {
				anns.AddPre(op, postOperationState.String())
			} else {
				anns.AddPost(op, postOperationState.String())
			}
		}
	}
	return anns
}

// CoveredArea re-runs transfer the same way AllOperationAnnotations does,
// collecting every polygon any intermediate state can render via
// domain.Coverer. Domains that do not implement Coverer contribute nothing.
func CoveredArea[D domain.Domain[D]](g cfg.Graph, transfer Transfer[D], result []D, bottom D) []util.Polygon {
	var covered []util.Polygon
	for _, block := range g.Blocks() {
		preState := bottom
		for _, pred := range block.Predecessors() {
			preState = preState.Join(result[pred])
		}

		postOperationState := preState
		for _, op := range block.Operations() {
			postOperationState = transfer(op, postOperationState)
			if coverer, ok := any(postOperationState).(domain.Coverer); ok {
				covered = append(covered, coverer.Covers()...)
			}
		}
	}
	return covered
}
