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

package analysis

import (
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/domain"
	"github.com/turtlewalk/turtlewalk/solver"
)

// OperationKind names one of the three operation shapes the walk language
// has. Its declaration order (Init, Translation, Rotation) is what
// Powerset.String renders sets in, via Rank, rather than falling back to
// alphabetical order.
type OperationKind string

// The three operation kinds, in declaration order.
const (
	KindInit        OperationKind = "Init"
	KindTranslation OperationKind = "Translation"
	KindRotation    OperationKind = "Rotation"
)

func (k OperationKind) String() string { return string(k) }

// Rank orders OperationKind by declaration order, satisfying domain.Ranked.
func (k OperationKind) Rank() int {
	switch k {
	case KindInit:
		return 0
	case KindTranslation:
		return 1
	case KindRotation:
		return 2
	default:
		panic("analysis.OperationKind.Rank: unhandled kind " + string(k))
	}
}

// OperationSet is the abstract state Past/Future Operations analysis
// tracks: the set of operation kinds seen so far.
type OperationSet = domain.Powerset[OperationKind]

func operationSetTransfer(op ast.Operation, preState OperationSet) OperationSet {
	switch op.(type) {
	case *ast.Init:
		return preState.Insert(KindInit)
	case *ast.Translation:
		return preState.Insert(KindTranslation)
	case *ast.Rotation:
		return preState.Insert(KindRotation)
	default:
		panic("analysis.operationSetTransfer: unhandled operation type")
	}
}

// PastOperations runs a forward analysis recording, for every block, the
// set of operation kinds that may have already executed by the time
// control leaves it (the block's own operations included).
func PastOperations(g cfg.Graph) []OperationSet {
	return solver.Solve(g, operationSetTransfer, domain.PowersetBottom[OperationKind]())
}

// FutureOperations runs the same analysis backward, over a ReverseCFG,
// recording the set of operation kinds that may still execute once
// control enters a block (the block's own operations included).
func FutureOperations(g *cfg.ReverseCFG) []OperationSet {
	return solver.Solve(g, operationSetTransfer, domain.PowersetBottom[OperationKind]())
}

// PastOperationsAnnotations expands a PastOperations result to a
// per-operation Post annotation.
func PastOperationsAnnotations(g cfg.Graph, result []OperationSet) *ast.Annotations {
	return solver.AllOperationAnnotations(g, operationSetTransfer, result, domain.PowersetBottom[OperationKind](), solver.Forward)
}

// FutureOperationsAnnotations expands a FutureOperations result to a
// per-operation Pre annotation, since the analysis was run backward but
// annotations are always rendered in forward source order.
func FutureOperationsAnnotations(g *cfg.ReverseCFG, result []OperationSet) *ast.Annotations {
	return solver.AllOperationAnnotations[OperationSet](g, operationSetTransfer, result, domain.PowersetBottom[OperationKind](), solver.Backward)
}
