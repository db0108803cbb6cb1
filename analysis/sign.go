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

// Package analysis implements the concrete dataflow analyses that run over
// a cfg.Graph: Sign, primitive and widening Interval, and Past/Future
// Operations. Each analysis is a pure function from a graph to a slice of
// per-block domain values, plus helpers to expand that into per-operation
// annotations and covered-area polygons.
package analysis

import (
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/domain"
	"github.com/turtlewalk/turtlewalk/solver"
)

// Vec2Sign is the abstract state Sign analysis tracks: the current point's
// x and y coordinates, each abstracted to their Sign.
type Vec2Sign = domain.Vec2[domain.Sign]

// signTransfer is grounded in the exact abstract semantics of each
// operation against the Sign domain: Init derives a sign from the known
// extent of the initial rectangle, Translation adds abstract signs, and
// Rotation either passes the state through a sign-preserving quarter turn
// or gives up to Top when the center of rotation is not the origin or the
// angle is not a multiple of 90 degrees.
func signTransfer(op ast.Operation, preState Vec2Sign) Vec2Sign {
	switch n := op.(type) {
	case *ast.Init:
		return Vec2Sign{X: initSign(n.TopX, n.Width), Y: initSign(n.TopY, n.Height)}
	case *ast.Translation:
		return Vec2Sign{
			X: preState.X.Add(domain.NewSign(n.Dx)),
			Y: preState.Y.Add(domain.NewSign(n.Dy)),
		}
	case *ast.Rotation:
		if n.Ox == 0 && n.Oy == 0 {
			switch ((n.Degrees % 360) + 360) % 360 {
			case 0:
				return preState
			case 270:
				return Vec2Sign{X: preState.Y, Y: preState.X.Neg()}
			case 180:
				return Vec2Sign{X: preState.X.Neg(), Y: preState.Y.Neg()}
			case 90:
				return Vec2Sign{X: preState.Y.Neg(), Y: preState.X}
			}
		}
		return Vec2Sign{X: domain.SignOf(domain.SignTop), Y: domain.SignOf(domain.SignTop)}
	default:
		panic("analysis.signTransfer: unhandled operation type")
	}
}

func initSign(top, extent int) domain.Sign {
	switch {
	case top > 0:
		return domain.SignOf(domain.SignPositive)
	case top+extent < 0:
		return domain.SignOf(domain.SignNegative)
	case top == 0 && extent == 0:
		return domain.SignOf(domain.SignZero)
	default:
		return domain.SignOf(domain.SignTop)
	}
}

// Sign runs the Sign analysis over g to a fixpoint.
func Sign(g cfg.Graph) []Vec2Sign {
	return solver.Solve(g, signTransfer, domain.Vec2Bottom(domain.SignBottomValue()))
}

// SignOperationAnnotations expands a Sign result to a per-operation
// Post annotation.
func SignOperationAnnotations(g cfg.Graph, result []Vec2Sign) *ast.Annotations {
	return solver.AllOperationAnnotations(g, signTransfer, result, domain.Vec2Bottom(domain.SignBottomValue()), solver.Forward)
}
