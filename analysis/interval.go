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
	"github.com/turtlewalk/turtlewalk/util"
)

// Vec2Interval is the abstract state Interval analysis tracks: a bounding
// box of where the current point could be.
type Vec2Interval = domain.Vec2[domain.Interval]

func intervalTransfer(op ast.Operation, preState Vec2Interval) Vec2Interval {
	switch n := op.(type) {
	case *ast.Init:
		return Vec2Interval{
			X: domain.Interval{Min: n.TopX, Max: n.TopX + n.Width},
			Y: domain.Interval{Min: n.TopY, Max: n.TopY + n.Height},
		}
	case *ast.Translation:
		return Vec2Interval{
			X: preState.X.Add(domain.NewInterval(n.Dx)),
			Y: preState.Y.Add(domain.NewInterval(n.Dy)),
		}
	case *ast.Rotation:
		return rotateInterval(preState, n.Ox, n.Oy, n.Degrees)
	default:
		panic("analysis.intervalTransfer: unhandled operation type")
	}
}

// rotateInterval mirrors the exact case split of the analysis this is
// ported from: multiples of 360 leave the state untouched; multiples of 90
// translate the rotation center to the origin, permute/negate the two
// interval bounds exactly (since a quarter turn cannot introduce new
// imprecision), then translate back; everything else falls back to
// rotating the bounding box's four corners through the same floating-point
// rotation the concrete walk uses (or to Top outright, if any bound is
// already infinite, since a corner at infinity cannot be rotated).
func rotateInterval(preState Vec2Interval, ox, oy, degree int) Vec2Interval {
	normalized := ((degree % 360) + 360) % 360
	if normalized == 0 {
		return preState
	}

	toRotate := Vec2Interval{
		X: preState.X.Add(domain.NewInterval(-ox)),
		Y: preState.Y.Add(domain.NewInterval(-oy)),
	}

	switch normalized {
	case 270:
		return Vec2Interval{
			X: toRotate.Y.Add(domain.NewInterval(ox)),
			Y: toRotate.X.Neg().Add(domain.NewInterval(oy)),
		}
	case 180:
		return Vec2Interval{
			X: toRotate.X.Neg().Add(domain.NewInterval(ox)),
			Y: toRotate.Y.Neg().Add(domain.NewInterval(oy)),
		}
	case 90:
		return Vec2Interval{
			X: toRotate.Y.Neg().Add(domain.NewInterval(ox)),
			Y: toRotate.X.Add(domain.NewInterval(oy)),
		}
	}

	if preState.X.Max == util.PosInf || preState.X.Min == util.NegInf ||
		preState.Y.Max == util.PosInf || preState.Y.Min == util.NegInf {
		return domain.Vec2[domain.Interval]{X: domain.IntervalTop(), Y: domain.IntervalTop()}
	}

	origin := util.Vec2{X: ox, Y: oy}
	corners := [4]util.Vec2{
		{X: preState.X.Min, Y: preState.Y.Min},
		{X: preState.X.Min, Y: preState.Y.Max},
		{X: preState.X.Max, Y: preState.Y.Min},
		{X: preState.X.Max, Y: preState.Y.Max},
	}
	for i, c := range corners {
		corners[i] = util.Rotate(c, origin, degree)
	}

	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return Vec2Interval{X: domain.Interval{Min: minX, Max: maxX}, Y: domain.Interval{Min: minY, Max: maxY}}
}

// PrimitiveInterval runs the Interval analysis without widening. It is
// deliberately naive: a loop whose body ever grows the bounding box will
// not converge within the solver's visit budget, and Solve will return nil.
// It exists for comparison against the widening variant below, not for
// production use.
func PrimitiveInterval(g cfg.Graph) []Vec2Interval {
	return solver.Solve(g, intervalTransfer, domain.Vec2Bottom(domain.IntervalBottom()))
}

// Interval runs the Interval analysis with widening applied on every visit,
// guaranteeing termination at the cost of precision.
func Interval(g cfg.Graph) []Vec2Interval {
	return solver.SolveWidening(g, intervalTransfer, domain.Vec2Bottom(domain.IntervalBottom()))
}

// IntervalOperationAnnotations expands an Interval result to a per-operation
// Post annotation.
func IntervalOperationAnnotations(g cfg.Graph, result []Vec2Interval) *ast.Annotations {
	return solver.AllOperationAnnotations(g, intervalTransfer, result, domain.Vec2Bottom(domain.IntervalBottom()), solver.Forward)
}

// IntervalCoveredArea expands an Interval result to the set of bounding
// boxes visible after every operation, rendered as axis-aligned rectangles
// via Vec2's generic Bounded rendering.
func IntervalCoveredArea(g cfg.Graph, result []Vec2Interval) []util.Polygon {
	return solver.CoveredArea(g, intervalTransfer, result, domain.Vec2Bottom(domain.IntervalBottom()))
}
