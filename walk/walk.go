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

// Package walk evaluates a program concretely, sampling one point of the
// nondeterministic space it describes. Where the domain and solver
// packages compute what is possibly true of every execution, walk produces
// one specific execution - used for the CLI's --executions output and for
// the traces drawn by --svg.
package walk

import (
	"fmt"
	"math/rand"

	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/util"
)

// Step is the state produced by evaluating one operation: the point the
// walk is at afterward, and the operation that produced it.
type Step struct {
	Pos util.Vec2
	Op  ast.Operation
}

// Run evaluates one random execution of g. loopiness controls how much
// more likely a back edge (one that does not move forward in reverse
// post-order) is to be taken relative to any other outgoing edge from the
// same block: loopiness == 1 weighs every edge equally, loopiness == n
// weighs a back edge n times as heavily.
//
// Run reports false if g's very first operation is not an Init, since
// there is then no way to sample a starting point.
func Run(g *cfg.CFG, loopiness int, rng *rand.Rand) ([]Step, bool) {
	blocks := g.Blocks()
	if len(blocks) == 0 || len(blocks[0].Operations()) == 0 {
		return nil, false
	}
	if _, ok := blocks[0].Operations()[0].(*ast.Init); !ok {
		return nil, false
	}

	order := cfg.NewRPOOrder(g)
	var steps []Step
	current := 0
	for {
		for _, op := range blocks[current].Operations() {
			var prev *Step
			if len(steps) > 0 {
				prev = &steps[len(steps)-1]
			}
			steps = append(steps, evalStep(op, prev, rng))
		}

		succs := blocks[current].Successors()
		if len(succs) == 0 {
			break
		}
		current = pickSuccessor(succs, current, order, loopiness, rng)
	}
	return steps, true
}

func evalStep(op ast.Operation, prev *Step, rng *rand.Rand) Step {
	switch n := op.(type) {
	case *ast.Init:
		x := n.TopX + rng.Intn(n.Width+1)
		y := n.TopY + rng.Intn(n.Height+1)
		return Step{Pos: util.Vec2{X: x, Y: y}, Op: op}
	case *ast.Translation:
		return Step{Pos: prev.Pos.Add(util.Vec2{X: n.Dx, Y: n.Dy}), Op: op}
	case *ast.Rotation:
		origin := util.Vec2{X: n.Ox, Y: n.Oy}
		return Step{Pos: util.Rotate(prev.Pos, origin, n.Degrees), Op: op}
	default:
		panic(fmt.Sprintf("walk.evalStep: unhandled operation type %T", op))
	}
}

// pickSuccessor weighs each of current's successors: loopiness if taking it
// does not advance in reverse post-order (a back edge), 1 otherwise.
func pickSuccessor(succs []int, current int, order *cfg.RPOOrder, loopiness int, rng *rand.Rand) int {
	weights := make([]int, len(succs))
	total := 0
	for i, s := range succs {
		w := 1
		if order.Position(s) <= order.Position(current) {
			w = loopiness
		}
		weights[i] = w
		total += w
	}

	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return succs[i]
		}
		r -= w
	}
	return succs[len(succs)-1]
}
