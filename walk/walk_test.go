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

package walk_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/util"
	"github.com/turtlewalk/turtlewalk/walk"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func positions(steps []walk.Step) []util.Vec2 {
	out := make([]util.Vec2, len(steps))
	for i, s := range steps {
		out[i] = s.Pos
	}
	return out
}

func TestRunRequiresLeadingInit(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	root := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, 1, 0)})
	g := cfg.Build(root)

	_, ok := walk.Run(g, 1, rand.New(rand.NewSource(1)))
	require.False(t, ok)
}

func TestRunStraightLineStaysWithinInitBounds(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 0, 0, 10, 10)
	trans := ctx.NewTranslation(1, 5, 5)
	root := ctx.NewSequence(1, []ast.Node{init, trans})
	g := cfg.Build(root)

	rng := rand.New(rand.NewSource(42))
	steps, ok := walk.Run(g, 1, rng)
	require.True(t, ok)
	require.Len(t, steps, 2)

	require.True(t, steps[0].Pos.X >= 0 && steps[0].Pos.X <= 10)
	require.True(t, steps[0].Pos.Y >= 0 && steps[0].Pos.Y <= 10)
	require.Equal(t, steps[0].Pos.X+5, steps[1].Pos.X)
	require.Equal(t, steps[0].Pos.Y+5, steps[1].Pos.Y)
}

func TestRunTerminatesAtLoopWithZeroLoopiness(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 0, 0, 0, 0)
	body := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, 1, 1)})
	loop := ctx.NewLoop(1, body)
	root := ctx.NewSequence(1, []ast.Node{init, loop})
	g := cfg.Build(root)

	rng := rand.New(rand.NewSource(7))
	// loopiness of 0 gives the back edge no weight at all, so Run must
	// leave the loop after its first pass over the body.
	steps, ok := walk.Run(g, 0, rng)
	require.True(t, ok)
	require.NotEmpty(t, steps)
}

func TestRunIsDeterministicForAGivenSeed(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 0, 0, 10, 10)
	body := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, 1, 0)})
	loop := ctx.NewLoop(1, body)
	root := ctx.NewSequence(1, []ast.Node{init, loop})
	g := cfg.Build(root)

	first, ok := walk.Run(g, 3, rand.New(rand.NewSource(99)))
	require.True(t, ok)
	second, ok := walk.Run(g, 3, rand.New(rand.NewSource(99)))
	require.True(t, ok)

	if diff := cmp.Diff(positions(first), positions(second)); diff != "" {
		t.Fatalf("same seed produced different traces (-first +second):\n%s", diff)
	}
}

func TestAnnotateLabelsEachExecution(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 0, 0, 0, 0)

	executions := [][]walk.Step{
		{{Op: init}},
		{{Op: init}},
	}
	anns := walk.Annotate(executions)

	require.Len(t, anns.Post[init], 2)
	require.Contains(t, anns.Post[init][0], "execution 1")
	require.Contains(t, anns.Post[init][1], "execution 2")
}
