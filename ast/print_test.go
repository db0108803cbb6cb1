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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlewalk/turtlewalk/ast"
)

func TestPrintStraightLine(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 50, 50, 50, 50)
	trans := ctx.NewTranslation(1, 10, 0)
	root := ctx.NewSequence(1, []ast.Node{init, trans})

	require.Equal(t, "init(50, 50, 50, 50);\ntranslation(10, 0)", ast.Print(root, nil))
}

func TestPrintBranchIndentation(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 0, 0, 0, 0)
	lhs := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, 1, 0)})
	rhs := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, -1, 0)})
	branch := ctx.NewBranch(1, lhs, rhs)
	root := ctx.NewSequence(1, []ast.Node{init, branch})

	want := "init(0, 0, 0, 0);\n{\n  translation(1, 0)\n} or {\n  translation(-1, 0)\n}"
	require.Equal(t, want, ast.Print(root, nil))
}

func TestPrintWithAnnotations(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	init := ctx.NewInit(1, 50, 50, 50, 50)
	root := ctx.NewSequence(1, []ast.Node{init})

	anns := ast.NewAnnotations()
	anns.AddPost(init, "{ x: Positive, y: Positive }")

	want := "init(50, 50, 50, 50) /* { x: Positive, y: Positive } */"
	require.Equal(t, want, ast.Print(root, anns))
}

func TestPrintLoop(t *testing.T) {
	t.Parallel()

	ctx := ast.NewContext()
	body := ctx.NewSequence(1, []ast.Node{ctx.NewTranslation(1, 1, 1)})
	loop := ctx.NewLoop(1, body)
	root := ctx.NewSequence(1, []ast.Node{loop})

	require.Equal(t, "iter {\n  translation(1, 1)\n}", ast.Print(root, nil))
}
