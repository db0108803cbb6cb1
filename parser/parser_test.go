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

package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/diagnostic"
	"github.com/turtlewalk/turtlewalk/lexer"
	"github.com/turtlewalk/turtlewalk/parser"
)

func parse(t *testing.T, source string) (*ast.Sequence, *diagnostic.Writer) {
	t.Helper()
	var errBuf bytes.Buffer
	diag := diagnostic.NewWriter(nil, &errBuf)
	tokens := lexer.New(source, diag).LexAll()
	require.NotNil(t, tokens, "lexing should succeed: %s", errBuf.String())

	p := parser.New(diag, tokens)
	root, ok := p.Parse()
	if !ok {
		return nil, diag
	}
	return root, diag
}

func TestParseStraightLine(t *testing.T) {
	t.Parallel()

	root, diag := parse(t, "init(50, 50, 50, 50); translation(10, 0)")
	require.False(t, diag.HadError())
	require.Equal(t, "init(50, 50, 50, 50);\ntranslation(10, 0)", ast.Print(root, nil))
}

func TestParseRootMustStartWithInit(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "translation(1, 1)")
	require.True(t, diag.HadError())
	require.Contains(t, diag.Errors[0].Message, "'init' expected")
}

func TestParseNegativeWidthRejected(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0, 0, -1, 0)")
	require.True(t, diag.HadError())
	require.Contains(t, diag.Errors[0].Message, "width")
}

func TestParseNegativeHeightRejected(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0, 0, 0, -1)")
	require.True(t, diag.HadError())
	require.Contains(t, diag.Errors[0].Message, "height")
}

func TestParseLoopMustNotBeEmpty(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0,0,0,0); iter {}")
	require.True(t, diag.HadError())
	require.Contains(t, diag.Errors[0].Message, "must not be empty")
}

func TestParseBranchBothSidesEmptyRejected(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0,0,0,0); {} or {}")
	require.True(t, diag.HadError())
	require.Contains(t, diag.Errors[0].Message, "at most one alternative")
}

func TestParseBranchOneSideEmptyAllowed(t *testing.T) {
	t.Parallel()

	root, diag := parse(t, "init(0,0,0,0); {} or { translation(1, 0) }")
	require.False(t, diag.HadError())
	require.Equal(t, "init(0, 0, 0, 0);\n{\n\n} or {\n  translation(1, 0)\n}", ast.Print(root, nil))
}

func TestParseNestedLoopAndBranch(t *testing.T) {
	t.Parallel()

	root, diag := parse(t, `
		init(0, 0, 100, 100);
		iter {
			{ translation(1, 0) } or { rotation(0, 0, 90) }
		}
	`)
	require.False(t, diag.HadError())
	require.Len(t, root.Nodes, 2)
}

func TestParseEndOfFileExpected(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0,0,0,0) translation(1,1)")
	require.True(t, diag.HadError())
}

func TestParseRedundantSemicolon(t *testing.T) {
	t.Parallel()

	_, diag := parse(t, "init(0,0,0,0);;")
	require.True(t, diag.HadError())
}

func TestParseReentrantFeed(t *testing.T) {
	t.Parallel()

	var errBuf bytes.Buffer
	diag := diagnostic.NewWriter(nil, &errBuf)

	tokens := lexer.New("init(0, 0, 0, 0);", diag).LexAll()
	require.NotNil(t, tokens)

	p := parser.New(diag, tokens)

	more := lexer.New("translation(1, 1)", diag).LexAll()
	require.NotNil(t, more)
	p.Feed(more)

	root, ok := p.Parse()
	require.True(t, ok)
	require.False(t, diag.HadError())
	require.Equal(t, 2, p.Context().Len()-1) // Init + Translation, minus the Sequence itself
	require.Len(t, root.Nodes, 2)
}
