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

package cfg

import (
	"fmt"
	"strings"

	"github.com/turtlewalk/turtlewalk/ast"
)

// PrintDOT renders g as a Graphviz "digraph CFG" with one node per block,
// labeled with its operations in execution order (each rendered with
// ast.Print and newline-separated), and one edge per successor link.
func PrintDOT(g Graph) string {
	var out strings.Builder
	out.WriteString("digraph CFG {\n")

	blocks := g.Blocks()
	for i, block := range blocks {
		fmt.Fprintf(&out, "  Node_%d[label=\"", i)
		for _, op := range block.Operations() {
			out.WriteString(ast.Print(op, nil))
			out.WriteString(`\n`)
		}
		out.WriteString("\"]\n")
	}
	out.WriteString("\n")

	for i, block := range blocks {
		for _, next := range block.Successors() {
			fmt.Fprintf(&out, "  Node_%d -> Node_%d\n", i, next)
		}
	}
	out.WriteString("}\n")
	return out.String()
}
