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

package walk

import (
	"fmt"

	"github.com/turtlewalk/turtlewalk/ast"
)

// Annotate labels every operation each of the given executions passed
// through with the 1-based execution number and the concrete point it
// landed on, so --executions output can be read back against the program
// source the same way an abstract analysis's results are.
func Annotate(executions [][]Step) *ast.Annotations {
	anns := ast.NewAnnotations()
	for i, steps := range executions {
		for _, step := range steps {
			anns.AddPost(step.Op, fmt.Sprintf("execution %d: (%d, %d)", i+1, step.Pos.X, step.Pos.Y))
		}
	}
	return anns
}
