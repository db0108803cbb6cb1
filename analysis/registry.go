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
	"sort"

	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/cfg"
	"github.com/turtlewalk/turtlewalk/util"
)

// Result is what running a named analysis over a graph produces: whether
// the solver converged, the per-operation annotations it derived, and
// whatever area it covers on the SVG canvas.
type Result struct {
	Converged   bool
	Annotations *ast.Annotations
	Covered     []util.Polygon
}

var forwardAnalyses = map[string]func(*cfg.CFG) Result{
	"sign": func(g *cfg.CFG) Result {
		result := Sign(g)
		if result == nil {
			return Result{}
		}
		return Result{Converged: true, Annotations: SignOperationAnnotations(g, result)}
	},
	"primitive-interval": func(g *cfg.CFG) Result {
		result := PrimitiveInterval(g)
		if result == nil {
			return Result{}
		}
		return Result{
			Converged:   true,
			Annotations: IntervalOperationAnnotations(g, result),
			Covered:     IntervalCoveredArea(g, result),
		}
	},
	"interval": func(g *cfg.CFG) Result {
		result := Interval(g)
		if result == nil {
			return Result{}
		}
		return Result{
			Converged:   true,
			Annotations: IntervalOperationAnnotations(g, result),
			Covered:     IntervalCoveredArea(g, result),
		}
	},
	"past-operations": func(g *cfg.CFG) Result {
		result := PastOperations(g)
		if result == nil {
			return Result{}
		}
		return Result{Converged: true, Annotations: PastOperationsAnnotations(g, result)}
	},
}

var backwardAnalyses = map[string]func(*cfg.ReverseCFG) Result{
	"future-operations": func(g *cfg.ReverseCFG) Result {
		result := FutureOperations(g)
		if result == nil {
			return Result{}
		}
		return Result{Converged: true, Annotations: FutureOperationsAnnotations(g, result)}
	},
}

// Get runs the named analysis over g, returning false if no analysis with
// that name is registered. Backward analyses are handed a ReverseCFG view
// of g automatically.
func Get(name string, g *cfg.CFG) (Result, bool) {
	if run, ok := forwardAnalyses[name]; ok {
		return run(g), true
	}
	if run, ok := backwardAnalyses[name]; ok {
		return run(cfg.Reverse(g)), true
	}
	return Result{}, false
}

// List returns every registered analysis name, sorted.
func List() []string {
	names := make([]string, 0, len(forwardAnalyses)+len(backwardAnalyses))
	for name := range forwardAnalyses {
		names = append(names, name)
	}
	for name := range backwardAnalyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
