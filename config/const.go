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

// Package config holds constants that are not meant to be user-configurable:
// they tune internal budgets and rendering parameters rather than program
// behavior, so they are not exposed as CLI flags.
package config

const (
	// NodeLimit bounds how many times a solver will process a block before
	// giving up on convergence, scaled by the number of blocks in the
	// graph being solved. A NodeLimit of 0 would mean no bound at all;
	// every solver in this module uses the default of 10.
	NodeLimit = 10

	// CanvasSize is the width and height, in pixels, of the SVG canvas the
	// render package draws onto.
	CanvasSize = 500

	// DefaultLoopiness is the default relative weight walk.Run gives a
	// back edge against any other outgoing edge of the same block, when no
	// --loopiness flag is given. 1 weighs every edge equally.
	DefaultLoopiness = 1

	// DefaultExecutions is how many independent walks the CLI draws, by
	// default, when no --executions flag is given.
	DefaultExecutions = 1
)
