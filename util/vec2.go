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

// Package util implements small, dependency-free geometric and numeric
// helpers shared by the domain, analysis, solver, walk, and render packages.
package util

import "math"

// PosInf and NegInf are the saturating sentinels used by every domain that
// needs an unbounded element (interval endpoints, sign-domain "covers"
// projections). They are ordinary machine integers rather than a floating
// point infinity so that comparisons and arithmetic stay exact.
const (
	PosInf = math.MaxInt
	NegInf = math.MinInt
)

// Vec2 is a point or displacement in the 2D plane the walk lives in.
type Vec2 struct {
	X, Y int
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Neg returns the componentwise negation.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Polygon is an ordered list of vertices. Degenerate polygons (zero or one
// vertex) are legal and represent a point or an empty region; rendering and
// analysis code must not assume at least three vertices.
type Polygon []Vec2
