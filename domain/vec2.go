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

package domain

import (
	"fmt"

	"github.com/turtlewalk/turtlewalk/util"
)

// Vec2 is the product of two domain values of the same kind, used to
// abstract a point in 2d space as a pair of independent coordinate
// abstractions.
//
// LessEqual is defined componentwise (X <= X' and Y <= Y'), not
// lexicographically. A lexicographic order over two coordinates is not in
// general monotone with respect to Join on either coordinate alone, which
// breaks the solver's termination argument; componentwise order is the one
// product domains are normally given, and the one this type provides.
type Vec2[D Domain[D]] struct {
	X, Y D
}

func (v Vec2[D]) Equal(other Vec2[D]) bool {
	return v.X.Equal(other.X) && v.Y.Equal(other.Y)
}

func (v Vec2[D]) LessEqual(other Vec2[D]) bool {
	return v.X.LessEqual(other.X) && v.Y.LessEqual(other.Y)
}

func (v Vec2[D]) Join(other Vec2[D]) Vec2[D] {
	return Vec2[D]{X: v.X.Join(other.X), Y: v.Y.Join(other.Y)}
}

func (v Vec2[D]) String() string {
	return fmt.Sprintf("{ x: %s, y: %s }", v.X.String(), v.Y.String())
}

// Vec2Bottom builds the bottom element of Vec2[D] out of D's own bottom,
// since Domain does not require a Bottom method (Go generics have no way to
// require a static/associated-constant-style factory the way the domain
// this is ported from does with T::bottom()).
func Vec2Bottom[D Domain[D]](bottom D) Vec2[D] {
	return Vec2[D]{X: bottom, Y: bottom}
}

// WidenVec2 widens a Vec2 of widenable domains componentwise.
func WidenVec2[D Widenable[D]](v, transferred Vec2[D]) Vec2[D] {
	return Vec2[D]{X: v.X.Widen(transferred.X), Y: v.Y.Widen(transferred.Y)}
}

// Widen widens v componentwise, so that Vec2 of a widenable scalar domain
// (Vec2[Interval], for instance) itself satisfies Widenable. It panics if D
// does not implement Widenable[D].
func (v Vec2[D]) Widen(transferred Vec2[D]) Vec2[D] {
	x, xok := any(v.X).(Widenable[D])
	y, yok := any(v.Y).(Widenable[D])
	if !xok || !yok {
		panic("domain.Vec2.Widen: component domain is not widenable")
	}
	return Vec2[D]{X: x.Widen(transferred.X), Y: y.Widen(transferred.Y)}
}

// Bounded is satisfied by scalar domains with a finite-or-saturated
// min/max, such as Interval. It lets Vec2 offer a Covers rendering without
// Domain itself needing a geometric method every scalar domain must
// implement (Sign, for instance, has no meaningful notion of "bounds").
type Bounded interface {
	Bounds() (min, max int)
}

// Covers renders v as the axis-aligned bounding box [X.min, X.max] x
// [Y.min, Y.max], when both coordinates are Bounded. Domains that are not
// Bounded (Sign, most notably) contribute nothing, same as Powerset.
func (v Vec2[D]) Covers() []util.Polygon {
	xb, ok := any(v.X).(Bounded)
	if !ok {
		return nil
	}
	yb, ok := any(v.Y).(Bounded)
	if !ok {
		return nil
	}
	xMin, xMax := xb.Bounds()
	yMin, yMax := yb.Bounds()
	return []util.Polygon{{
		{X: xMin, Y: yMin},
		{X: xMax, Y: yMin},
		{X: xMax, Y: yMax},
		{X: xMin, Y: yMax},
	}}
}
