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

// Package domain implements the abstract domains the solver package runs
// its fixpoint over: Sign, Interval, the generic Vec2 product domain, and
// Powerset. Every domain is a value type satisfying Domain[T]; widenable
// domains additionally satisfy Widenable[T].
package domain

import "github.com/turtlewalk/turtlewalk/util"

// Domain is implemented by every abstract value a solver can track. T is
// the concrete domain type itself, so that Join and LessEqual operate on
// same-typed values without an interface-boxing allocation per call.
//
// Implementations must satisfy:
//   - Equal is an equivalence relation.
//   - LessEqual is a partial order.
//   - Join(a, a) == a; Join is commutative; Join(a, b) >= a and >= b.
type Domain[T any] interface {
	Equal(other T) bool
	LessEqual(other T) bool
	Join(other T) T
	String() string
}

// Widenable is satisfied by domains whose lattice has infinite ascending
// chains, so a plain Join-driven fixpoint may never terminate. Widen must
// satisfy: bottom.Widen(a) == a; a.Widen(a) == a; b.Widen(a) == b whenever
// a <= b.
type Widenable[T any] interface {
	Domain[T]
	Widen(transferred T) T
}

// Coverer is satisfied by domains that can render themselves as filled
// regions on the SVG canvas. Domains with no useful geometric rendering
// (Powerset, most notably) return nil.
type Coverer interface {
	Covers() []util.Polygon
}
