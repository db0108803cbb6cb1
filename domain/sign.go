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

import "github.com/turtlewalk/turtlewalk/util"

// SignValue names a point in the Sign lattice:
//
//	      Top
//	   /   |   \
//	  Neg Zero Pos
//	   \   |   /
//	     Bottom
type SignValue uint8

const (
	SignTop SignValue = iota
	SignBottom
	SignNegative
	SignZero
	SignPositive
)

// Sign abstracts an integer down to its sign.
type Sign struct {
	v SignValue
}

// NewSign abstracts a concrete integer.
func NewSign(value int) Sign {
	switch {
	case value < 0:
		return Sign{v: SignNegative}
	case value > 0:
		return Sign{v: SignPositive}
	default:
		return Sign{v: SignZero}
	}
}

// SignOf constructs a Sign directly from a lattice element, for tests and
// for constructing Top/Bottom.
func SignOf(v SignValue) Sign { return Sign{v: v} }

// SignBottomValue is the least element of the Sign lattice.
func SignBottomValue() Sign { return Sign{v: SignBottom} }

func (s Sign) Equal(other Sign) bool { return s.v == other.v }

func (s Sign) LessEqual(other Sign) bool {
	if s.v == SignBottom {
		return true
	}
	if other.v == SignTop {
		return true
	}
	return s.v == other.v
}

func (s Sign) Join(other Sign) Sign {
	if s.v == other.v || other.v == SignBottom {
		return s
	}
	if s.v == SignBottom {
		return other
	}
	return Sign{v: SignTop}
}

func (s Sign) String() string {
	switch s.v {
	case SignTop:
		return "Top"
	case SignBottom:
		return "Bottom"
	case SignNegative:
		return "Negative"
	case SignZero:
		return "Zero"
	case SignPositive:
		return "Positive"
	default:
		panic("domain.Sign: unhandled sign value")
	}
}

// Covers renders the sign as the subset of the real line it represents, as
// a single degenerate (zero-height) polygon running along y=0.
func (s Sign) Covers() []util.Polygon {
	switch s.v {
	case SignTop:
		return []util.Polygon{{{X: util.NegInf, Y: 0}, {X: util.PosInf, Y: 0}}}
	case SignBottom:
		return nil
	case SignNegative:
		return []util.Polygon{{{X: util.NegInf, Y: 0}, {X: 0, Y: 0}}}
	case SignZero:
		return []util.Polygon{{{X: 0, Y: 0}}}
	case SignPositive:
		return []util.Polygon{{{X: 0, Y: 0}, {X: util.PosInf, Y: 0}}}
	default:
		panic("domain.Sign: unhandled sign value")
	}
}

// Neg negates a sign in place of the concrete '-' operator.
func (s Sign) Neg() Sign {
	switch s.v {
	case SignNegative:
		return Sign{v: SignPositive}
	case SignPositive:
		return Sign{v: SignNegative}
	default:
		return s
	}
}

// signAdditionTable mirrors the abstract addition table: rows and columns
// are ordered Top, Bottom, Negative, Zero, Positive.
var signAdditionTable = [5][5]SignValue{
	{SignTop, SignTop, SignTop, SignTop, SignTop},
	{SignTop, SignBottom, SignBottom, SignBottom, SignBottom},
	{SignTop, SignBottom, SignNegative, SignNegative, SignTop},
	{SignTop, SignBottom, SignNegative, SignZero, SignPositive},
	{SignTop, SignBottom, SignTop, SignPositive, SignPositive},
}

// Add abstracts integer addition over signs.
func (s Sign) Add(other Sign) Sign {
	return Sign{v: signAdditionTable[s.v][other.v]}
}
