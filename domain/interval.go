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
	"strconv"

	"github.com/turtlewalk/turtlewalk/util"
)

// Interval abstracts an integer to the smallest closed range containing it.
// Min and Max saturate at util.NegInf and util.PosInf rather than
// representing true unbounded infinities.
type Interval struct {
	Min, Max int
}

// NewInterval abstracts a single concrete integer.
func NewInterval(value int) Interval {
	return Interval{Min: value, Max: value}
}

// IntervalBottom is the least element: an empty range.
func IntervalBottom() Interval {
	return Interval{Min: util.PosInf, Max: util.NegInf}
}

// IntervalTop is the greatest element: the full range of machine integers.
func IntervalTop() Interval {
	return Interval{Min: util.NegInf, Max: util.PosInf}
}

func (i Interval) Equal(other Interval) bool {
	return i.Min == other.Min && i.Max == other.Max
}

func (i Interval) LessEqual(other Interval) bool {
	return other.Min <= i.Min && other.Max >= i.Max
}

func (i Interval) Join(other Interval) Interval {
	return Interval{Min: min(i.Min, other.Min), Max: max(i.Max, other.Max)}
}

// Widen grows i towards transferred: whichever bound moved, in whichever
// direction, jumps straight to its sentinel rather than to the new finite
// value. solver.SolveWidening applies it on every visit of every block;
// after a bound first becomes finite it can move at most once more.
//
// i == bottom is special-cased to return transferred unchanged: the
// sentinel-jump rule below reads bottom's {+inf, -inf} placeholders as
// "every bound has already moved", which would widen a loop header's very
// first visit straight to Top instead of to its first real state. That
// breaks the bottom.widen(a) == a law every widenable domain is expected
// to satisfy.
func (i Interval) Widen(transferred Interval) Interval {
	if i.Min == util.PosInf && i.Max == util.NegInf {
		return transferred
	}
	resultMin := i.Min
	if transferred.Min < i.Min {
		resultMin = util.NegInf
	}
	resultMax := i.Max
	if transferred.Max > i.Max {
		resultMax = util.PosInf
	}
	return Interval{Min: resultMin, Max: resultMax}
}

// Bounds implements Vec2's Bounded interface, letting Vec2[Interval] render
// itself as a rectangle.
func (i Interval) Bounds() (min, max int) { return i.Min, i.Max }

func (i Interval) String() string {
	minStr := "-inf"
	if i.Min != util.NegInf {
		minStr = strconv.Itoa(i.Min)
	}
	maxStr := "inf"
	if i.Max != util.PosInf {
		maxStr = strconv.Itoa(i.Max)
	}
	return fmt.Sprintf("[%s, %s]", minStr, maxStr)
}

// Neg negates an interval in place of the concrete unary '-' operator.
func (i Interval) Neg() Interval {
	minResult := util.NegInf
	if i.Max != util.PosInf {
		minResult = -i.Max
	}
	maxResult := util.PosInf
	if i.Min != util.NegInf {
		maxResult = -i.Min
	}
	return Interval{Min: minResult, Max: maxResult}
}

// Add abstracts integer addition over intervals, saturating at the
// sentinels rather than overflowing.
func (i Interval) Add(other Interval) Interval {
	if i.Min == util.PosInf || other.Min == util.PosInf {
		panic("domain.Interval.Add: bottom interval has no sum")
	}
	resultMin := util.NegInf
	if i.Min != util.NegInf && other.Min != util.NegInf {
		resultMin = i.Min + other.Min
	}

	if i.Max == util.NegInf || other.Max == util.NegInf {
		panic("domain.Interval.Add: bottom interval has no sum")
	}
	resultMax := util.PosInf
	if i.Max != util.PosInf && other.Max != util.PosInf {
		resultMax = i.Max + other.Max
	}
	return Interval{Min: resultMin, Max: resultMax}
}
