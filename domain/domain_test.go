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

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlewalk/turtlewalk/domain"
	"github.com/turtlewalk/turtlewalk/util"
)

func TestSignJoinLattice(t *testing.T) {
	t.Parallel()

	neg, pos, zero := domain.NewSign(-1), domain.NewSign(1), domain.NewSign(0)
	bottom := domain.SignBottomValue()

	require.True(t, bottom.Join(neg).Equal(neg))
	require.True(t, neg.Join(neg).Equal(neg))
	require.Equal(t, "Top", neg.Join(pos).String())
	require.True(t, neg.LessEqual(domain.SignOf(domain.SignTop)))
	require.True(t, bottom.LessEqual(zero))
	require.False(t, neg.LessEqual(pos))
}

func TestSignAdditionTable(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Top", domain.NewSign(-1).Add(domain.NewSign(1)).String())
	require.Equal(t, "Negative", domain.NewSign(-1).Add(domain.NewSign(-1)).String())
	require.Equal(t, "Positive", domain.NewSign(0).Add(domain.NewSign(1)).String())
}

func TestIntervalJoinAndLessEqual(t *testing.T) {
	t.Parallel()

	a := domain.Interval{Min: 0, Max: 5}
	b := domain.Interval{Min: -2, Max: 3}
	joined := a.Join(b)
	require.Equal(t, domain.Interval{Min: -2, Max: 5}, joined)
	require.True(t, a.LessEqual(joined))
	require.True(t, b.LessEqual(joined))
}

func TestIntervalWidenSaturates(t *testing.T) {
	t.Parallel()

	running := domain.Interval{Min: 0, Max: 10}
	widened := running.Widen(domain.Interval{Min: -1, Max: 10})
	require.Equal(t, util.NegInf, widened.Min)
	require.Equal(t, 10, widened.Max)

	stable := running.Widen(domain.Interval{Min: 0, Max: 10})
	require.Equal(t, running, stable)
}

func TestIntervalWidenFromBottomIsIdentity(t *testing.T) {
	t.Parallel()

	transferred := domain.Interval{Min: 60, Max: 110}
	require.Equal(t, transferred, domain.IntervalBottom().Widen(transferred))
}

func TestIntervalString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[0, 5]", domain.Interval{Min: 0, Max: 5}.String())
	require.Equal(t, "[-inf, inf]", domain.IntervalTop().String())
}

func TestVec2ComponentwiseOrder(t *testing.T) {
	t.Parallel()

	a := domain.Vec2[domain.Interval]{X: domain.NewInterval(0), Y: domain.NewInterval(10)}
	b := domain.Vec2[domain.Interval]{X: domain.Interval{Min: -1, Max: 0}, Y: domain.NewInterval(20)}

	// a.X is strictly below b.X, so a lexicographic order (X first, Y only
	// on a tie) would put a <= b regardless of Y. Under the componentwise
	// order used here it does not hold, because a.Y = [10, 10] is not
	// contained in b.Y = [20, 20].
	require.False(t, a.LessEqual(b))
	require.True(t, a.X.LessEqual(b.X))
}

func TestVec2WidenIsComponentwise(t *testing.T) {
	t.Parallel()

	running := domain.Vec2[domain.Interval]{X: domain.NewInterval(0), Y: domain.NewInterval(0)}
	transferred := domain.Vec2[domain.Interval]{X: domain.NewInterval(-1), Y: domain.NewInterval(0)}

	widened := domain.WidenVec2(running, transferred)
	require.Equal(t, util.NegInf, widened.X.Min)
	require.Equal(t, domain.NewInterval(0), widened.Y)
}

func TestPowersetSubsetOrderAndJoin(t *testing.T) {
	t.Parallel()

	a := domain.NewPowerset("Init")
	b := domain.NewPowerset("Init", "Translation")

	require.True(t, a.LessEqual(b))
	require.False(t, b.LessEqual(a))
	require.True(t, a.Join(b).Equal(b))
	require.Equal(t, "{Init, Translation}", b.String())
}

func TestPowersetInsertIsPersistent(t *testing.T) {
	t.Parallel()

	base := domain.PowersetBottom[string]()
	withInit := base.Insert("Init")

	require.Equal(t, "{}", base.String())
	require.Equal(t, "{Init}", withInit.String())
}

// rankedLetter is a minimal domain.Ranked element used only to pin down
// Powerset.String's ordering behavior independent of any one analysis.
type rankedLetter struct {
	name string
	rank int
}

func (r rankedLetter) String() string { return r.name }
func (r rankedLetter) Rank() int      { return r.rank }

func TestPowersetStringOrdersByRankNotAlphabetically(t *testing.T) {
	t.Parallel()

	first := rankedLetter{name: "Zebra", rank: 0}
	second := rankedLetter{name: "Apple", rank: 1}

	set := domain.NewPowerset(second, first)
	require.Equal(t, "{Zebra, Apple}", set.String())
}
