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

package util_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlewalk/turtlewalk/util"
)

func TestVec2Arithmetic(t *testing.T) {
	t.Parallel()

	a := util.Vec2{X: 3, Y: -4}
	b := util.Vec2{X: 1, Y: 2}

	require.Equal(t, util.Vec2{X: 4, Y: -2}, a.Add(b))
	require.Equal(t, util.Vec2{X: 2, Y: -6}, a.Sub(b))
	require.Equal(t, util.Vec2{X: -3, Y: 4}, a.Neg())
}

func TestRotateRightAngles(t *testing.T) {
	t.Parallel()

	origin := util.Vec2{X: 0, Y: 0}
	p := util.Vec2{X: 10, Y: 0}

	require.Equal(t, util.Vec2{X: 10, Y: 0}, util.Rotate(p, origin, 0))
	require.Equal(t, util.Vec2{X: 0, Y: 10}, util.Rotate(p, origin, 90))
	require.Equal(t, util.Vec2{X: -10, Y: 0}, util.Rotate(p, origin, 180))
	require.Equal(t, util.Vec2{X: 0, Y: -10}, util.Rotate(p, origin, 270))
}

func TestRotateAroundNonOrigin(t *testing.T) {
	t.Parallel()

	origin := util.Vec2{X: 5, Y: 5}
	p := util.Vec2{X: 15, Y: 5}

	require.Equal(t, util.Vec2{X: 5, Y: 15}, util.Rotate(p, origin, 90))
}
