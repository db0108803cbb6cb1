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

package util

import "math"

// Rotate rotates toRotate around origin by degree (integer degrees,
// counter-clockwise in the usual math convention) and rounds back to the
// nearest integer grid point. This is the one place in the system that
// leaves exact integer arithmetic: the concrete walk evaluator uses it
// directly, and the interval analysis uses it to rotate the four corners
// of a finite bounding box when degree is not a multiple of 90 (the angles
// the abstract domain can otherwise handle exactly).
func Rotate(toRotate, origin Vec2, degree int) Vec2 {
	rad := float64(degree%360) * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	dx, dy := float64(toRotate.X-origin.X), float64(toRotate.Y-origin.Y)
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	return Vec2{
		X: origin.X + int(math.Round(rx)),
		Y: origin.Y + int(math.Round(ry)),
	}
}
