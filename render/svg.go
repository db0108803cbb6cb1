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

// Package render draws the covered area an analysis inferred and the
// concrete walks sampled over it onto a single SVG overlay: the same
// picture a reader builds in their head when comparing an abstract result
// against ground truth. There is no SVG library anywhere in the example
// corpus this module was grounded on, and SVG is plain XML text, so this
// package builds it directly with fmt/strings rather than reaching for a
// dependency that would add nothing over the standard library.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/turtlewalk/turtlewalk/ast"
	"github.com/turtlewalk/turtlewalk/config"
	"github.com/turtlewalk/turtlewalk/util"
	"github.com/turtlewalk/turtlewalk/walk"
)

const dotRadius = 3

// palette picks easily distinguishable colors for the first few walks;
// indices beyond the palette fall back to a deterministic hash so the same
// set of executions always renders identically.
var palette = []string{
	"#e6194b", "#3cb44b", "#0082c8", "#f58230", "#911eb4",
	"#46f0f0", "#f032e6", "#d2f53c", "#fabebe", "#008080",
	"#e6beff", "#aa6e28", "#fffac8", "#800000", "#aaffc3",
	"#808000", "#ffd8b1", "#000080", "#ffe119", "#808080",
}

// SVG renders one or more concrete walks over the area an analysis covers
// as a white-background SVG image with black axes through the centre,
// covered-area polygons filled light grey underneath, and one colored
// trace per execution: straight segments for translations, circular arcs
// for rotations, a dot at every point (green for the initial one, black
// otherwise). dotsOnly suppresses the connecting segments, leaving just
// the dots.
func SVG(executions [][]walk.Step, covered []util.Polygon, dotsOnly bool) string {
	size := config.CanvasSize
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", size, size, size, size)
	fmt.Fprintf(&b, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"white\"/>\n", size, size)

	renderCoveredArea(&b, covered)
	renderAxes(&b)

	for i, steps := range executions {
		renderWalk(&b, steps, pickColor(i), dotsOnly)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func pickColor(index int) string {
	if index < len(palette) {
		return palette[index]
	}
	// Knuth's multiplicative hash, so colors beyond the palette are still
	// deterministic from one render to the next.
	h := uint32(index) * 2654435761
	return fmt.Sprintf("#%02x%02x%02x", (h>>16)&0xff, (h>>8)&0xff, h&0xff)
}

func renderAxes(b *strings.Builder) {
	half := float64(config.CanvasSize) / 2
	full := float64(config.CanvasSize)
	fmt.Fprintf(b, "<line x1=\"%g\" y1=\"0\" x2=\"%g\" y2=\"%g\" stroke=\"black\" stroke-width=\"1\"/>\n", half, half, full)
	fmt.Fprintf(b, "<line x1=\"0\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"black\" stroke-width=\"1\"/>\n", half, full, half)
}

func renderCoveredArea(b *strings.Builder, covered []util.Polygon) {
	for _, p := range covered {
		if len(p) < 2 {
			continue
		}
		fmt.Fprintf(b, "<path d=\"%s\" fill=\"lightgrey\" stroke=\"none\"/>\n", polygonPath(p))
	}
}

func polygonPath(p util.Polygon) string {
	var b strings.Builder
	for i, v := range p {
		x, y := toSVGPoint(util.Vec2{X: clip(v.X), Y: clip(v.Y)})
		if i == 0 {
			fmt.Fprintf(&b, "M%g,%g ", x, y)
		} else {
			fmt.Fprintf(&b, "L%g,%g ", x, y)
		}
	}
	b.WriteString("Z")
	return b.String()
}

func renderWalk(b *strings.Builder, steps []walk.Step, color string, dotsOnly bool) {
	if !dotsOnly {
		for i := 1; i < len(steps); i++ {
			if rot, ok := steps[i].Op.(*ast.Rotation); ok {
				writeArc(b, steps[i-1].Pos, steps[i].Pos, util.Vec2{X: rot.Ox, Y: rot.Oy}, color)
			} else {
				writeLine(b, steps[i-1].Pos, steps[i].Pos, color)
			}
		}
	}
	for _, step := range steps {
		_, isInit := step.Op.(*ast.Init)
		writeDot(b, step.Pos, isInit)
	}
}

func writeLine(b *strings.Builder, from, to util.Vec2, color string) {
	x1, y1 := toSVGPoint(from)
	x2, y2 := toSVGPoint(to)
	fmt.Fprintf(b, "<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"1\"/>\n", x1, y1, x2, y2, color)
}

func writeArc(b *strings.Builder, from, to, origin util.Vec2, color string) {
	dx, dy := float64(to.X-origin.X), float64(to.Y-origin.Y)
	radius := math.Hypot(dx, dy)
	x1, y1 := toSVGPoint(from)
	x2, y2 := toSVGPoint(to)
	fmt.Fprintf(b, "<path d=\"M%g,%g A%g,%g 0 0,1 %g,%g\" stroke=\"%s\" fill=\"none\" stroke-width=\"1\"/>\n", x1, y1, radius, radius, x2, y2, color)
}

func writeDot(b *strings.Builder, pos util.Vec2, isInit bool) {
	color := "black"
	if isInit {
		color = "green"
	}
	x, y := toSVGPoint(pos)
	fmt.Fprintf(b, "<circle cx=\"%g\" cy=\"%g\" r=\"%d\" fill=\"%s\"/>\n", x, y, dotRadius, color)
}

// toSVGPoint maps a point in the walk's centre-origin, y-up plane to the
// SVG canvas's top-left-origin, y-down pixel space.
func toSVGPoint(p util.Vec2) (x, y float64) {
	half := float64(config.CanvasSize / 2)
	return half + float64(p.X), half - float64(p.Y)
}

// clip saturates an infinite coordinate (as produced by an unbounded
// analysis result) to the canvas edge, in the same centre-origin space
// toSVGPoint expects.
func clip(v int) int {
	half := config.CanvasSize / 2
	switch v {
	case util.PosInf:
		return half
	case util.NegInf:
		return -half
	default:
		return v
	}
}
