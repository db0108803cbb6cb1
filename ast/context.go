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

package ast

// Context is the arena that owns every node produced while parsing a single
// program. Go's garbage collector makes the arena's job easy relative to the
// ownership-strict implementation this is ported from: a single strong
// reference to the Context (transitively, to the slice below) is enough to
// keep every node reachable for as long as the Context itself is reachable.
// Node identity (pointer equality) is what Annotations and the CFG builder
// key off of; nodes are never copied or reconstructed once created.
type Context struct {
	nodes []Node
}

// NewContext creates an empty arena.
func NewContext() *Context {
	return &Context{}
}

func (c *Context) track(n Node) {
	c.nodes = append(c.nodes, n)
}

// NewInit allocates an Init node owned by this context.
func (c *Context) NewInit(line, topX, topY, width, height int) *Init {
	n := &Init{line: line, TopX: topX, TopY: topY, Width: width, Height: height}
	c.track(n)
	return n
}

// NewTranslation allocates a Translation node owned by this context.
func (c *Context) NewTranslation(line, dx, dy int) *Translation {
	n := &Translation{line: line, Dx: dx, Dy: dy}
	c.track(n)
	return n
}

// NewRotation allocates a Rotation node owned by this context.
func (c *Context) NewRotation(line, ox, oy, degrees int) *Rotation {
	n := &Rotation{line: line, Ox: ox, Oy: oy, Degrees: degrees}
	c.track(n)
	return n
}

// NewSequence allocates a Sequence node owned by this context.
func (c *Context) NewSequence(line int, nodes []Node) *Sequence {
	n := &Sequence{line: line, Nodes: nodes}
	c.track(n)
	return n
}

// NewBranch allocates a Branch node owned by this context.
func (c *Context) NewBranch(line int, lhs, rhs *Sequence) *Branch {
	n := &Branch{line: line, LHS: lhs, RHS: rhs}
	c.track(n)
	return n
}

// NewLoop allocates a Loop node owned by this context.
func (c *Context) NewLoop(line int, body *Sequence) *Loop {
	n := &Loop{line: line, Body: body}
	c.track(n)
	return n
}

// Len returns the number of nodes currently tracked by the arena, used only
// by tests to assert on allocation counts.
func (c *Context) Len() int { return len(c.nodes) }
