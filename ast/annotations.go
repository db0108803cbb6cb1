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

// Annotations attaches display strings to AST nodes, keyed by node identity
// (pointer equality, since nodes are never copied once allocated). Forward
// analyses write to Post (state leaving the operation, read naturally after
// it in source order); backward analyses write to Pre (state "going into"
// the operation when read forward), since they walk a ReverseCFG but the
// pretty-printer always renders in forward source order.
type Annotations struct {
	Pre  map[Node][]string
	Post map[Node][]string
}

// NewAnnotations returns an empty, ready-to-use Annotations value.
func NewAnnotations() *Annotations {
	return &Annotations{Pre: map[Node][]string{}, Post: map[Node][]string{}}
}

// AddPre appends s to the pre-annotations of n.
func (a *Annotations) AddPre(n Node, s string) {
	a.Pre[n] = append(a.Pre[n], s)
}

// AddPost appends s to the post-annotations of n.
func (a *Annotations) AddPost(n Node, s string) {
	a.Post[n] = append(a.Post[n], s)
}

// Merge appends every entry of other into a, preserving order.
func (a *Annotations) Merge(other *Annotations) {
	if other == nil {
		return
	}
	for n, vs := range other.Pre {
		a.Pre[n] = append(a.Pre[n], vs...)
	}
	for n, vs := range other.Post {
		a.Post[n] = append(a.Post[n], vs...)
	}
}
