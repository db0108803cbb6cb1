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
	"sort"
	"strings"

	"github.com/turtlewalk/turtlewalk/util"
)

// Powerset abstracts a set of values of type T under subset inclusion: Join
// is union, LessEqual is the subset relation. T must be comparable. Since Go
// maps (unlike C++'s std::set) iterate in an unspecified order, String sorts
// elements by Rank when T implements Ranked and by their string form
// otherwise.
type Powerset[T comparable] struct {
	elements map[T]struct{}
}

// NewPowerset builds a Powerset containing exactly the given elements.
func NewPowerset[T comparable](elements ...T) Powerset[T] {
	p := Powerset[T]{elements: make(map[T]struct{}, len(elements))}
	for _, e := range elements {
		p.elements[e] = struct{}{}
	}
	return p
}

// PowersetBottom is the least element: the empty set.
func PowersetBottom[T comparable]() Powerset[T] {
	return Powerset[T]{}
}

// Insert returns a Powerset with element added, leaving the receiver
// unmodified.
func (p Powerset[T]) Insert(element T) Powerset[T] {
	out := make(map[T]struct{}, len(p.elements)+1)
	for e := range p.elements {
		out[e] = struct{}{}
	}
	out[element] = struct{}{}
	return Powerset[T]{elements: out}
}

func (p Powerset[T]) Equal(other Powerset[T]) bool {
	if len(p.elements) != len(other.elements) {
		return false
	}
	for e := range p.elements {
		if _, ok := other.elements[e]; !ok {
			return false
		}
	}
	return true
}

// LessEqual reports whether p is a subset of other.
func (p Powerset[T]) LessEqual(other Powerset[T]) bool {
	for e := range p.elements {
		if _, ok := other.elements[e]; !ok {
			return false
		}
	}
	return true
}

// Join returns the union of p and other.
func (p Powerset[T]) Join(other Powerset[T]) Powerset[T] {
	out := make(map[T]struct{}, len(p.elements)+len(other.elements))
	for e := range p.elements {
		out[e] = struct{}{}
	}
	for e := range other.elements {
		out[e] = struct{}{}
	}
	return Powerset[T]{elements: out}
}

// stringer is satisfied by element types with their own string form,
// mirroring the C++ `requires { e.toString() }` fallback to `fmt::format`.
type stringer interface {
	String() string
}

// Ranked is satisfied by element types with a fixed canonical order (e.g. an
// enum's declaration order). When T implements it, String renders elements
// in that order instead of falling back to alphabetical order, which would
// otherwise scramble a set like {Init, Translation, Rotation} into
// {Init, Rotation, Translation}.
type Ranked interface {
	Rank() int
}

func (p Powerset[T]) String() string {
	elems := make([]any, 0, len(p.elements))
	for e := range p.elements {
		elems = append(elems, e)
	}

	names := make([]string, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case stringer:
			names[i] = v.String()
		case string:
			names[i] = v
		default:
			names[i] = fmt.Sprintf("%v", e)
		}
	}

	sort.Sort(byRankThenName{elems: elems, names: names})
	return "{" + strings.Join(names, ", ") + "}"
}

// byRankThenName sorts elems/names in lockstep: by Rank() when every element
// implements Ranked, falling back to alphabetical order on their rendered
// names otherwise.
type byRankThenName struct {
	elems []any
	names []string
}

func (s byRankThenName) Len() int { return len(s.names) }

func (s byRankThenName) Swap(i, j int) {
	s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	s.names[i], s.names[j] = s.names[j], s.names[i]
}

func (s byRankThenName) Less(i, j int) bool {
	ri, iok := s.elems[i].(Ranked)
	rj, jok := s.elems[j].(Ranked)
	if iok && jok {
		return ri.Rank() < rj.Rank()
	}
	return s.names[i] < s.names[j]
}

// Covers is always empty: a set of arbitrary values has no natural
// rendering as a region on the canvas.
func (p Powerset[T]) Covers() []util.Polygon {
	return nil
}
