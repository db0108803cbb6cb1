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

package cfg

import "container/heap"

// RPOOrder gives every block in g a position in reverse post-order,
// computed once and reused by both the ordering comparator and the
// worklist. Blocks unreachable from block 0 are placed after every
// reachable block, in block-index order, so the comparator remains a total
// order even over a graph with dead code.
type RPOOrder struct {
	position []int
}

// NewRPOOrder computes the reverse post-order of g.
func NewRPOOrder(g Graph) *RPOOrder {
	blocks := g.Blocks()
	visited := make([]bool, len(blocks))
	var postorder []int

	var visit func(n int)
	visit = func(n int) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, succ := range blocks[n].Successors() {
			visit(succ)
		}
		postorder = append(postorder, n)
	}
	if len(blocks) > 0 {
		visit(0)
	}

	position := make([]int, len(blocks))
	for i := range position {
		position[i] = -1
	}
	rpoIndex := 0
	for i := len(postorder) - 1; i >= 0; i-- {
		position[postorder[i]] = rpoIndex
		rpoIndex++
	}
	for n := range position {
		if position[n] == -1 {
			position[n] = rpoIndex
			rpoIndex++
		}
	}
	return &RPOOrder{position: position}
}

// Less reports whether lhs precedes rhs in reverse post-order.
func (o *RPOOrder) Less(lhs, rhs int) bool {
	return o.position[lhs] < o.position[rhs]
}

// Position returns n's reverse-post-order index.
func (o *RPOOrder) Position(n int) int {
	return o.position[n]
}

// Worklist is a priority queue of block indices ordered by reverse
// post-order, with re-enqueue of an already-queued block suppressed. This
// is the standard iteration order for a forward dataflow fixpoint: visiting
// blocks in RPO means a block's predecessors (usually) have already
// produced their output before it is visited, minimizing re-visits.
type Worklist struct {
	order  *RPOOrder
	queue  rpoHeap
	queued []bool
}

// NewWorklist creates an empty Worklist over g's RPO order.
func NewWorklist(g Graph) *Worklist {
	order := NewRPOOrder(g)
	return &Worklist{order: order, queued: make([]bool, len(g.Blocks()))}
}

// Enqueue adds n to the worklist if it is not already queued.
func (w *Worklist) Enqueue(n int) {
	if w.queued[n] {
		return
	}
	w.queued[n] = true
	heap.Push(&w.queue, rpoItem{block: n, position: w.order.Position(n)})
}

// EnqueueSuccessors enqueues every successor of n in g.
func (w *Worklist) EnqueueSuccessors(g Graph, n int) {
	for _, succ := range g.Blocks()[n].Successors() {
		w.Enqueue(succ)
	}
}

// Dequeue removes and returns the queued block with the lowest RPO
// position. It must not be called when Empty reports true.
func (w *Worklist) Dequeue() int {
	item := heap.Pop(&w.queue).(rpoItem)
	w.queued[item.block] = false
	return item.block
}

// Empty reports whether the worklist has no queued blocks.
func (w *Worklist) Empty() bool {
	return w.queue.Len() == 0
}

type rpoItem struct {
	block    int
	position int
}

type rpoHeap []rpoItem

func (h rpoHeap) Len() int            { return len(h) }
func (h rpoHeap) Less(i, j int) bool  { return h[i].position < h[j].position }
func (h rpoHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rpoHeap) Push(x interface{}) { *h = append(*h, x.(rpoItem)) }
func (h *rpoHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
