package search

import (
	"container/heap"

	"github.com/san-kum/gbfsviz/internal/grid"
)

type frontierItem struct {
	priority int
	cell     grid.Cell
}

// frontierQueue is a min-heap ordered by (priority, row, col).
type frontierQueue []frontierItem

func (q frontierQueue) Len() int { return len(q) }
func (q frontierQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].cell.Less(q[j].cell)
}
func (q frontierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontierQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// frontier wraps the heap with an enqueued set so a cell is inserted at
// most once over the whole search.
type frontier struct {
	queue    frontierQueue
	enqueued map[grid.Cell]bool
}

func newFrontier() *frontier {
	return &frontier{enqueued: make(map[grid.Cell]bool)}
}

func (f *frontier) push(c grid.Cell, priority int) {
	f.enqueued[c] = true
	heap.Push(&f.queue, frontierItem{priority: priority, cell: c})
}

func (f *frontier) pop() grid.Cell {
	return heap.Pop(&f.queue).(frontierItem).cell
}

func (f *frontier) contains(c grid.Cell) bool { return f.enqueued[c] }
func (f *frontier) len() int                  { return f.queue.Len() }

// cells returns the pending cells in pop order without disturbing the heap.
func (f *frontier) cells() []grid.Cell {
	tmp := make(frontierQueue, len(f.queue))
	copy(tmp, f.queue)
	out := make([]grid.Cell, 0, len(tmp))
	for tmp.Len() > 0 {
		out = append(out, heap.Pop(&tmp).(frontierItem).cell)
	}
	return out
}
