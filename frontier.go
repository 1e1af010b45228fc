package gridsearch

import "container/heap"

// frontier orders the open cells. Membership is tracked by the Stepper, so a
// frontier may hand back points that have since been closed.
type frontier interface {
	push(p Point, f int)
	// improved is called when an open cell got a cheaper estimate.
	improved(p Point, f int)
	pop() (Point, bool)
	len() int
}

// fifoFrontier expands cells in discovery order. Cost improvements are
// recorded on the cell only and never move it in the queue.
type fifoFrontier struct {
	queue []Point
}

func (q *fifoFrontier) push(p Point, _ int) { q.queue = append(q.queue, p) }

func (q *fifoFrontier) improved(Point, int) {}

func (q *fifoFrontier) pop() (Point, bool) {
	if len(q.queue) == 0 {
		return Point{}, false
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p, true
}

func (q *fifoFrontier) len() int { return len(q.queue) }

// heapFrontier pops the lowest f first. An improvement pushes a second entry;
// the stale one is dropped when it surfaces after the cell has been closed.
type heapFrontier struct {
	queue    PriorityQueue
	sequence uint64
}

func newHeapFrontier() *heapFrontier {
	h := &heapFrontier{queue: make(PriorityQueue, 0)}
	heap.Init(&h.queue)
	return h
}

func (h *heapFrontier) push(p Point, f int) {
	h.sequence++
	heap.Push(&h.queue, &PriorityQueueItem{Node: p, FCost: f, Sequence: h.sequence})
}

func (h *heapFrontier) improved(p Point, f int) { h.push(p, f) }

func (h *heapFrontier) pop() (Point, bool) {
	if h.queue.Len() == 0 {
		return Point{}, false
	}
	item := heap.Pop(&h.queue).(*PriorityQueueItem)
	return item.Node, true
}

func (h *heapFrontier) len() int { return h.queue.Len() }
