package world

import "github.com/emberblock/emberblock/pkg/block"

// updateQueueCapacity bounds the block-update FIFO so a pathological
// redstone network can't grow it without limit on a resource-constrained
// target.
const updateQueueCapacity = 4096

// updateQueue is the bounded FIFO used to batch deferred neighbor
// recomputations produced by update_neighbors / update_neighbors_shape.
// Full queues silently drop the oldest entry rather than block: tick
// errors for individual positions never propagate, and the same
// tolerance applies to queue overflow.
type updateQueue struct {
	entries []block.Pos
}

func newUpdateQueue() *updateQueue {
	return &updateQueue{}
}

// Enqueue appends pos, dropping the oldest pending entry if the queue is
// already at capacity.
func (q *updateQueue) Enqueue(pos block.Pos) {
	if len(q.entries) >= updateQueueCapacity {
		q.entries = q.entries[1:]
	}
	q.entries = append(q.entries, pos)
}

// Drain removes and returns every pending entry in FIFO order.
func (q *updateQueue) Drain() []block.Pos {
	out := q.entries
	q.entries = nil
	return out
}
